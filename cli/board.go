// Package cli renders an engine.Board to a colorized terminal string. It
// is a debug aid only: nothing here sits on the UCI wire.
package cli

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/arnisz/picochess-go/engine"
)

// pieceGlyphs maps each piece to its unicode chess symbol.
var pieceGlyphs = [12]rune{
	'♙', '♘', '♗', '♖', '♕', '♔',
	'♟', '♞', '♝', '♜', '♛', '♚',
}

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgHiBlack, color.FgHiWhite)
)

// FormatBoard renders b as an 8x8 grid, rank 8 at the top, alternating
// light/dark square backgrounds with the side to move and castling
// rights printed below.
func FormatBoard(b *engine.Board) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(strconv.Itoa(rank + 1))
		sb.WriteString(" ")
		for file := 0; file < 8; file++ {
			sq := engine.Square(rank*8 + file)
			p := b.PieceAt(sq)

			glyph := " "
			if p != engine.NoPiece {
				glyph = string(pieceGlyphs[p])
			}

			sqColor := darkSquare
			if file%2^rank%2 == 0 {
				sqColor = lightSquare
			}
			sb.WriteString(sqColor.Sprintf(" %s ", glyph))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	sb.WriteString(summaryLine(b))
	return sb.String()
}

func summaryLine(b *engine.Board) string {
	side := "white"
	if b.SideToMove == engine.Black {
		side = "black"
	}

	rights := "-"
	if b.CastleRights != 0 {
		var rb strings.Builder
		if b.CastleRights&engine.WhiteKingSide != 0 {
			rb.WriteByte('K')
		}
		if b.CastleRights&engine.WhiteQueenSide != 0 {
			rb.WriteByte('Q')
		}
		if b.CastleRights&engine.BlackKingSide != 0 {
			rb.WriteByte('k')
		}
		if b.CastleRights&engine.BlackQueenSide != 0 {
			rb.WriteByte('q')
		}
		rights = rb.String()
	}

	ep := "-"
	if b.EnPassant != engine.NoSquare {
		ep = engine.Square2String[b.EnPassant]
	}

	return side + " to move, castling " + rights + ", en passant " + ep
}
