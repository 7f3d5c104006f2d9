// fen.go converts between Forsyth-Edwards Notation strings and Board
// values.

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a structurally malformed FEN string. The caller may
// choose to retain the previous position or reset to the start position.
type ParseError struct {
	Field string
	Value string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fen: field %s (%q): %s", e.Field, e.Value, e.Msg)
}

var pieceLetters = map[byte]Piece{
	'P': WP, 'N': WN, 'B': WB, 'R': WR, 'Q': WQ, 'K': WK,
	'p': BP, 'n': BN, 'b': BB, 'r': BR, 'q': BQ, 'k': BK,
}

// LoadFEN parses a FEN string into b, replacing its current contents.
// On failure b is left unmodified and a *ParseError is returned. The
// trailing halfmove/fullmove fields are optional, defaulting to 0 and 1.
func (b *Board) LoadFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return &ParseError{"fen", fen, "expected at least 4 space-separated fields"}
	}

	var nb Board
	nb.EnPassant = NoSquare
	nb.FullmoveClock = 1

	if err := nb.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		nb.SideToMove = White
	case "b":
		nb.SideToMove = Black
	default:
		return &ParseError{"active color", fields[1], "must be \"w\" or \"b\""}
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				nb.CastleRights |= WhiteKingSide
			case 'Q':
				nb.CastleRights |= WhiteQueenSide
			case 'k':
				nb.CastleRights |= BlackKingSide
			case 'q':
				nb.CastleRights |= BlackQueenSide
			default:
				return &ParseError{"castling rights", fields[2], "unknown character"}
			}
		}
	}

	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return &ParseError{"en passant", fields[3], err.Error()}
		}
		nb.EnPassant = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return &ParseError{"halfmove clock", fields[4], "not an integer"}
		}
		nb.HalfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return &ParseError{"fullmove number", fields[5], "not an integer"}
		}
		nb.FullmoveClock = n
	}

	nb.refreshOccupancy()
	*b = nb
	return nil
}

// parsePlacement fills b.pieces from the first FEN field (rank 8 down to
// rank 1, '/' separates ranks, digits skip empty files).
func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &ParseError{"piece placement", placement, "expected 8 ranks"}
	}
	for r := 0; r < 8; r++ {
		rank := 7 - r
		file := 0
		for i := 0; i < len(ranks[r]); i++ {
			c := ranks[r][i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := pieceLetters[c]
			if !ok {
				return &ParseError{"piece placement", placement, "unknown piece letter " + string(c)}
			}
			if file > 7 {
				return &ParseError{"piece placement", placement, "rank overflows 8 files"}
			}
			b.pieces[piece] = set(b.pieces[piece], Square(rank*8+file))
			file++
		}
		if file != 8 {
			return &ParseError{"piece placement", placement, "rank does not sum to 8 files"}
		}
	}
	return nil
}

// String serializes the board to a FEN string.
func (b *Board) String() string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := Square(r*8 + f)
			p := b.PieceAt(sq)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(PieceSymbols[p])
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r != 0 {
			sb.WriteByte('/')
		}
	}

	if b.SideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.CastleRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.CastleRights&WhiteKingSide != 0 {
			sb.WriteByte('K')
		}
		if b.CastleRights&WhiteQueenSide != 0 {
			sb.WriteByte('Q')
		}
		if b.CastleRights&BlackKingSide != 0 {
			sb.WriteByte('k')
		}
		if b.CastleRights&BlackQueenSide != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if b.EnPassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(Square2String[b.EnPassant])
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveClock))

	return sb.String()
}

// parseSquare parses an algebraic square like "e3" into a Square.
func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("expected 2 characters")
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' {
		return NoSquare, fmt.Errorf("file out of range a-h")
	}
	if rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("rank out of range 1-8")
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}
