// types.go declares the core data types: squares, pieces, moves, move
// lists and the history entries make/unmake push and pop.

package engine

// Square is a board index 0..63. square = rank*8 + file, file a=0..h=7,
// rank 1=0..8=7. Square 0 is a1, 7 is h1, 56 is a8, 63 is h8.
type Square int

// NoSquare is the sentinel used for "no en-passant target".
const NoSquare Square = -1

// Square2String maps each board square to its algebraic name.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// Piece is a tag for one of the twelve piece kinds, plus the NoPiece
// sentinel. The first twelve values double as indices into Board.pieces.
type Piece int

const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	NoPiece
)

// PieceSymbols maps each piece to its FEN letter.
var PieceSymbols = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// Side is the color to move; Both is used to index the combined
// occupancy bitboard slot.
type Side int

const (
	White Side = iota
	Black
	Both
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return s ^ 1
}

// Castling rights bitmask bits.
const (
	WhiteKingSide Castling = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// Castling is a 4-bit mask of the rights not yet lost.
type Castling int

// MoveFlags is a bit set describing the kind of a move.
type MoveFlags int

const (
	Capture    MoveFlags = 1
	DoublePush MoveFlags = 2
	EnPassant  MoveFlags = 4
	CastleMove MoveFlags = 8
	Promotion  MoveFlags = 16
)

// Move records a single chess move. capture/promo are NoPiece when not
// applicable; promo is always a queen of the mover's color when PROMOTION
// is set (this engine never under-promotes).
type Move struct {
	From, To Square
	Piece    Piece
	Capture  Piece
	Promo    Piece
	Flags    MoveFlags
}

// IsCapture reports whether the move removes an enemy piece, including
// en-passant and capture-promotions.
func (m Move) IsCapture() bool { return m.Flags&Capture != 0 }

// String renders the move in long algebraic notation, e.g. "e2e4",
// "e7e8q", "e1g1".
func (m Move) String() string {
	s := Square2String[m.From] + Square2String[m.To]
	if m.Flags&Promotion != 0 {
		s += "q"
	}
	return s
}

// maxMoves bounds a MoveList; 256 comfortably covers any reachable
// position (the true worst case is far lower).
const maxMoves = 256

// MoveList is a fixed-capacity, zero-allocation sequence of moves.
type MoveList struct {
	Moves [maxMoves]Move
	Count int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// MaxHistory bounds the make/unmake stack and, transitively, search
// depth (including quiescence). Callers outside this package that drive
// their own Make/Unmake pairs (as opposed to going through Engine or
// GenerateLegal) size their history array with this constant.
const MaxHistory = 128

const maxHistory = MaxHistory

// HistoryEntry captures a made move plus the irreversible state it
// overwrote, so Unmake can restore it exactly.
type HistoryEntry struct {
	Move          Move
	CastleRights  Castling
	EnPassant     Square
	HalfmoveClock int
	FullmoveClock int
}

// Mate is the base score for a forced mate. search scores a checkmated
// side to move as -Mate+depth, where depth is the remaining search depth;
// the mating side sees Mate-depth after negation, so within one iteration
// a mate found nearer the root scores lower for the mating side than one
// found deeper in the tree.
const Mate = 32000
