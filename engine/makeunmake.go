// makeunmake.go applies and reverts moves with exact inverse semantics,
// maintaining the irreversible-state history stack, and filters illegal
// moves by detecting self-check after the move is played.

package engine

// rookCastleSquares maps a king's castling destination square to the
// rook's origin and destination squares.
var rookCastleSquares = map[Square][2]Square{
	6:  {7, 5},   // white O-O
	2:  {0, 3},   // white O-O-O
	62: {63, 61}, // black O-O
	58: {56, 59}, // black O-O-O
}

// Make applies m to b, pushing history onto stack. It returns false
// (and leaves b exactly as it was before the call) if the move leaves
// the mover's own king in check.
//
// stack/ply model the history stack of spec §3: the caller owns both
// and is responsible for the maxHistory (128) depth bound.
func Make(b *Board, m Move, stack *[maxHistory]HistoryEntry, ply *int) bool {
	stack[*ply] = HistoryEntry{
		Move:          m,
		CastleRights:  b.CastleRights,
		EnPassant:     b.EnPassant,
		HalfmoveClock: b.HalfmoveClock,
		FullmoveClock: b.FullmoveClock,
	}
	// The pointer advances as soon as the entry is pushed (not only on
	// legality success) so that Unmake's decrement-then-read inverse is
	// well-defined even when this same call rejects the move below.
	*ply++

	mover := b.SideToMove

	b.removePiece(m.Piece, m.From)

	if m.Flags&EnPassant != 0 {
		capSq := m.To - 8
		if mover == Black {
			capSq = m.To + 8
		}
		b.removePiece(m.Capture, capSq)
	} else if m.Capture != NoPiece {
		b.removePiece(m.Capture, m.To)
	}

	placed := m.Piece
	if m.Flags&Promotion != 0 {
		placed = m.Promo
	}
	b.placePiece(placed, m.To)

	if m.Flags&CastleMove != 0 {
		rookSq := rookCastleSquares[m.To]
		rook := WR
		if mover == Black {
			rook = BR
		}
		b.removePiece(rook, rookSq[0])
		b.placePiece(rook, rookSq[1])
	}

	switch m.Piece {
	case WK:
		b.CastleRights &^= WhiteKingSide | WhiteQueenSide
	case BK:
		b.CastleRights &^= BlackKingSide | BlackQueenSide
	}
	if m.From == 0 || m.To == 0 {
		b.CastleRights &^= WhiteQueenSide
	}
	if m.From == 7 || m.To == 7 {
		b.CastleRights &^= WhiteKingSide
	}
	if m.From == 56 || m.To == 56 {
		b.CastleRights &^= BlackQueenSide
	}
	if m.From == 63 || m.To == 63 {
		b.CastleRights &^= BlackKingSide
	}

	b.EnPassant = NoSquare
	if m.Flags&DoublePush != 0 {
		if mover == White {
			b.EnPassant = m.From + 8
		} else {
			b.EnPassant = m.From - 8
		}
	}

	if m.Capture != NoPiece || m.Piece == WP || m.Piece == BP {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if mover == Black {
		b.FullmoveClock++
	}

	b.refreshOccupancy()

	if b.InCheck(mover) {
		// Unmake expects SideToMove to already be the post-move side (it
		// flips back to the mover itself), matching the success path below.
		b.SideToMove = mover.Opponent()
		Unmake(b, stack, ply)
		return false
	}

	b.SideToMove = mover.Opponent()
	return true
}

// Unmake reverts the most recently made move, restoring b to the exact
// state it had before the corresponding Make call.
func Unmake(b *Board, stack *[maxHistory]HistoryEntry, ply *int) {
	*ply--
	entry := stack[*ply]
	m := entry.Move

	b.SideToMove = b.SideToMove.Opponent()
	mover := b.SideToMove

	b.CastleRights = entry.CastleRights
	b.EnPassant = entry.EnPassant
	b.HalfmoveClock = entry.HalfmoveClock
	b.FullmoveClock = entry.FullmoveClock

	placed := m.Piece
	if m.Flags&Promotion != 0 {
		placed = m.Promo
	}
	b.removePiece(placed, m.To)
	b.placePiece(m.Piece, m.From)

	if m.Flags&EnPassant != 0 {
		capSq := m.To - 8
		if mover == Black {
			capSq = m.To + 8
		}
		b.placePiece(m.Capture, capSq)
	} else if m.Capture != NoPiece {
		b.placePiece(m.Capture, m.To)
	}

	if m.Flags&CastleMove != 0 {
		rookSq := rookCastleSquares[m.To]
		rook := WR
		if mover == Black {
			rook = BR
		}
		b.removePiece(rook, rookSq[1])
		b.placePiece(rook, rookSq[0])
	}

	b.refreshOccupancy()
}

// GenerateLegal fills list with every legal move from b: every
// pseudo-legal move from Generate that, once made, does not leave the
// mover's own king in check. Uses a scratch history stack so the
// caller's own search stack is left untouched.
func GenerateLegal(b *Board, list *MoveList) {
	var pseudo MoveList
	Generate(b, &pseudo)

	var stack [maxHistory]HistoryEntry
	ply := 0

	list.Count = 0
	for i := 0; i < pseudo.Count; i++ {
		m := pseudo.Moves[i]
		if Make(b, m, &stack, &ply) {
			Unmake(b, &stack, &ply)
			list.Push(m)
		}
	}
}
