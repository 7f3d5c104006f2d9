// movegen.go generates pseudo-legal moves for the side to move: piece
// movement and blocker rules are respected, but a move may still leave
// the mover's own king in check — Make filters that out.

package engine

// Generate clears list and appends every pseudo-legal move available to
// b.SideToMove.
func Generate(b *Board, list *MoveList) {
	list.Count = 0

	genPawnMoves(b, list)
	genLeaperMoves(b, list, WN, knightAttacks[:])
	genSliderMoves(b, list, WB, bishopAttacks)
	genSliderMoves(b, list, WR, rookAttacks)
	genSliderMoves(b, list, WQ, queenAttacks)
	genKingMoves(b, list)
}

// pieceOf offsets a White piece constant by the side to move (White
// pieces are WP..WK = 0..5, Black BP..BK = 6..11, per the ordering in
// types.go).
func pieceOf(base Piece, side Side) Piece {
	return base + Piece(side)*6
}

func genPawnMoves(b *Board, list *MoveList) {
	side := b.SideToMove
	own := pieceOf(WP, side)
	pawns := b.pieces[own]
	occ := b.occupancy[Both]
	enemy := b.occupancy[side.Opponent()]

	dir := 8
	startRank := rank2
	promoRank := rank8
	if side == Black {
		dir = -8
		startRank = rank7
		promoRank = rank1
	}

	for pawns != 0 {
		from := popLSB(&pawns)
		fromBB := Bitboard(1) << uint(from)
		to := from + Square(dir)

		if to >= 0 && to < 64 && !test(occ, to) {
			if Bitboard(1)<<uint(to)&promoRank != 0 {
				list.Push(Move{From: from, To: to, Piece: own, Capture: NoPiece, Promo: pieceOf(WQ, side), Flags: Promotion})
			} else {
				list.Push(Move{From: from, To: to, Piece: own, Capture: NoPiece, Promo: NoPiece})
				dbl := from + Square(2*dir)
				if fromBB&startRank != 0 && !test(occ, dbl) {
					list.Push(Move{From: from, To: dbl, Piece: own, Capture: NoPiece, Promo: NoPiece, Flags: DoublePush})
				}
			}
		}

		attacks := pawnAttacks[side][from] & enemy
		for attacks != 0 {
			t := popLSB(&attacks)
			captured := b.PieceAt(t)
			if Bitboard(1)<<uint(t)&promoRank != 0 {
				list.Push(Move{From: from, To: t, Piece: own, Capture: captured, Promo: pieceOf(WQ, side), Flags: Capture | Promotion})
			} else {
				list.Push(Move{From: from, To: t, Piece: own, Capture: captured, Promo: NoPiece, Flags: Capture})
			}
		}

		if b.EnPassant != NoSquare && pawnAttacks[side][from]&(Bitboard(1)<<uint(b.EnPassant)) != 0 {
			capturedPawn := pieceOf(WP, side.Opponent())
			list.Push(Move{From: from, To: b.EnPassant, Piece: own, Capture: capturedPawn, Promo: NoPiece, Flags: EnPassant | Capture})
		}
	}
}

func genLeaperMoves(b *Board, list *MoveList, base Piece, table []Bitboard) {
	side := b.SideToMove
	own := pieceOf(base, side)
	pieces := b.pieces[own]
	notOwn := ^b.occupancy[side]

	for pieces != 0 {
		from := popLSB(&pieces)
		dests := table[from] & notOwn
		for dests != 0 {
			to := popLSB(&dests)
			captured := b.PieceAt(to)
			flags := MoveFlags(0)
			if captured != NoPiece {
				flags = Capture
			}
			list.Push(Move{From: from, To: to, Piece: own, Capture: captured, Promo: NoPiece, Flags: flags})
		}
	}
}

func genSliderMoves(b *Board, list *MoveList, base Piece, rayFunc func(Square, Bitboard) Bitboard) {
	side := b.SideToMove
	own := pieceOf(base, side)
	pieces := b.pieces[own]
	occ := b.occupancy[Both]
	notOwn := ^b.occupancy[side]

	for pieces != 0 {
		from := popLSB(&pieces)
		dests := rayFunc(from, occ) & notOwn
		for dests != 0 {
			to := popLSB(&dests)
			captured := b.PieceAt(to)
			flags := MoveFlags(0)
			if captured != NoPiece {
				flags = Capture
			}
			list.Push(Move{From: from, To: to, Piece: own, Capture: captured, Promo: NoPiece, Flags: flags})
		}
	}
}

func genKingMoves(b *Board, list *MoveList) {
	side := b.SideToMove
	own := pieceOf(WK, side)
	from := lsb(b.pieces[own])
	dests := kingAttacks[from] & ^b.occupancy[side]

	for dests != 0 {
		to := popLSB(&dests)
		captured := b.PieceAt(to)
		flags := MoveFlags(0)
		if captured != NoPiece {
			flags = Capture
		}
		list.Push(Move{From: from, To: to, Piece: own, Capture: captured, Promo: NoPiece, Flags: flags})
	}

	occ := b.occupancy[Both]
	opp := side.Opponent()

	if side == White {
		if b.CastleRights&WhiteKingSide != 0 &&
			!test(occ, 5) && !test(occ, 6) &&
			!b.SquareAttacked(4, opp) && !b.SquareAttacked(5, opp) && !b.SquareAttacked(6, opp) {
			list.Push(Move{From: 4, To: 6, Piece: own, Capture: NoPiece, Promo: NoPiece, Flags: CastleMove})
		}
		if b.CastleRights&WhiteQueenSide != 0 &&
			!test(occ, 1) && !test(occ, 2) && !test(occ, 3) &&
			!b.SquareAttacked(4, opp) && !b.SquareAttacked(3, opp) && !b.SquareAttacked(2, opp) {
			list.Push(Move{From: 4, To: 2, Piece: own, Capture: NoPiece, Promo: NoPiece, Flags: CastleMove})
		}
	} else {
		if b.CastleRights&BlackKingSide != 0 &&
			!test(occ, 61) && !test(occ, 62) &&
			!b.SquareAttacked(60, opp) && !b.SquareAttacked(61, opp) && !b.SquareAttacked(62, opp) {
			list.Push(Move{From: 60, To: 62, Piece: own, Capture: NoPiece, Promo: NoPiece, Flags: CastleMove})
		}
		if b.CastleRights&BlackQueenSide != 0 &&
			!test(occ, 57) && !test(occ, 58) && !test(occ, 59) &&
			!b.SquareAttacked(60, opp) && !b.SquareAttacked(59, opp) && !b.SquareAttacked(58, opp) {
			list.Push(Move{From: 60, To: 58, Piece: own, Capture: NoPiece, Promo: NoPiece, Flags: CastleMove})
		}
	}
}
