package engine

import "testing"

func TestClearResetsToFENDefaults(t *testing.T) {
	var b Board
	b.StartPosition()
	b.Clear()

	if b.EnPassant != NoSquare {
		t.Fatalf("expected NoSquare en passant after Clear, got %d", b.EnPassant)
	}
	if b.FullmoveClock != 1 {
		t.Fatalf("expected fullmove 1 after Clear, got %d", b.FullmoveClock)
	}
	if b.CastleRights != 0 {
		t.Fatalf("expected no castle rights after Clear")
	}
	for p := WP; p <= BK; p++ {
		if b.pieces[p] != 0 {
			t.Fatalf("expected empty piece bitboards after Clear")
		}
	}
}

func TestStartPositionPieceCounts(t *testing.T) {
	var b Board
	b.StartPosition()

	if popCount(b.Occupancy(Both)) != 32 {
		t.Fatalf("expected 32 occupied squares, got %d", popCount(b.Occupancy(Both)))
	}
	if popCount(b.pieces[WK]) != 1 || popCount(b.pieces[BK]) != 1 {
		t.Fatalf("expected exactly one king per side")
	}
	if b.PieceAt(4) != WK {
		t.Fatalf("expected white king on e1")
	}
	if b.PieceAt(60) != BK {
		t.Fatalf("expected black king on e8")
	}
}

func TestPiecesArePairwiseDisjoint(t *testing.T) {
	var b Board
	b.StartPosition()

	var seen Bitboard
	for p := WP; p <= BK; p++ {
		if seen&b.pieces[p] != 0 {
			t.Fatalf("piece bitboard %d overlaps an earlier one", p)
		}
		seen |= b.pieces[p]
	}
}

func TestOccupancyInvariant(t *testing.T) {
	var b Board
	b.StartPosition()

	if b.Occupancy(White)|b.Occupancy(Black) != b.Occupancy(Both) {
		t.Fatalf("white | black must equal both")
	}
	if b.Occupancy(White)&b.Occupancy(Black) != 0 {
		t.Fatalf("white and black occupancy must be disjoint")
	}
}

func TestSquareAttackedStartPosition(t *testing.T) {
	var b Board
	b.StartPosition()

	// d3 is attacked by the white c2 and e2 pawns.
	if !b.SquareAttacked(19, White) {
		t.Fatalf("expected d3 attacked by white in the start position")
	}
	// d4 is not attacked by anything in the start position.
	if b.SquareAttacked(27, White) || b.SquareAttacked(27, Black) {
		t.Fatalf("expected d4 unattacked in the start position")
	}
}

func TestInCheckStartPosition(t *testing.T) {
	var b Board
	b.StartPosition()

	if b.InCheck(White) || b.InCheck(Black) {
		t.Fatalf("neither side is in check in the start position")
	}
}

func TestEqual(t *testing.T) {
	var a, b Board
	a.StartPosition()
	b.StartPosition()
	if !a.Equal(&b) {
		t.Fatalf("two start positions must compare equal")
	}

	b.HalfmoveClock = 5
	if a.Equal(&b) {
		t.Fatalf("differing halfmove clocks must not compare equal")
	}
}
