package engine

import "testing"

func TestGenerateStartPositionCount(t *testing.T) {
	var b Board
	b.StartPosition()

	var list MoveList
	Generate(&b, &list)
	if list.Count != 20 {
		t.Fatalf("expected 20 pseudo-legal moves from the start position, got %d", list.Count)
	}
}

func TestGenerateEnPassant(t *testing.T) {
	var b Board
	if err := b.LoadFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var list MoveList
	Generate(&b, &list)

	found := false
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.From == 36 && m.To == 43 { // e5 -> d6
			if m.Flags&EnPassant == 0 {
				t.Fatalf("expected e5d6 to carry the EN_PASSANT flag")
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected e5d6 en-passant capture in the move list")
	}
}

func TestGenerateCastlingBothSides(t *testing.T) {
	var b Board
	if err := b.LoadFEN("r3k2r/pppqbppp/2np1n2/4p3/4P3/2NP1N2/PPPQBPPP/R3K2R w KQkq - 0 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var list MoveList
	Generate(&b, &list)

	var haveKingSide, haveQueenSide bool
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.Flags&CastleMove == 0 {
			continue
		}
		switch m.To {
		case 6:
			haveKingSide = true
		case 2:
			haveQueenSide = true
		}
	}
	if !haveKingSide {
		t.Fatalf("expected e1g1 castling move to be generated")
	}
	if !haveQueenSide {
		t.Fatalf("expected e1c1 castling move to be generated")
	}
}

func TestGeneratePromotionIsQueenOnly(t *testing.T) {
	var b Board
	if err := b.LoadFEN("8/4P3/8/8/8/8/8/4K2k w - - 0 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var list MoveList
	Generate(&b, &list)

	promos := 0
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.Flags&Promotion != 0 {
			promos++
			if m.Promo != WQ {
				t.Fatalf("expected promotion piece to always be the queen, got %d", m.Promo)
			}
		}
	}
	if promos != 1 {
		t.Fatalf("expected exactly one promotion move (queen only), got %d", promos)
	}
}

func TestGenerateDoublePush(t *testing.T) {
	var b Board
	b.StartPosition()

	var list MoveList
	Generate(&b, &list)

	found := false
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.From == 11 && m.To == 27 { // d2 -> d4
			if m.Flags&DoublePush == 0 {
				t.Fatalf("expected d2d4 to carry the DOUBLE_PUSH flag")
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected d2d4 double push in the move list")
	}
}
