package engine

import "testing"

func TestLoadFENStartPosition(t *testing.T) {
	var b Board
	if err := b.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want Board
	want.StartPosition()
	if !b.Equal(&want) {
		t.Fatalf("parsed start position does not match StartPosition()")
	}
}

func TestLoadFENRoundTrip(t *testing.T) {
	testcases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/pppqbppp/2np1n2/4p3/4P3/2NP1N2/PPPQBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}

	for _, fen := range testcases {
		var b Board
		if err := b.LoadFEN(fen); err != nil {
			t.Fatalf("%s: unexpected error: %v", fen, err)
		}
		if got := b.String(); got != fen {
			t.Fatalf("round-trip mismatch: want %q got %q", fen, got)
		}
	}
}

func TestLoadFENRejectsShortString(t *testing.T) {
	var b Board
	b.StartPosition()
	before := b

	err := b.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if err == nil {
		t.Fatalf("expected an error for a FEN missing required fields")
	}
	if !b.Equal(&before) {
		t.Fatalf("board must be left unmodified when LoadFEN fails")
	}
}

func TestLoadFENRejectsUnknownPieceLetter(t *testing.T) {
	var b Board
	err := b.LoadFEN("rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err == nil {
		t.Fatalf("expected an error for an unknown piece letter")
	}
}

func TestLoadFENRejectsBadRankSum(t *testing.T) {
	var b Board
	err := b.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err == nil {
		t.Fatalf("expected an error when a rank does not sum to 8 files")
	}
}

func TestLoadFENRejectsBadSideToMove(t *testing.T) {
	var b Board
	err := b.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	if err == nil {
		t.Fatalf("expected an error for a malformed active-color field")
	}
}

func TestLoadFENOptionalTrailingCounters(t *testing.T) {
	var b Board
	if err := b.LoadFEN("4k3/8/8/8/8/8/4Q3/4K3 w - -"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.HalfmoveClock != 0 || b.FullmoveClock != 1 {
		t.Fatalf("expected default halfmove/fullmove when omitted, got %d/%d", b.HalfmoveClock, b.FullmoveClock)
	}
}
