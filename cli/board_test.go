package cli

import (
	"strings"
	"testing"

	"github.com/arnisz/picochess-go/engine"
)

func TestFormatBoardContainsRankLabelsAndFiles(t *testing.T) {
	var b engine.Board
	b.StartPosition()

	out := FormatBoard(&b)
	if !strings.Contains(out, "a  b  c  d  e  f  g  h") {
		t.Fatalf("expected file labels in output:\n%s", out)
	}
	if !strings.Contains(out, "white to move") {
		t.Fatalf("expected side-to-move summary line:\n%s", out)
	}
	if !strings.Contains(out, "castling KQkq") {
		t.Fatalf("expected full castling rights in the start position:\n%s", out)
	}
}

func TestFormatBoardBlackToMove(t *testing.T) {
	var b engine.Board
	if err := b.LoadFEN("4k3/8/8/8/8/8/4Q3/4K3 b - - 0 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := FormatBoard(&b)
	if !strings.Contains(out, "black to move") {
		t.Fatalf("expected black-to-move summary line:\n%s", out)
	}
	if !strings.Contains(out, "castling -") {
		t.Fatalf("expected no castling rights reported:\n%s", out)
	}
}
