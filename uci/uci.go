// Package uci implements the small subset of the Universal Chess
// Interface this engine speaks: position/go parsing and bestmove
// emission. It is a thin shim over engine: all chess logic lives there.
package uci

import (
	"strconv"
	"strings"

	"github.com/arnisz/picochess-go/engine"
)

// Out is the line-oriented output sink the core writes bestmove (and any
// other UCI output) through. The core performs no I/O itself.
type Out interface {
	Println(s string)
}

// Handler dispatches position/go command lines against an Engine and
// writes results to Out. It holds no state of its own beyond what the
// Engine already owns.
type Handler struct {
	Engine *engine.Engine
	Out    Out
}

// New constructs a Handler wired to e and out.
func New(e *engine.Engine, out Out) *Handler {
	return &Handler{Engine: e, Out: out}
}

// HandleLine parses and executes a single UCI command line. Unrecognized
// lines (uci/isready/ucinewcommand/quit, the transport's job per spec)
// are ignored here.
func (h *Handler) HandleLine(line string) {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "position"):
		h.handlePosition(line)
	case strings.HasPrefix(line, "go"):
		h.handleGo(line)
	}
}

// handlePosition implements:
//
//	position startpos [moves m1 m2 ...]
//	position fen <FEN> [moves m1 m2 ...]
func (h *Handler) handlePosition(line string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "position"))

	movesIdx := strings.Index(rest, " moves ")
	head := rest
	movesPart := ""
	if movesIdx >= 0 {
		head = rest[:movesIdx]
		movesPart = strings.TrimSpace(rest[movesIdx+len(" moves "):])
	} else if rest == "moves" {
		head = ""
	}
	head = strings.TrimSpace(head)

	switch {
	case strings.HasPrefix(head, "startpos"):
		h.Engine.Board.StartPosition()
	case strings.HasPrefix(head, "fen"):
		fen := strings.TrimSpace(strings.TrimPrefix(head, "fen"))
		if err := h.Engine.Board.LoadFEN(fen); err != nil {
			log.Warningf("position fen: %v", err)
			return
		}
	default:
		return
	}

	if movesPart == "" {
		return
	}
	for _, tok := range strings.Fields(movesPart) {
		h.applyMoveToken(tok)
	}
}

// applyMoveToken parses a long-algebraic move token (e.g. "e2e4",
// "e7e8q") and, if it matches a currently legal move's from/to squares,
// plays it. Malformed or unmatched tokens are logged and skipped rather
// than indexed into, per spec's IllegalMove handling.
func (h *Handler) applyMoveToken(tok string) {
	from, to, ok := parseSquarePair(tok)
	if !ok {
		log.Warningf("moves: malformed token %q", tok)
		return
	}

	var list engine.MoveList
	engine.GenerateLegal(&h.Engine.Board, &list)
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.From == from && m.To == to {
			var stack [engine.MaxHistory]engine.HistoryEntry
			ply := 0
			engine.Make(&h.Engine.Board, m, &stack, &ply)
			return
		}
	}
	log.Warningf("moves: %q does not match any legal move", tok)
}

// parseSquarePair parses the first four characters of a long-algebraic
// move token into from/to squares, validating that both are within
// a..h/1..8 before indexing into anything. Returns ok=false on any
// malformed input instead of reading out of range.
func parseSquarePair(tok string) (from, to engine.Square, ok bool) {
	if len(tok) < 4 {
		return 0, 0, false
	}
	f1, r1, f2, r2 := tok[0], tok[1], tok[2], tok[3]
	if f1 < 'a' || f1 > 'h' || f2 < 'a' || f2 > 'h' {
		return 0, 0, false
	}
	if r1 < '1' || r1 > '8' || r2 < '1' || r2 > '8' {
		return 0, 0, false
	}
	from = engine.Square(int(r1-'1')*8 + int(f1-'a'))
	to = engine.Square(int(r2-'1')*8 + int(f2-'a'))
	return from, to, true
}

// handleGo implements:
//
//	go depth N
//	go [wtime T] [btime T] [movestogo K]
func (h *Handler) handleGo(line string) {
	fields := strings.Fields(line)

	if d, ok := extractInt(fields, "depth"); ok && d > 0 {
		best := h.Engine.ThinkDepth(d)
		h.Out.Println("bestmove " + best.String())
		return
	}

	ms := computeMoveTime(fields, h.Engine.Board.SideToMove, h.Engine.Config())
	best := h.Engine.ThinkTime(uint64(ms))
	h.Out.Println("bestmove " + best.String())
}

// extractInt finds "<key> <value>" among fields and parses value as an
// integer.
func extractInt(fields []string, key string) (int, bool) {
	for i, f := range fields {
		if f == key && i+1 < len(fields) {
			n, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}

// computeMoveTime derives a per-move millisecond budget from wtime/btime
// and movestogo: the side to move's clock divided by movestogo (or
// cfg.MovesToGoDivisor if absent), floored at cfg.MinMoveTimeMs. If the
// side to move's own clock is absent or not positive, cfg.DefaultMoveTimeMs
// is used, whatever the other side's clock says.
func computeMoveTime(fields []string, side engine.Side, cfg engine.Config) int {
	wtime, haveW := extractInt(fields, "wtime")
	btime, haveB := extractInt(fields, "btime")
	movesToGo, _ := extractInt(fields, "movestogo")

	var available int
	var have bool
	if side == engine.White {
		available, have = wtime, haveW
	} else {
		available, have = btime, haveB
	}
	if !have || available <= 0 {
		return cfg.DefaultMoveTimeMs
	}

	if movesToGo > 0 {
		available /= movesToGo
	} else {
		available /= cfg.MovesToGoDivisor
	}
	if available < cfg.MinMoveTimeMs {
		available = cfg.MinMoveTimeMs
	}
	return available
}
