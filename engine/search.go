// search.go implements negamax with fail-hard alpha-beta pruning, a
// captures-only quiescence extension, and an iterative-deepening driver
// bounded by either a fixed depth or a wall-clock budget.
package engine

// Clock is the monotonic millisecond clock the engine polls for time
// control. Callers inject a real implementation (cmd/picochess wraps
// time.Now); tests inject a deterministic one.
type Clock interface {
	NowMs() uint64
}

// Engine bundles everything a search needs: the position being searched,
// its own history stack and search-stop flag, the active Clock, and the
// tunables from Config. None of this is process-wide state, so two
// Engines never interfere with each other and each is safe to use from
// its own single goroutine (spec's concurrency model assumes exactly
// that: no locking because nothing is shared).
type Engine struct {
	Board Board

	stack [maxHistory]HistoryEntry
	ply   int

	clock      Clock
	stopTime   uint64
	stopSearch bool
	nodes      int

	cfg Config
}

// NewEngine constructs an Engine at the standard starting position using
// DefaultConfig. Callers that want custom tunables call SetConfig
// afterward; callers that want a different starting position call
// Board.LoadFEN or Board.StartPosition directly.
func NewEngine(clock Clock) *Engine {
	e := &Engine{clock: clock, cfg: DefaultConfig()}
	e.Board.StartPosition()
	return e
}

// SetConfig replaces the engine's tunables.
func (e *Engine) SetConfig(cfg Config) { e.cfg = cfg }

// Config returns the engine's current tunables.
func (e *Engine) Config() Config { return e.cfg }

// timeUp polls the clock against the latching stop flag. Once stopSearch
// is set it stays set until the next ThinkDepth/ThinkTime call clears it;
// every search/quiesce frame checks this before doing any other work.
func (e *Engine) timeUp() bool {
	if e.stopSearch {
		return true
	}
	if e.clock.NowMs() >= e.stopTime {
		e.stopSearch = true
		return true
	}
	return false
}

// quiesce extends the search along capturing lines only, using a
// stand-pat evaluation as the lower bound so that a side not forced to
// capture doesn't have to.
func (e *Engine) quiesce(alpha, beta int) int {
	e.nodes++
	if e.timeUp() {
		return alpha
	}

	stand := Evaluate(&e.Board, &e.cfg)
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	var list MoveList
	Generate(&e.Board, &list)
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.Flags&Capture == 0 {
			continue
		}
		if !Make(&e.Board, m, &e.stack, &e.ply) {
			continue
		}
		score := -e.quiesce(-beta, -alpha)
		Unmake(&e.Board, &e.stack, &e.ply)

		if e.stopSearch {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// search is the negamax driver. depth==0 hands off to quiesce; a node
// with no legal move is scored as mate (if the side to move is in check)
// or stalemate (otherwise) rather than recursing further.
func (e *Engine) search(depth, alpha, beta int) int {
	e.nodes++
	if e.timeUp() {
		return alpha
	}
	if depth == 0 {
		return e.quiesce(alpha, beta)
	}

	var list MoveList
	Generate(&e.Board, &list)

	played := 0
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if !Make(&e.Board, m, &e.stack, &e.ply) {
			continue
		}
		played++
		score := -e.search(depth-1, -beta, -alpha)
		Unmake(&e.Board, &e.stack, &e.ply)

		if e.stopSearch {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	if played == 0 {
		if e.Board.InCheck(e.Board.SideToMove) {
			return -Mate + depth
		}
		return 0
	}
	return alpha
}

// ThinkDepth searches depths 1..depth in turn. bestScore is not reset
// between iterations: a later iteration replaces the best move only with
// a root move whose score is strictly higher than the best score seen in
// any earlier iteration. If no move ever
// improved bestScore (every root move was illegal, or the clock never
// reached depth 1 — it can't, stopTime is effectively infinite here) it
// falls back to the first generated move.
func (e *Engine) ThinkDepth(depth int) Move {
	e.stopSearch = false
	e.stopTime = e.clock.NowMs() + 1_000_000_000
	e.nodes = 0

	var list MoveList
	Generate(&e.Board, &list)

	var best Move
	haveBest := false
	bestScore := -Mate

	for d := 1; d <= depth && !e.stopSearch; d++ {
		for i := 0; i < list.Count && !e.stopSearch; i++ {
			m := list.Moves[i]
			if !Make(&e.Board, m, &e.stack, &e.ply) {
				continue
			}
			sc := -e.search(d-1, -Mate, Mate)
			Unmake(&e.Board, &e.stack, &e.ply)

			if e.stopSearch {
				break
			}
			if sc > bestScore {
				bestScore = sc
				best = m
				haveBest = true
			}
		}
		if !e.stopSearch {
			log.Debugf("depth=%d score=%d best=%s nodes=%d", d, bestScore, best, e.nodes)
		}
	}

	if !haveBest && list.Count > 0 {
		best = list.Moves[0]
	}
	return best
}

// ThinkTime iterates depths 1, 2, 3, ... until the clock (set to now +
// ms) expires, returning the highest-scoring root move seen across all
// iterations, including moves scored in an iteration the clock cut
// short; as in ThinkDepth, bestScore is not reset between iterations.
// Unlike ThinkDepth, the default best move is assigned up
// front (the first generated move) because a time budget might expire
// before depth 1 even completes.
func (e *Engine) ThinkTime(ms uint64) Move {
	e.stopSearch = false
	e.stopTime = e.clock.NowMs() + ms
	e.nodes = 0

	var list MoveList
	Generate(&e.Board, &list)

	var best Move
	if list.Count > 0 {
		best = list.Moves[0]
	}
	bestScore := -Mate

	for d := 1; !e.stopSearch; d++ {
		for i := 0; i < list.Count && !e.stopSearch; i++ {
			m := list.Moves[i]
			if !Make(&e.Board, m, &e.stack, &e.ply) {
				continue
			}
			sc := -e.search(d-1, -Mate, Mate)
			Unmake(&e.Board, &e.stack, &e.ply)

			if e.stopSearch {
				break
			}
			if sc > bestScore {
				bestScore = sc
				best = m
			}
		}
		if !e.stopSearch {
			log.Debugf("depth=%d score=%d best=%s nodes=%d", d, bestScore, best, e.nodes)
		}
	}
	return best
}
