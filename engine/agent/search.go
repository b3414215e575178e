// Package agent implements the machine player: a depth-limited minimax search
// with alpha-beta pruning over engine boards.
//
// The machine is always the maximizing side. Each ChooseMachineMove call owns
// its own search context, so a Searcher may be reused across turns and games.
package agent

import (
	"time"

	"github.com/jason-s-yu/minicheckers/engine"
)

// Bounds of the running value before any child has been folded in. They lie
// outside the utility range so the first child always replaces them.
const (
	negInf = -10000
	posInf = 10000
)

// Result is the outcome of one machine turn.
type Result struct {
	// Board is the position after the machine's move. When Passed is set it is
	// the input board with the machine's pieces frozen; when Over is set it is
	// the input board unchanged.
	Board   engine.Board
	Action  engine.Action
	Passed  bool // the machine had no legal action this turn
	Over    bool // the input board was already decided
	Score   int  // backed-up value of the root
	Stats   Stats
	Elapsed time.Duration
}

// Searcher chooses machine moves under a fixed set of rules.
type Searcher struct {
	rules engine.Rules
}

// NewSearcher returns a Searcher for r. A non-positive cutoff depth is
// replaced by engine.DefaultCutoffDepth.
func NewSearcher(r engine.Rules) *Searcher {
	if r.CutoffDepth < 1 {
		r.CutoffDepth = engine.DefaultCutoffDepth
	}
	return &Searcher{rules: r}
}

// Rules returns the rules the searcher was built with.
func (s *Searcher) Rules() engine.Rules { return s.rules }

// ChooseMachineMove searches b to the cutoff depth and returns the chosen
// move applied to a copy of b. b itself is never modified.
func (s *Searcher) ChooseMachineMove(b engine.Board) Result {
	start := time.Now()

	if v := engine.TerminalUtility(b); v.Decided {
		return Result{Board: b, Over: true, Score: v.Score, Stats: Stats{Nodes: 1}, Elapsed: time.Since(start)}
	}

	c := &search{difficulty: s.rules.Difficulty, cutoff: s.rules.CutoffDepth}
	score := c.maxValue(b, engine.OpponentWinScore, engine.MachineWinScore, 0)

	res := Result{Score: score, Stats: c.stats}
	if c.passed {
		res.Passed = true
		res.Board = engine.FreezeSide(b, engine.Machine)
	} else {
		res.Action = c.best
		res.Board = engine.Apply(b, engine.Machine, c.best.From, c.best.To)
	}
	res.Elapsed = time.Since(start)
	return res
}

// search is the per-invocation context threaded through the recursion.
type search struct {
	difficulty engine.Difficulty
	cutoff     int
	stats      Stats

	best   engine.Action // root action with the highest value so far
	passed bool          // root had no legal action
}

// maxValue scores b with the machine to move.
func (c *search) maxValue(b engine.Board, alpha, beta, ply int) int {
	c.stats.visit(ply)

	if v := engine.TerminalUtility(b); v.Decided {
		return v.Score
	}
	if ply >= c.cutoff {
		return engine.Evaluate(b, engine.Machine, c.difficulty)
	}

	acts := b.LegalActions(engine.Machine)
	if len(acts) == 0 {
		if ply == 0 {
			c.passed = true
			return engine.DrawScore
		}
		return c.minValue(engine.FreezeSide(b, engine.Machine), alpha, beta, ply+1)
	}

	v := negInf
	for _, a := range engine.FilterJumps(acts) {
		child := engine.Apply(b, engine.Machine, a.From, a.To)
		cv := c.minValue(child, alpha, beta, ply+1)
		if ply == 0 && cv > v {
			c.best = a
		}
		v = max(v, cv)
		if v >= beta {
			c.stats.MaxPrunes++
			return v
		}
		alpha = max(alpha, v)
	}
	return v
}

// minValue scores b with the opponent to move.
func (c *search) minValue(b engine.Board, alpha, beta, ply int) int {
	c.stats.visit(ply)

	if v := engine.TerminalUtility(b); v.Decided {
		return v.Score
	}
	if ply >= c.cutoff {
		return engine.Evaluate(b, engine.Machine, c.difficulty)
	}

	acts := b.LegalActions(engine.Opponent)
	if len(acts) == 0 {
		return c.maxValue(engine.FreezeSide(b, engine.Opponent), alpha, beta, ply+1)
	}

	v := posInf
	for _, a := range engine.FilterJumps(acts) {
		child := engine.Apply(b, engine.Opponent, a.From, a.To)
		v = min(v, c.maxValue(child, alpha, beta, ply+1))
		if v <= alpha {
			c.stats.MinPrunes++
			return v
		}
		beta = min(beta, v)
	}
	return v
}
