// engine_adapter.go: bridge between engine/agent results and session logs and events.
package game

import (
	"strings"

	"github.com/jason-s-yu/minicheckers/engine"
	"github.com/jason-s-yu/minicheckers/engine/agent"
	"github.com/sirupsen/logrus"
)

// statsFields returns the structured log fields for one machine search.
func statsFields(turn int, res agent.Result) logrus.Fields {
	return logrus.Fields{
		"turn":       turn,
		"score":      res.Score,
		"nodes":      res.Stats.Nodes,
		"max_depth":  res.Stats.MaxDepth,
		"max_prunes": res.Stats.MaxPrunes,
		"min_prunes": res.Stats.MinPrunes,
		"elapsed":    res.Elapsed.String(),
	}
}

// newlyFrozen returns the cells that hold an active piece in before and the
// frozen variant of the same piece in after.
func newlyFrozen(before, after engine.Board) []engine.Position {
	var out []engine.Position
	for _, p := range after.FrozenPieces() {
		if c := before.At(p); c.IsActive() && c.Frozen() == after.At(p) {
			out = append(out, p)
		}
	}
	return out
}

// reactivated returns the cells frozen in before and active in after.
func reactivated(before, after engine.Board) []engine.Position {
	var out []engine.Position
	for _, p := range before.FrozenPieces() {
		if after.At(p).IsActive() {
			out = append(out, p)
		}
	}
	return out
}

func positionsString(ps []engine.Position) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
