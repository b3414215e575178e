// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/minicheckers/engine"
	"github.com/jason-s-yu/minicheckers/engine/agent"
)

// Snapshot is a read-only view of a session for the presentation layer.
type Snapshot struct {
	GameID       uuid.UUID       `json:"gameId"`
	Board        []string        `json:"board"` // One string per row, see engine.Cell.Symbol.
	Turn         string          `json:"turn"`
	Difficulty   string          `json:"difficulty"`
	Outcome      string          `json:"outcome"`
	GameOver     bool            `json:"gameOver"`
	Moves        int             `json:"moves"`
	MachineTurns int             `json:"machineTurns"`
	LastStats    agent.Stats     `json:"lastStats"`
	HumanActions []engine.Action `json:"humanActions,omitempty"` // Populated only on the human's turn.
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() Snapshot {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.snapshot()
}

// snapshot builds a Snapshot. Assumes lock is held by caller.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		GameID:       s.ID,
		Board:        s.Board.Rows(),
		Turn:         s.Turn.String(),
		Difficulty:   s.Rules.Difficulty.String(),
		Outcome:      s.Outcome.String(),
		GameOver:     s.Outcome != engine.Ongoing,
		Moves:        len(s.History),
		MachineTurns: s.MachineTurns,
		LastStats:    s.LastStats,
	}
	if !snap.GameOver && s.started && s.Turn == humanSide {
		snap.HumanActions = s.Board.ForcedActions(humanSide)
	}
	return snap
}
