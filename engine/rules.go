package engine

import (
	"fmt"
	"strings"
)

// DefaultCutoffDepth bounds the search so a full move completes within a few
// seconds on the opening position.
const DefaultCutoffDepth = 23

// Difficulty selects the evaluation formula used at cutoff nodes.
type Difficulty uint8

const (
	Easy   Difficulty = iota // advancement race
	Medium                   // material
	Hard                     // material plus mobility
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", uint8(d))
}

// ParseDifficulty accepts the names returned by String, case-insensitively,
// as well as the level numbers 1–3.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// Rules holds the settings fixed before the first move of a game.
type Rules struct {
	Difficulty  Difficulty
	CutoffDepth int  // ply at which the search falls back to Evaluate
	FirstMover  Side // side that makes the first move
}

// DefaultRules returns easy difficulty, the default cutoff and the opponent
// moving first.
func DefaultRules() Rules {
	return Rules{
		Difficulty:  Easy,
		CutoffDepth: DefaultCutoffDepth,
		FirstMover:  Opponent,
	}
}

// Validate reports settings the search cannot run with.
func (r Rules) Validate() error {
	if r.Difficulty > Hard {
		return fmt.Errorf("unknown difficulty %d", r.Difficulty)
	}
	if r.CutoffDepth < 1 {
		return fmt.Errorf("cutoff depth must be positive, got %d", r.CutoffDepth)
	}
	if r.FirstMover > Opponent {
		return fmt.Errorf("unknown first mover %d", r.FirstMover)
	}
	return nil
}
