// internal/game/game.go
package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jason-s-yu/minicheckers/engine"
	"github.com/jason-s-yu/minicheckers/engine/agent"
	"github.com/sirupsen/logrus"
)

// The human player always plays engine.Opponent.
const humanSide = engine.Opponent

var (
	ErrGameOver         = errors.New("game is over")
	ErrNotYourTurn      = errors.New("not the human player's turn")
	ErrDifficultyLocked = errors.New("difficulty is fixed once the machine has moved")
)

// GameEventType represents the type of a session event.
type GameEventType string

// Constants defining the GameEvent types emitted by a Session.
const (
	EventHumanMove         GameEventType = "human_move"
	EventHumanPass         GameEventType = "human_pass"   // Human had no legal action; pieces frozen.
	EventMachineMove       GameEventType = "machine_move"
	EventMachinePass       GameEventType = "machine_pass" // Machine had no legal action; pieces frozen.
	EventPiecesReactivated GameEventType = "pieces_reactivated"
	EventGameEnd           GameEventType = "game_end"
)

// GameEvent is the structure handed to BroadcastFn for every state change.
type GameEvent struct {
	Type      GameEventType     `json:"type"`
	Action    *engine.Action    `json:"action,omitempty"`
	Stats     *agent.Stats      `json:"stats,omitempty"`     // Search statistics for machine turns.
	Positions []engine.Position `json:"positions,omitempty"` // Frozen or reactivated cells.
	Outcome   string            `json:"outcome,omitempty"`   // Set on game_end.
	State     *Snapshot         `json:"state,omitempty"`
}

// MoveRecord is one entry of the session history.
type MoveRecord struct {
	Side   engine.Side   `json:"side"`
	Action engine.Action `json:"action"`
	Passed bool          `json:"passed"`
}

// TurnResult describes one machine turn played by the session.
type TurnResult struct {
	Action      engine.Action
	Passed      bool
	Score       int
	Stats       agent.Stats
	Reactivated []engine.Position
}

// Session is a single game between a human and the machine player. The
// presentation layer drives it with SubmitHumanMove; machine replies are
// played synchronously before the call returns.
type Session struct {
	ID    uuid.UUID
	Rules engine.Rules

	Board   engine.Board   // Live board, mutated only by committed moves and reactivation.
	Turn    engine.Side    // Side expected to act next.
	Outcome engine.Outcome // Ongoing until the terminal oracle decides the game.
	History []MoveRecord

	MachineTurns int         // Number of searches run, including passes.
	LastStats    agent.Stats // Statistics of the most recent search.

	searcher *agent.Searcher
	started  bool
	log      *logrus.Entry

	Mu sync.Mutex

	BroadcastFn func(ev GameEvent) // Receives every event; may be nil.
}

// NewSession creates a session on the initial board. A nil logger falls back
// to the logrus standard logger.
func NewSession(rules engine.Rules, logger *logrus.Logger) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.New()
	s := &Session{
		ID:       id,
		Rules:    rules,
		Board:    engine.InitialBoard(),
		Turn:     rules.FirstMover,
		Outcome:  engine.Ongoing,
		searcher: agent.NewSearcher(rules),
		log: logger.WithFields(logrus.Fields{
			"game":       id.String(),
			"difficulty": rules.Difficulty.String(),
		}),
	}
	return s, nil
}

// Start begins play. If the machine moves first its opening move is played
// before Start returns.
func (s *Session) Start() []TurnResult {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.started {
		s.log.Warn("Start called twice, ignoring")
		return nil
	}
	s.started = true
	s.log.WithFields(logrus.Fields{
		"first":  s.Turn.String(),
		"cutoff": s.Rules.CutoffDepth,
	}).Info("game started")
	return s.advance()
}

// SetDifficulty changes the evaluation formula. Only allowed before the
// machine's first search.
func (s *Session) SetDifficulty(d engine.Difficulty) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.MachineTurns > 0 {
		return ErrDifficultyLocked
	}
	rules := s.Rules
	rules.Difficulty = d
	if err := rules.Validate(); err != nil {
		return err
	}
	s.Rules = rules
	s.searcher = agent.NewSearcher(rules)
	s.log = s.log.WithField("difficulty", d.String())
	return nil
}

// HumanActions returns the moves the human may choose from, with the
// mandatory-jump rule applied. Empty when it is not the human's turn.
func (s *Session) HumanActions() []engine.Action {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.Outcome != engine.Ongoing || s.Turn != humanSide {
		return nil
	}
	return s.Board.ForcedActions(humanSide)
}

// SubmitHumanMove validates and commits the human's move, then plays machine
// turns until the human is to move again or the game ends. Illegal moves are
// rejected with an error wrapping engine.ErrInvalidAction and leave the
// session unchanged.
func (s *Session) SubmitHumanMove(from, to engine.Position) ([]TurnResult, error) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.Outcome != engine.Ongoing {
		return nil, ErrGameOver
	}
	if !s.started || s.Turn != humanSide {
		return nil, ErrNotYourTurn
	}

	a := engine.Action{From: from, To: to, Jump: to.Row-from.Row == 2 || from.Row-to.Row == 2}
	next, err := engine.ApplyAction(s.Board, humanSide, a)
	if err != nil {
		s.log.WithError(err).WithField("move", a.String()).Debug("human move rejected")
		return nil, err
	}

	s.Board = next
	s.History = append(s.History, MoveRecord{Side: humanSide, Action: a})
	s.log.WithField("move", a.String()).Info("human moved")
	s.fireEvent(GameEvent{Type: EventHumanMove, Action: &a})

	s.Turn = engine.Machine
	return s.advance(), nil
}

// advance runs the turn loop until the human must act or the game is over.
// Assumes lock is held by caller.
func (s *Session) advance() []TurnResult {
	var results []TurnResult
	for !s.checkEnd() {
		if s.Turn == humanSide {
			if s.Board.HasAction(humanSide) {
				break
			}
			s.passHuman()
			continue
		}
		results = append(results, s.playMachineTurn())
	}
	return results
}

// passHuman freezes the human's pieces when none of them can move and hands
// the turn to the machine. Assumes lock is held by caller.
func (s *Session) passHuman() {
	frozen := s.Board.MovablePieces(humanSide)
	s.Board = engine.FreezeSide(s.Board, humanSide)
	s.History = append(s.History, MoveRecord{Side: humanSide, Passed: true})
	s.log.WithField("frozen", len(frozen)).Info("human has no legal move, turn passes")
	s.fireEvent(GameEvent{Type: EventHumanPass, Positions: frozen})
	s.Turn = engine.Machine
}

// playMachineTurn runs one search, commits its result to the live board and
// reactivates any frozen pieces that regained a move. Assumes lock is held
// by caller.
func (s *Session) playMachineTurn() TurnResult {
	res := s.searcher.ChooseMachineMove(s.Board)
	s.MachineTurns++
	s.LastStats = res.Stats

	before := s.Board
	s.Board = res.Board
	turn := TurnResult{Action: res.Action, Passed: res.Passed, Score: res.Score, Stats: res.Stats}

	entry := s.log.WithFields(statsFields(s.MachineTurns, res))
	if res.Passed {
		frozen := newlyFrozen(before, s.Board)
		s.History = append(s.History, MoveRecord{Side: engine.Machine, Passed: true})
		entry.Info("machine has no legal move, turn passes")
		s.fireEvent(GameEvent{Type: EventMachinePass, Stats: &turn.Stats, Positions: frozen})
	} else {
		s.History = append(s.History, MoveRecord{Side: engine.Machine, Action: res.Action})
		entry.WithField("move", res.Action.String()).Info("machine moved")
		s.fireEvent(GameEvent{Type: EventMachineMove, Action: &turn.Action, Stats: &turn.Stats})
	}

	if next, changed := engine.Reactivate(s.Board); changed {
		turn.Reactivated = reactivated(s.Board, next)
		s.Board = next
		s.log.WithField("cells", positionsString(turn.Reactivated)).Debug("pieces reactivated")
		s.fireEvent(GameEvent{Type: EventPiecesReactivated, Positions: turn.Reactivated})
	}

	s.Turn = humanSide
	return turn
}

// checkEnd consults the terminal oracle and finalizes the game once it is
// decided. Assumes lock is held by caller.
func (s *Session) checkEnd() bool {
	if s.Outcome != engine.Ongoing {
		return true
	}
	v := engine.TerminalUtility(s.Board)
	if !v.Decided {
		return false
	}
	s.Outcome = v.Outcome
	s.log.WithFields(logrus.Fields{
		"outcome": v.Outcome.String(),
		"moves":   len(s.History),
	}).Info("game over")
	snap := s.snapshot()
	s.fireEvent(GameEvent{Type: EventGameEnd, Outcome: v.Outcome.String(), State: &snap})
	return true
}

// fireEvent hands ev to BroadcastFn. Assumes lock is held by caller.
func (s *Session) fireEvent(ev GameEvent) {
	if s.BroadcastFn == nil {
		s.log.WithField("event", string(ev.Type)).Trace("no BroadcastFn set, event dropped")
		return
	}
	s.BroadcastFn(ev)
}
