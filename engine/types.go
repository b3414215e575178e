package engine

import "fmt"

// Side identifies one of the two players.
type Side uint8

const (
	Machine  Side = 0 // moves toward increasing row, starts on rows 0–1
	Opponent Side = 1 // moves toward decreasing row, starts on rows 4–5
)

// Other returns the side that moves after s.
func (s Side) Other() Side { return s ^ 1 }

// Forward returns the row delta of a single forward step for s.
func (s Side) Forward() int {
	if s == Machine {
		return 1
	}
	return -1
}

// FarRow returns the row on which a piece of s becomes frozen.
func (s Side) FarRow() int {
	if s == Machine {
		return BoardSize - 1
	}
	return 0
}

func (s Side) String() string {
	switch s {
	case Machine:
		return "machine"
	case Opponent:
		return "opponent"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// PieceState is the tag carried by an occupied cell.
type PieceState uint8

const (
	Active PieceState = 0 // may be offered actions by the move generator
	Frozen PieceState = 1 // reached the far row, or its side was stuck
)

// Cell is a packed uint8: upper 4 bits = owner+1 (0 = empty), bit 0 = state.
type Cell uint8

// Cell constants for every occupied variant.
const (
	Empty          Cell = 0x00
	MachinePiece   Cell = 0x10
	MachineFrozen  Cell = 0x11
	OpponentPiece  Cell = 0x20
	OpponentFrozen Cell = 0x21
)

// NewPiece constructs the cell for a piece of side s in state st.
func NewPiece(s Side, st PieceState) Cell {
	return Cell((uint8(s)+1)<<4 | uint8(st)&1)
}

// IsEmpty reports whether no piece occupies the cell.
func (c Cell) IsEmpty() bool { return c == Empty }

// Owner returns the side holding the cell. Only valid when !IsEmpty().
func (c Cell) Owner() Side { return Side(uint8(c)>>4 - 1) }

// BelongsTo reports whether the cell holds a piece (active or frozen) of s.
func (c Cell) BelongsTo(s Side) bool { return !c.IsEmpty() && c.Owner() == s }

// State returns the piece tag. Empty cells report Active.
func (c Cell) State() PieceState { return PieceState(uint8(c) & 1) }

// IsFrozen reports whether the cell holds a frozen piece.
func (c Cell) IsFrozen() bool { return !c.IsEmpty() && c.State() == Frozen }

// IsActive reports whether the cell holds a movable piece.
func (c Cell) IsActive() bool { return !c.IsEmpty() && c.State() == Active }

// Frozen returns the frozen variant of an occupied cell.
func (c Cell) Frozen() Cell {
	if c.IsEmpty() {
		return c
	}
	return c | Cell(Frozen)
}

// Active returns the movable variant of an occupied cell.
func (c Cell) Active() Cell { return c &^ Cell(Frozen) }

// Symbol returns the single-letter rendering used by Board.String.
//   - C: machine piece, L: frozen machine piece
//   - H: opponent piece, E: frozen opponent piece
//   - -: empty
func (c Cell) Symbol() byte {
	switch c {
	case MachinePiece:
		return 'C'
	case MachineFrozen:
		return 'L'
	case OpponentPiece:
		return 'H'
	case OpponentFrozen:
		return 'E'
	}
	return '-'
}

// Position identifies a cell by 0-indexed row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{row, col}.
func Pos(row, col int) Position { return Position{Row: row, Col: col} }

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Dark reports whether p is a playable square (row parity differs from column parity).
func (p Position) Dark() bool { return p.Row%2 != p.Col%2 }

// Offset returns p shifted by dr rows and dc columns.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string { return fmt.Sprintf("%d,%d", p.Row, p.Col) }

// Action moves the piece at From to To. Jump actions capture the piece between them.
type Action struct {
	From Position `json:"from"`
	To   Position `json:"to"`
	Jump bool     `json:"jump"`
}

func (a Action) String() string {
	sep := "-"
	if a.Jump {
		sep = "x"
	}
	return a.From.String() + sep + a.To.String()
}

// Outcome is the state of a game as seen by the terminal oracle.
type Outcome uint8

const (
	Ongoing Outcome = iota
	MachineWins
	OpponentWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case MachineWins:
		return "machine_wins"
	case OpponentWins:
		return "opponent_wins"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}
