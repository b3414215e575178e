// Package engine implements the Mini-Checkers rules.
//
// Mini-Checkers is played on a 6×6 board. Pieces only move diagonally
// forward, every capture opportunity must be taken, and a piece that reaches
// the far row is frozen until the board around it changes enough to give it
// a legal action again.
//
// Board is a flat value type, so assigning it copies the whole grid. Every
// function in this package treats its board arguments as immutable and
// returns a new board instead of mutating the input.
package engine

const (
	BoardSize = 6
	HomeRows  = 2 // rows filled with pieces for each side at the start
)

// Utility values of decided positions. Heuristic scores always lie strictly
// between OpponentWinScore and MachineWinScore.
const (
	MachineWinScore  = 1000
	OpponentWinScore = -1000
	DrawScore        = 0
)

// Board is the 6×6 grid indexed [row][col].
type Board [BoardSize][BoardSize]Cell

// InitialBoard returns the starting layout: machine pieces on the dark cells
// of rows 0–1, opponent pieces on the dark cells of rows 4–5.
func InitialBoard() Board {
	var b Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !Pos(row, col).Dark() {
				continue
			}
			switch {
			case row < HomeRows:
				b[row][col] = MachinePiece
			case row >= BoardSize-HomeRows:
				b[row][col] = OpponentPiece
			}
		}
	}
	return b
}

// At returns the cell at p. Panics if p is off the board.
func (b Board) At(p Position) Cell { return b[p.Row][p.Col] }

// Set writes c at p. Panics if p is off the board.
func (b *Board) Set(p Position, c Cell) { b[p.Row][p.Col] = c }

// Pieces returns the positions of every piece of s (active and frozen) in
// row-major order.
func (b Board) Pieces(s Side) []Position {
	var out []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col].BelongsTo(s) {
				out = append(out, Pos(row, col))
			}
		}
	}
	return out
}

// FrozenPieces returns the positions of every frozen piece of either side.
func (b Board) FrozenPieces() []Position {
	var out []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col].IsFrozen() {
				out = append(out, Pos(row, col))
			}
		}
	}
	return out
}

// Valid reports whether every piece sits on a dark cell.
func (b Board) Valid() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b[row][col].IsEmpty() && !Pos(row, col).Dark() {
				return false
			}
		}
	}
	return true
}
