package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Rows renders each board row as a string of cell symbols (see Cell.Symbol).
func (b Board) Rows() []string {
	rows := make([]string, BoardSize)
	var buf [BoardSize]byte
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			buf[col] = b[row][col].Symbol()
		}
		rows[row] = string(buf[:])
	}
	return rows
}

func (b Board) String() string { return strings.Join(b.Rows(), "\n") }

// ParseBoard reads the format produced by Board.String. Blank lines and
// surrounding whitespace are ignored; '.' is accepted for an empty cell.
func ParseBoard(s string) (Board, error) {
	var b Board
	row := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row == BoardSize {
			return Board{}, fmt.Errorf("parse board: more than %d rows", BoardSize)
		}
		if len(line) != BoardSize {
			return Board{}, fmt.Errorf("parse board: row %d has %d cells, want %d", row, len(line), BoardSize)
		}
		for col := 0; col < BoardSize; col++ {
			c, err := parseCell(line[col])
			if err != nil {
				return Board{}, fmt.Errorf("parse board: row %d col %d: %w", row, col, err)
			}
			if !c.IsEmpty() && !Pos(row, col).Dark() {
				return Board{}, fmt.Errorf("parse board: piece on light cell %d,%d", row, col)
			}
			b[row][col] = c
		}
		row++
	}
	if row != BoardSize {
		return Board{}, fmt.Errorf("parse board: got %d rows, want %d", row, BoardSize)
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixtures known to be well formed.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

func parseCell(ch byte) (Cell, error) {
	switch ch {
	case '-', '.':
		return Empty, nil
	case 'C':
		return MachinePiece, nil
	case 'L':
		return MachineFrozen, nil
	case 'H':
		return OpponentPiece, nil
	case 'E':
		return OpponentFrozen, nil
	}
	return Empty, fmt.Errorf("unknown cell symbol %q", ch)
}

// ParsePosition reads "row,col" (spaces allowed around either number).
func ParsePosition(s string) (Position, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return Position{}, fmt.Errorf("parse position %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Position{}, fmt.Errorf("parse position %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Position{}, fmt.Errorf("parse position %q: %w", s, err)
	}
	p := Pos(row, col)
	if !p.InBounds() {
		return Position{}, fmt.Errorf("parse position %q: off the board", s)
	}
	return p, nil
}
