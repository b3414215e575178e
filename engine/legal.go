package engine

// columnSteps is the column direction of the two forward diagonals, left first.
var columnSteps = [2]int{-1, 1}

// MovablePieces returns the positions of the active (non-frozen) pieces of s
// in row-major order.
func (b Board) MovablePieces(s Side) []Position {
	var out []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := b[row][col]
			if c.IsActive() && c.Owner() == s {
				out = append(out, Pos(row, col))
			}
		}
	}
	return out
}

// PieceActions returns the actions available to the piece at p. The side is
// read from the cell, and frozen cells are accepted so reactivation can ask
// whether a frozen piece would have a move. Empty cells yield nil.
//
// If the piece can jump, only its jumps are returned. Otherwise its one-step
// forward moves into empty cells are returned.
func (b Board) PieceActions(p Position) []Action {
	c := b.At(p)
	if c.IsEmpty() {
		return nil
	}
	side := c.Owner()
	fwd := side.Forward()

	var out []Action
	for _, dc := range columnSteps {
		over := p.Offset(fwd, dc)
		land := p.Offset(2*fwd, 2*dc)
		if !land.InBounds() {
			continue
		}
		if b.At(over).BelongsTo(side.Other()) && b.At(land).IsEmpty() {
			out = append(out, Action{From: p, To: land, Jump: true})
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, dc := range columnSteps {
		to := p.Offset(fwd, dc)
		if to.InBounds() && b.At(to).IsEmpty() {
			out = append(out, Action{From: p, To: to})
		}
	}
	return out
}

// LegalActions returns the actions of every movable piece of s, concatenated
// in row-major piece order. Jump suppression is per piece only; use
// ForcedActions for the side-wide capture rule.
func (b Board) LegalActions(s Side) []Action {
	var out []Action
	for _, p := range b.MovablePieces(s) {
		out = append(out, b.PieceActions(p)...)
	}
	return out
}

// ForcedActions returns LegalActions(s) with every regular move removed when
// at least one jump is available to the side.
func (b Board) ForcedActions(s Side) []Action {
	return FilterJumps(b.LegalActions(s))
}

// FilterJumps returns only the jumps in acts if it contains any, otherwise
// acts unchanged. Relative order is preserved.
func FilterJumps(acts []Action) []Action {
	jumps := 0
	for _, a := range acts {
		if a.Jump {
			jumps++
		}
	}
	if jumps == 0 || jumps == len(acts) {
		return acts
	}
	out := make([]Action, 0, jumps)
	for _, a := range acts {
		if a.Jump {
			out = append(out, a)
		}
	}
	return out
}

// HasAction reports whether s has at least one legal action.
func (b Board) HasAction(s Side) bool {
	for _, p := range b.MovablePieces(s) {
		if len(b.PieceActions(p)) > 0 {
			return true
		}
	}
	return false
}

// IsLegal reports whether a is among ForcedActions(s).
func (b Board) IsLegal(s Side, a Action) bool {
	for _, legal := range b.ForcedActions(s) {
		if legal == a {
			return true
		}
	}
	return false
}
