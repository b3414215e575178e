package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned when a requested move is not among the legal
// actions of the acting side.
var ErrInvalidAction = errors.New("invalid action")

// Apply returns the board after side moves the piece at from to to. The input
// board is not modified and the move is not validated; see ApplyAction.
//
// A piece landing on its side's far row is written as the frozen variant. A
// move spanning two rows captures the opponent piece between from and to.
func Apply(b Board, side Side, from, to Position) Board {
	next := b
	if to.Row == side.FarRow() {
		next.Set(to, NewPiece(side, Frozen))
	} else {
		next.Set(to, b.At(from))
	}

	if dr := to.Row - from.Row; dr == 2 || dr == -2 {
		dc := 1
		if to.Col < from.Col {
			dc = -1
		}
		next.Set(from.Offset(side.Forward(), dc), Empty)
	}

	next.Set(from, Empty)
	return next
}

// ApplyAction validates a against the forced actions of side and applies it.
func ApplyAction(b Board, side Side, a Action) (Board, error) {
	if !a.From.InBounds() || !a.To.InBounds() {
		return b, fmt.Errorf("%w: %s out of bounds", ErrInvalidAction, a)
	}
	if !b.At(a.From).BelongsTo(side) {
		return b, fmt.Errorf("%w: no %s piece at %s", ErrInvalidAction, side, a.From)
	}
	for _, legal := range b.ForcedActions(side) {
		if legal.From == a.From && legal.To == a.To {
			return Apply(b, side, a.From, a.To), nil
		}
	}
	return b, fmt.Errorf("%w: %s is not legal for %s", ErrInvalidAction, a, side)
}

// FreezeSide returns b with every active piece of side marked frozen. Used
// when a side has no legal action and its turn passes.
func FreezeSide(b Board, side Side) Board {
	for _, p := range b.MovablePieces(side) {
		b.Set(p, b.At(p).Frozen())
	}
	return b
}
