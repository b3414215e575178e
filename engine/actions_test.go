package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRegularMove(t *testing.T) {
	b := InitialBoard()
	next := Apply(b, Machine, Pos(1, 2), Pos(2, 3))

	assert.Equal(t, Empty, next.At(Pos(1, 2)))
	assert.Equal(t, MachinePiece, next.At(Pos(2, 3)))
	assert.Equal(t, CountPieces(b).Pieces, CountPieces(next).Pieces)
	assert.Equal(t, InitialBoard(), b, "input board must not change")
}

func TestApplyJumpToFarRowFreezes(t *testing.T) {
	b := MustParseBoard(`
		------
		--C---
		---H--
		------
		------
		------`)
	next := Apply(b, Opponent, Pos(2, 3), Pos(0, 1))

	assert.Equal(t, OpponentFrozen, next.At(Pos(0, 1)))
	assert.Equal(t, Empty, next.At(Pos(1, 2)), "captured piece removed")
	assert.Equal(t, Empty, next.At(Pos(2, 3)))
	assert.Equal(t, "-E----\n------\n------\n------\n------\n------", next.String())
}

func TestApplyMachineJumps(t *testing.T) {
	b := MustParseBoard(`
		------
		------
		---C--
		--H-H-
		------
		------`)

	left := Apply(b, Machine, Pos(2, 3), Pos(4, 1))
	assert.Equal(t, "------\n------\n------\n----H-\n-C----\n------", left.String())

	right := Apply(b, Machine, Pos(2, 3), Pos(4, 5))
	assert.Equal(t, "------\n------\n------\n--H---\n-----C\n------", right.String())
}

func TestApplyMachineReachesFarRow(t *testing.T) {
	b := MustParseBoard(`
		------
		------
		------
		------
		---C--
		------`)
	next := Apply(b, Machine, Pos(4, 3), Pos(5, 4))
	assert.Equal(t, MachineFrozen, next.At(Pos(5, 4)))
	assert.Equal(t, Empty, next.At(Pos(4, 3)))
}

func TestApplyInvariantsRandomized(t *testing.T) {
	forEachRandomBoard(t, 1000, func(t *testing.T, b Board) {
		before := b
		for _, side := range []Side{Machine, Opponent} {
			for _, a := range b.ForcedActions(side) {
				next := Apply(b, side, a.From, a.To)
				was, now := CountPieces(b), CountPieces(next)

				assert.True(t, next.At(a.From).IsEmpty(), "origin not cleared by %s", a)
				assert.Equal(t, was.Pieces[side], now.Pieces[side], "%s changed own count", a)
				if a.Jump {
					mid := Pos((a.From.Row+a.To.Row)/2, (a.From.Col+a.To.Col)/2)
					assert.True(t, b.At(mid).BelongsTo(side.Other()))
					assert.True(t, next.At(mid).IsEmpty(), "captured cell not cleared by %s", a)
					assert.Equal(t, was.Pieces[side.Other()]-1, now.Pieces[side.Other()])
				} else {
					assert.Equal(t, was.Pieces[side.Other()], now.Pieces[side.Other()])
				}

				want := NewPiece(side, Active)
				if a.To.Row == side.FarRow() {
					want = NewPiece(side, Frozen)
				}
				assert.Equal(t, want, next.At(a.To), "destination of %s", a)
				assert.True(t, next.Valid())
			}
		}
		assert.Equal(t, before, b)
	})
}

func TestApplyAction(t *testing.T) {
	b := MustParseBoard(`
		------
		C---C-
		-H----
		------
		------
		------`)

	next, err := ApplyAction(b, Machine, Action{From: Pos(1, 0), To: Pos(3, 2), Jump: true})
	require.NoError(t, err)
	assert.Equal(t, MachinePiece, next.At(Pos(3, 2)))
	assert.True(t, next.At(Pos(2, 1)).IsEmpty())

	invalid := []Action{
		{From: Pos(1, 4), To: Pos(2, 5)},  // regular move while a jump exists
		{From: Pos(2, 1), To: Pos(1, 0)},  // opponent's piece
		{From: Pos(0, 1), To: Pos(1, 2)},  // empty origin
		{From: Pos(1, 0), To: Pos(-1, 2)}, // off the board
		{From: Pos(1, 0), To: Pos(2, 1)},  // occupied destination
	}
	for _, a := range invalid {
		got, err := ApplyAction(b, Machine, a)
		assert.True(t, errors.Is(err, ErrInvalidAction), "%s: %v", a, err)
		assert.Equal(t, b, got, "%s must leave the board unchanged", a)
	}
}

func TestFreezeSide(t *testing.T) {
	b := FreezeSide(InitialBoard(), Opponent)
	assert.Equal(t, "-C-C-C\nC-C-C-\n------\n------\n-E-E-E\nE-E-E-", b.String())
	assert.Empty(t, b.LegalActions(Opponent))
	assert.NotEmpty(t, b.LegalActions(Machine))
}
