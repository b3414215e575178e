package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalActionsInitialBoard(t *testing.T) {
	b := InitialBoard()

	assert.Equal(t, []Action{
		{From: Pos(1, 0), To: Pos(2, 1)},
		{From: Pos(1, 2), To: Pos(2, 1)},
		{From: Pos(1, 2), To: Pos(2, 3)},
		{From: Pos(1, 4), To: Pos(2, 3)},
		{From: Pos(1, 4), To: Pos(2, 5)},
	}, b.LegalActions(Machine))

	assert.Equal(t, []Action{
		{From: Pos(4, 1), To: Pos(3, 0)},
		{From: Pos(4, 1), To: Pos(3, 2)},
		{From: Pos(4, 3), To: Pos(3, 2)},
		{From: Pos(4, 3), To: Pos(3, 4)},
		{From: Pos(4, 5), To: Pos(3, 4)},
	}, b.LegalActions(Opponent))
}

func TestPieceActionsJumpSuppressesRegularMoves(t *testing.T) {
	b := MustParseBoard(`
		------
		--C---
		---H--
		------
		------
		------`)

	acts := b.PieceActions(Pos(2, 3))
	require.Len(t, acts, 1)
	assert.Equal(t, Action{From: Pos(2, 3), To: Pos(0, 1), Jump: true}, acts[0])
	assert.NotContains(t, acts, Action{From: Pos(2, 3), To: Pos(1, 2)})
	assert.NotContains(t, acts, Action{From: Pos(2, 3), To: Pos(1, 4)})
}

func TestPieceActionsBothJumps(t *testing.T) {
	b := MustParseBoard(`
		------
		------
		---C--
		--H-L-
		------
		------`)

	assert.Equal(t, []Action{
		{From: Pos(2, 3), To: Pos(4, 1), Jump: true},
	}, b.PieceActions(Pos(2, 3)), "a frozen piece of the same side cannot be jumped")

	b.Set(Pos(3, 4), OpponentFrozen)
	assert.Equal(t, []Action{
		{From: Pos(2, 3), To: Pos(4, 1), Jump: true},
		{From: Pos(2, 3), To: Pos(4, 5), Jump: true},
	}, b.PieceActions(Pos(2, 3)), "frozen opponent pieces can be captured")
}

func TestPieceActionsBlocked(t *testing.T) {
	tests := []struct {
		name  string
		board string
		at    Position
	}{
		{
			name:  "machine piece on far row",
			board: "------\n------\n------\n------\n------\nC-----",
			at:    Pos(5, 0),
		},
		{
			name:  "opponent piece on far row",
			board: "-H----\n------\n------\n------\n------\n------",
			at:    Pos(0, 1),
		},
		{
			name:  "landing square occupied",
			board: "------\n------\n-C----\nC-H---\n-C-C--\n------",
			at:    Pos(2, 1),
		},
		{
			name:  "jump would leave the board",
			board: "------\n------\n------\n------\n-C----\nH-H---",
			at:    Pos(4, 1),
		},
		{
			name:  "empty cell",
			board: emptyRows,
			at:    Pos(2, 3),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustParseBoard(tt.board)
			assert.Empty(t, b.PieceActions(tt.at))
		})
	}
}

func TestLegalActionsSkipFrozenPieces(t *testing.T) {
	b := MustParseBoard(`
		------
		L-----
		------
		------
		------
		------`)
	assert.Empty(t, b.LegalActions(Machine))
	assert.False(t, b.HasAction(Machine))
	assert.Len(t, b.PieceActions(Pos(1, 0)), 1, "frozen pieces still report their moves")
}

func TestForcedActionsKeepOnlyJumps(t *testing.T) {
	b := MustParseBoard(`
		------
		C---C-
		-H----
		------
		------
		------`)

	legal := b.LegalActions(Machine)
	assert.Len(t, legal, 3)

	forced := b.ForcedActions(Machine)
	assert.Equal(t, []Action{{From: Pos(1, 0), To: Pos(3, 2), Jump: true}}, forced)
	assert.True(t, b.IsLegal(Machine, forced[0]))
	assert.False(t, b.IsLegal(Machine, Action{From: Pos(1, 4), To: Pos(2, 5)}))
}

func TestFilterJumpsWithoutJumps(t *testing.T) {
	acts := []Action{{From: Pos(1, 0), To: Pos(2, 1)}}
	assert.Equal(t, acts, FilterJumps(acts))
	assert.Empty(t, FilterJumps(nil))
}

func TestMandatoryJumpRandomized(t *testing.T) {
	forEachRandomBoard(t, 2000, func(t *testing.T, b Board) {
		before := b
		for _, side := range []Side{Machine, Opponent} {
			legal := b.LegalActions(side)

			perPiece := map[Position][2]int{}
			anyJump := false
			for _, a := range legal {
				n := perPiece[a.From]
				if a.Jump {
					n[0]++
					anyJump = true
				} else {
					n[1]++
				}
				perPiece[a.From] = n
			}
			for p, n := range perPiece {
				assert.False(t, n[0] > 0 && n[1] > 0, "piece %s offered both jumps and moves on\n%s", p, b)
			}

			for _, a := range b.ForcedActions(side) {
				if anyJump {
					assert.True(t, a.Jump, "regular move %s offered while a jump exists on\n%s", a, b)
				}
				assert.True(t, b.At(a.From).IsActive())
				assert.Equal(t, side.Forward(), sign(a.To.Row-a.From.Row))
			}
			assert.Equal(t, len(legal) > 0, b.HasAction(side))
		}
		assert.Equal(t, before, b)
	})
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
