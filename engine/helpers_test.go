package engine

import (
	"math/rand/v2"
	"testing"
)

// cellWeights biases random boards toward empty cells so pieces have room to move.
var cellWeights = []Cell{
	Empty, Empty, Empty, Empty,
	MachinePiece, MachinePiece, OpponentPiece, OpponentPiece,
	MachineFrozen, OpponentFrozen,
}

// randomBoard fills every dark cell from cellWeights.
func randomBoard(rng *rand.Rand) Board {
	var b Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if Pos(row, col).Dark() {
				b[row][col] = cellWeights[rng.IntN(len(cellWeights))]
			}
		}
	}
	return b
}

// forEachRandomBoard runs fn over n boards drawn from a fixed seed.
func forEachRandomBoard(t *testing.T, n int, fn func(t *testing.T, b Board)) {
	t.Helper()
	rng := rand.New(rand.NewPCG(42, 7))
	for i := 0; i < n; i++ {
		fn(t, randomBoard(rng))
		if t.Failed() {
			return
		}
	}
}

const emptyRows = "------\n------\n------\n------\n------\n------"
