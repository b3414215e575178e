package engine

// Evaluate returns the heuristic score of a non-terminal board from the
// perspective of the maximizing side, using the formula chosen by d:
//   - Easy: advancement race. The opponent's trailing distance minus the
//     machine's; the side whose slowest piece is closer to the far row leads.
//   - Medium: machine pieces minus opponent pieces.
//   - Hard: (machine pieces + machine movable pieces) minus the same sum for
//     the opponent.
//
// Scores are computed for the machine and negated when maximizing is the
// opponent. Every result lies well inside (OpponentWinScore, MachineWinScore).
func Evaluate(b Board, maximizing Side, d Difficulty) int {
	t := CountPieces(b)
	m, o := Machine, Opponent

	var score int
	switch d {
	case Easy:
		score = t.Trailing[o] - t.Trailing[m]
	case Medium:
		score = t.Pieces[m] - t.Pieces[o]
	default:
		score = t.Pieces[m] + t.Movable[m] - t.Pieces[o] - t.Movable[o]
	}

	if maximizing == Opponent {
		return -score
	}
	return score
}
