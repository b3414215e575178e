package engine

// Tally summarizes the pieces on a board, indexed by Side.
type Tally struct {
	Pieces  [2]int // active and frozen pieces
	Movable [2]int // active pieces only
	// Trailing is the distance from the far row of the side's least advanced
	// piece. Zero when every piece has arrived or the side has no pieces.
	Trailing [2]int
}

// CountPieces scans b once and returns its Tally.
func CountPieces(b Board) Tally {
	var t Tally
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := b[row][col]
			if c.IsEmpty() {
				continue
			}
			s := c.Owner()
			t.Pieces[s]++
			if c.State() == Active {
				t.Movable[s]++
			}
			if d := abs(s.FarRow() - row); d > t.Trailing[s] {
				t.Trailing[s] = d
			}
		}
	}
	return t
}

// Verdict is the terminal oracle's answer for a board.
type Verdict struct {
	Decided bool
	Outcome Outcome
	Score   int // utility, meaningful only when Decided
}

var nonterminal = Verdict{Outcome: Ongoing}

func decided(o Outcome) Verdict {
	v := Verdict{Decided: true, Outcome: o}
	switch o {
	case MachineWins:
		v.Score = MachineWinScore
	case OpponentWins:
		v.Score = OpponentWinScore
	default:
		v.Score = DrawScore
	}
	return v
}

// TerminalUtility classifies b. The game is decided when a side has no pieces
// left, or when neither side has a movable piece; in the latter case the side
// with more surviving pieces wins and equal counts draw.
func TerminalUtility(b Board) Verdict {
	t := CountPieces(b)
	m, o := Machine, Opponent
	switch {
	case t.Pieces[m] == 0:
		return decided(OpponentWins)
	case t.Pieces[o] == 0:
		return decided(MachineWins)
	case t.Movable[m] == 0 && t.Movable[o] == 0:
		switch {
		case t.Pieces[m] > t.Pieces[o]:
			return decided(MachineWins)
		case t.Pieces[m] < t.Pieces[o]:
			return decided(OpponentWins)
		}
		return decided(Draw)
	}
	return nonterminal
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
