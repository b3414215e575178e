package agent

// Stats describes the tree explored by one ChooseMachineMove call.
type Stats struct {
	Nodes     int `json:"nodes"`      // maxValue and minValue calls
	MaxDepth  int `json:"max_depth"`  // deepest ply visited
	MaxPrunes int `json:"max_prunes"` // beta cutoffs in maxValue
	MinPrunes int `json:"min_prunes"` // alpha cutoffs in minValue
}

func (s *Stats) visit(ply int) {
	s.Nodes++
	if ply > s.MaxDepth {
		s.MaxDepth = ply
	}
}
