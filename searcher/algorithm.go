package searcher

import (
	"fmt"
	"strings"
)

// Algorithm selects the game-tree search a Bot runs.
type Algorithm int

const (
	MinMax Algorithm = iota
	AlphaBeta
	NegaMax
	ConcurrentNegaMax
)

// Algorithms lists every algorithm.
var Algorithms = []Algorithm{MinMax, AlphaBeta, NegaMax, ConcurrentNegaMax}

func (a Algorithm) String() string {
	switch a {
	case MinMax:
		return "MinMax"
	case AlphaBeta:
		return "AlphaBeta"
	case NegaMax:
		return "NegaMax"
	case ConcurrentNegaMax:
		return "ConcurrentNegaMax"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return MinMax, fmt.Errorf("unknown algorithm %q", s)
}
