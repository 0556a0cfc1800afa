package game

import (
	"fmt"
	"strings"
)

// Evaluate scores board from player's perspective. Higher is better for player.
type Evaluate func(board *Board, player Player) int64

// Heuristic selects a leaf evaluator.
type Heuristic int

const (
	UniformWeighting Heuristic = iota
	TacticalWeighting
)

// Heuristics lists every heuristic.
var Heuristics = []Heuristic{UniformWeighting, TacticalWeighting}

func (h Heuristic) String() string {
	switch h {
	case UniformWeighting:
		return "UniformWeighting"
	case TacticalWeighting:
		return "TacticalWeighting"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// Evaluator resolves the heuristic to its scoring function.
func (h Heuristic) Evaluator() Evaluate {
	switch h {
	case UniformWeighting:
		return EvaluateUniform
	case TacticalWeighting:
		return EvaluateTactical
	default:
		panic(fmt.Sprintf("unknown heuristic %d", int(h)))
	}
}

// ParseHeuristic accepts String names case-insensitively, plus the short forms "uniform" and "tactical".
func ParseHeuristic(s string) (Heuristic, error) {
	for _, h := range Heuristics {
		name := h.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, strings.TrimSuffix(name, "Weighting")) {
			return h, nil
		}
	}
	return UniformWeighting, fmt.Errorf("unknown heuristic %q", s)
}

// EvaluateUniform counts every piece as 1: own pieces minus opponent pieces.
func EvaluateUniform(board *Board, player Player) int64 {
	return int64(board.Count(player)) - int64(board.Count(player.Other()))
}

// EvaluateTactical weighs corners 9, other edge cells 3 and interior cells 1.
func EvaluateTactical(board *Board, player Player) int64 {
	var score int64
	for i, v := range board.cells {
		if v == empty {
			continue
		}
		w := tacticalWeight(board.size, Coord{Row: i / board.size, Col: i % board.size})
		if v.player() == player {
			score += w
		} else {
			score -= w
		}
	}
	return score
}

func tacticalWeight(size int, c Coord) int64 {
	rowEdge := c.Row == 0 || c.Row == size-1
	colEdge := c.Col == 0 || c.Col == size-1
	switch {
	case rowEdge && colEdge:
		return 9
	case rowEdge || colEdge:
		return 3
	default:
		return 1
	}
}
