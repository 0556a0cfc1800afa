package searcher

import (
	"fmt"
	"strings"

	"reversi/game"
)

// Unbounded disables the depth limit: the search runs to the end of the game.
const Unbounded = 0

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Insane
)

var Difficulties = []Difficulty{Easy, Medium, Hard, Insane}

// difficultyDepths maps each tier to its search depth.
var difficultyDepths = map[Difficulty]int{
	Easy:   1,
	Medium: 3,
	Hard:   8,
	Insane: Unbounded,
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Insane:
		return "Insane"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Depth returns the depth bound for d, or Unbounded.
func (d Difficulty) Depth() int {
	depth, ok := difficultyDepths[d]
	if !ok {
		panic(fmt.Sprintf("unknown difficulty %d", int(d)))
	}
	return depth
}

func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// Assignment names the bot-controlled player and how its bot searches.
type Assignment struct {
	Player     game.Player
	Algorithm  Algorithm
	Difficulty Difficulty
	Heuristic  game.Heuristic
}

// NewGame builds a fresh game, seating a bot for the assignment if one is given.
func NewGame(assignment *Assignment, options ...game.Option) *game.Reversi {
	if assignment != nil {
		bot := NewBot(assignment.Algorithm,
			WithDepth(assignment.Difficulty.Depth()),
			WithHeuristic(assignment.Heuristic),
		)
		options = append(options, game.WithBot(assignment.Player, bot))
	}
	return game.New(options...)
}
