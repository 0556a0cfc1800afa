package game

import (
	"fmt"
	"strings"
)

// Player identifies one of the two sides. Green moves first.
type Player int

const (
	Green Player = iota
	Red
)

// Players lists both sides in turn order.
var Players = [2]Player{Green, Red}

func (p Player) Other() Player {
	if p == Green {
		return Red
	}
	return Green
}

func (p Player) String() string {
	switch p {
	case Green:
		return "Green"
	case Red:
		return "Red"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// ParsePlayer accepts the names produced by String, case-insensitively.
func ParsePlayer(s string) (Player, error) {
	for _, p := range Players {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return Green, fmt.Errorf("unknown player %q", s)
}
