package game

import "fmt"

// Coord is a (row, col) position on the board.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func (c Coord) step(d Direction) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Direction is a unit offset used for line scanning.
type Direction struct {
	Row int
	Col int
}

// Directions holds the 8 scan directions.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
