package game

import (
	"fmt"
	"iter"
	"strings"
)

// MinBoardSize is the smallest board that can hold the opening cross with room to play.
const MinBoardSize = 6

// DefaultBoardSize is the standard 8x8 board.
const DefaultBoardSize = 8

type cell int8

const empty cell = 0

func cellOf(p Player) cell {
	return cell(p) + 1
}

func (c cell) player() Player {
	return Player(c - 1)
}

// Board is an N×N grid of cell ownership, stored row-major.
type Board struct {
	size  int
	cells []cell
}

// NewBoard returns a board of the given size with the four center cells seeded.
// size must be even and at least MinBoardSize.
func NewBoard(size int) *Board {
	if size < MinBoardSize || size%2 != 0 {
		panic(fmt.Sprintf("invalid board size %d: must be even and at least %d", size, MinBoardSize))
	}
	b := &Board{
		size:  size,
		cells: make([]cell, size*size),
	}
	mid := size / 2
	b.Set(Coord{mid - 1, mid - 1}, Green)
	b.Set(Coord{mid, mid}, Green)
	b.Set(Coord{mid - 1, mid}, Red)
	b.Set(Coord{mid, mid - 1}, Red)
	return b
}

func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < b.size && c.Col < b.size
}

func (b *Board) index(c Coord) int {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("coordinate %s out of range for board of size %d", c, b.size))
	}
	return c.Row*b.size + c.Col
}

// Get returns the owner of c, and false if the cell is empty.
func (b *Board) Get(c Coord) (Player, bool) {
	v := b.cells[b.index(c)]
	if v == empty {
		return Green, false
	}
	return v.player(), true
}

// Set gives the cell at c to p.
func (b *Board) Set(c Coord, p Player) {
	b.cells[b.index(c)] = cellOf(p)
}

// Clear empties the cell at c.
func (b *Board) Clear(c Coord) {
	b.cells[b.index(c)] = empty
}

// SwitchPiece flips the owner of an occupied cell.
func (b *Board) SwitchPiece(c Coord) {
	i := b.index(c)
	if b.cells[i] == empty {
		panic(fmt.Sprintf("cannot switch empty cell %s", c))
	}
	b.cells[i] = cellOf(b.cells[i].player().Other())
}

// PiecesForPlayer yields every coordinate owned by p in row-major order.
// The sequence can be ranged over any number of times.
func (b *Board) PiecesForPlayer(p Player) iter.Seq[Coord] {
	want := cellOf(p)
	return func(yield func(Coord) bool) {
		for i, v := range b.cells {
			if v != want {
				continue
			}
			if !yield(Coord{Row: i / b.size, Col: i % b.size}) {
				return
			}
		}
	}
}

// Count returns how many cells p owns.
func (b *Board) Count(p Player) int {
	want := cellOf(p)
	n := 0
	for _, v := range b.cells {
		if v == want {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	cells := make([]cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether both boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with 1-based row and column labels.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < b.size; col++ {
		fmt.Fprintf(&sb, " %d", col+1)
	}
	sb.WriteByte('\n')
	for row := 0; row < b.size; row++ {
		fmt.Fprintf(&sb, "%2d", row+1)
		for col := 0; col < b.size; col++ {
			sb.WriteByte(' ')
			switch v := b.cells[row*b.size+col]; {
			case v == empty:
				sb.WriteByte('.')
			case v.player() == Green:
				sb.WriteByte('G')
			default:
				sb.WriteByte('R')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
