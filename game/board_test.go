package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("seeds the center cross", func(t *testing.T) {
		b := NewBoard(8)

		require.Equal(t, 8, b.Size())
		require.Equal(t, []Coord{{3, 3}, {4, 4}}, slices.Collect(b.PiecesForPlayer(Green)))
		require.Equal(t, []Coord{{3, 4}, {4, 3}}, slices.Collect(b.PiecesForPlayer(Red)))
	})

	t.Run("seeds the center of non-standard sizes", func(t *testing.T) {
		b := NewBoard(6)

		require.Equal(t, []Coord{{2, 2}, {3, 3}}, slices.Collect(b.PiecesForPlayer(Green)))
		require.Equal(t, []Coord{{2, 3}, {3, 2}}, slices.Collect(b.PiecesForPlayer(Red)))
	})

	t.Run("panics on odd size", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(7) }, "Odd sizes have no center cross")
	})

	t.Run("panics below the minimum size", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(4) }, "Sizes below the minimum are rejected")
	})
}

func TestBoardAccess(t *testing.T) {
	t.Run("get and set", func(t *testing.T) {
		b := NewBoard(8)

		_, ok := b.Get(Coord{0, 0})
		require.False(t, ok, "Corner should start empty")

		b.Set(Coord{0, 0}, Red)
		p, ok := b.Get(Coord{0, 0})
		require.True(t, ok)
		require.Equal(t, Red, p)

		b.Clear(Coord{0, 0})
		_, ok = b.Get(Coord{0, 0})
		require.False(t, ok, "Cleared cell should be empty")
	})

	t.Run("switching flips the owner", func(t *testing.T) {
		b := NewBoard(8)

		b.SwitchPiece(Coord{3, 3})

		p, _ := b.Get(Coord{3, 3})
		require.Equal(t, Red, p)
		require.Equal(t, 1, b.Count(Green))
		require.Equal(t, 3, b.Count(Red))
	})

	t.Run("switching an empty cell panics", func(t *testing.T) {
		b := NewBoard(8)

		require.Panics(t, func() { b.SwitchPiece(Coord{0, 0}) })
	})

	t.Run("out of range access panics", func(t *testing.T) {
		b := NewBoard(8)

		require.Panics(t, func() { b.Get(Coord{8, 0}) })
		require.Panics(t, func() { b.Set(Coord{0, -1}, Green) })
	})

	t.Run("piece sequence is restartable and stops early", func(t *testing.T) {
		b := NewBoard(8)
		seq := b.PiecesForPlayer(Green)

		require.Equal(t, slices.Collect(seq), slices.Collect(seq), "Ranging twice should yield the same pieces")

		n := 0
		for range seq {
			n++
			break
		}
		require.Equal(t, 1, n)
	})
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(8)
	c := b.Clone()

	c.Set(Coord{0, 0}, Green)

	require.False(t, b.Equal(c), "Clone should not share cells")
	_, ok := b.Get(Coord{0, 0})
	require.False(t, ok)
}

func TestBoardString(t *testing.T) {
	b := NewBoard(6)

	expected := "   1 2 3 4 5 6\n" +
		" 1 . . . . . .\n" +
		" 2 . . . . . .\n" +
		" 3 . . G R . .\n" +
		" 4 . . R G . .\n" +
		" 5 . . . . . .\n" +
		" 6 . . . . . .\n"
	require.Equal(t, expected, b.String())
}
