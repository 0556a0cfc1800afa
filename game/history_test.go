package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	t.Run("pops in LIFO order", func(t *testing.T) {
		var h History
		h.Push(Green, Coord{4, 2}, []Coord{{4, 3}})
		h.Push(Red, Coord{5, 2}, []Coord{{4, 3}, {3, 3}})

		require.Equal(t, 2, h.Len())
		last, ok := h.Last()
		require.True(t, ok)
		require.Equal(t, Red, last.Player)

		require.Equal(t, HistoryEntry{Player: Red, Placed: Coord{5, 2}, Captured: []Coord{{4, 3}, {3, 3}}}, h.Pop())
		require.Equal(t, HistoryEntry{Player: Green, Placed: Coord{4, 2}, Captured: []Coord{{4, 3}}}, h.Pop())
		require.Equal(t, 0, h.Len())
	})

	t.Run("popping an empty history panics", func(t *testing.T) {
		var h History

		require.Panics(t, func() { h.Pop() })
	})

	t.Run("clone is independent", func(t *testing.T) {
		var h History
		h.Push(Green, Coord{4, 2}, []Coord{{4, 3}})
		c := h.Clone()

		c.Pop()

		require.Equal(t, 1, h.Len())
		require.Equal(t, 0, c.Len())
	})
}
