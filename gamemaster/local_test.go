package gamemaster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
	"reversi/searcher"
)

// passPosition leaves Red with pieces but no legal move once Green captures
// along the top row, so Red must pass.
func passPosition() *game.Reversi {
	g := game.New()
	b := g.Board()
	for _, c := range []game.Coord{{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 3}, {Row: 4, Col: 4}} {
		b.Clear(c)
	}
	b.Set(game.Coord{Row: 0, Col: 0}, game.Green)
	b.Set(game.Coord{Row: 0, Col: 1}, game.Red)
	b.Set(game.Coord{Row: 7, Col: 0}, game.Green)
	b.Set(game.Coord{Row: 7, Col: 1}, game.Red)
	b.Set(game.Coord{Row: 3, Col: 3}, game.Red)
	g.UpdateValidMoves()
	return g
}

func TestSessionPlay(t *testing.T) {
	t.Run("valid move", func(t *testing.T) {
		s := NewSession(game.New())
		getUpdate := s.Updates()

		_, ok := getUpdate()
		require.False(t, ok, "No update before the first move")

		require.NoError(t, s.Play(game.Coord{Row: 4, Col: 2}))

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, game.Green, u.Player)
		require.Equal(t, game.Coord{Row: 4, Col: 2}, u.Move)
		require.Equal(t, []game.Coord{{Row: 4, Col: 3}}, u.Captured)
		require.False(t, u.Passed)
		require.Equal(t, 4, u.Board.Count(game.Green))
		require.Equal(t, game.Red, s.Game().CurrentPlayer())
	})

	t.Run("illegal move", func(t *testing.T) {
		s := NewSession(game.New())

		err := s.Play(game.Coord{Row: 0, Col: 0})
		require.True(t, errors.Is(err, ErrIllegalMove), "Expected ErrIllegalMove, got %v", err)
		require.Equal(t, game.Green, s.Game().CurrentPlayer(), "A rejected move should not end the turn")
		require.Equal(t, 0, s.Game().MovesPlayed())
	})

	t.Run("occupied cell", func(t *testing.T) {
		s := NewSession(game.New())

		require.ErrorIs(t, s.Play(game.Coord{Row: 3, Col: 3}), ErrIllegalMove)
	})
}

func TestSessionForcedPass(t *testing.T) {
	s := NewSession(passPosition())
	getUpdate := s.Updates()

	require.NoError(t, s.Play(game.Coord{Row: 0, Col: 2}))

	placed, ok := getUpdate()
	require.True(t, ok)
	require.Equal(t, []game.Coord{{Row: 0, Col: 1}}, placed.Captured)

	pass, ok := getUpdate()
	require.True(t, ok)
	require.True(t, pass.Passed)
	require.Equal(t, game.Red, pass.Player)

	require.Equal(t, 1, s.Passes())
	require.Equal(t, game.Green, s.Game().CurrentPlayer(), "Green should move again after Red passes")
	require.False(t, s.IsOver())
}

func TestSessionGameOver(t *testing.T) {
	s := NewSession(passPosition())
	getUpdate := s.Updates()

	require.NoError(t, s.Play(game.Coord{Row: 0, Col: 2}))
	require.NoError(t, s.Play(game.Coord{Row: 7, Col: 2}))
	require.True(t, s.IsOver())

	for range 3 { // Placement, pass, placement
		_, ok := getUpdate()
		require.True(t, ok)
	}
	_, ok := getUpdate()
	require.False(t, ok, "No updates after game over")

	winner, ok := s.Winner()
	require.True(t, ok)
	require.Equal(t, game.Green, winner)

	require.ErrorIs(t, s.Play(game.Coord{Row: 5, Col: 5}), ErrGameOver)
	_, err := s.PlayBot()
	require.ErrorIs(t, err, ErrGameOver)
}

func TestSessionBot(t *testing.T) {
	g := searcher.NewGame(&searcher.Assignment{
		Player:     game.Red,
		Algorithm:  searcher.AlphaBeta,
		Difficulty: searcher.Medium,
		Heuristic:  game.TacticalWeighting,
	})
	s := NewSession(g)

	_, err := s.PlayBot()
	require.ErrorIs(t, err, ErrNotBotTurn)

	require.NoError(t, s.Play(game.Coord{Row: 2, Col: 4}))
	require.True(t, g.IsBotTurn())
	require.ErrorIs(t, s.Play(game.Coord{Row: 2, Col: 3}), ErrBotTurn)

	legal := append([]game.Coord(nil), g.ValidMoves()...)
	move, err := s.PlayBot()
	require.NoError(t, err)
	require.Contains(t, legal, move)
	require.Equal(t, game.Green, g.CurrentPlayer())
	require.Equal(t, 2, g.MovesPlayed())
}

func TestSessionFinishedStart(t *testing.T) {
	g := game.New()
	g.Board().SwitchPiece(game.Coord{Row: 3, Col: 4})
	g.Board().SwitchPiece(game.Coord{Row: 4, Col: 3})
	g.UpdateValidMoves()

	s := NewSession(g)

	require.True(t, s.IsOver())
	winner, ok := s.Winner()
	require.True(t, ok)
	require.Equal(t, game.Green, winner)
}
