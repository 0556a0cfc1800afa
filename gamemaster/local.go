package gamemaster

import (
	"errors"
	"fmt"

	"reversi/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
	ErrBotTurn     = errors.New("it is the bot's turn")
	ErrNotBotTurn  = errors.New("it is not the bot's turn")
)

// Update describes one turn: a placement, or a forced pass when Passed is set.
// Board is a snapshot taken right after the turn.
type Update struct {
	Player   game.Player
	Move     game.Coord
	Captured []game.Coord
	Passed   bool
	Board    *game.Board
}

// UpdateGetter returns the next unread update without blocking. It returns
// false when there is none yet, or none left after the game is over.
type UpdateGetter func() (Update, bool)

// Session schedules turns on a single game: human moves through Play, bot
// moves through PlayBot, and forced passes as soon as they arise. It is not
// safe for concurrent use.
type Session struct {
	game     *game.Reversi
	updateCh chan Update
	passes   int
	gameOver bool
}

// NewSession takes ownership of g. A forced pass or a finished game in the
// starting position is resolved right away.
func NewSession(g *game.Reversi) *Session {
	size := g.Board().Size()
	s := &Session{
		game: g,
		// Every turn places a piece or passes, and passes never follow each
		// other, so this never fills up.
		updateCh: make(chan Update, 2*size*size+1),
	}
	s.resolve()
	return s
}

// Updates returns a getter draining the session's turns in order.
func (s *Session) Updates() UpdateGetter {
	return func() (Update, bool) {
		select {
		case u, ok := <-s.updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

// Play places a piece for the side to move. Legality is checked against the
// cached valid-move list only.
func (s *Session) Play(c game.Coord) error {
	if s.gameOver {
		return ErrGameOver
	}
	if s.game.IsBotTurn() {
		return ErrBotTurn
	}
	if !s.game.IsValidMove(c) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, c, s.game.CurrentPlayer())
	}
	s.advance(c)
	return nil
}

// PlayBot asks the seated bot for its move and plays it.
func (s *Session) PlayBot() (game.Coord, error) {
	if s.gameOver {
		return game.Coord{}, ErrGameOver
	}
	seat, ok := s.game.BotPlayer()
	if !ok || seat.Player != s.game.CurrentPlayer() {
		return game.Coord{}, ErrNotBotTurn
	}

	move := seat.Bot.GetMove(s.game)
	if !s.game.IsValidMove(move) {
		panic(fmt.Sprintf("bot chose illegal move %s for %s", move, seat.Player))
	}
	s.advance(move)
	return move, nil
}

func (s *Session) advance(c game.Coord) {
	player := s.game.CurrentPlayer()
	s.game.PlacePieceAndAddHistory(c)
	entry, _ := s.game.LastMove()
	s.game.SwitchPlayers()
	s.game.UpdateValidMoves()

	s.updateCh <- Update{
		Player:   player,
		Move:     c,
		Captured: entry.Captured,
		Board:    s.game.Board().Clone(),
	}
	s.resolve()
}

// resolve ends the game when nobody can move, and otherwise passes for a side
// to move that has no legal move.
func (s *Session) resolve() {
	if s.gameOver {
		return
	}
	if !s.game.AnyoneCanMove() {
		s.gameOver = true
		close(s.updateCh)
		return
	}
	if s.game.CanMove(s.game.CurrentPlayer()) {
		return
	}

	s.passes++
	s.updateCh <- Update{
		Player: s.game.CurrentPlayer(),
		Passed: true,
		Board:  s.game.Board().Clone(),
	}
	s.game.SwitchPlayers()
	s.game.UpdateValidMoves()
}

// Game returns the live game. Callers must not mutate it.
func (s *Session) Game() *game.Reversi {
	return s.game
}

func (s *Session) IsOver() bool {
	return s.gameOver
}

// Passes is the number of forced passes so far.
func (s *Session) Passes() int {
	return s.passes
}

// Winner returns the side with more pieces once the game is over; false on a
// draw or while the game is still running.
func (s *Session) Winner() (game.Player, bool) {
	if !s.gameOver {
		return game.Green, false
	}
	return s.game.Winner()
}
