package game

import "slices"

// Bot chooses a move for the side to move. Implementations must not mutate g.
type Bot interface {
	GetMove(g *Reversi) Coord
}

// BotSeat binds a bot to the player it controls.
type BotSeat struct {
	Player Player
	Bot    Bot
}

// Reversi is the rules engine: it owns the board, the side to move, the cached
// valid-move list for that side and the undo history.
//
// It is mutated in place and is not safe for concurrent use.
type Reversi struct {
	board      *Board
	current    Player
	bot        *BotSeat
	validMoves []Coord
	history    History
}

type Option func(r *Reversi)

// WithSize sets the board size. Invalid sizes panic at construction.
func WithSize(size int) Option {
	return func(r *Reversi) {
		r.board = NewBoard(size)
	}
}

// WithBot hands control of player to bot.
func WithBot(player Player, bot Bot) Option {
	return func(r *Reversi) {
		if bot != nil {
			r.bot = &BotSeat{Player: player, Bot: bot}
		}
	}
}

// WithStartingPlayer overrides the side that moves first.
func WithStartingPlayer(player Player) Option {
	return func(r *Reversi) {
		r.current = player
	}
}

// New returns a fresh game on a seeded board with the valid-move cache filled
// for the starting player.
func New(options ...Option) *Reversi {
	r := &Reversi{
		current: Green,
	}
	for _, option := range options {
		option(r)
	}
	if r.board == nil {
		r.board = NewBoard(DefaultBoardSize)
	}
	r.UpdateValidMoves()
	return r
}

// ValidMovesForPlayer returns every empty cell reachable from one of player's
// pieces by crossing one or more contiguous opponent pieces. The result is
// deduplicated and in row-major order.
func ValidMovesForPlayer(board *Board, player Player) []Coord {
	seen := make([]bool, board.size*board.size)
	own := cellOf(player)
	found := 0
	for start := range board.PiecesForPlayer(player) {
		for _, d := range Directions {
			c := start.step(d)
			if !board.InBounds(c) {
				continue
			}
			if v := board.cells[board.index(c)]; v == empty || v == own {
				continue
			}
			for board.InBounds(c) {
				v := board.cells[board.index(c)]
				if v == own {
					break
				}
				if v == empty {
					if i := board.index(c); !seen[i] {
						seen[i] = true
						found++
					}
					break
				}
				c = c.step(d)
			}
		}
	}

	moves := make([]Coord, 0, found)
	for i, ok := range seen {
		if ok {
			moves = append(moves, Coord{Row: i / board.size, Col: i % board.size})
		}
	}
	return moves
}

// CanMove reports whether player has at least one legal move on board.
func CanMove(board *Board, player Player) bool {
	own := cellOf(player)
	for start := range board.PiecesForPlayer(player) {
		for _, d := range Directions {
			c := start.step(d)
			crossed := false
			for board.InBounds(c) {
				v := board.cells[board.index(c)]
				if v == empty {
					if crossed {
						return true
					}
					break
				}
				if v == own {
					break
				}
				crossed = true
				c = c.step(d)
			}
		}
	}
	return false
}

// AnyoneCanMove is false exactly when the game is over.
func AnyoneCanMove(board *Board) bool {
	return CanMove(board, Green) || CanMove(board, Red)
}

// captures returns the opponent pieces flanked by a piece of player placed at c.
// A run ending in an empty cell or the board edge captures nothing.
func captures(board *Board, c Coord, player Player) []Coord {
	own := cellOf(player)
	var captured []Coord
	for _, d := range Directions {
		run := 0
		next := c.step(d)
		for board.InBounds(next) {
			v := board.cells[board.index(next)]
			if v == empty {
				run = 0
				break
			}
			if v == own {
				break
			}
			run++
			next = next.step(d)
		}
		if !board.InBounds(next) {
			continue
		}
		for i, p := 0, c.step(d); i < run; i, p = i+1, p.step(d) {
			captured = append(captured, p)
		}
	}
	return captured
}

// PlacePieceOnBoard puts player's piece at c, flips everything it captures and
// returns the captured coordinates. It keeps no history.
func PlacePieceOnBoard(board *Board, c Coord, player Player) []Coord {
	board.Set(c, player)
	captured := captures(board, c, player)
	for _, p := range captured {
		board.SwitchPiece(p)
	}
	return captured
}

// PlacePieceAndAddHistory plays c for the current player and records it.
// c must come from ValidMoves; legality is not re-checked here.
func (r *Reversi) PlacePieceAndAddHistory(c Coord) {
	captured := PlacePieceOnBoard(r.board, c, r.current)
	r.history.Push(r.current, c, captured)
}

// SwitchPlayers hands the turn to the other side. It never skips a side that
// cannot move: a forced pass is the caller's to detect with CanMove.
func (r *Reversi) SwitchPlayers() {
	r.current = r.current.Other()
}

// UndoTurn reverts the most recent placement and gives the turn back to its mover.
// The valid-move cache is left as is; call UpdateValidMoves afterwards.
func (r *Reversi) UndoTurn() {
	entry := r.history.Pop()
	r.board.Clear(entry.Placed)
	for _, c := range entry.Captured {
		r.board.Set(c, entry.Player.Other())
	}
	r.current = entry.Player
}

// UpdateValidMoves refreshes the valid-move cache for the current player.
func (r *Reversi) UpdateValidMoves() {
	r.validMoves = ValidMovesForPlayer(r.board, r.current)
}

// Winner returns the side with strictly more pieces; false on a draw.
func (r *Reversi) Winner() (Player, bool) {
	green, red := r.board.Count(Green), r.board.Count(Red)
	switch {
	case green > red:
		return Green, true
	case red > green:
		return Red, true
	default:
		return Green, false
	}
}

func (r *Reversi) CanMove(player Player) bool {
	return CanMove(r.board, player)
}

func (r *Reversi) AnyoneCanMove() bool {
	return AnyoneCanMove(r.board)
}

// Board returns the live board. Callers must treat it as read-only.
func (r *Reversi) Board() *Board {
	return r.board
}

func (r *Reversi) CurrentPlayer() Player {
	return r.current
}

// ValidMoves returns the cached moves for the current player. The slice is
// replaced, never modified, by UpdateValidMoves, and must not be modified by callers.
func (r *Reversi) ValidMoves() []Coord {
	return r.validMoves
}

// IsValidMove reports whether c is in the cached valid-move list.
func (r *Reversi) IsValidMove(c Coord) bool {
	return slices.Contains(r.validMoves, c)
}

// BotPlayer returns the bot seat, if any.
func (r *Reversi) BotPlayer() (BotSeat, bool) {
	if r.bot == nil {
		return BotSeat{}, false
	}
	return *r.bot, true
}

// IsBotTurn reports whether the bot controls the side to move.
func (r *Reversi) IsBotTurn() bool {
	return r.bot != nil && r.bot.Player == r.current
}

// LastMove returns the most recent history entry.
func (r *Reversi) LastMove() (HistoryEntry, bool) {
	return r.history.Last()
}

// MovesPlayed is the number of placements since the start of the game.
func (r *Reversi) MovesPlayed() int {
	return r.history.Len()
}

// PieceCount returns how many pieces p has on the board.
func (r *Reversi) PieceCount(p Player) int {
	return r.board.Count(p)
}

// Clone returns an independent copy of the game. The bot seat is shared.
func (r *Reversi) Clone() *Reversi {
	moves := make([]Coord, len(r.validMoves))
	copy(moves, r.validMoves)
	var seat *BotSeat
	if r.bot != nil {
		s := *r.bot
		seat = &s
	}
	return &Reversi{
		board:      r.board.Clone(),
		current:    r.current,
		bot:        seat,
		validMoves: moves,
		history:    r.history.Clone(),
	}
}
