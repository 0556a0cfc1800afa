package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/searcher"
)

// RandomOpening tags the move metrics of opening plies chosen at random.
const RandomOpening = "Random"

// Match is a bot-vs-bot game. The same bot may play both sides.
type Match struct {
	bots         [2]*searcher.Bot
	size         int
	starting     game.Player
	openingPlies int
	rng          *rand.Rand
}

type Option func(m *Match)

func WithBoardSize(size int) Option {
	return func(m *Match) {
		m.size = size
	}
}

func WithStartingPlayer(player game.Player) Option {
	return func(m *Match) {
		m.starting = player
	}
}

// WithOpening plays the first plies moves at random, drawn from seed, so that
// deterministic bots do not replay the same game.
func WithOpening(plies int, seed uint64) Option {
	return func(m *Match) {
		m.openingPlies = plies
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func NewMatch(green, red *searcher.Bot, options ...Option) *Match {
	if green == nil || red == nil {
		panic("need a bot for each player")
	}

	m := &Match{ // Default values
		bots:     [2]*searcher.Bot{green, red},
		size:     game.DefaultBoardSize,
		starting: game.Green,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Run executes the entire game loop until neither side can move.
func (m *Match) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	g := game.New(game.WithSize(m.size), game.WithStartingPlayer(m.starting))
	session := gamemaster.NewSession(g)

	log.Info().Msgf("%s is starting", m.starting)

	startTime := time.Now()
	var moveMetrics []metrics.MoveMetric
	for step := 1; !session.IsOver(); step++ {
		player := g.CurrentPlayer()

		var move game.Coord
		var search metrics.SearchMetric
		if step <= m.openingPlies {
			moves := g.ValidMoves()
			move = moves[m.rng.Intn(len(moves))]
			search = metrics.SearchMetric{Algorithm: RandomOpening}
		} else {
			bot := m.bots[player]
			move = bot.GetMove(g)
			search = bot.Metrics()
		}

		if err := session.Play(move); err != nil {
			panic(fmt.Sprintf("%s played %s: %v", player, move, err))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: search,
		})

		log.Debug().
			Int("step", step).
			Stringer("player", player).
			Stringer("move", move).
			Int("green", g.PieceCount(game.Green)).
			Int("red", g.PieceCount(game.Red)).
			Msg("move played")
	}
	endTime := time.Now()

	gameMetric := metrics.GameMetric{
		StartingPlayer: m.starting.String(),
		GreenPieces:    g.PieceCount(game.Green),
		RedPieces:      g.PieceCount(game.Red),
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     len(moveMetrics),
		Passes:         session.Passes(),
	}
	if winner, ok := session.Winner(); ok {
		gameMetric.Winner = winner.String()
	}

	log.Info().Msgf("game over after %d moves: green %d, red %d", gameMetric.TotalMoves, gameMetric.GreenPieces, gameMetric.RedPieces)

	return gameMetric, moveMetrics
}
