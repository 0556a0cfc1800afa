package searcher

import (
	"fmt"
	"math"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"reversi/experiments/metrics"
	"reversi/game"
)

// DefaultDepth is the depth bound of a Bot built without WithDepth.
const DefaultDepth = 3

// inf bounds every score. It is negation-safe, unlike math.MinInt64.
const inf int64 = math.MaxInt64

type Option func(b *Bot)

// result is a node's score and, below a branching node, the move that earned it.
type result struct {
	score int64
	move  game.Coord
	found bool
}

type searchFn func(b *Bot, g *game.Reversi, player game.Player) result

// Bot picks moves by searching the game tree. A Bot is not safe for concurrent
// GetMove calls; Clone it instead.
type Bot struct {
	algorithm  Algorithm
	maxDepth   int
	heuristic  game.Heuristic
	goroutines int
	evaluate   game.Evaluate
	search     searchFn
	workers    *semaphore.Weighted
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

// WithDepth bounds the search to depth plies. Unbounded searches to the end of the game.
func WithDepth(depth int) Option {
	return func(b *Bot) {
		if depth >= 0 {
			b.maxDepth = depth
		}
	}
}

func WithHeuristic(heuristic game.Heuristic) Option {
	return func(b *Bot) {
		b.heuristic = heuristic
	}
}

// WithGoroutines caps the goroutines ConcurrentNegaMax keeps in flight.
func WithGoroutines(goroutines int) Option {
	return func(b *Bot) {
		if goroutines > 0 {
			b.goroutines = goroutines
		}
	}
}

// NewBot resolves the algorithm and heuristic once; unknown tags panic.
func NewBot(algorithm Algorithm, options ...Option) *Bot {
	b := &Bot{ // Default values
		algorithm:  algorithm,
		maxDepth:   DefaultDepth,
		heuristic:  game.UniformWeighting,
		goroutines: runtime.GOMAXPROCS(0),
		metrics:    metrics.NewCollector(),
	}
	for _, option := range options {
		option(b)
	}
	b.evaluate = b.heuristic.Evaluator()
	b.search = searchFor(algorithm)
	b.workers = semaphore.NewWeighted(int64(b.goroutines))
	return b
}

func searchFor(algorithm Algorithm) searchFn {
	switch algorithm {
	case MinMax:
		return func(b *Bot, g *game.Reversi, player game.Player) result {
			return b.minimax(g, player, 0)
		}
	case AlphaBeta:
		return func(b *Bot, g *game.Reversi, player game.Player) result {
			return b.alphaBeta(g, player, 0, -inf, inf)
		}
	case NegaMax:
		return func(b *Bot, g *game.Reversi, _ game.Player) result {
			return b.negamax(g, 0, -inf, inf)
		}
	case ConcurrentNegaMax:
		return func(b *Bot, g *game.Reversi, _ game.Player) result {
			return b.concurrentNegamax(g.Board().Clone(), g.CurrentPlayer(), 0, -inf, inf)
		}
	default:
		panic(fmt.Sprintf("unknown algorithm %d", int(algorithm)))
	}
}

// GetMove returns the bot's move for the side to move in g, which must have a
// legal move. Leaves are scored from that side's perspective. g itself is never
// modified: the search runs on a copy.
func (b *Bot) GetMove(g *game.Reversi) game.Coord {
	move, _ := b.getMove(g)
	return move
}

// getMove also returns the root score, which tests compare across algorithms.
func (b *Bot) getMove(g *game.Reversi) (game.Coord, int64) {
	if !g.CanMove(g.CurrentPlayer()) {
		panic(fmt.Sprintf("bot asked to move for %s, who has no legal move", g.CurrentPlayer()))
	}

	b.metrics.Start(b.algorithm.String(), b.heuristic.String(), b.maxDepth, b.goroutines)

	root := g.Clone()
	root.UpdateValidMoves()
	res := b.search(b, root, root.CurrentPlayer())

	b.last = b.metrics.Complete()
	log.Debug().
		Str("algorithm", b.last.Algorithm).
		Str("heuristic", b.last.Heuristic).
		Int("depth", b.last.Depth).
		Int64("expansions", b.last.Expansions).
		Int64("comparisons", b.last.Comparisons).
		Int64("score", res.score).
		Stringer("move", res.move).
		Dur("duration", b.last.Duration).
		Msg("search complete")

	if !res.found {
		panic("search finished without a move")
	}
	return res.move, res.score
}

// Metrics returns the counters of the last GetMove call.
func (b *Bot) Metrics() metrics.SearchMetric {
	return b.last
}

func (b *Bot) Algorithm() Algorithm {
	return b.algorithm
}

func (b *Bot) Heuristic() game.Heuristic {
	return b.heuristic
}

// MaxDepth returns the depth bound, or Unbounded.
func (b *Bot) MaxDepth() int {
	return b.maxDepth
}

// Clone returns a Bot with the same configuration and its own counters.
func (b *Bot) Clone() *Bot {
	return NewBot(b.algorithm, WithDepth(b.maxDepth), WithHeuristic(b.heuristic), WithGoroutines(b.goroutines))
}

func (b *Bot) depthReached(depth int) bool {
	return b.maxDepth != Unbounded && depth >= b.maxDepth
}
