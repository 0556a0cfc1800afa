package experiments

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

// Comparison runs every algorithm on the same random positions.
type Comparison struct {
	Positions int
	MaxPlies  int // Random plies played before each position
	BoardSize int
	Depth     int // searcher.Unbounded searches to the end of the game
	Heuristic game.Heuristic
	Seed      uint64
}

// Compare returns one record per algorithm and position. Pruning and negation
// must not change the chosen move, so every record should agree with MinMax.
func Compare(c Comparison) []metrics.ComparisonRecord {
	rng := rand.New(rand.NewSource(c.Seed))
	size := c.BoardSize
	if size == 0 {
		size = game.DefaultBoardSize
	}

	var records []metrics.ComparisonRecord
	for position := 1; position <= c.Positions; position++ {
		g := RandomPosition(rng, size, rng.Intn(c.MaxPlies+1))

		var reference game.Coord
		for _, algorithm := range searcher.Algorithms {
			bot := searcher.NewBot(algorithm, searcher.WithDepth(c.Depth), searcher.WithHeuristic(c.Heuristic))
			move := bot.GetMove(g)
			if algorithm == searcher.MinMax {
				reference = move
			}

			m := bot.Metrics()
			records = append(records, metrics.ComparisonRecord{
				Position:         position,
				Algorithm:        m.Algorithm,
				Heuristic:        m.Heuristic,
				Depth:            m.Depth,
				Move:             move.String(),
				AgreesWithMinMax: move == reference,
				Expansions:       m.Expansions,
				Comparisons:      m.Comparisons,
				Duration:         m.Duration,
			})
		}
		log.Debug().Int("position", position).Int("moves_played", g.MovesPlayed()).Msg("position compared")
	}
	return records
}

// Disagreements counts records whose move differs from MinMax's.
func Disagreements(records []metrics.ComparisonRecord) int {
	n := 0
	for _, r := range records {
		if !r.AgreesWithMinMax {
			n++
		}
	}
	return n
}

// RandomPosition plays up to plies random moves from the opening, passing for a
// side with no move. A move that would end the game is taken back, so the side
// to move in the returned game always has a move.
func RandomPosition(rng *rand.Rand, size, plies int) *game.Reversi {
	g := game.New(game.WithSize(size))
	for i := 0; i < plies; i++ {
		moves := g.ValidMoves()
		g.PlacePieceAndAddHistory(moves[rng.Intn(len(moves))])
		g.SwitchPlayers()
		g.UpdateValidMoves()
		if !g.AnyoneCanMove() {
			g.UndoTurn()
			g.UpdateValidMoves()
			break
		}
		if !g.CanMove(g.CurrentPlayer()) { // Forced pass
			g.SwitchPlayers()
			g.UpdateValidMoves()
		}
	}
	return g
}
