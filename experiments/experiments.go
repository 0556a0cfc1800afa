package experiments

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
)

const (
	NumGames     = 10 // Per match up
	OpeningPlies = 4
)

// Insane searches to the end of the game, which is out of reach on a full
// board, so built-in setups stop at Hard.
var difficultyConfigs = []metrics.AgentConfig{
	{ID: 1, Algorithm: "AlphaBeta", Difficulty: "Easy"},
	{ID: 2, Algorithm: "AlphaBeta", Difficulty: "Medium"},
	{ID: 3, Algorithm: "AlphaBeta", Difficulty: "Hard"},
}

var heuristicConfigs = []metrics.AgentConfig{
	{ID: 1, Algorithm: "NegaMax", Heuristic: "Uniform", Depth: 3},
	{ID: 2, Algorithm: "NegaMax", Heuristic: "Tactical", Depth: 3},
	{ID: 3, Algorithm: "NegaMax", Heuristic: "Uniform", Depth: 5},
	{ID: 4, Algorithm: "NegaMax", Heuristic: "Tactical", Depth: 5},
}

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Algorithm: "NegaMax", Depth: 5},
	{ID: 2, Algorithm: "ConcurrentNegaMax", Depth: 5, Goroutines: 1},
	{ID: 3, Algorithm: "ConcurrentNegaMax", Depth: 5, Goroutines: 4},
	{ID: 4, Algorithm: "ConcurrentNegaMax", Depth: 5, Goroutines: 16},
	{ID: 5, Algorithm: "ConcurrentNegaMax", Depth: 5, Goroutines: 64},
}

// Setups are the built-in experiments, by name.
var Setups = map[string]Setup{
	// Each stronger tier plays the Easy baseline
	"difficulty": {
		Name:         "difficulty",
		Games:        NumGames,
		BoardSize:    game.DefaultBoardSize,
		OpeningPlies: OpeningPlies,
		Agents:       difficultyConfigs,
		MatchUps:     []MatchUp{{Green: 1, Red: 2}, {Green: 1, Red: 3}, {Green: 2, Red: 3}},
	},
	// Same algorithm and depth, different weighting
	"heuristic": {
		Name:         "heuristic",
		Games:        NumGames,
		BoardSize:    game.DefaultBoardSize,
		OpeningPlies: OpeningPlies,
		Agents:       heuristicConfigs,
		MatchUps:     []MatchUp{{Green: 1, Red: 2}, {Green: 3, Red: 4}},
	},
	// Same playing strength, so games differ only in search throughput
	"parallelization": {
		Name:         "parallelization",
		Games:        NumGames,
		BoardSize:    game.DefaultBoardSize,
		OpeningPlies: OpeningPlies,
		Agents:       parallelConfigs,
		MatchUps:     []MatchUp{{Green: 1, Red: 2}, {Green: 1, Red: 3}, {Green: 1, Red: 4}, {Green: 1, Red: 5}},
	},
}

// SetupNames lists the built-in experiments in a stable order.
func SetupNames() []string {
	names := make([]string, 0, len(Setups))
	for name := range Setups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result holds every record of an experiment run.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Wins counts the games won by agent id, on either side.
func (r Result) Wins(id int) int {
	wins := 0
	for _, g := range r.Games {
		if (g.Winner == game.Green.String() && g.Green == id) || (g.Winner == game.Red.String() && g.Red == id) {
			wins++
		}
	}
	return wins
}

// Run plays setup.Games games per match up, swapping sides on every other game.
// Records are stored through writer when it is not nil.
func Run(setup *Setup, writer *metrics.Writer) (Result, error) {
	// Run a number of games for each matchup
	count := 0
	result := Result{}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchUp := range setup.MatchUps {
		config1, _ := setup.Agent(matchUp.Green)
		config2, _ := setup.Agent(matchUp.Red)

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(setup.MatchUps), config1, config2)

		for i := 0; i < setup.Games; i++ {
			green, red := config1, config2
			if i%2 == 1 {
				green, red = red, green
			}

			count++
			gameMetric, moveMetrics, err := runGame(setup, green, red, setup.Seed+uint64(count))
			if err != nil {
				return result, err
			}
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Green:      green.ID,
				Red:        red.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(setup.MatchUps), i+1, gameMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(setup.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	if writer == nil {
		return result, nil
	}
	return result, store(writer, setup.Agents, result)
}

func store(writer *metrics.Writer, configs []metrics.AgentConfig, result Result) error {
	// Store experiment metadata
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}

// runGame executes a single game between two agents
func runGame(setup *Setup, green, red metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	greenBot, err := NewBot(green)
	if err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("agent %d: %w", green.ID, err)
	}
	redBot, err := NewBot(red)
	if err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("agent %d: %w", red.ID, err)
	}

	var e engine.Engine = engine.NewMatch(greenBot, redBot,
		engine.WithBoardSize(setup.BoardSize),
		engine.WithOpening(setup.OpeningPlies, seed),
	)
	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}
