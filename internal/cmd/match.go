package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
)

func Match() *cobra.Command {
	var (
		green, red metrics.AgentConfig
		size       int
		opening    int
		seed       uint64
		starting   string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Play one game between two bots",
		Long: heredoc.Doc(`match plays a single game between two bots and reports
			the final piece counts.

			Each side is described by an algorithm (MinMax, AlphaBeta,
			NegaMax or ConcurrentNegaMax), a heuristic (Uniform or
			Tactical) and either a difficulty (Easy, Medium, Hard or
			Insane) or an explicit depth. The first plies are played at
			random so that repeated matches differ.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			greenBot, err := experiments.NewBot(green)
			if err != nil {
				return fmt.Errorf("green: %w", err)
			}
			redBot, err := experiments.NewBot(red)
			if err != nil {
				return fmt.Errorf("red: %w", err)
			}
			first, err := game.ParsePlayer(starting)
			if err != nil {
				return err
			}

			s := startSpinner("playing...")
			gameMetric, moveMetrics := engine.NewMatch(greenBot, redBot,
				engine.WithBoardSize(size),
				engine.WithStartingPlayer(first),
				engine.WithOpening(opening, seed),
			).Run()
			s.Stop()

			var expansions [2]int64
			for _, mm := range moveMetrics {
				if mm.Player == game.Green.String() {
					expansions[game.Green] += mm.Expansions
				} else {
					expansions[game.Red] += mm.Expansions
				}
			}

			winner := gameMetric.Winner
			if winner == "" {
				winner = "nobody (draw)"
			}
			fmt.Printf("Winner: %s\n", winner)
			fmt.Printf("- %-6s %3d pieces, %d nodes expanded\n", "Green", gameMetric.GreenPieces, expansions[game.Green])
			fmt.Printf("- %-6s %3d pieces, %d nodes expanded\n", "Red", gameMetric.RedPieces, expansions[game.Red])
			fmt.Printf("%d moves, %d passes in %s\n", gameMetric.TotalMoves, gameMetric.Passes, gameMetric.Duration)
			return nil
		},
	}

	flags := cmd.Flags()
	for _, side := range []struct {
		name   string
		config *metrics.AgentConfig
	}{{"green", &green}, {"red", &red}} {
		flags.StringVar(&side.config.Algorithm, side.name+"-algorithm", "AlphaBeta", "Search algorithm of "+side.name)
		flags.StringVar(&side.config.Heuristic, side.name+"-heuristic", "Uniform", "Heuristic of "+side.name)
		flags.StringVar(&side.config.Difficulty, side.name+"-difficulty", "", "Difficulty of "+side.name+", overrides the depth")
		flags.IntVar(&side.config.Depth, side.name+"-depth", meta.SEARCH_DEPTH, "Search depth of "+side.name)
		flags.IntVar(&side.config.Goroutines, side.name+"-goroutines", meta.GO_ROUTINES, "Goroutine cap of "+side.name+" for ConcurrentNegaMax")
	}
	flags.IntVar(&size, "size", game.DefaultBoardSize, "Board size")
	flags.IntVar(&opening, "opening", meta.OPENING_PLIES, "Random plies before the bots take over")
	flags.Uint64Var(&seed, "seed", 1, "Seed of the random opening")
	flags.StringVar(&starting, "starting", "Green", "Player that moves first")

	return cmd
}
