package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/searcher"
)

func Compare() *cobra.Command {
	var (
		comparison experiments.Comparison
		heuristic  string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Check that every algorithm picks the same moves",
		Long: heredoc.Doc(`compare searches random positions with every algorithm
			at the same depth and heuristic, and reports the nodes each
			one expanded. All algorithms must choose the move MinMax
			chooses; any disagreement is an error.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := game.ParseHeuristic(heuristic)
			if err != nil {
				return err
			}
			comparison.Heuristic = h

			s := startSpinner("comparing...")
			records := experiments.Compare(comparison)
			s.Stop()

			if out != "" {
				writer, err := metrics.NewWriter(out, "compare")
				if err != nil {
					return err
				}
				if err := writer.WriteComparisonRecords(records); err != nil {
					return err
				}
				fmt.Printf("Records in %s\n", writer.Dir())
			}

			expansions := map[string]int64{}
			for _, r := range records {
				expansions[r.Algorithm] += r.Expansions
			}
			for _, algorithm := range searcher.Algorithms {
				fmt.Printf("- %-18s %d nodes expanded\n", algorithm, expansions[algorithm.String()])
			}

			if n := experiments.Disagreements(records); n > 0 {
				return fmt.Errorf("%d of %d searches disagree with MinMax", n, len(records))
			}
			fmt.Printf("All algorithms agree on %d positions\n", comparison.Positions)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&comparison.Positions, "positions", "p", meta.COMPARE_POSITIONS, "Positions to search")
	flags.IntVar(&comparison.MaxPlies, "plies", meta.COMPARE_MAX_PLIES, "Most random plies played to reach a position")
	flags.IntVar(&comparison.BoardSize, "size", game.DefaultBoardSize, "Board size")
	flags.IntVar(&comparison.Depth, "depth", meta.SEARCH_DEPTH, "Search depth")
	flags.StringVar(&heuristic, "heuristic", "Uniform", "Heuristic")
	flags.Uint64Var(&comparison.Seed, "seed", 1, "Seed of the random positions")
	flags.StringVarP(&out, "out", "o", "", "Also store the records under this directory")

	return cmd
}
