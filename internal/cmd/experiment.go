package cmd

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/meta"
)

func Experiment() *cobra.Command {
	var (
		out    string
		games  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "experiment name-or-setup-file",
		Short: "Run a series of bot-vs-bot games and store the records",
		Long: heredoc.Docf(`experiment plays every match up of a setup and writes
			the agent configs, game records and move records to a new
			directory under the output directory.

			The argument is either a built-in experiment (%s) or a
			YAML setup file listing the agents and their match ups.`,
			strings.Join(experiments.SetupNames(), ", ")),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			setup, err := loadSetup(args[0])
			if err != nil {
				return err
			}
			if games > 0 {
				setup.Games = games
			}
			formats, err := parseFormats(format)
			if err != nil {
				return err
			}

			writer, err := metrics.NewWriter(out, setup.Name, formats...)
			if err != nil {
				return err
			}

			s := startSpinner(fmt.Sprintf("running %s...", setup.Name))
			result, err := experiments.Run(setup, writer)
			s.Stop()
			if err != nil {
				return err
			}

			fmt.Printf("Played %d games, records in %s\n", len(result.Games), writer.Dir())
			for _, agent := range setup.Agents {
				fmt.Printf("- agent %d (%s): %d wins\n", agent.ID, agent.Algorithm, result.Wins(agent.ID))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", meta.OutputDirectory, "Output directory")
	flags.IntVarP(&games, "games", "n", 0, "Games per match up, overriding the setup")
	flags.StringVar(&format, "format", "both", "Record format: csv, parquet or both")

	return cmd
}

func loadSetup(arg string) (*experiments.Setup, error) {
	if setup, ok := experiments.Setups[arg]; ok {
		return &setup, nil
	}
	return experiments.LoadSetup(arg)
}

func parseFormats(s string) ([]metrics.Format, error) {
	switch strings.ToLower(s) {
	case "csv":
		return []metrics.Format{metrics.CSV}, nil
	case "parquet":
		return []metrics.Format{metrics.Parquet}, nil
	case "both":
		return []metrics.Format{metrics.CSV, metrics.Parquet}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", s)
	}
}
