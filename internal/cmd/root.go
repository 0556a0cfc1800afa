package cmd

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "reversi",
		Short: "Play and study Reversi search bots",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case cmd.Flag("trace").Changed:
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			case cmd.Flag("debug").Changed:
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("debug", "d", false, "Show every move and search")

	root.AddCommand(Match())
	root.AddCommand(Experiment())
	root.AddCommand(Compare())

	return root
}

// startSpinner shows progress on stderr unless debug logging already does.
func startSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		s.Start()
	}
	return s
}
