package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tourney",
		Short:         "Play a tournament of Prisoner's Dilemma",
		Long:          "Runs an iterated Prisoner's Dilemma round robin between strategy players and prints the leaderboard. Every pair of players meets once per round; players remember what each opponent did in earlier rounds.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTournament,
	}

	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL env var)")
	root.PersistentFlags().String("env-file", ".env", "Load environment variables from this file if it exists")

	root.Flags().Int("rounds", 100, "Number of rounds in the tournament")
	addCountFlags(root.Flags())
	root.Flags().BoolP("oneplayer", "1", false, "Add one player of each type to the tournament")
	root.Flags().Int64("seed", 0, "Seed for random players (0 seeds from the clock)")
	root.Flags().BoolP("verbose", "v", false, "Print every game as it is played")
	root.Flags().Bool("json", false, "Print the leaderboard as JSON")

	root.AddCommand(newStrategiesCmd())
	return root
}
