package main

import (
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/output"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/strategy"
	"github.com/spf13/cobra"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies [name]",
		Short: "List the strategies that can enter a tournament",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := strategy.Kinds()
			if len(args) == 1 {
				k, err := strategy.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []strategy.Kind{k}
			}
			output.PrintStrategies(cmd.OutOrStdout(), kinds)
			return nil
		},
	}
}
