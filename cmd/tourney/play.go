package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/config"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/logger"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/output"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/strategy"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/tournament"
	"github.com/spf13/cobra"
)

func runTournament(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	asJSON, _ := cmd.Flags().GetBool("json")

	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}

	log := logger.Init(cfg.LogLevel, cmd.ErrOrStderr(), color.NoColor)

	// Setup context with Ctrl+C cancellation
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	roster, err := strategy.NewRoster(cfg.Counts, cfg.OnePerKind, strategy.NewSource(cfg.Seed))
	if err != nil {
		return fmt.Errorf("building roster: %w", err)
	}

	engine, err := tournament.NewEngine(roster, tournament.WithLogger(log))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if cfg.Verbose {
		engine.OnGame = func(g tournament.Game) {
			output.PrintGame(out, g)
		}
	}

	log.Info().
		Int("players", cfg.Players()).
		Int("rounds", cfg.Rounds).
		Int64("seed", cfg.Seed).
		Msg("starting tournament")

	if err := engine.PlayTournament(ctx, cfg.Rounds); err != nil {
		return err
	}

	if asJSON {
		return output.WriteJSON(out, engine.RoundsPlayed(), engine.GamesPlayed(), engine.Standings())
	}
	output.PrintStandings(out, cfg.Rounds, engine.Standings())
	return nil
}
