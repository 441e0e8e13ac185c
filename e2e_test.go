package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/lorenzotomasdiez/prisoners-tourney/internal/config"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/game"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/logger"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/output"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/strategy"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/tournament"
	"github.com/stretchr/testify/require"
)

func TestE2EFullTournament(t *testing.T) {
	for _, key := range []string{"TOURNEY_ROUNDS", "TOURNEY_SEED", "TOURNEY_VERBOSE", "TOURNEY_ONEPLAYER", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for _, k := range strategy.Kinds() {
		t.Setenv(config.CountEnvVar(k), "2")
	}
	t.Setenv("TOURNEY_ROUNDS", "50")
	t.Setenv("TOURNEY_SEED", "2024")
	t.Setenv("TOURNEY_ONEPLAYER", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 18, cfg.Players())

	var logs bytes.Buffer
	log := logger.Init(cfg.LogLevel, &logs, true)

	roster, err := strategy.NewRoster(cfg.Counts, cfg.OnePerKind, strategy.NewSource(cfg.Seed))
	require.NoError(t, err)
	require.Len(t, roster, 18)

	engine, err := tournament.NewEngine(roster, tournament.WithLogger(log))
	require.NoError(t, err)

	var trace bytes.Buffer
	engine.OnGame = func(g tournament.Game) { output.PrintGame(&trace, g) }

	require.NoError(t, engine.PlayTournament(context.Background(), cfg.Rounds))

	n := len(roster)
	gamesPerRound := n * (n - 1) / 2
	require.Equal(t, cfg.Rounds*gamesPerRound, engine.GamesPlayed())
	require.Equal(t, cfg.Rounds*gamesPerRound, strings.Count(trace.String(), "\n"))

	total := 0
	for _, p := range roster {
		moves := engine.Moves(p.ID())
		require.Len(t, moves, cfg.Rounds*(n-1), "%s should play every other player every round", p.Name())
		for _, m := range moves {
			require.True(t, m.Valid())
		}
		total += engine.Score(p.ID())
	}
	require.Greater(t, total, 0)

	// Cooperators never defect and never score above 3 per game.
	for _, p := range roster {
		if _, ok := p.(*strategy.Cooperator); ok {
			for _, m := range engine.Moves(p.ID()) {
				require.Equal(t, game.Cooperate, m)
			}
			require.LessOrEqual(t, engine.Score(p.ID()), 3*cfg.Rounds*(n-1))
		}
	}

	standings := engine.Standings()
	require.Len(t, standings, n)
	for i := 1; i < len(standings); i++ {
		require.GreaterOrEqual(t, standings[i-1].Score, standings[i].Score)
	}

	var board bytes.Buffer
	output.PrintStandings(&board, cfg.Rounds, standings)
	lines := strings.Split(strings.TrimSpace(board.String()), "\n")
	require.Len(t, lines, n+1)
	require.Equal(t, "After 50 rounds, the scores are:", lines[0])
	require.True(t, strings.HasPrefix(lines[1], " 1: "))
	require.True(t, strings.HasPrefix(lines[n], "18: "))

	var doc bytes.Buffer
	require.NoError(t, output.WriteJSON(&doc, engine.RoundsPlayed(), engine.GamesPlayed(), standings))
	var parsed struct {
		Standings []tournament.Standing `json:"standings"`
	}
	require.NoError(t, json.Unmarshal(doc.Bytes(), &parsed))
	require.Equal(t, standings, parsed.Standings)

	require.Contains(t, logs.String(), "tournament complete")
}
