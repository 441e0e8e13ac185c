package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/game"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/strategy"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/tournament"
)

var (
	bold     = color.New(color.Bold).SprintFunc()
	roundTag = color.New(color.FgYellow).SprintFunc()
	coopTag  = color.New(color.FgGreen).SprintFunc()
	defTag   = color.New(color.FgRed).SprintFunc()
)

// ColorMove renders a move in green for cooperation and red for defection.
func ColorMove(m game.Move) string {
	if m == game.Cooperate {
		return coopTag(m.String())
	}
	return defTag(m.String())
}

// PrintGame writes a one-line trace of a committed game.
func PrintGame(w io.Writer, g tournament.Game) {
	fmt.Fprintf(w, "%s %s %s (+%d) vs %s %s (+%d)\n",
		roundTag(fmt.Sprintf("[Round %d]", g.Round)),
		bold(g.A.Name), ColorMove(g.A.Move), g.A.Score,
		bold(g.B.Name), ColorMove(g.B.Move), g.B.Score,
	)
}

// PrintStandings writes the leaderboard, one "rank: name: score" line per
// player, after a summary line naming the round count.
func PrintStandings(w io.Writer, rounds int, standings []tournament.Standing) {
	fmt.Fprintf(w, "After %d rounds, the scores are:\n", rounds)
	for _, s := range standings {
		fmt.Fprintf(w, "%2d: %s: %d\n", s.Rank, s.Name, s.Score)
	}
}

type report struct {
	Rounds    int                   `json:"rounds"`
	Games     int                   `json:"games"`
	Standings []tournament.Standing `json:"standings"`
}

// WriteJSON writes the leaderboard as an indented JSON document.
func WriteJSON(w io.Writer, rounds, games int, standings []tournament.Standing) error {
	if standings == nil {
		standings = []tournament.Standing{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report{Rounds: rounds, Games: games, Standings: standings}); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// PrintStrategies lists the available strategy kinds with their flags.
func PrintStrategies(w io.Writer, kinds []strategy.Kind) {
	for _, k := range kinds {
		fmt.Fprintf(w, "  -%s, --%-15s %s: %s\n", k.Shorthand(), k.Flag(), bold(k.String()), k.Description())
	}
}
