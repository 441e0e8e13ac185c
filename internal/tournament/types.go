package tournament

import (
	"errors"

	"github.com/lorenzotomasdiez/prisoners-tourney/internal/game"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/strategy"
)

var (
	ErrUnknownPlayer   = errors.New("player is not on the roster")
	ErrSelfPlay        = errors.New("a player cannot play against itself")
	ErrDuplicatePlayer = errors.New("duplicate player id on roster")
)

// Outcome is one side of a game: who played, what they played, what they earned.
type Outcome struct {
	Player strategy.ID
	Name   string
	Move   game.Move
	Score  int
}

// Game is a single committed game between two players.
type Game struct {
	Round int
	A     Outcome
	B     Outcome
}

// Standing is a participant's place on the final leaderboard.
type Standing struct {
	Rank            int         `json:"rank"`
	Player          strategy.ID `json:"id"`
	Name            string      `json:"name"`
	Score           int         `json:"score"`
	CooperationRate float64     `json:"cooperation_rate"`
}
