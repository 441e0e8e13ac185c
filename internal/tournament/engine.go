package tournament

import (
	"context"
	"fmt"
	"reflect"

	"github.com/lorenzotomasdiez/prisoners-tourney/internal/game"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/strategy"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

type option func(e *Engine)

// WithLogger sets the logger the engine reports games and rounds to.
func WithLogger(logger zerolog.Logger) option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine runs an iterated Prisoner's Dilemma tournament over a fixed roster.
// Scores and move logs accumulate across every call to Play; nothing is reset.
type Engine struct {
	players []strategy.Strategy
	index   map[strategy.ID]int
	scores  map[strategy.ID]int
	moves   map[strategy.ID][]game.Move
	rounds  int
	games   int
	logger  zerolog.Logger
	OnGame  func(Game)
}

// NewEngine creates an engine for players. Each player must have a distinct ID.
func NewEngine(players []strategy.Strategy, options ...option) (*Engine, error) {
	e := &Engine{
		players: slices.Clone(players),
		index:   make(map[strategy.ID]int, len(players)),
		scores:  make(map[strategy.ID]int, len(players)),
		moves:   make(map[strategy.ID][]game.Move, len(players)),
		logger:  zerolog.Nop(),
	}
	for i, p := range players {
		if _, dup := e.index[p.ID()]; dup {
			return nil, fmt.Errorf("tournament: %w: %d (%s)", ErrDuplicatePlayer, p.ID(), p.Name())
		}
		e.index[p.ID()] = i
		e.scores[p.ID()] = 0
		e.moves[p.ID()] = nil
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Play runs one game between a and b. Both decide before either observes,
// so neither sees the other's simultaneous move. A game that fails leaves
// scores, move logs and strategy memories untouched.
func (e *Engine) Play(a, b strategy.Strategy) (Outcome, Outcome, error) {
	if err := e.checkPair(a, b); err != nil {
		return Outcome{}, Outcome{}, err
	}

	moveA := a.Decide(b.ID())
	moveB := b.Decide(a.ID())
	scoreA, scoreB, err := game.Payout(moveA, moveB)
	if err != nil {
		return Outcome{}, Outcome{}, fmt.Errorf("tournament: %s vs %s: %w", a.Name(), b.Name(), err)
	}

	e.scores[a.ID()] += scoreA
	e.scores[b.ID()] += scoreB
	e.moves[a.ID()] = append(e.moves[a.ID()], moveA)
	e.moves[b.ID()] = append(e.moves[b.ID()], moveB)
	a.Observe(b.ID(), moveB)
	b.Observe(a.ID(), moveA)
	e.games++

	g := Game{
		Round: e.rounds + 1,
		A:     Outcome{Player: a.ID(), Name: a.Name(), Move: moveA, Score: scoreA},
		B:     Outcome{Player: b.ID(), Name: b.Name(), Move: moveB, Score: scoreB},
	}
	e.logger.Debug().
		Int("round", g.Round).
		Str("a", a.Name()).
		Str("b", b.Name()).
		Stringer("move_a", moveA).
		Stringer("move_b", moveB).
		Int("score_a", scoreA).
		Int("score_b", scoreB).
		Msg("game played")
	if e.OnGame != nil {
		e.OnGame(g)
	}
	return g.A, g.B, nil
}

func (e *Engine) checkPair(a, b strategy.Strategy) error {
	for _, p := range []strategy.Strategy{a, b} {
		i, ok := e.index[p.ID()]
		if !ok || !sameInstance(e.players[i], p) {
			return fmt.Errorf("tournament: %w: %d (%s)", ErrUnknownPlayer, p.ID(), p.Name())
		}
	}
	if a.ID() == b.ID() {
		return fmt.Errorf("tournament: %w: %s", ErrSelfPlay, a.Name())
	}
	return nil
}

// sameInstance reports whether p is the roster entry itself. Strategies whose
// dynamic type cannot be compared with == are identified by ID alone.
func sameInstance(rostered, p strategy.Strategy) bool {
	if reflect.TypeOf(rostered) != reflect.TypeOf(p) {
		return false
	}
	if !reflect.TypeOf(p).Comparable() {
		return true
	}
	return rostered == p
}

// PlayRound plays every unordered pair of distinct players exactly once.
// Within a pair the player earlier on the roster plays as A.
//
// A failed game aborts the round: games already committed in it stay
// counted in GamesPlayed, but RoundsPlayed is not advanced, so games
// played afterwards still report the unfinished round's number.
func (e *Engine) PlayRound() error {
	for i := 0; i < len(e.players); i++ {
		for j := i + 1; j < len(e.players); j++ {
			if _, _, err := e.Play(e.players[i], e.players[j]); err != nil {
				return err
			}
		}
	}
	e.rounds++
	e.logger.Debug().Int("round", e.rounds).Int("games", e.games).Msg("round complete")
	return nil
}

// PlayTournament plays n rounds on top of whatever has already been played.
// ctx is checked between rounds.
func (e *Engine) PlayTournament(ctx context.Context, n int) error {
	if n < 0 {
		return fmt.Errorf("tournament: rounds must be >= 0, got %d", n)
	}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("tournament: %w", err)
		}
		if err := e.PlayRound(); err != nil {
			return err
		}
	}
	e.logger.Info().
		Int("players", len(e.players)).
		Int("rounds", e.rounds).
		Int("games", e.games).
		Msg("tournament complete")
	return nil
}

// Players returns the roster in its original order.
func (e *Engine) Players() []strategy.Strategy {
	return slices.Clone(e.players)
}

// Score returns the accumulated score for id.
func (e *Engine) Score(id strategy.ID) int {
	return e.scores[id]
}

// Moves returns a copy of the moves id has made, oldest first.
func (e *Engine) Moves(id strategy.ID) []game.Move {
	return slices.Clone(e.moves[id])
}

// RoundsPlayed returns the number of completed rounds.
func (e *Engine) RoundsPlayed() int { return e.rounds }

// GamesPlayed returns the number of committed games.
func (e *Engine) GamesPlayed() int { return e.games }

// Standings ranks players by score, highest first. Ties keep roster order.
func (e *Engine) Standings() []Standing {
	standings := make([]Standing, len(e.players))
	for i, p := range e.players {
		standings[i] = Standing{
			Player:          p.ID(),
			Name:            p.Name(),
			Score:           e.scores[p.ID()],
			CooperationRate: cooperationRate(e.moves[p.ID()]),
		}
	}
	slices.SortStableFunc(standings, func(a, b Standing) int {
		return b.Score - a.Score
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

func cooperationRate(moves []game.Move) float64 {
	if len(moves) == 0 {
		return 0
	}
	n := 0
	for _, m := range moves {
		if m == game.Cooperate {
			n++
		}
	}
	return float64(n) / float64(len(moves))
}
