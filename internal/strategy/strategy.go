package strategy

import (
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/game"
	"golang.org/x/exp/slices"
)

// ID identifies a tournament participant. Two strategies with the same
// name are still distinct participants when their IDs differ.
type ID int

// Strategy decides a move against an opponent from what it has seen that
// opponent play, and records the opponent's moves as the games go by.
type Strategy interface {
	ID() ID
	Name() string
	Decide(opponent ID) game.Move
	Observe(opponent ID, move game.Move)
}

// Player is the baseline strategy and always defects. The other strategies
// embed it for identity and opponent memory.
type Player struct {
	id     ID
	name   string
	memory map[ID][]game.Move
}

// NewPlayer creates a baseline Player. An empty name falls back to "Player".
func NewPlayer(id ID, name string) *Player {
	p := newPlayer(id, name, KindPlayer)
	return &p
}

func newPlayer(id ID, name string, kind Kind) Player {
	if name == "" {
		name = kind.String()
	}
	return Player{id: id, name: name, memory: make(map[ID][]game.Move)}
}

func (p *Player) ID() ID       { return p.id }
func (p *Player) Name() string { return p.name }

// Decide always defects.
func (p *Player) Decide(ID) game.Move { return game.Defect }

// Observe appends the opponent's move to this player's memory of them.
func (p *Player) Observe(opponent ID, move game.Move) {
	if p.memory == nil {
		p.memory = make(map[ID][]game.Move)
	}
	p.memory[opponent] = append(p.memory[opponent], move)
}

// Remember returns a copy of the moves observed from opponent, oldest first.
// An opponent never seen yields an empty history.
func (p *Player) Remember(opponent ID) []game.Move {
	return slices.Clone(p.recall(opponent))
}

func (p *Player) recall(opponent ID) []game.Move {
	return p.memory[opponent]
}

// Defector always defects.
type Defector struct{ Player }

func NewDefector(id ID, name string) *Defector {
	return &Defector{Player: newPlayer(id, name, KindDefector)}
}

func (d *Defector) Decide(ID) game.Move { return game.Defect }

// Cooperator always cooperates.
type Cooperator struct{ Player }

func NewCooperator(id ID, name string) *Cooperator {
	return &Cooperator{Player: newPlayer(id, name, KindCooperator)}
}

func (c *Cooperator) Decide(ID) game.Move { return game.Cooperate }

// TitForTat cooperates first, then repeats the opponent's last move.
type TitForTat struct{ Player }

func NewTitForTat(id ID, name string) *TitForTat {
	return &TitForTat{Player: newPlayer(id, name, KindTitForTat)}
}

func (t *TitForTat) Decide(opponent ID) game.Move {
	seen := t.recall(opponent)
	if len(seen) == 0 {
		return game.Cooperate
	}
	return seen[len(seen)-1]
}

// TitForTwoTats only retaliates after two consecutive defections.
type TitForTwoTats struct{ Player }

func NewTitForTwoTats(id ID, name string) *TitForTwoTats {
	return &TitForTwoTats{Player: newPlayer(id, name, KindTitForTwoTats)}
}

func (t *TitForTwoTats) Decide(opponent ID) game.Move {
	seen := t.recall(opponent)
	if len(seen) < 2 {
		return game.Cooperate
	}
	if seen[len(seen)-1] == game.Defect && seen[len(seen)-2] == game.Defect {
		return game.Defect
	}
	return game.Cooperate
}

// EvilTitForTat cooperates first, then plays the opposite of the
// opponent's last move.
type EvilTitForTat struct{ Player }

func NewEvilTitForTat(id ID, name string) *EvilTitForTat {
	return &EvilTitForTat{Player: newPlayer(id, name, KindEvilTitForTat)}
}

func (e *EvilTitForTat) Decide(opponent ID) game.Move {
	seen := e.recall(opponent)
	if len(seen) == 0 {
		return game.Cooperate
	}
	return seen[len(seen)-1].Invert()
}
