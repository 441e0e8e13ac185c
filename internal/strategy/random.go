package strategy

import (
	"time"

	"github.com/lorenzotomasdiez/prisoners-tourney/internal/game"
	"golang.org/x/exp/rand"
)

// Source supplies the coin flips for Random. *rand.Rand satisfies it; tests
// substitute a fixed sequence.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded random source. A zero seed seeds from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}

// Random flips a fair coin for every decision.
type Random struct {
	Player
	src Source
}

// NewRandom creates a Random strategy drawing from src. A nil src is seeded
// from the clock.
func NewRandom(id ID, name string, src Source) *Random {
	if src == nil {
		src = NewSource(0)
	}
	return &Random{Player: newPlayer(id, name, KindRandom), src: src}
}

func (r *Random) Decide(ID) game.Move {
	if r.src.Intn(2) == 0 {
		return game.Defect
	}
	return game.Cooperate
}
