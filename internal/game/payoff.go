package game

import "fmt"

// payoffs is indexed [moveA][moveB] and holds (scoreA, scoreB).
var payoffs = [2][2][2]int{
	Cooperate: {
		Cooperate: {3, 3},
		Defect:    {0, 5},
	},
	Defect: {
		Cooperate: {5, 0},
		Defect:    {1, 1},
	},
}

// Payout returns the scores awarded to two players for their simultaneous moves.
func Payout(a, b Move) (int, int, error) {
	if !a.Valid() {
		return 0, 0, fmt.Errorf("game: %w, got %d", ErrInvalidMove, int(a))
	}
	if !b.Valid() {
		return 0, 0, fmt.Errorf("game: %w, got %d", ErrInvalidMove, int(b))
	}
	p := payoffs[a][b]
	return p[0], p[1], nil
}
