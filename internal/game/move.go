package game

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is returned when a value outside {Cooperate, Defect} is scored.
var ErrInvalidMove = errors.New("move must be either COOPERATE or DEFECT")

// Move is a participant's single-game choice.
type Move int

const (
	Cooperate Move = iota
	Defect
)

// Valid reports whether m is Cooperate or Defect.
func (m Move) Valid() bool {
	return m == Cooperate || m == Defect
}

func (m Move) String() string {
	switch m {
	case Cooperate:
		return "COOPERATE"
	case Defect:
		return "DEFECT"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Invert returns the opposite move. Invalid moves are returned unchanged.
func (m Move) Invert() Move {
	switch m {
	case Cooperate:
		return Defect
	case Defect:
		return Cooperate
	default:
		return m
	}
}
