package strategy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNegativeCount is returned when a roster asks for fewer than zero players of a kind.
	ErrNegativeCount = errors.New("strategy count must be >= 0")
	ErrUnknownKind   = errors.New("unknown strategy kind")
)

// Kind names a strategy variant.
type Kind int

const (
	KindRandom Kind = iota
	KindTitForTat
	KindEvilTitForTat
	KindCooperator
	KindDefector
	KindTitForTwoTats
	KindPlayer
)

type kindInfo struct {
	name        string
	flag        string
	shorthand   string
	description string
}

var kinds = map[Kind]kindInfo{
	KindRandom:        {"RandomPlayer", "random", "r", "cooperates or defects at random, each choice independent"},
	KindTitForTat:     {"TitForTatPlayer", "titfortat", "t", "cooperates first, then repeats the opponent's last move"},
	KindEvilTitForTat: {"EvilTitForTatPlayer", "eviltitfortat", "e", "cooperates first, then inverts the opponent's last move"},
	KindCooperator:    {"Cooperator", "cooperator", "c", "always cooperates"},
	KindDefector:      {"Defector", "defector", "d", "always defects"},
	KindTitForTwoTats: {"TitForTwoTatsPlayer", "titfortwotats", "2", "defects only after two consecutive opponent defections"},
	KindPlayer:        {"Player", "", "", "baseline player, always defects"},
}

// Kinds returns the shipped strategy kinds in roster order.
func Kinds() []Kind {
	return []Kind{KindRandom, KindTitForTat, KindEvilTitForTat, KindCooperator, KindDefector, KindTitForTwoTats}
}

// String returns the default display name for the kind.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Flag returns the long command-line flag that counts players of this kind.
func (k Kind) Flag() string { return kinds[k].flag }

// Shorthand returns the one-letter flag alias.
func (k Kind) Shorthand() string { return kinds[k].shorthand }

// Description returns a one-line summary of how the kind decides.
func (k Kind) Description() string { return kinds[k].description }

// ParseKind accepts a default name ("TitForTatPlayer") or a flag name
// ("titfortat"), case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for k, info := range kinds {
		if strings.EqualFold(s, info.name) || (info.flag != "" && strings.EqualFold(s, info.flag)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("strategy: %w: %q", ErrUnknownKind, s)
}

// New creates a strategy of the given kind. src is only used by KindRandom.
func New(k Kind, id ID, name string, src Source) (Strategy, error) {
	switch k {
	case KindRandom:
		return NewRandom(id, name, src), nil
	case KindTitForTat:
		return NewTitForTat(id, name), nil
	case KindEvilTitForTat:
		return NewEvilTitForTat(id, name), nil
	case KindCooperator:
		return NewCooperator(id, name), nil
	case KindDefector:
		return NewDefector(id, name), nil
	case KindTitForTwoTats:
		return NewTitForTwoTats(id, name), nil
	case KindPlayer:
		return NewPlayer(id, name), nil
	default:
		return nil, fmt.Errorf("strategy: %w: %d", ErrUnknownKind, int(k))
	}
}

// Counts holds how many players of each kind a roster should contain.
type Counts map[Kind]int

// NewRoster builds a roster with counts[k] players of each kind, named
// "{Kind} {i}" from 1, in Kinds() order. When onePerKind is set, one
// default-named player of every kind is appended after them. IDs are
// assigned sequentially from 1. All Random players share src.
func NewRoster(counts Counts, onePerKind bool, src Source) ([]Strategy, error) {
	for k, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("strategy: %s: %w, got %d", k, ErrNegativeCount, n)
		}
	}

	var roster []Strategy
	next := ID(1)
	add := func(k Kind, name string) error {
		s, err := New(k, next, name, src)
		if err != nil {
			return err
		}
		roster = append(roster, s)
		next++
		return nil
	}

	for _, k := range Kinds() {
		for i := 0; i < counts[k]; i++ {
			if err := add(k, fmt.Sprintf("%s %d", k, i+1)); err != nil {
				return nil, err
			}
		}
	}
	if onePerKind {
		for _, k := range Kinds() {
			if err := add(k, ""); err != nil {
				return nil, err
			}
		}
	}
	return roster, nil
}
