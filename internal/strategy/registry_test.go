package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func names(roster []Strategy) []string {
	out := make([]string, len(roster))
	for i, s := range roster {
		out[i] = s.Name()
	}
	return out
}

func TestNewRosterNamesAndOrder(t *testing.T) {
	roster, err := NewRoster(Counts{
		KindDefector:  1,
		KindRandom:    2,
		KindTitForTat: 1,
	}, false, &sequenceSource{values: []int{0}})
	require.NoError(t, err)

	require.Equal(t, []string{
		"RandomPlayer 1",
		"RandomPlayer 2",
		"TitForTatPlayer 1",
		"Defector 1",
	}, names(roster))

	for i, s := range roster {
		require.Equal(t, ID(i+1), s.ID())
	}
	require.IsType(t, &Random{}, roster[0])
	require.IsType(t, &TitForTat{}, roster[2])
	require.IsType(t, &Defector{}, roster[3])
}

func TestNewRosterOnePerKind(t *testing.T) {
	roster, err := NewRoster(Counts{KindCooperator: 1}, true, nil)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Cooperator 1",
		"RandomPlayer",
		"TitForTatPlayer",
		"EvilTitForTatPlayer",
		"Cooperator",
		"Defector",
		"TitForTwoTatsPlayer",
	}, names(roster))
}

func TestNewRosterEmpty(t *testing.T) {
	roster, err := NewRoster(nil, false, nil)
	require.NoError(t, err)
	require.Empty(t, roster)
}

func TestNewRosterRejectsNegativeCount(t *testing.T) {
	_, err := NewRoster(Counts{KindTitForTwoTats: -1}, false, nil)
	require.ErrorIs(t, err, ErrNegativeCount)
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New(Kind(42), 1, "", nil)
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Equal(t, "Kind(42)", Kind(42).String())
}

func TestKindFlags(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Kinds() {
		require.NotEmpty(t, k.Flag())
		require.Len(t, k.Shorthand(), 1)
		require.NotEmpty(t, k.Description())
		require.False(t, seen[k.Shorthand()], "duplicate shorthand %q", k.Shorthand())
		seen[k.Shorthand()] = true
	}
	require.Equal(t, "2", KindTitForTwoTats.Shorthand())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"TitForTatPlayer", KindTitForTat},
		{"titfortat", KindTitForTat},
		{"TITFORTWOTATS", KindTitForTwoTats},
		{" eviltitfortat ", KindEvilTitForTat},
		{"RandomPlayer", KindRandom},
		{"cooperator", KindCooperator},
		{"Defector", KindDefector},
		{"Player", KindPlayer},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, k := range Kinds() {
		got, err := ParseKind(k.Flag())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
}

func TestParseKindUnknown(t *testing.T) {
	for _, in := range []string{"", "grudger", "titfor"} {
		_, err := ParseKind(in)
		require.ErrorIs(t, err, ErrUnknownKind, "input %q", in)
	}
}
