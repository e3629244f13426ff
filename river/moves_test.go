package river_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivercross/river"
)

func TestSuccessors_Order(t *testing.T) {
	s, _ := river.Initial(3, 3)
	got := river.Successors(s)
	want := []river.State{
		{CannibalsLeft: 2, MissionariesLeft: 3, CannibalsRight: 1, MissionariesRight: 0, Boat: river.Right},
		{CannibalsLeft: 1, MissionariesLeft: 3, CannibalsRight: 2, MissionariesRight: 0, Boat: river.Right},
		{CannibalsLeft: 3, MissionariesLeft: 2, CannibalsRight: 0, MissionariesRight: 1, Boat: river.Right},
		{CannibalsLeft: 3, MissionariesLeft: 1, CannibalsRight: 0, MissionariesRight: 2, Boat: river.Right},
		{CannibalsLeft: 2, MissionariesLeft: 2, CannibalsRight: 1, MissionariesRight: 1, Boat: river.Right},
	}
	require.Equal(t, want, got)
}

// TestSuccessors_KeepsInvalid checks that generation does not filter
// illegal states.
func TestSuccessors_KeepsInvalid(t *testing.T) {
	s, _ := river.Initial(3, 3)
	invalid := 0
	for _, next := range river.Successors(s) {
		if !next.IsValid() {
			invalid++
		}
	}
	require.Equal(t, 2, invalid) // 1M and 2M leave missionaries outnumbered
}

func TestSuccessors_Availability(t *testing.T) {
	cases := []struct {
		name string
		s    river.State
		want []river.Load
	}{
		{"one cannibal", river.State{CannibalsLeft: 1}, []river.Load{{Cannibals: 1}}},
		{"one missionary", river.State{MissionariesLeft: 1}, []river.Load{{Missionaries: 1}}},
		{"one of each", river.State{CannibalsLeft: 1, MissionariesLeft: 1},
			[]river.Load{{Cannibals: 1}, {Missionaries: 1}, {Cannibals: 1, Missionaries: 1}}},
		{"boat on the empty bank", river.State{CannibalsLeft: 2, MissionariesLeft: 2, Boat: river.Right}, nil},
		{"from the right", river.State{CannibalsRight: 2, Boat: river.Right},
			[]river.Load{{Cannibals: 1}, {Cannibals: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []river.Load
			for _, m := range river.Moves(tc.s) {
				got = append(got, m.Load)
			}
			require.Equal(t, tc.want, got)
			require.Len(t, river.Successors(tc.s), len(tc.want))
		})
	}
}

// TestSuccessors_PreciseValidity pins the single-missionary move from
// {2,1,0,0,left}: the left bank keeps no missionaries and the right bank
// has no cannibals, so the result is legal.
func TestSuccessors_PreciseValidity(t *testing.T) {
	s := river.State{CannibalsLeft: 2, MissionariesLeft: 1, Boat: river.Left}
	moves := river.Moves(s)
	require.Len(t, moves, 4)

	oneM := moves[2]
	require.Equal(t, river.Load{Missionaries: 1}, oneM.Load)
	require.Equal(t, river.State{CannibalsLeft: 2, MissionariesLeft: 0, CannibalsRight: 0, MissionariesRight: 1, Boat: river.Right}, oneM.To)
	require.True(t, oneM.To.IsValid())

	// 1C leaves one cannibal with one missionary on the left: legal
	require.True(t, moves[0].To.IsValid())
	// 1C+1M leaves one cannibal alone on the left: legal
	require.True(t, moves[3].To.IsValid())
}

func TestLoadBetween(t *testing.T) {
	s, _ := river.Initial(3, 3)
	next, _ := s.Move(2, 0)
	l, ok := river.LoadBetween(s, next)
	require.True(t, ok)
	require.Equal(t, "2C", l.String())

	_, ok = river.LoadBetween(s, s)
	require.False(t, ok)
}

func TestLoad(t *testing.T) {
	require.Equal(t, "1C+1M", river.Load{Cannibals: 1, Missionaries: 1}.String())
	require.Equal(t, "2M", river.Load{Missionaries: 2}.String())
	require.NoError(t, river.Load{Cannibals: 2}.Validate())
	require.ErrorIs(t, river.Load{}.Validate(), river.ErrInvalidLoad)
}
