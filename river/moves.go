package river

import "fmt"

// Loads lists every boat load in evaluation order.
var Loads = [...]Load{
	{Cannibals: 1},
	{Cannibals: 2},
	{Missionaries: 1},
	{Missionaries: 2},
	{Cannibals: 1, Missionaries: 1},
}

// Transition is one crossing: the load carried and the state it produces.
type Transition struct {
	Load Load
	To   State
}

// Moves returns every crossing possible from s in Loads order, skipping
// loads whose occupants are not on the boat-side bank. Resulting states
// may be invalid.
func Moves(s State) []Transition {
	c, m := s.BoatSide()
	out := make([]Transition, 0, len(Loads))
	for _, l := range Loads {
		if c < l.Cannibals || m < l.Missionaries {
			continue
		}
		next, err := s.Move(l.Cannibals, l.Missionaries)
		if err != nil {
			// availability was checked above
			panic(fmt.Sprintf("river: move %s from %s: %v", l, s, err))
		}
		out = append(out, Transition{Load: l, To: next})
	}
	return out
}

// Successors returns the states reachable from s in a single crossing,
// in Loads order, regardless of validity.
func Successors(s State) []State {
	moves := Moves(s)
	out := make([]State, len(moves))
	for i, t := range moves {
		out[i] = t.To
	}
	return out
}

// LoadBetween returns the load that turns from into to, or false if the
// two states are not one crossing apart.
func LoadBetween(from, to State) (Load, bool) {
	for _, t := range Moves(from) {
		if t.To == to {
			return t.Load, true
		}
	}
	return Load{}, false
}
