package river

import "fmt"

// State is one configuration of the puzzle. It is immutable; every
// operation returns a new value.
type State struct {
	CannibalsLeft     int
	MissionariesLeft  int
	CannibalsRight    int
	MissionariesRight int
	Boat              Side
}

// Initial returns the starting state: everybody and the boat on the left bank.
func Initial(cannibals, missionaries int) (State, error) {
	if cannibals < 0 || missionaries < 0 {
		return State{}, fmt.Errorf("%w: cannibals=%d missionaries=%d",
			ErrNegativeCount, cannibals, missionaries)
	}
	return State{
		CannibalsLeft:    cannibals,
		MissionariesLeft: missionaries,
		Boat:             Left,
	}, nil
}

// Totals returns the number of cannibals and missionaries across both banks.
func (s State) Totals() (cannibals, missionaries int) {
	return s.CannibalsLeft + s.CannibalsRight, s.MissionariesLeft + s.MissionariesRight
}

// Check reports ErrNegativeCount if any bank holds a negative count.
func (s State) Check() error {
	if s.CannibalsLeft < 0 || s.MissionariesLeft < 0 ||
		s.CannibalsRight < 0 || s.MissionariesRight < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeCount, s)
	}
	return nil
}

// BoatSide returns the occupants of the bank the boat is moored on.
func (s State) BoatSide() (cannibals, missionaries int) {
	if s.Boat == Left {
		return s.CannibalsLeft, s.MissionariesLeft
	}
	return s.CannibalsRight, s.MissionariesRight
}

// Move carries dc cannibals and dm missionaries from the boat-side bank to
// the opposite bank and flips the boat. The result is not checked for
// validity.
func (s State) Move(dc, dm int) (State, error) {
	load := Load{Cannibals: dc, Missionaries: dm}
	if err := load.Validate(); err != nil {
		return State{}, err
	}
	c, m := s.BoatSide()
	if c < dc || m < dm {
		return State{}, fmt.Errorf("%w: cannot carry %s from %s bank of %s",
			ErrNegativeCount, load, s.Boat, s)
	}

	next := s
	if s.Boat == Left {
		next.CannibalsLeft -= dc
		next.MissionariesLeft -= dm
		next.CannibalsRight += dc
		next.MissionariesRight += dm
	} else {
		next.CannibalsRight -= dc
		next.MissionariesRight -= dm
		next.CannibalsLeft += dc
		next.MissionariesLeft += dm
	}
	next.Boat = s.Boat.Opposite()

	return next, nil
}

// IsValid reports whether, on each bank, missionaries are either absent or
// not outnumbered by cannibals.
func (s State) IsValid() bool {
	return safe(s.CannibalsLeft, s.MissionariesLeft) &&
		safe(s.CannibalsRight, s.MissionariesRight)
}

func safe(cannibals, missionaries int) bool {
	return missionaries == 0 || cannibals <= missionaries
}

// IsSolution reports whether the left bank is empty.
func (s State) IsSolution() bool {
	return s.CannibalsLeft == 0 && s.MissionariesLeft == 0
}

// Equal reports whether all five fields match.
func (s State) Equal(o State) bool {
	return s == o
}

// String renders the state as "{C:3 M:3 | C:0 M:0 boat=left}".
func (s State) String() string {
	return fmt.Sprintf("{C:%d M:%d | C:%d M:%d boat=%s}",
		s.CannibalsLeft, s.MissionariesLeft,
		s.CannibalsRight, s.MissionariesRight, s.Boat)
}
