package river

import (
	"errors"
	"fmt"
)

// Sentinel errors for state construction and moves.
var (
	// ErrNegativeCount is returned when a count would drop below zero.
	ErrNegativeCount = errors.New("river: negative occupant count")

	// ErrInvalidLoad is returned when a boat load is not 1 or 2 occupants.
	ErrInvalidLoad = errors.New("river: boat must carry one or two occupants")
)

// BoatCapacity is the maximum number of occupants per crossing.
const BoatCapacity = 2

// Side identifies a river bank.
type Side int

const (
	// Left is the starting bank.
	Left Side = iota
	// Right is the goal bank.
	Right
)

// Opposite returns the other bank.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Load is the boat's cargo for a single crossing.
type Load struct {
	Cannibals    int
	Missionaries int
}

// Size returns the number of occupants in the boat.
func (l Load) Size() int { return l.Cannibals + l.Missionaries }

// Validate checks that the load fits the boat and is not empty.
func (l Load) Validate() error {
	if l.Cannibals < 0 || l.Missionaries < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidLoad, l)
	}
	if n := l.Size(); n < 1 || n > BoatCapacity {
		return fmt.Errorf("%w: %s", ErrInvalidLoad, l)
	}
	return nil
}

// String renders the load as e.g. "1C+1M".
func (l Load) String() string {
	switch {
	case l.Cannibals > 0 && l.Missionaries > 0:
		return fmt.Sprintf("%dC+%dM", l.Cannibals, l.Missionaries)
	case l.Missionaries > 0:
		return fmt.Sprintf("%dM", l.Missionaries)
	default:
		return fmt.Sprintf("%dC", l.Cannibals)
	}
}
