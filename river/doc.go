// Package river models the missionaries-and-cannibals crossing puzzle:
// an immutable State of both banks plus the boat, the legality and goal
// predicates over it, and the fixed-order move generator that produces
// candidate successor states.
//
// What
//
//   - State holds the occupant counts of the left and right bank and the
//     side the boat is moored on. It is a comparable value: == and Equal
//     agree, and !Equal is the exact negation of Equal.
//   - IsValid reports whether no bank has its missionaries outnumbered
//     (a bank with zero missionaries is always safe).
//   - IsSolution reports whether everybody has reached the right bank.
//   - Move transfers a boat load from the boat-side bank to the opposite
//     bank and flips the boat. It never checks validity.
//   - Successors evaluates the five loads in Loads order and returns every
//     reachable state, valid or not.
//
// Determinism
//
//	Loads is evaluated in the fixed order 1C, 2C, 1M, 2M, 1C+1M, so the
//	successor sequence of any state is fully reproducible.
//
// Errors
//
//   - ErrNegativeCount  if a constructor receives a negative total or a move
//     would leave a bank with a negative count.
//   - ErrInvalidLoad    if a load carries fewer than 1 or more than 2
//     occupants, or a negative component.
//
// Usage
//
//	s, err := river.Initial(3, 3)
//	if err != nil {
//		// handle ErrNegativeCount
//	}
//	for _, next := range river.Successors(s) {
//		fmt.Println(next, next.IsValid())
//	}
package river
