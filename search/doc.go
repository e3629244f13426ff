// Package search runs an iteration-bounded breadth-first search over
// river-crossing states, de-duplicating against both the open and the
// closed list, and retraces the path to the first goal it dequeues.
//
// What
//
//   - Node wraps a river.State with its parent, its children in generation
//     order and a set of lifecycle Flags (open, closed, valid, solution,
//     root, copy).
//   - A node recognised as a duplicate becomes a copy of the canonical node
//     (SetOriginal) and mirrors every later flag transition of it.
//   - Engine owns the open list (FIFO, index 0 expands next) and the closed
//     list, and advances one expansion per Step.
//   - Hooks receive every lifecycle event: OnOpened, OnClosed,
//     OnFlagsChanged, OnMarkedSolution, OnMarkedDuplicate.
//
// Iteration
//
//	current := open[0]
//	if current.MarkSolution() { retrace; Solved }
//	else if current.MarkValid() { expand; AddToOpenList(each child) }
//	open → closed; current.Close(); iterations++
//	continue while open is non-empty and iterations < maxIterations,
//	otherwise Exhausted.
//
// Validity is evaluated when a node is dequeued, not when it is generated,
// so invalid states still occupy the frontier and, once closed, act as
// originals for later equal states.
//
// Determinism
//
//	river.Successors yields children in a fixed order and both lists keep
//	insertion order, so two runs from the same input produce identical
//	results.
//
// Complexity (S = reachable states)
//
//   - Time:   O(S²) per run; duplicate lookup is a linear scan of both lists.
//   - Memory: O(S·5) nodes; copies are kept for path and duplicate display.
//
// Usage
//
//	res, err := search.Solve(ctx, 3, 3, 30,
//		search.WithLogger(logger),
//		search.WithOnMarkedSolution(func(n *search.Node) { /* ... */ }),
//	)
//	if err != nil {
//		// ErrBadMaxIterations, ErrOptionViolation, river.ErrNegativeCount,
//		// or ctx.Err() when cancelled
//	}
//	if res.Solved() {
//		fmt.Println(res.Path)
//	}
//
// Stepwise driving, e.g. for a renderer pacing its own animation:
//
//	e := search.NewEngine(search.WithHooks(h))
//	_ = e.StartSearch(initial, 30)
//	for done := false; !done; {
//		done, _ = e.Step()
//	}
//
// Errors
//
//   - ErrBadMaxIterations    if maxIterations is negative.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative StepDelay).
//   - ErrNotStarted          if Step or Run is called on an idle engine.
//   - ErrNilNode, ErrAlreadyCopy, ErrSelfOriginal from SetOriginal misuse.
//   - ErrInvariantViolation  from Verify when the list invariant breaks.
package search
