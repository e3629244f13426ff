package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rivercross/river"
)

// Engine drives one breadth-first search at a time over puzzle states.
//
// The engine is a state machine Idle → Running → {Solved, Exhausted}, with
// Aborted reached only through a cancelled Run. It is not safe for
// concurrent use; distinct engines are independent.
type Engine struct {
	opts Options
	log  *slog.Logger

	runID  uuid.UUID
	status Status

	forest *forest
	root   *Node
	open   []*Node
	closed []*Node
	goal   []*Node // root first

	iterations    int
	maxIterations int
	stats         Stats
}

// NewEngine returns an idle engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		opts: o,
		log:  o.Logger,
	}
}

// Solve builds the initial state for the given totals and runs a full
// search with a fresh engine.
func Solve(ctx context.Context, cannibals, missionaries, maxIterations int, opts ...Option) (Result, error) {
	initial, err := river.Initial(cannibals, missionaries)
	if err != nil {
		return Result{}, err
	}
	e := NewEngine(opts...)
	if err := e.StartSearch(initial, maxIterations); err != nil {
		return Result{}, err
	}
	return e.Run(ctx)
}

// StartSearch discards any previous run and starts a new one from initial.
// Invalid input is rejected before any engine state is touched.
func (e *Engine) StartSearch(initial river.State, maxIterations int) error {
	if e.opts.err != nil {
		return e.opts.err
	}
	if maxIterations < 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIterations, maxIterations)
	}
	if err := initial.Check(); err != nil {
		return err
	}

	e.Reset()
	e.runID = uuid.New()
	e.log = e.opts.Logger.With("run_id", e.runID.String())
	e.maxIterations = maxIterations
	e.root = NewRoot(initial, e.opts.Hooks)
	e.forest = e.root.forest
	e.status = Running

	e.log.Info("search started",
		"initial", initial.String(),
		"max_iterations", maxIterations)

	e.open = append(e.open, e.root)
	e.root.Open()
	e.checkContinue()
	return nil
}

// Reset discards the lists and the node set and returns to Idle.
func (e *Engine) Reset() {
	e.status = Idle
	e.forest = nil
	e.root = nil
	e.open = nil
	e.closed = nil
	e.goal = nil
	e.iterations = 0
	e.maxIterations = 0
	e.stats = Stats{}
	e.runID = uuid.Nil
	e.log = e.opts.Logger
}

// Step performs one iteration: dequeue the earliest open node, test it for
// the goal, expand it if it is valid, and close it. It reports whether the
// run has reached a terminal status.
func (e *Engine) Step() (bool, error) {
	switch {
	case e.status == Idle:
		return false, ErrNotStarted
	case e.status.Terminal():
		return true, nil
	}

	current := e.open[0]
	if current.MarkSolution() {
		e.solve(current)
		return true, nil
	}

	if current.MarkValid() {
		if err := e.expand(current); err != nil {
			return false, err
		}
	} else {
		e.stats.Invalid++
		e.log.Debug("skipping invalid node",
			"iteration", e.iterations,
			"node", current.id,
			"state", current.state.String())
	}

	e.open = e.open[1:]
	e.closed = append(e.closed, current)
	current.Close()
	e.iterations++

	return e.checkContinue(), nil
}

// Run steps until the run is terminal or ctx is cancelled. Cancellation is
// checked between iterations; a cancelled run discards its lists and nodes
// and ends Aborted with ctx's error.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if e.status == Idle {
		return e.Result(), ErrNotStarted
	}

	var tick *time.Ticker
	if e.opts.StepDelay > 0 {
		tick = time.NewTicker(e.opts.StepDelay)
		defer tick.Stop()
	}

	for !e.status.Terminal() {
		select {
		case <-ctx.Done():
			return e.abort(ctx.Err())
		default:
		}

		if _, err := e.Step(); err != nil {
			return e.Result(), err
		}

		if tick != nil && !e.status.Terminal() {
			select {
			case <-ctx.Done():
				return e.abort(ctx.Err())
			case <-tick.C:
			}
		}
	}
	return e.Result(), nil
}

// AddToOpenList de-duplicates child against the closed list, then the open
// list, first match winning. A match makes child a copy of it and child
// stays out of the frontier; otherwise child is enqueued and opened.
// It reports whether child was enqueued.
func (e *Engine) AddToOpenList(child *Node) (bool, error) {
	if child == nil {
		return false, ErrNilNode
	}

	match := find(e.closed, child.state)
	if match == nil {
		match = find(e.open, child.state)
	}
	if match != nil {
		if err := child.SetOriginal(match); err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		e.stats.Duplicates++
		return false, nil
	}

	e.open = append(e.open, child)
	child.Open()
	return true, nil
}

// Verify checks that no state appears twice in the open list, twice in the
// closed list, or in both. A non-nil error always indicates a defect.
func (e *Engine) Verify() error {
	seen := make(map[river.State]string, len(e.open)+len(e.closed))
	for _, list := range []struct {
		name  string
		nodes []*Node
	}{
		{"closed", e.closed},
		{"open", e.open},
	} {
		for _, n := range list.nodes {
			if prev, ok := seen[n.state]; ok {
				return fmt.Errorf("%w: state %s in %s and %s lists",
					ErrInvariantViolation, n.state, prev, list.name)
			}
			seen[n.state] = list.name
		}
	}
	return nil
}

// Status returns the run status.
func (e *Engine) Status() Status { return e.status }

// Iterations returns the number of completed iterations.
func (e *Engine) Iterations() int { return e.iterations }

// Root returns the root node of the current run, or nil when idle.
func (e *Engine) Root() *Node { return e.root }

// RunID identifies the current run; uuid.Nil when idle.
func (e *Engine) RunID() uuid.UUID { return e.runID }

// CurrentFrontier returns a snapshot of the open list in expansion order.
func (e *Engine) CurrentFrontier() []*Node {
	out := make([]*Node, len(e.open))
	copy(out, e.open)
	return out
}

// Closed returns a snapshot of the closed list in closing order.
func (e *Engine) Closed() []*Node {
	out := make([]*Node, len(e.closed))
	copy(out, e.closed)
	return out
}

// Nodes returns every node created in the current run, by id.
func (e *Engine) Nodes() []*Node {
	if e.forest == nil {
		return nil
	}
	out := make([]*Node, len(e.forest.nodes))
	copy(out, e.forest.nodes)
	return out
}

// Result reports the run outcome. Path is set only when Solved.
func (e *Engine) Result() Result {
	r := Result{
		RunID:      e.runID,
		Status:     e.status,
		Iterations: e.iterations,
		Stats:      e.stats,
	}
	if e.status == Solved {
		r.Nodes = make([]*Node, len(e.goal))
		copy(r.Nodes, e.goal)
		r.Path = make([]river.State, len(e.goal))
		for i, n := range e.goal {
			r.Path[i] = n.state
		}
	}
	return r
}

// expand generates current's children and feeds each through AddToOpenList.
func (e *Engine) expand(current *Node) error {
	children := current.GenerateChildren()
	e.stats.Expanded++
	e.stats.Generated += len(children)

	enqueued := 0
	for _, child := range children {
		ok, err := e.AddToOpenList(child)
		if err != nil {
			return err
		}
		if ok {
			enqueued++
		}
	}

	e.log.Debug("expanded node",
		"iteration", e.iterations,
		"node", current.id,
		"state", current.state.String(),
		"children", len(children),
		"enqueued", enqueued,
		"frontier", len(e.open)-1)
	return nil
}

// solve retraces the goal path and finishes the run.
func (e *Engine) solve(goal *Node) {
	path := goal.RetracePath()
	// reverse to get root → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	e.goal = path
	e.status = Solved
	e.log.Info("search solved",
		"iterations", e.iterations,
		"crossings", len(path)-1,
		"nodes", len(e.forest.nodes))
}

// checkContinue applies the loop condition and moves to Exhausted when it
// fails. It reports whether the run is terminal.
func (e *Engine) checkContinue() bool {
	if len(e.open) > 0 && e.iterations < e.maxIterations {
		return false
	}
	e.status = Exhausted
	e.log.Info("search exhausted",
		"iterations", e.iterations,
		"frontier", len(e.open),
		"nodes", len(e.forest.nodes))
	return true
}

func (e *Engine) abort(err error) (Result, error) {
	e.log.Info("search aborted", "iterations", e.iterations, "error", err)
	iterations, stats, id := e.iterations, e.stats, e.runID
	e.Reset()
	e.status = Aborted
	e.iterations, e.stats, e.runID = iterations, stats, id
	return e.Result(), err
}

func find(list []*Node, s river.State) *Node {
	for _, n := range list {
		if n.state == s {
			return n
		}
	}
	return nil
}
