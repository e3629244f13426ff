// Package search defines options, hooks, sentinel errors and result types
// for the breadth-first river-crossing search engine.
package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rivercross/river"
)

// Sentinel errors for engine and node operations.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBadMaxIterations is returned for a negative iteration cap.
	ErrBadMaxIterations = errors.New("search: maxIterations must be non-negative")

	// ErrNotStarted is returned when stepping an engine with no run.
	ErrNotStarted = errors.New("search: no search started")

	// ErrNilNode is returned when a nil node is passed where one is required.
	ErrNilNode = errors.New("search: node is nil")

	// ErrAlreadyCopy is returned when SetOriginal is called twice on a node.
	ErrAlreadyCopy = errors.New("search: node already has an original")

	// ErrSelfOriginal is returned when a node is made a copy of itself.
	ErrSelfOriginal = errors.New("search: node cannot be its own original")

	// ErrInvariantViolation reports a broken open/closed list invariant.
	// It always indicates a defect.
	ErrInvariantViolation = errors.New("search: invariant violation")
)

// Status is the engine's position in its run state machine.
type Status int

const (
	// Idle means no run has been started (or the engine was reset).
	Idle Status = iota
	// Running means the frontier is still being expanded.
	Running
	// Solved means a goal state was dequeued and its path retraced.
	Solved
	// Exhausted means the frontier emptied or the iteration cap was hit
	// without reaching the goal. It is a normal outcome, not an error.
	Exhausted
	// Aborted means the run was cancelled between iterations.
	Aborted
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether no further steps are possible in this run.
func (s Status) Terminal() bool {
	return s == Solved || s == Exhausted || s == Aborted
}

// Hooks receives node lifecycle notifications. Every field is optional.
// Hooks run synchronously on the stepping goroutine; they may read nodes
// but must not mutate the engine.
type Hooks struct {
	// OnOpened fires when a node enters the frontier (or mirrors one that did).
	OnOpened func(n *Node)

	// OnClosed fires when a node has been expanded and moved to the closed list.
	OnClosed func(n *Node)

	// OnFlagsChanged fires after every flag transition with the new flags.
	OnFlagsChanged func(n *Node, f Flags)

	// OnMarkedSolution fires when a node becomes part of the solution.
	OnMarkedSolution func(n *Node)

	// OnMarkedDuplicate fires when n is recognised as a copy of original.
	OnMarkedDuplicate func(n, original *Node)
}

func (h Hooks) withDefaults() Hooks {
	if h.OnOpened == nil {
		h.OnOpened = func(*Node) {}
	}
	if h.OnClosed == nil {
		h.OnClosed = func(*Node) {}
	}
	if h.OnFlagsChanged == nil {
		h.OnFlagsChanged = func(*Node, Flags) {}
	}
	if h.OnMarkedSolution == nil {
		h.OnMarkedSolution = func(*Node) {}
	}
	if h.OnMarkedDuplicate == nil {
		h.OnMarkedDuplicate = func(*Node, *Node) {}
	}
	return h
}

// Option configures the engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// by StartSearch.
type Option func(*Options)

// Options holds the engine's tunables and notification hooks.
type Options struct {
	// Hooks receive node lifecycle events.
	Hooks Hooks

	// Logger receives run-level and per-iteration records.
	Logger *slog.Logger

	// StepDelay paces Run: it waits this long between iterations.
	// Zero runs synchronously.
	StepDelay time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks, a discarding logger
// and no step delay.
func DefaultOptions() Options {
	return Options{
		Hooks:     Hooks{}.withDefaults(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		StepDelay: 0,
	}
}

// WithHooks replaces every hook at once. Nil fields become no-ops.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = h.withDefaults()
	}
}

// WithOnOpened registers a callback for nodes entering the frontier.
func WithOnOpened(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Hooks.OnOpened = fn
		}
	}
}

// WithOnClosed registers a callback for closed nodes.
func WithOnClosed(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Hooks.OnClosed = fn
		}
	}
}

// WithOnFlagsChanged registers a callback for every flag transition.
func WithOnFlagsChanged(fn func(n *Node, f Flags)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Hooks.OnFlagsChanged = fn
		}
	}
}

// WithOnMarkedSolution registers a callback for solution-path nodes.
func WithOnMarkedSolution(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Hooks.OnMarkedSolution = fn
		}
	}
}

// WithOnMarkedDuplicate registers a callback for detected duplicates.
func WithOnMarkedDuplicate(fn func(n, original *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Hooks.OnMarkedDuplicate = fn
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStepDelay paces Run by waiting d between iterations.
//
//	d > 0:  wait d between steps
//	d == 0: run synchronously
//	d < 0:  invalid option → ErrOptionViolation
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: StepDelay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.StepDelay = d
	}
}

// Stats counts what a run did.
type Stats struct {
	// Generated is the number of child nodes created by expansions.
	Generated int
	// Duplicates is the number of children recognised as copies.
	Duplicates int
	// Invalid is the number of dequeued nodes closed without expansion.
	Invalid int
	// Expanded is the number of nodes whose children were generated.
	Expanded int
}

// Result is the outcome of a run.
//   - Status: Solved, Exhausted, Aborted (or Idle/Running mid-flight).
//   - Path: states from the initial state to the goal; nil unless Solved.
//   - Nodes: the nodes behind Path, root first.
//   - Iterations: completed loop iterations.
type Result struct {
	RunID      uuid.UUID
	Status     Status
	Path       []river.State
	Nodes      []*Node
	Iterations int
	Stats      Stats
}

// Solved reports whether the run reached the goal.
func (r Result) Solved() bool { return r.Status == Solved }

// Crossings returns the number of boat trips on the solution path.
func (r Result) Crossings() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
