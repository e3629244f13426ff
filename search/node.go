package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rivercross/river"
)

// Flags is a snapshot of a node's lifecycle markers. They are not mutually
// exclusive: the root is also Open and, later, Valid and Closed.
type Flags struct {
	Open     bool
	Closed   bool
	Valid    bool
	Solution bool
	Root     bool
	Copy     bool
}

// String lists the set flags, e.g. "open|valid|root".
func (f Flags) String() string {
	var parts []string
	for _, p := range []struct {
		on   bool
		name string
	}{
		{f.Open, "open"},
		{f.Closed, "closed"},
		{f.Valid, "valid"},
		{f.Solution, "solution"},
		{f.Root, "root"},
		{f.Copy, "copy"},
	} {
		if p.on {
			parts = append(parts, p.name)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "|")
}

// forest owns every node created during one run and hands out ids.
type forest struct {
	nodes []*Node
	hooks Hooks
}

func (f *forest) add(s river.State, parent *Node) *Node {
	n := &Node{
		id:     len(f.nodes),
		state:  s,
		parent: parent,
		forest: f,
	}
	if parent != nil {
		n.depth = parent.depth + 1
	}
	f.nodes = append(f.nodes, n)
	return n
}

// Node wraps a State with its place in the search tree, its lifecycle
// flags, and the copies that mirror it.
//
// A node whose Original is set is a copy: after SetOriginal every flag
// transition of the original is replayed on it.
type Node struct {
	id       int
	depth    int
	state    river.State
	parent   *Node
	children []*Node
	flags    Flags

	// memo markers for MarkValid / MarkSolution
	validChecked    bool
	solutionChecked bool

	original    *Node
	subscribers []*Node

	forest *forest
}

// NewRoot creates the root of a fresh node set whose lifecycle events go
// to hooks.
func NewRoot(s river.State, hooks Hooks) *Node {
	f := &forest{hooks: hooks.withDefaults()}
	root := f.add(s, nil)
	root.flags.Root = true
	return root
}

// ID returns the creation index of the node within its run; the root is 0.
func (n *Node) ID() int { return n.id }

// Depth returns the number of crossings from the root.
func (n *Node) Depth() int { return n.depth }

// State returns the wrapped puzzle state.
func (n *Node) State() river.State { return n.state }

// Parent returns the node this one was generated from, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the generated children in generation order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Flags returns the current flags.
func (n *Node) Flags() Flags { return n.flags }

// Original returns the canonical node this one duplicates, or nil.
func (n *Node) Original() *Node { return n.original }

// IsCopy reports whether the node was recognised as a duplicate.
func (n *Node) IsCopy() bool { return n.flags.Copy }

// String renders "#id state [flags]".
func (n *Node) String() string {
	return fmt.Sprintf("#%d %s [%s]", n.id, n.state, n.flags)
}

// MarkValid evaluates and memoizes the legality of the state, notifies
// subscribers on first evaluation, and returns the verdict.
func (n *Node) MarkValid() bool {
	if !n.validChecked {
		n.setValid(n.state.IsValid())
	}
	return n.flags.Valid
}

// MarkSolution evaluates and memoizes whether the state is the goal,
// notifies subscribers on first evaluation, and returns the verdict.
func (n *Node) MarkSolution() bool {
	if !n.solutionChecked {
		n.setSolution(n.state.IsSolution())
	}
	return n.flags.Solution
}

// Open marks the node as part of the frontier.
func (n *Node) Open() {
	n.flags.Open, n.flags.Closed = true, false
	n.forest.hooks.OnOpened(n)
	n.changed()
	for _, sub := range n.subscribers {
		sub.Open()
	}
}

// Close marks the node as expanded.
func (n *Node) Close() {
	n.flags.Open, n.flags.Closed = false, true
	n.forest.hooks.OnClosed(n)
	n.changed()
	for _, sub := range n.subscribers {
		sub.Close()
	}
}

// SetOriginal records other as the canonical node for this node's state,
// copies other's lifecycle flags, marks this node as a copy and subscribes
// it to other's later transitions. It may be called once per node.
func (n *Node) SetOriginal(other *Node) error {
	switch {
	case other == nil:
		return ErrNilNode
	case other == n:
		return fmt.Errorf("%w: #%d", ErrSelfOriginal, n.id)
	case n.original != nil:
		return fmt.Errorf("%w: #%d already copies #%d", ErrAlreadyCopy, n.id, n.original.id)
	}

	n.flags.Open = other.flags.Open
	n.flags.Closed = other.flags.Closed
	n.flags.Valid = other.flags.Valid
	n.flags.Solution = other.flags.Solution
	n.validChecked = other.validChecked
	n.solutionChecked = other.solutionChecked
	n.flags.Copy = true
	n.original = other
	other.subscribers = append(other.subscribers, n)

	n.forest.hooks.OnMarkedDuplicate(n, other)
	n.changed()
	return nil
}

// Unsubscribe detaches a copy from its original; later transitions of the
// original are no longer mirrored. The Original link is kept.
func (n *Node) Unsubscribe() {
	if n.original == nil {
		return
	}
	subs := n.original.subscribers
	for i, sub := range subs {
		if sub == n {
			n.original.subscribers = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the copies currently mirroring this node.
func (n *Node) Subscribers() []*Node {
	out := make([]*Node, len(n.subscribers))
	copy(out, n.subscribers)
	return out
}

// GenerateChildren creates one child per successor state, in move order,
// appends them to the node's children and returns them. Duplicates are
// included; filtering them is the engine's job.
func (n *Node) GenerateChildren() []*Node {
	succ := river.Successors(n.state)
	out := make([]*Node, 0, len(succ))
	for _, s := range succ {
		child := n.forest.add(s, n)
		n.children = append(n.children, child)
		out = append(out, child)
	}
	return out
}

// RetracePath follows parent links from n to the root, marking every
// visited node as part of the solution. The path is returned self first.
func (n *Node) RetracePath() []*Node {
	var path []*Node
	for cur := n; cur != nil; cur = cur.parent {
		cur.setSolution(true)
		path = append(path, cur)
	}
	return path
}

func (n *Node) setValid(v bool) {
	n.validChecked = true
	n.flags.Valid = v
	n.changed()
	for _, sub := range n.subscribers {
		sub.setValid(v)
	}
}

func (n *Node) setSolution(v bool) {
	n.solutionChecked = true
	n.flags.Solution = v
	if v {
		n.forest.hooks.OnMarkedSolution(n)
	}
	n.changed()
	for _, sub := range n.subscribers {
		sub.setSolution(v)
	}
}

func (n *Node) changed() {
	n.forest.hooks.OnFlagsChanged(n, n.flags)
}
