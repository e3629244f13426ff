package search

import (
	"context"
	"log/slog"
)

// LogHooks returns Hooks that report every lifecycle event to l at debug
// level, for tracing a run without a renderer attached.
func LogHooks(l *slog.Logger) Hooks {
	if l == nil {
		return Hooks{}.withDefaults()
	}
	emit := func(msg string, n *Node, attrs ...slog.Attr) {
		if !l.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		attrs = append([]slog.Attr{
			slog.Int("node", n.id),
			slog.Int("depth", n.depth),
			slog.String("state", n.state.String()),
		}, attrs...)
		l.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
	}
	return Hooks{
		OnOpened: func(n *Node) { emit("node opened", n) },
		OnClosed: func(n *Node) { emit("node closed", n) },
		OnFlagsChanged: func(n *Node, f Flags) {
			emit("node flags changed", n, slog.String("flags", f.String()))
		},
		OnMarkedSolution: func(n *Node) { emit("node marked solution", n) },
		OnMarkedDuplicate: func(n, original *Node) {
			emit("node marked duplicate", n, slog.Int("original", original.id))
		},
	}
}
