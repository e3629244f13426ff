// Command rivercross solves the missionaries-and-cannibals puzzle with a
// bounded breadth-first search and prints the crossing sequence.
//
//	rivercross solve --cannibals 3 --missionaries 3 --max-iterations 30
//	rivercross solve --config rivercross.yaml --format json
//	rivercross version
//
// Exit codes: 0 solved, 1 invalid input, 2 internal or interrupted run,
// 3 no solution within the iteration cap.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/rivercross/config"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
	exitExhausted = 3
)

// errExhausted signals a run that ended without reaching the goal.
var errExhausted = errors.New("no solution within the iteration cap")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and maps the outcome to an exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errExhausted):
		return exitExhausted
	case errors.Is(err, config.ErrInvalidValue), errors.Is(err, config.ErrReadConfig), isUsageError(err):
		fmt.Fprintln(stderr, "error:", err)
		return exitUserError
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitSysError
	}
}
