package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSolve_Defaults(t *testing.T) {
	code, out, errOut := run(t, "solve")
	require.Equal(t, exitSuccess, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "solved in 23 iterations, 11 crossings", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "{C:3 M:3 | C:0 M:0 boat=left}"), lines[1])
	assert.Equal(t, "  1  2C     {C:1 M:3 | C:2 M:0 boat=right}", lines[2])
	assert.True(t, strings.HasSuffix(lines[12], "{C:0 M:0 | C:3 M:3 boat=right}"), lines[12])
	assert.Contains(t, errOut, "search solved")
}

func TestSolve_Flags(t *testing.T) {
	code, out, _ := run(t, "solve", "-c", "1", "-m", "1")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "solved in 3 iterations, 1 crossings")
	assert.Contains(t, out, "1C+1M  {C:0 M:0 | C:1 M:1 boat=right}")
}

func TestSolve_Exhausted(t *testing.T) {
	code, out, _ := run(t, "solve", "--cannibals", "4", "--missionaries", "4", "--max-iterations", "1000")
	require.Equal(t, exitExhausted, code)
	assert.Equal(t, "exhausted after 23 iterations: no solution found\n", out)

	code, out, _ = run(t, "solve", "-n", "0")
	require.Equal(t, exitExhausted, code)
	assert.Equal(t, "exhausted after 0 iterations: no solution found\n", out)
}

func TestSolve_JSON(t *testing.T) {
	code, out, _ := run(t, "solve", "--format", "json")
	require.Equal(t, exitSuccess, code)

	var doc resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "solved", doc.Status)
	assert.Equal(t, 23, doc.Iterations)
	assert.Equal(t, 11, doc.Crossings)
	assert.Equal(t, 24, doc.Duplicates)
	assert.NotEmpty(t, doc.RunID)
	require.Len(t, doc.Path, 12)
	assert.Empty(t, doc.Path[0].Load)
	assert.Equal(t, "2C", doc.Path[1].Load)
	assert.Equal(t, stateJSON{
		Step: 11, Load: "2C",
		CannibalsRight: 3, MissionariesRight: 3,
		Boat: "right",
	}, doc.Path[11])
}

func TestSolve_InvalidInput(t *testing.T) {
	cases := map[string][]string{
		"non-numeric":    {"solve", "--cannibals", "three"},
		"negative":       {"solve", "--missionaries=-2"},
		"negative cap":   {"solve", "--max-iterations=-1"},
		"bad format":     {"solve", "--format", "xml"},
		"bad log level":  {"solve", "--log-level", "loud"},
		"unknown flag":   {"solve", "--boats", "2"},
		"missing config": {"solve", "--config", "/nonexistent/rivercross.yaml"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, out, errOut := run(t, args...)
			assert.Equal(t, exitUserError, code, errOut)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "error:")
		})
	}
}

func TestSolve_Env(t *testing.T) {
	t.Setenv("RIVERCROSS_CANNIBALS", "2")
	t.Setenv("RIVERCROSS_MISSIONARIES", "2")
	code, out, _ := run(t, "solve")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "solved in 12 iterations, 5 crossings")

	// flags win over the environment
	code, out, _ = run(t, "solve", "-c", "1", "-m", "1")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "1 crossings")
}

func TestSolve_EnvNonNumeric(t *testing.T) {
	t.Setenv("RIVERCROSS_MAX_ITERATIONS", "many")
	code, _, errOut := run(t, "solve")
	require.Equal(t, exitUserError, code)
	assert.Contains(t, errOut, "max_iterations")
}

func TestSolve_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rivercross.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cannibals: 1\nmissionaries: 5\nlog_level: warn\n"), 0o644))

	code, out, errOut := run(t, "solve", "--config", path)
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "solved in 19 iterations, 9 crossings")
	assert.Empty(t, errOut, "info records are filtered at warn level")
}

func TestSolve_Trace(t *testing.T) {
	code, _, errOut := run(t, "solve", "-c", "1", "-m", "1", "--trace")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, errOut, "node opened")
	assert.Contains(t, errOut, "node marked duplicate")
	assert.Contains(t, errOut, "expanded node")
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errOut bytes.Buffer
	code := execute(ctx, []string{"solve"}, &out, &errOut)
	assert.Equal(t, exitSysError, code)
	assert.Contains(t, errOut.String(), "context canceled")
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "rivercross v0.1.0\n", out)
}
