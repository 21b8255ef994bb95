package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanoi-search/internal/config"
	"hanoi-search/internal/hanoi"
)

func execute(t *testing.T, stdin string, args ...string) (*App, string, string, error) {
	t.Helper()
	app := NewApp()
	root := app.RootCommand()
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return app, stdout.String(), stderr.String(), err
}

func TestSolve_BreadthFirst(t *testing.T) {
	_, out, _, err := execute(t, "", "solve", "--disks", "3", "--strategy", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "with 3 disks is: 7")
	assert.Contains(t, out, "Solving with Breadth-First Search")
	assert.Contains(t, out, "Step 7")
	assert.NotContains(t, out, "Step 8")
}

func TestSolve_AStarFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	cfg := config.Default()
	cfg.Disks = 2
	cfg.Strategy = "astar"
	require.NoError(t, config.Save(path, cfg))

	app, out, _, err := execute(t, "", "solve", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Solving with A* Search")
	assert.Contains(t, out, "Peg3: [2,1]")
	assert.Equal(t, 2, app.Config().Disks)
}

func TestSolve_DepthLimitFails(t *testing.T) {
	_, out, _, err := execute(t, "", "solve", "-n", "3", "--depth-limit", "3")
	assert.ErrorIs(t, err, hanoi.ErrDepthLimit)
	assert.Contains(t, out, "Error: no solution within depth limit")
}

func TestSolve_FailureStillReportsMetrics(t *testing.T) {
	_, out, _, err := execute(t, "", "solve", "-n", "3", "--depth-limit", "3", "--metrics")
	require.ErrorIs(t, err, hanoi.ErrDepthLimit)
	assert.Contains(t, out, `hanoi_search_runs_total{outcome="depth_limit",strategy="breadth-first"} 1`)
	assert.Contains(t, out, `hanoi_search_expanded_nodes_total{strategy="breadth-first"}`)
}

func TestSolve_FailureClosesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	app, _, _, err := execute(t, "", "solve", "-n", "2", "--depth-limit", "1", "--log-dir", dir)
	require.ErrorIs(t, err, hanoi.ErrDepthLimit)
	assert.NoError(t, app.Logger().Close(), "teardown already closed the file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "search failed")
}

func TestSolve_InvalidFlags(t *testing.T) {
	_, _, _, err := execute(t, "", "solve", "--disks", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, _, err = execute(t, "", "solve", "--strategy", "dfs")
	assert.ErrorIs(t, err, hanoi.ErrUnknownStrategy)
}

func TestSolve_FlagOverridesInvalidConfigValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disks: 40\n"), 0644))

	app, out, _, err := execute(t, "", "solve", "--config", path, "--disks", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, app.Config().Disks)
	assert.Contains(t, out, "Step 7")

	_, _, _, err = execute(t, "", "solve", "--config", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_InteractiveMenu(t *testing.T) {
	_, out, _, err := execute(t, "x\n2\n", "--disks", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid input, please enter 1, 2, or 3")
	assert.Contains(t, out, "Solving with A* Search")
	assert.Contains(t, out, "Peg3: [1]")
}

func TestRoot_Metrics(t *testing.T) {
	_, out, _, err := execute(t, "1\n", "--disks", "2", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `hanoi_search_runs_total{outcome="found",strategy="breadth-first"} 1`)
	assert.Contains(t, out, `hanoi_search_expanded_nodes_total{strategy="breadth-first"}`)
}

func TestRoot_DebugLogsGoToStderr(t *testing.T) {
	_, out, errOut, err := execute(t, "", "solve", "--disks", "1", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "searching node")
	assert.NotContains(t, out, "searching node")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "hanoi.yaml")
	_, out, _, err := execute(t, "", "config", "init", path, "--disks", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote config to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "disks: 4")

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Disks)
}
