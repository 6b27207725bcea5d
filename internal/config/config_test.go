package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cspath/cspath"
	"github.com/katalvlaran/cspath/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cspath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, `
solver:
  strategy: exact
server:
  solve_timeout: 250ms
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "exact", cfg.Solver.Strategy)
	assert.Equal(t, "min-time", cfg.Solver.TieBreak, "absent key keeps its default")
	assert.Equal(t, 250*time.Millisecond, cfg.Server.SolveTimeout)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown strategy", "solver:\n  strategy: dijkstra\n"},
		{"bad policy", "output:\n  infeasible: panic\n"},
		{"bad addr", "server:\n  addr: not-an-addr\n"},
		{"zero timeout", "server:\n  solve_timeout: 0s\n"},
		{"negative threshold", "solver:\n  inf_edge_threshold: -5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_UnknownKeyAndMissingFile(t *testing.T) {
	_, err := config.Load(writeFile(t, "solver:\n  stratgy: exact\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stratgy")

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrips(t *testing.T) {
	want := config.Default()
	want.Solver.Strategy = "exact"
	want.Metrics.File = "/tmp/cspath.prom"

	data, err := config.Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "solve_timeout: 10s")

	got := config.Default()
	require.NoError(t, config.Decode(data, &got))
	assert.Equal(t, want, got)
}

func TestSolverOptions(t *testing.T) {
	cfg := config.Default().Solver
	cfg.Strategy = "exact"
	cfg.TieBreak = "first-seen"
	cfg.InfEdgeThreshold = 1000

	opts, err := cfg.Options()
	require.NoError(t, err)
	got := cspath.DefaultOptions()
	for _, opt := range opts {
		opt(&got)
	}
	assert.Equal(t, cspath.Exact, got.Strategy)
	assert.Equal(t, cspath.TieBreakFirstSeen, got.TieBreak)
	assert.Equal(t, int64(1000), got.InfEdgeThreshold)

	cfg.Strategy = "dijkstra"
	_, err = cfg.Options()
	require.ErrorIs(t, err, cspath.ErrUnknownStrategy)
}
