package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/search"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Grid.Width)
	assert.Equal(t, 15, cfg.Grid.Height)
	assert.Equal(t, search.AStar, cfg.Algorithm())
	assert.Empty(t, cfg.SearchOptions())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 40
search:
  algorithm: dijkstra
  ordered_dijkstra: true
log:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Grid.Width)
	assert.Equal(t, 15, cfg.Grid.Height, "unset keys keep defaults")
	assert.Equal(t, search.Dijkstra, cfg.Algorithm())
	assert.Len(t, cfg.SearchOptions(), 1)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "grid:\n  width: 40\n  height: 30\n")
	t.Setenv("GRIDPATH_GRID_WIDTH", "8")
	t.Setenv("GRIDPATH_SEARCH_ALGORITHM", "bfs")
	t.Setenv("GRIDPATH_SEARCH_ORDERED_DIJKSTRA", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Grid.Width)
	assert.Equal(t, 30, cfg.Grid.Height)
	assert.Equal(t, search.BFS, cfg.Algorithm())
	assert.True(t, cfg.Search.OrderedDijkstra)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"ZeroWidth", "grid:\n  width: 0\n"},
		{"BadAlgorithm", "search:\n  algorithm: dfs\n"},
		{"BadLogLevel", "log:\n  level: loud\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "grid.width", envKey("GRIDPATH_GRID_WIDTH"))
	assert.Equal(t, "search.ordered_dijkstra", envKey("GRIDPATH_SEARCH_ORDERED_DIJKSTRA"))
	assert.Equal(t, "verbose", envKey("GRIDPATH_VERBOSE"))
}
