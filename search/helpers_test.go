package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// pt is shorthand for gridgraph.Point.
func pt(x, y int) gridgraph.Point { return gridgraph.Point{X: x, Y: y} }

// gridFrom builds a grid from rows of '.' (open) and '#' (obstacle).
func gridFrom(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				require.NoError(t, g.SetObstacle(pt(x, y), true))
			}
		}
	}

	return g
}

// randomGrid builds a w×h grid with the given obstacle density; start and
// goal corners are kept open.
func randomGrid(t testing.TB, r *rand.Rand, w, h int, density float64) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.New(w, h)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		if r.Float64() < density {
			require.NoError(t, g.SetObstacle(g.Point(i), true))
		}
	}
	require.NoError(t, g.SetObstacle(pt(0, 0), false))
	require.NoError(t, g.SetObstacle(pt(w-1, h-1), false))

	return g
}

// requireWalk asserts path is a 4-connected walk over open cells from a to b.
func requireWalk(t testing.TB, g *gridgraph.Grid, path []gridgraph.Point, a, b gridgraph.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, a, path[0], "path must start at start")
	require.Equal(t, b, path[len(path)-1], "path must end at goal")
	for i := 1; i < len(path); i++ {
		require.Equal(t, 1.0, g.Distance(path[i-1], path[i]), "step %d %s→%s", i, path[i-1], path[i])
		if i < len(path)-1 {
			blocked, err := g.IsObstacle(path[i])
			require.NoError(t, err)
			require.False(t, blocked, "path crosses obstacle %s", path[i])
		}
	}
}
