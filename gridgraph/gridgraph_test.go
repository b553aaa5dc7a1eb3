package gridgraph_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"NegativeWidth", -1, 2},
		{"BothNegative", -4, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.w, tc.h)
			if !errors.Is(err, gridgraph.ErrInvalidDimension) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, gridgraph.ErrInvalidDimension)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New(3, 2)
	require.NoError(t, err)

	valid := []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds%s=false; want true", p)
		}
	}
	invalid := []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds%s=true; want false", p)
		}
	}
}

// TestIndexRoundTrip verifies Index and Point are inverse on every cell.
func TestIndexRoundTrip(t *testing.T) {
	g, err := gridgraph.New(4, 3)
	require.NoError(t, err)
	require.Equal(t, 12, g.Len())

	for i := 0; i < g.Len(); i++ {
		p := g.Point(i)
		got, err := g.Index(p)
		require.NoError(t, err)
		assert.Equal(t, i, got, "Index(Point(%d))", i)
	}
	_, err = g.Index(gridgraph.Point{X: 4, Y: 0})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Adjacency Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order checks the left, up, right, down ordering and
// boundary omission on a 3×3 grid.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	cases := []struct {
		name string
		at   gridgraph.Point
		want []gridgraph.Point
	}{
		{"Center", gridgraph.Point{X: 1, Y: 1}, []gridgraph.Point{{0, 1}, {1, 0}, {2, 1}, {1, 2}}},
		{"TopLeft", gridgraph.Point{X: 0, Y: 0}, []gridgraph.Point{{1, 0}, {0, 1}}},
		{"BottomRight", gridgraph.Point{X: 2, Y: 2}, []gridgraph.Point{{1, 2}, {2, 1}}},
		{"TopEdge", gridgraph.Point{X: 1, Y: 0}, []gridgraph.Point{{0, 0}, {2, 0}, {1, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i, err := g.Index(tc.at)
			require.NoError(t, err)
			var got []gridgraph.Point
			for _, n := range g.Neighbors(i) {
				got = append(got, g.Point(n))
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Neighbors%s = %v; want %v", tc.at, got, tc.want)
			}
		})
	}
}

// TestNeighbors_Symmetric verifies A neighbors B ⇔ B neighbors A.
func TestNeighbors_Symmetric(t *testing.T) {
	g, err := gridgraph.New(5, 4)
	require.NoError(t, err)

	for u := 0; u < g.Len(); u++ {
		for _, v := range g.Neighbors(u) {
			assert.Contains(t, g.Neighbors(v), u, "edge %s→%s has no reverse", g.Point(u), g.Point(v))
		}
	}
}

// TestDistance checks the Euclidean metric.
func TestDistance(t *testing.T) {
	g, err := gridgraph.New(5, 5)
	require.NoError(t, err)

	assert.Equal(t, 1.0, g.Distance(gridgraph.Point{X: 1, Y: 1}, gridgraph.Point{X: 1, Y: 2}))
	assert.Equal(t, 5.0, g.Distance(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 3, Y: 4}))
	assert.Equal(t, 0.0, g.Distance(gridgraph.Point{X: 2, Y: 2}, gridgraph.Point{X: 2, Y: 2}))

	a, b := gridgraph.Point{X: 4, Y: 0}, gridgraph.Point{X: 1, Y: 3}
	assert.Equal(t, gridgraph.Euclidean(a, b), g.Distance(a, b))
	assert.InDelta(t, 3*math.Sqrt2, gridgraph.Euclidean(a, b), 1e-12)
}

//----------------------------------------------------------------------------//
// Obstacle Tests
//----------------------------------------------------------------------------//

// TestToggleObstacle flips a cell twice and rejects out-of-bounds points.
func TestToggleObstacle(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	p := gridgraph.Point{X: 1, Y: 2}

	require.NoError(t, g.ToggleObstacle(p))
	blocked, err := g.IsObstacle(p)
	require.NoError(t, err)
	assert.True(t, blocked)

	require.NoError(t, g.ToggleObstacle(p))
	blocked, _ = g.IsObstacle(p)
	assert.False(t, blocked)

	for _, bad := range []gridgraph.Point{{-1, 0}, {3, 0}, {0, 3}} {
		err := g.ToggleObstacle(bad)
		assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds, "ToggleObstacle%s", bad)
	}
	assert.Empty(t, g.Obstacles(), "failed toggles must not change state")
}

// TestObstacles_SetAndClear covers SetObstacle, Obstacles and Clear.
func TestObstacles_SetAndClear(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.SetObstacle(gridgraph.Point{X: 2, Y: 0}, true))
	require.NoError(t, g.SetObstacle(gridgraph.Point{X: 0, Y: 1}, true))
	require.NoError(t, g.SetObstacle(gridgraph.Point{X: 0, Y: 1}, true))
	assert.Equal(t, []gridgraph.Point{{2, 0}, {0, 1}}, g.Obstacles())

	i, _ := g.Index(gridgraph.Point{X: 2, Y: 0})
	assert.True(t, g.Blocked(i))
	assert.True(t, g.Cell(i).Obstacle)

	g.Clear()
	assert.Empty(t, g.Obstacles())
	_, err = g.IsObstacle(gridgraph.Point{X: 9, Y: 9})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
