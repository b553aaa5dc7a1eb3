package gridgraph

import (
	"fmt"
	"math"
)

// Point identifies a cell by its coordinates.
type Point struct {
	X, Y int
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a single grid position.
// Neighbors holds arena indices and is fixed after construction.
type Cell struct {
	Point
	Obstacle  bool
	neighbors []int
}

// Grid is a fixed-size grid graph. Only obstacle flags mutate after New.
type Grid struct {
	width, height int
	cells         []Cell
}

// neighborOffsets lists the 4-connected directions in the order the
// adjacency lists are built: left, up, right, down.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// New constructs a width×height grid with no obstacles.
// Returns ErrInvalidDimension if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[g.index(x, y)]
			c.Point = Point{X: x, Y: y}
			c.neighbors = make([]int, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !g.inBounds(nx, ny) {
					continue
				}
				c.neighbors = append(c.neighbors, g.index(nx, ny))
			}
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, W×H.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return g.inBounds(p.X, p.Y)
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Index returns the arena index of p, or ErrOutOfBounds.
func (g *Grid) Index(p Point) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}

	return g.index(p.X, p.Y), nil
}

// Point converts a row-major index back to its coordinates.
// The index must be in [0, Len()).
func (g *Grid) Point(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Cell returns a copy of the cell at idx.
func (g *Grid) Cell(idx int) Cell {
	return g.cells[idx]
}

// Neighbors returns the adjacency list of the cell at idx.
// The slice is shared and must not be modified.
func (g *Grid) Neighbors(idx int) []int {
	return g.cells[idx].neighbors
}

// Blocked reports whether the cell at idx is an obstacle.
func (g *Grid) Blocked(idx int) bool {
	return g.cells[idx].Obstacle
}

// Distance returns the Euclidean distance between a and b. It is the edge
// weight between neighbors and the A* heuristic.
func (g *Grid) Distance(a, b Point) float64 {
	return Euclidean(a, b)
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// ToggleObstacle flips the obstacle flag of p.
// Returns ErrOutOfBounds without touching any state if p is outside the grid.
func (g *Grid) ToggleObstacle(p Point) error {
	i, err := g.Index(p)
	if err != nil {
		return err
	}
	g.cells[i].Obstacle = !g.cells[i].Obstacle

	return nil
}

// SetObstacle sets the obstacle flag of p to blocked.
func (g *Grid) SetObstacle(p Point, blocked bool) error {
	i, err := g.Index(p)
	if err != nil {
		return err
	}
	g.cells[i].Obstacle = blocked

	return nil
}

// IsObstacle reports whether p is an obstacle.
func (g *Grid) IsObstacle(p Point) (bool, error) {
	i, err := g.Index(p)
	if err != nil {
		return false, err
	}

	return g.cells[i].Obstacle, nil
}

// Obstacles returns every obstacle point in row-major order.
func (g *Grid) Obstacles() []Point {
	var out []Point
	for i := range g.cells {
		if g.cells[i].Obstacle {
			out = append(out, g.cells[i].Point)
		}
	}

	return out
}

// Clear removes all obstacles.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Obstacle = false
	}
}
