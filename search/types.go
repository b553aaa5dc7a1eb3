package search

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the known set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrInvariantViolation signals a broken predecessor tree (a cycle or a
	// chain that never reaches the start). It indicates a defect, not a
	// property of the grid.
	ErrInvariantViolation = errors.New("search: predecessor chain does not reach start")
)

// Algorithm selects the frontier strategy used by Run.
type Algorithm int

const (
	// AStar orders the frontier by local cost plus Euclidean distance to goal.
	AStar Algorithm = iota
	// Dijkstra relaxes costs like AStar without a heuristic, but expands
	// cells in insertion (FIFO) order unless WithOrderedDijkstra is given.
	Dijkstra
	// BFS ignores costs and stops as soon as the goal is discovered.
	BFS
)

var algorithmNames = [...]string{AStar: "astar", Dijkstra: "dijkstra", BFS: "bfs"}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AStar, Dijkstra, BFS}
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a case-insensitive name ("astar", "a*", "dijkstra",
// "bfs") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	case "bfs":
		return BFS, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// NoParent marks a cell without a predecessor.
const NoParent = -1

// Annotation is the per-cell search state of one run.
//
// Local:  cost of the best known path from start (+Inf until reached).
// Global: Local plus heuristic for AStar, Local otherwise (+Inf until reached).
// Parent: arena index of the predecessor, or NoParent.
type Annotation struct {
	Visited bool
	Local   float64
	Global  float64
	Parent  int
}

// reset returns a to its pre-search state.
func (a *Annotation) reset() {
	a.Visited = false
	a.Local = math.Inf(1)
	a.Global = math.Inf(1)
	a.Parent = NoParent
}

// Result holds the outcome of a search:
//   - Reachable: whether a path from start to goal exists.
//   - Path: cells from start to goal inclusive (empty when unreachable).
//   - Annotations: the final per-cell table, indexed like the grid arena.
//   - Expanded: number of cells popped from the frontier and marked visited.
type Result struct {
	Algorithm   Algorithm
	Reachable   bool
	Path        []gridgraph.Point
	Annotations []Annotation
	Expanded    int
}

// Hops returns the number of edges on the path (0 when unreachable).
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Cost returns the total Euclidean length of the path.
func (r *Result) Cost() float64 {
	var c float64
	for i := 1; i < len(r.Path); i++ {
		c += gridgraph.Euclidean(r.Path[i-1], r.Path[i])
	}

	return c
}

// Visited reports whether the cell at idx was expanded during the run.
func (r *Result) Visited(idx int) bool {
	return idx >= 0 && idx < len(r.Annotations) && r.Annotations[idx].Visited
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a run.
type Options struct {
	// OrderedDijkstra makes the Dijkstra algorithm expand cells by minimum
	// local cost instead of insertion order.
	OrderedDijkstra bool

	// OnVisit is called each time a cell is popped and marked visited.
	OnVisit func(p gridgraph.Point, a Annotation)

	// Logger receives a debug summary of each run.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op hook, a no-op logger and the
// FIFO Dijkstra ordering.
func DefaultOptions() Options {
	return Options{
		OrderedDijkstra: false,
		OnVisit:         func(gridgraph.Point, Annotation) {},
		Logger:          zap.NewNop(),
	}
}

// WithOrderedDijkstra runs Dijkstra over a min-priority frontier on local
// cost, making it a true uniform-cost search.
func WithOrderedDijkstra() Option {
	return func(o *Options) {
		o.OrderedDijkstra = true
	}
}

// WithOnVisit registers a callback invoked for every expanded cell.
func WithOnVisit(fn func(p gridgraph.Point, a Annotation)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
