// Package search runs A*, Dijkstra and breadth-first search over a
// gridgraph.Grid through one shared relaxation loop.
//
// The three algorithms differ only in their frontier:
//
//   - AStar:    min-heap on Global = Local + Distance(cell, goal).
//   - Dijkstra: FIFO queue with cost relaxation (min-heap on Local when
//     WithOrderedDijkstra is given).
//   - BFS:      FIFO queue, no cost relaxation, stops the moment the goal is
//     discovered as a neighbor.
//
// Stale frontier entries (visited cells, or the goal itself) are discarded
// lazily when popped; the goal is never expanded.
package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Run searches g for a path from start to goal using alg.
// Obstacle flags are read but never written; all per-run state lives in the
// returned Result.
//
// Returns ErrNilGrid, ErrUnknownAlgorithm, gridgraph.ErrOutOfBounds for
// invalid input, or ErrInvariantViolation if path reconstruction detects a
// broken predecessor tree. An unreachable goal is not an error: the Result
// has Reachable=false.
//
// Complexity:
//
//   - BFS, Dijkstra (FIFO): O(W×H×4) time.
//   - AStar, ordered Dijkstra: O(W×H×log(W×H)) time.
//   - Memory: O(W×H).
func Run(g *gridgraph.Grid, start, goal gridgraph.Point, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if alg < AStar || alg > BFS {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	s, err := g.Index(start)
	if err != nil {
		return nil, fmt.Errorf("search: start: %w", err)
	}
	t, err := g.Index(goal)
	if err != nil {
		return nil, fmt.Errorf("search: goal: %w", err)
	}

	r := &runner{
		g:     g,
		opts:  o,
		alg:   alg,
		start: s,
		goal:  t,
		ann:   make([]Annotation, g.Len()),
	}
	r.init()
	r.process()

	res, err := Reconstruct(g, start, goal, r.ann)
	if err != nil {
		o.Logger.Error("predecessor tree broken",
			zap.Stringer("algorithm", alg),
			zap.Stringer("start", start),
			zap.Stringer("goal", goal),
			zap.Error(err),
		)
		return nil, err
	}
	res.Algorithm = alg
	res.Expanded = r.expanded

	o.Logger.Debug("search finished",
		zap.Stringer("algorithm", alg),
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Bool("reachable", res.Reachable),
		zap.Int("hops", res.Hops()),
		zap.Int("expanded", res.Expanded),
	)

	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g           *gridgraph.Grid
	opts        Options
	alg         Algorithm
	start, goal int
	goalPt      gridgraph.Point
	ann         []Annotation
	front       frontier
	expanded    int
}

// init resets every annotation, seeds the start cell and builds the frontier.
func (r *runner) init() {
	for i := range r.ann {
		r.ann[i].reset()
	}
	r.goalPt = r.g.Point(r.goal)

	stale := func(idx int) bool { return r.ann[idx].Visited || idx == r.goal }
	global := func(idx int) float64 { return r.ann[idx].Global }
	n := r.g.Len()

	switch {
	case r.alg == AStar:
		r.front = newPriorityFrontier(n, global, stale)
	case r.alg == Dijkstra && r.opts.OrderedDijkstra:
		r.front = newPriorityFrontier(n, global, stale)
	default:
		r.front = newFIFOFrontier(n, stale)
	}

	sa := &r.ann[r.start]
	sa.Local = 0
	switch r.alg {
	case AStar:
		sa.Global = r.g.Distance(r.g.Point(r.start), r.goalPt)
	case Dijkstra:
		sa.Global = 0
	}
	r.front.push(r.start)
}

// process pops and expands cells until the frontier is exhausted or BFS
// discovers the goal.
func (r *runner) process() {
	for {
		cur, ok := r.front.popNext()
		if !ok {
			return
		}
		r.ann[cur].Visited = true
		r.expanded++
		r.opts.OnVisit(r.g.Point(cur), r.ann[cur])

		if r.expand(cur) {
			return
		}
	}
}

// expand examines the non-obstacle neighbors of cur, relaxing or recording
// predecessors, and pushes every unvisited one. It reports true when BFS
// has just discovered the goal.
func (r *runner) expand(cur int) bool {
	curPt := r.g.Point(cur)
	for _, nb := range r.g.Neighbors(cur) {
		if r.g.Blocked(nb) {
			continue
		}
		na := &r.ann[nb]

		if r.alg == BFS {
			if !na.Visited && na.Parent == NoParent {
				na.Parent = cur
				if nb == r.goal {
					return true
				}
			}
		} else {
			nbPt := r.g.Point(nb)
			candidate := r.ann[cur].Local + r.g.Distance(curPt, nbPt)
			if candidate < na.Local {
				na.Parent = cur
				na.Local = candidate
				na.Global = candidate
				if r.alg == AStar {
					na.Global += r.g.Distance(nbPt, r.goalPt)
				}
			}
		}

		if !na.Visited {
			r.front.push(nb)
		}
	}

	return false
}
