package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Reconstruct derives the start→goal path from a finished annotation table.
//
// If goal has no predecessor and differs from start, the goal is unreachable
// and the Result carries Reachable=false and an empty path. Otherwise the
// predecessor chain is walked from goal back to start. The walk is bounded
// by W×H cells; exceeding the bound, or meeting a cell without predecessor
// before start, returns ErrInvariantViolation.
func Reconstruct(g *gridgraph.Grid, start, goal gridgraph.Point, ann []Annotation) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	s, err := g.Index(start)
	if err != nil {
		return nil, fmt.Errorf("search: start: %w", err)
	}
	t, err := g.Index(goal)
	if err != nil {
		return nil, fmt.Errorf("search: goal: %w", err)
	}
	if len(ann) != g.Len() {
		return nil, fmt.Errorf("%w: table has %d entries, grid has %d cells", ErrInvariantViolation, len(ann), g.Len())
	}

	res := &Result{Annotations: ann}
	if s == t {
		res.Reachable = true
		res.Path = []gridgraph.Point{start}
		return res, nil
	}
	if ann[t].Parent == NoParent {
		return res, nil
	}

	// build reversed path
	path := []gridgraph.Point{goal}
	for cur := t; cur != s; {
		if len(path) >= g.Len() {
			return nil, fmt.Errorf("%w: walk from %s exceeded %d cells", ErrInvariantViolation, goal, g.Len())
		}
		prev := ann[cur].Parent
		if prev < 0 || prev >= len(ann) {
			return nil, fmt.Errorf("%w: %s has predecessor %d", ErrInvariantViolation, g.Point(cur), prev)
		}
		cur = prev
		path = append(path, g.Point(cur))
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	res.Reachable = true
	res.Path = path

	return res, nil
}
