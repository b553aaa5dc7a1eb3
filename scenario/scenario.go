// Package scenario reads and writes grid search scenarios: a grid with its
// obstacles, a start cell, a goal cell and the algorithm to run.
//
// Text maps use one row per line:
//
//	.  open cell
//	#  obstacle
//	S  start (open)
//	G  goal (open)
//
// YAML files either embed such a map or list coordinates:
//
//	map: |
//	  S.#..
//	  ..#.G
//	algorithm: astar
//
//	width: 15
//	height: 15
//	start: [0, 0]
//	goal: [14, 14]
//	obstacles: [[3, 4], [3, 5]]
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for scenario parsing.
var (
	// ErrEmptyMap indicates a map with no rows or no columns.
	ErrEmptyMap = errors.New("scenario: map must have at least one row and one column")
	// ErrNonRectangular indicates map rows of differing lengths.
	ErrNonRectangular = errors.New("scenario: all map rows must have the same length")
	// ErrBadGlyph indicates a character outside the map alphabet.
	ErrBadGlyph = errors.New("scenario: unknown map glyph")
	// ErrMissingEndpoint indicates a map without a start or goal marker.
	ErrMissingEndpoint = errors.New("scenario: map needs exactly one S and one G")
	// ErrDuplicateEndpoint indicates more than one start or goal marker.
	ErrDuplicateEndpoint = errors.New("scenario: duplicate S or G marker")
	// ErrBadPoint indicates a coordinate that is not an [x, y] pair.
	ErrBadPoint = errors.New("scenario: point must be an [x, y] pair")
)

// Map glyphs.
const (
	GlyphOpen     = '.'
	GlyphObstacle = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphPath     = '*'
	GlyphVisited  = 'o'
)

// Scenario is a grid plus the endpoints and algorithm of one search.
// HasAlgorithm is false when the source named no algorithm and Algorithm
// holds the search.AStar fallback.
type Scenario struct {
	Grid         *gridgraph.Grid
	Start        gridgraph.Point
	Goal         gridgraph.Point
	Algorithm    search.Algorithm
	HasAlgorithm bool
}

// Run searches the scenario's grid with its own endpoints and algorithm.
func (s *Scenario) Run(opts ...search.Option) (*search.Result, error) {
	return search.Run(s.Grid, s.Start, s.Goal, s.Algorithm, opts...)
}

// Parse builds a Scenario from a text map. Blank leading and trailing lines
// and surrounding whitespace on each row are ignored. Text maps name no
// algorithm, so Algorithm is search.AStar and HasAlgorithm is false.
func Parse(text string) (*Scenario, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" && len(rows) == 0 {
			continue
		}
		rows = append(rows, line)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	g, err := gridgraph.New(w, len(rows))
	if err != nil {
		return nil, err
	}
	s := &Scenario{Grid: g, Algorithm: search.AStar}
	var haveStart, haveGoal bool
	for y, row := range rows {
		for x, c := range []byte(row) {
			p := gridgraph.Point{X: x, Y: y}
			switch c {
			case GlyphOpen:
			case GlyphObstacle:
				_ = g.SetObstacle(p, true)
			case GlyphStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second S at %s", ErrDuplicateEndpoint, p)
				}
				s.Start, haveStart = p, true
			case GlyphGoal:
				if haveGoal {
					return nil, fmt.Errorf("%w: second G at %s", ErrDuplicateEndpoint, p)
				}
				s.Goal, haveGoal = p, true
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadGlyph, c, p)
			}
		}
	}
	if !haveStart || !haveGoal {
		return nil, ErrMissingEndpoint
	}

	return s, nil
}

// Format writes the scenario back as a text map (the inverse of Parse).
func Format(s *Scenario) string {
	return Render(s, nil)
}

// Render draws the scenario with the outcome of a search. Path cells are
// drawn as '*' and expanded cells as 'o'; res may be nil.
// Start and goal markers take precedence over everything else.
func Render(s *Scenario, res *search.Result) string {
	g := s.Grid
	onPath := make(map[gridgraph.Point]bool)
	if res != nil {
		for _, p := range res.Path {
			onPath[p] = true
		}
	}

	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for i := 0; i < g.Len(); i++ {
		c := g.Cell(i)
		switch {
		case c.Point == s.Start:
			b.WriteByte(GlyphStart)
		case c.Point == s.Goal:
			b.WriteByte(GlyphGoal)
		case c.Obstacle:
			b.WriteByte(GlyphObstacle)
		case onPath[c.Point]:
			b.WriteByte(GlyphPath)
		case res != nil && res.Visited(i):
			b.WriteByte(GlyphVisited)
		default:
			b.WriteByte(GlyphOpen)
		}
		if c.X == g.Width()-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
