package gridgraph

import (
	"container/list"
	"fmt"
)

// MinClearance finds a path from a to b that crosses the fewest obstacles.
// Each obstacle on the path (endpoints included) costs 1; open cells cost 0.
// Returns the path (a..b inclusive) and the number of obstacles that would
// have to be cleared for a search to succeed along it.
//
// Behavior:
//  1. Validate both points.
//  2. 0-1 BFS from a:
//     • Moving into an open cell     → cost 0 (push front)
//     • Moving into an obstacle cell → cost 1 (push back)
//  3. Stop when b is dequeued.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H) time, O(W·H) memory.
func (g *Grid) MinClearance(a, b Point) (path []Point, cost int, err error) {
	src, err := g.Index(a)
	if err != nil {
		return nil, 0, err
	}
	dst, err := g.Index(b)
	if err != nil {
		return nil, 0, err
	}

	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dist[src] = g.stepCost(src)
	dq := list.New()
	dq.PushFront(src)

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			target = u
			break
		}
		for _, v := range g.cells[u].neighbors {
			step := g.stepCost(v)
			nd := dist[u] + step
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			prev[v] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	if target < 0 {
		return nil, 0, fmt.Errorf("%w: %s→%s", ErrNoPath, a, b)
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.cells[at].Point)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

func (g *Grid) stepCost(idx int) int {
	if g.cells[idx].Obstacle {
		return 1
	}

	return 0
}
