// Package search_test provides examples demonstrating how to run searches.
// Each example is runnable via “go test -run Example”.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleRun_bfs finds the fewest-hop route on an open 3×3 grid.
func ExampleRun_bfs() {
	g, _ := gridgraph.New(3, 3)

	res, err := search.Run(g, gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 2}, search.BFS)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("reachable:", res.Reachable, "hops:", res.Hops())
	// Output: reachable: true hops: 4
}

// ExampleRun_astar routes around a wall with one gap at the bottom.
//
//	S . # . .
//	. . # . .
//	. . . . G
func ExampleRun_astar() {
	g, _ := gridgraph.New(5, 3)
	_ = g.ToggleObstacle(gridgraph.Point{X: 2, Y: 0})
	_ = g.ToggleObstacle(gridgraph.Point{X: 2, Y: 1})

	res, _ := search.Run(g, gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 2}, search.AStar)
	fmt.Printf("cost=%.1f via %s\n", res.Cost(), res.Path[4])
	// Output: cost=6.0 via (2,2)
}

// ExampleRun_unreachable shows that a sealed goal is a normal outcome.
func ExampleRun_unreachable() {
	g, _ := gridgraph.New(3, 3)
	for y := 0; y < 3; y++ {
		_ = g.ToggleObstacle(gridgraph.Point{X: 1, Y: y})
	}

	for _, alg := range search.Algorithms() {
		res, err := search.Run(g, gridgraph.Point{X: 0, Y: 1}, gridgraph.Point{X: 2, Y: 1}, alg)
		fmt.Println(alg, res.Reachable, err)
	}
	// Output:
	// astar false <nil>
	// dijkstra false <nil>
	// bfs false <nil>
}
