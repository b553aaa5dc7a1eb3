// Package gridpath finds shortest paths on 2D grids with obstacles.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light engine that searches a 4-connected grid with
//	three interchangeable algorithms sharing one relaxation loop:
//		• A*       - min-heap on cost-so-far plus Euclidean distance to goal
//		• Dijkstra - FIFO relaxation (or a true priority queue on request)
//		• BFS      - first discovery, stops as soon as the goal is seen
//
// ✨ Features
//
//   - Stateless searches - per-run annotations live in the Result, the grid
//     only holds obstacles
//   - Inspectable - every cell's visited flag, costs and predecessor are
//     returned for drawing or debugging
//   - Hooks - OnVisit observes cells in expansion order
//
// Under the hood:
//
//	gridgraph/    - Grid, Point, obstacles, 4-neighbour adjacency, regions
//	search/       - Run, Reconstruct, Algorithm, Result, options
//	scenario/     - text map and YAML scenario files, rendering
//	cmd/gridpath/ - CLI: solve, compare, play
//
// Quick start:
//
//	g, _ := gridgraph.New(15, 15)
//	_ = g.ToggleObstacle(gridgraph.Point{X: 7, Y: 7})
//	res, _ := search.Run(g, gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 14, Y: 14}, search.AStar)
//	fmt.Println(res.Reachable, res.Hops())
package gridpath
