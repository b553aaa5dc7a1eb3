// Package gridgraph models a fixed-size 2D grid of cells as a graph with
// togglable obstacles, the substrate for the search package.
//
// What:
//
//   - Grid owns W×H cells stored in a row-major arena (index = y*W + x).
//   - Each cell carries an obstacle flag and an immutable 4-connected
//     neighbor list (left, up, right, down; omitted at boundaries).
//   - Adjacency is computed once in New and never changes; it is symmetric.
//   - Distance returns the Euclidean distance between two cells. It is used
//     both as the edge weight and as the A* heuristic.
//   - OpenRegions groups open (non-obstacle) cells into 4-connected regions.
//   - MinClearance finds the fewest obstacles to clear so two cells connect.
//
// Complexity:
//
//   - New:             O(W×H), Memory: O(W×H).
//   - ToggleObstacle:  O(1).
//   - OpenRegions:     O(W×H), Memory: O(W×H).
//   - MinClearance:    O(W×H), Memory: O(W×H).
//
// Concurrency:
//
//	A Grid is not synchronised. Callers must not toggle obstacles while a
//	search over the same Grid is running.
//
// Errors:
//
//   - ErrInvalidDimension: width or height is not positive.
//   - ErrOutOfBounds: a point lies outside [0,W)×[0,H).
//   - ErrNoPath: MinClearance cannot join the two points (never happens on
//     a valid grid, kept for callers that filter cells).
package gridgraph
