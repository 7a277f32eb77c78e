// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances and visit order.
//
// BFS explores vertices in increasing distance from a start vertex, with
// optional depth limiting. The puzzle solvers use it for
// loop distances in pipe mazes and for step-parity reachability on garden
// grids: in an unweighted grid a cell reachable in
// d steps is reachable in d+2k steps for any k ≥ 0, so "exactly n steps"
// reduces to Depth ≤ n with matching parity (see BFSResult.CountWithin).
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors:
//
//	ErrGraphNil            – nil graph
//	ErrStartVertexNotFound – start ID absent
//	ErrWeightedGraph       – weighted graphs are rejected
//	ErrOptionViolation     – invalid option (negative depth)
//	ErrNeighbors           – neighbor lookup failed
package bfs
