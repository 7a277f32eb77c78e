// Package dfs provides depth-first algorithms on directed core.Graph values.
//
// TopologicalSort computes a linear ordering of vertices such that for every
// directed edge u→v, u appears before v. Longest-path dynamic programming
// over a DAG (trail networks where slopes only allow one way) walks this
// order once.
//
// The traversal uses three-colour marking:
//
//	White – not yet visited
//	Gray  – on the recursion stack
//	Black – fully explored
//
// Meeting a Gray vertex means a back-edge, reported as ErrCycleDetected.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (recursion stack and state map)
package dfs
