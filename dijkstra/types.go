// Package dijkstra implements Dijkstra's shortest-path algorithm on
// implicit state spaces.
//
// Dijkstra computes minimum-cost paths from one or more sources in a graph
// with non-negative weights. It processes states in order of increasing
// distance using a min-heap with lazy decrease-key: improved distances are
// pushed again and stale heap entries are skipped when popped.
//
//	Search(ctx, sources, expand, isGoal)
//
// Search serves puzzles whose state space is too large to materialize
// as a core.Graph, e.g. (x, y, axis) states of a crucible that must turn
// after a bounded run: expand generates the outgoing arcs on demand.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy heap may hold one entry per relaxation)
//
// Errors (sentinel):
//
//	ErrNegativeWeight – negative cost on an arc
package dijkstra

import "errors"

// ErrNegativeWeight is returned when an arc has a negative cost.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

// Arc is a weighted transition to a neighbouring state in an implicit graph.
type Arc[S comparable] struct {
	To   S
	Cost int64
}

// Result is the outcome of Search.
//
// Dist holds the final distance of every settled state. When a goal
// predicate was supplied and matched, Found is true and Goal/Cost describe
// the first goal state settled, which is a cheapest one.
type Result[S comparable] struct {
	Dist  map[S]int64
	Goal  S
	Cost  int64
	Found bool
}
