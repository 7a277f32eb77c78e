// Package flow computes maximum flow and minimum s-t cuts on core.Graph
// values with the Edmonds–Karp algorithm (BFS shortest augmenting paths).
//
// Capacities are taken from edge weights. On an unweighted graph every
// edge has capacity 1, so the max flow between two vertices equals the
// number of edge-disjoint paths and the min cut is the smallest set of
// wires whose removal separates them. Undirected edges carry capacity in
// both directions; parallel edges are summed.
//
// Complexity: O(V · E²) time, O(V + E) memory.
package flow

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors.
var (
	ErrNilGraph       = errors.New("flow: graph is nil")
	ErrSourceNotFound = errors.New("flow: source vertex not found")
	ErrSinkNotFound   = errors.New("flow: sink vertex not found")
	ErrSameEndpoints  = errors.New("flow: source and sink are the same vertex")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures EdmondsKarp.
//   - StopAbove: if > 0, stop as soon as the flow exceeds this value.
//     Callers looking for a cut of a known size pass that size and skip
//     saturating larger cuts.
type FlowOptions struct {
	StopAbove int64
}

// Option mutates FlowOptions.
type Option func(*FlowOptions)

// WithStopAbove stops augmentation once the flow exceeds limit.
func WithStopAbove(limit int64) Option {
	return func(o *FlowOptions) { o.StopAbove = limit }
}

// Result is the outcome of a max-flow run.
type Result struct {
	// MaxFlow is the total flow pushed from source to sink. With
	// StopAbove set it may be any value above the limit.
	MaxFlow int64

	// Residual holds residual capacities: Residual[u][v] > 0 means more
	// flow can move u→v.
	Residual map[string]map[string]int64

	source string
}

// SourceSide returns the vertices reachable from the source in the
// residual network, sorted. When the run completed (not stopped early)
// this is the source side of a minimum cut.
func (r *Result) SourceSide() []string {
	seen := map[string]bool{r.source: true}
	queue := []string{r.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range r.Residual[u] {
			if c > 0 && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	side := make([]string, 0, len(seen))
	for v := range seen {
		side = append(side, v)
	}
	sort.Strings(side)

	return side
}
