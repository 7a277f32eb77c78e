package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0:  limit to depth d
//	d == 0: no depth limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the start.
type BFSResult struct {
	Order []string
	Depth map[string]int
}

// MaxDepth returns the largest depth reached, i.e. the eccentricity of the
// start vertex within its explored component.
func (r *BFSResult) MaxDepth() int {
	deepest := 0
	for _, d := range r.Depth {
		if d > deepest {
			deepest = d
		}
	}

	return deepest
}

// CountWithin counts visited vertices whose depth is at most steps and
// has the same parity as steps. On a graph where every visited vertex has
// a neighbor this is the number of vertices standing at the end of a walk
// of exactly steps moves.
func (r *BFSResult) CountWithin(steps int) int {
	n := 0
	for _, d := range r.Depth {
		if d <= steps && d%2 == steps%2 {
			n++
		}
	}

	return n
}
