// Package core provides a thread-safe in-memory Graph with string vertex IDs,
// used as the shared topology layer for the puzzle solvers.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Optional per-edge labels (WithEdgeLabel), e.g. "L"/"R" branches
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Iteration order:
//
//	Vertices() is sorted lexicographically.
//	Edges(), Neighbors() and NeighborIDs() follow insertion order, so a
//	caller that adds "a -> x, y, z" reads x, y, z back in that order.
//	Signal-propagation puzzles depend on this.
//
// Core Methods:
//
//	AddVertex(id string) error                                          // O(1)
//	AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) // O(1)†
//	HasVertex(id string) bool                                           // O(1)
//	HasEdge(from, to string) bool                                       // O(1)
//	Neighbors(id string) ([]*Edge, error)                               // O(d)
//	NeighborIDs(id string) ([]string, error)                            // O(d)
//	InNeighborIDs(id string) ([]string, error)                          // O(d)
//	Vertices() []string                                                 // O(V·log V)
//	Edges() []*Edge                                                     // O(E·log E)
//	VertexCount(), EdgeCount() int                                      // O(1)
//
// † amortized: atomic ID generation + map/slice insertion.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// Returned *Edge values are shared with the graph and must be treated as
// read-only by callers.
package core
