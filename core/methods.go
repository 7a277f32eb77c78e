// SPDX-License-Identifier: MIT

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Directed reports whether new edges are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// AddVertex inserts a vertex with the given id. Adding an existing
// vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates an edge from→to, auto-adding missing endpoints,
// and returns the new edge ID.
//
// Stage 1 (Validate): empty IDs, weight policy, loop policy.
// Stage 2 (Multi-edge check): reject a parallel edge unless allowed.
// Stage 3 (Insert): store the edge, index it in adjacency, incident and
// incoming; undirected edges are mirrored.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	// 1) Validate
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight != 0 && !g.weighted {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 2) Parallel edges
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 3) Build and insert
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{
		ID:       "e" + strconv.FormatUint(seq, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      seq,
	}
	for _, opt := range opts {
		opt(e)
	}

	g.muVert.Lock()
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.muVert.Unlock()

	g.edges[e.ID] = e
	g.link(from, to, e)
	if !e.Directed && from != to {
		g.link(to, from, e)
	}

	return e.ID, nil
}

// link records e as traversable u→v. Caller holds muEdgeAdj.
func (g *Graph) link(u, v string, e *Edge) {
	if g.adjacency[u] == nil {
		g.adjacency[u] = make(map[string][]*Edge)
	}
	g.adjacency[u][v] = append(g.adjacency[u][v], e)
	g.incident[u] = append(g.incident[u], e)
	g.incoming[v] = append(g.incoming[v], e)
}

// HasEdge reports whether at least one edge is traversable from→to.
// Undirected edges are traversable in both directions.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Neighbors returns the edges leaving id in insertion order.
// Undirected edges appear for both endpoints; use Edge.Other to get the
// far side.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	src := g.incident[id]
	out := make([]*Edge, len(src))
	copy(out, src)

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable from id over one
// edge, in first-seen insertion order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return uniqueEnds(id, edges), nil
}

// InNeighborIDs returns the unique vertex IDs with an edge into id, in
// first-seen insertion order. For undirected graphs this equals
// NeighborIDs.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	src := g.incoming[id]
	edges := make([]*Edge, len(src))
	copy(edges, src)
	g.muEdgeAdj.RUnlock()

	return uniqueEnds(id, edges), nil
}

func uniqueEnds(id string, edges []*Edge) []string {
	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		other := e.Other(id)
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}

	return ids
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in insertion order.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
