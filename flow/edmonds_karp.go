package flow

import (
	"sort"

	"github.com/katalvlaran/aoc2023/core"
)

// EdmondsKarp computes the maximum flow from source to sink.
//
// Steps:
//  1. Validate graph and endpoints.
//  2. Build the residual capacity map (buildCapMap).
//  3. Repeatedly find a shortest augmenting path by BFS and push its
//     bottleneck, until no path remains or StopAbove is exceeded.
func EdmondsKarp(g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
	// 1) Validate
	var o FlowOptions
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameEndpoints
	}

	// 2) Residual network
	capMap, adj, err := buildCapMap(g)
	if err != nil {
		return nil, err
	}
	res := &Result{Residual: capMap, source: source}

	// 3) Augment
	for {
		path, bottle := augmentingPath(capMap, adj, source, sink)
		if path == nil {
			break
		}
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
		res.MaxFlow += bottle
		if o.StopAbove > 0 && res.MaxFlow > o.StopAbove {
			break
		}
	}

	return res, nil
}

// buildCapMap aggregates edge capacities into capMap[u][v], ignoring
// self-loops. Every arc gets a reverse entry so the residual network has a
// fixed key set; adj lists those keys sorted for deterministic BFS.
func buildCapMap(g *core.Graph) (map[string]map[string]int64, map[string][]string, error) {
	vertices := g.Vertices()
	capMap := make(map[string]map[string]int64, len(vertices))
	for _, v := range vertices {
		capMap[v] = make(map[string]int64)
	}
	unit := !g.Weighted()

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		c := e.Weight
		if unit {
			c = 1
		}
		if c < 0 {
			return nil, nil, EdgeError{From: e.From, To: e.To, Cap: c}
		}
		capMap[e.From][e.To] += c
		if !e.Directed {
			capMap[e.To][e.From] += c
		} else if _, ok := capMap[e.To][e.From]; !ok {
			capMap[e.To][e.From] = 0
		}
	}

	adj := make(map[string][]string, len(vertices))
	for u, nbrs := range capMap {
		keys := make([]string, 0, len(nbrs))
		for v := range nbrs {
			keys = append(keys, v)
		}
		sort.Strings(keys)
		adj[u] = keys
	}

	return capMap, adj, nil
}

// augmentingPath finds the fewest-edge path source→sink with positive
// residual capacity and returns it with its bottleneck, or nil.
func augmentingPath(capMap map[string]map[string]int64, adj map[string][]string, source, sink string) ([]string, int64) {
	parent := map[string]string{source: source}
	queue := []string{source}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range adj[u] {
			if _, seen := parent[v]; seen || capMap[u][v] <= 0 {
				continue
			}
			parent[v] = u
			if v == sink {
				return tracePath(capMap, parent, source, sink)
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

func tracePath(capMap map[string]map[string]int64, parent map[string]string, source, sink string) ([]string, int64) {
	var rev []string
	bottle := int64(-1)
	for cur := sink; cur != source; cur = parent[cur] {
		p := parent[cur]
		if c := capMap[p][cur]; bottle < 0 || c < bottle {
			bottle = c
		}
		rev = append(rev, cur)
	}
	rev = append(rev, source)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, bottle
}
