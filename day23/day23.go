// Package day23 finds the longest hike through a forest maze.
//
// The maze is contracted into a weighted graph whose vertices are the
// junctions (start, end and every cell with three or more open
// neighbours) and whose edges are the corridors between them. With
// one-way slopes the graph is acyclic and the longest path falls out of a
// topological order; without them it needs an exhaustive search.
package day23

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/dfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
)

var (
	// ErrInvalidInput indicates a maze without an entrance or exit.
	ErrInvalidInput = errors.New("day23: invalid input")

	// ErrNoPath indicates the exit cannot be reached.
	ErrNoPath = errors.New("day23: no path to the exit")

	// ErrTooManyJunctions indicates more junctions than the visited mask holds.
	ErrTooManyJunctions = errors.New("day23: too many junctions")
)

var slopes = map[byte][2]int{
	'^': {0, -1},
	'>': {1, 0},
	'v': {0, 1},
	'<': {-1, 0},
}

// Maze is a contracted forest map.
type Maze struct {
	Graph *core.Graph
	Start string
	End   string
}

// Parse contracts the map into its junction graph. When slippery is set,
// a slope cell may only be left in the direction it points.
func Parse(input string, slippery bool) (*Maze, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	sx, ok := openIn(g, 0)
	if !ok {
		return nil, fmt.Errorf("%w: no entrance", ErrInvalidInput)
	}
	ex, ok := openIn(g, g.Height-1)
	if !ok {
		return nil, fmt.Errorf("%w: no exit", ErrInvalidInput)
	}

	// Stage 1: mark junctions.
	junction := map[[2]int]bool{{sx, 0}: true, {ex, g.Height - 1}: true}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == '#' {
				continue
			}
			open := 0
			for _, n := range g.Neighbors(x, y) {
				if g.At(n[0], n[1]) != '#' {
					open++
				}
			}
			if open >= 3 {
				junction[[2]int{x, y}] = true
			}
		}
	}

	// Stage 2: walk every corridor leaving every junction. A hike never
	// leaves the exit or returns to the entrance.
	m := &Maze{
		Graph: core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()),
		Start: gridgraph.VertexID(sx, 0),
		End:   gridgraph.VertexID(ex, g.Height-1),
	}
	for j := range junction {
		if err = m.Graph.AddVertex(gridgraph.VertexID(j[0], j[1])); err != nil {
			return nil, err
		}
	}
	for j := range junction {
		if j == [2]int{ex, g.Height - 1} {
			continue
		}
		for _, first := range g.Neighbors(j[0], j[1]) {
			if !canStep(g, j, first, slippery) {
				continue
			}
			end, steps, ok := walk(g, junction, j, first, slippery)
			if !ok || end == [2]int{sx, 0} {
				continue
			}
			if _, err = m.Graph.AddEdge(gridgraph.VertexID(j[0], j[1]), gridgraph.VertexID(end[0], end[1]), int64(steps)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func openIn(g *gridgraph.Grid, y int) (int, bool) {
	for x := 0; x < g.Width; x++ {
		if g.At(x, y) != '#' {
			return x, true
		}
	}

	return 0, false
}

// canStep reports whether one move from p to q is allowed.
func canStep(g *gridgraph.Grid, p, q [2]int, slippery bool) bool {
	if g.At(q[0], q[1]) == '#' {
		return false
	}
	if !slippery {
		return true
	}
	d, ok := slopes[g.At(p[0], p[1])]

	return !ok || d == [2]int{q[0] - p[0], q[1] - p[1]}
}

// walk follows a corridor from junction j through cur until it reaches
// another junction. ok is false for dead ends.
func walk(g *gridgraph.Grid, junction map[[2]int]bool, j, cur [2]int, slippery bool) (end [2]int, steps int, ok bool) {
	prev, steps := j, 1
	for !junction[cur] {
		var next [2]int
		found := false
		for _, n := range g.Neighbors(cur[0], cur[1]) {
			if n != prev && canStep(g, cur, n, slippery) {
				next, found = n, true
				break
			}
		}
		if !found {
			return end, 0, false
		}
		prev, cur = cur, next
		steps++
	}

	return cur, steps, true
}

// LongestAcyclic returns the longest start-to-end path length using a
// topological order. It fails on a cyclic graph.
func (m *Maze) LongestAcyclic() (int, error) {
	order, err := dfs.TopologicalSort(m.Graph)
	if err != nil {
		return 0, err
	}
	dist := map[string]int64{m.Start: 0}
	for _, u := range order {
		du, ok := dist[u]
		if !ok {
			continue
		}
		edges, err := m.Graph.Neighbors(u)
		if err != nil {
			return 0, err
		}
		for _, e := range edges {
			if d, seen := dist[e.To]; !seen || du+e.Weight > d {
				dist[e.To] = du + e.Weight
			}
		}
	}
	d, ok := dist[m.End]
	if !ok {
		return 0, ErrNoPath
	}

	return int(d), nil
}

type arc struct {
	to   int
	cost int
}

// Longest returns the longest simple start-to-end path by exhaustive
// search over the junction graph.
func (m *Maze) Longest() (int, error) {
	verts := m.Graph.Vertices()
	if len(verts) > 64 {
		return 0, fmt.Errorf("%w: %d", ErrTooManyJunctions, len(verts))
	}
	index := make(map[string]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}
	adj := make([][]arc, len(verts))
	for i, v := range verts {
		edges, err := m.Graph.Neighbors(v)
		if err != nil {
			return 0, err
		}
		for _, e := range edges {
			adj[i] = append(adj[i], arc{to: index[e.To], cost: int(e.Weight)})
		}
	}
	end := index[m.End]
	// The exit's only neighbour must go straight to the exit: leaving it any
	// other way strands the walk.
	for i := range adj {
		for _, a := range adj[i] {
			if a.to == end {
				adj[i] = []arc{a}
				break
			}
		}
	}

	best := -1
	var search func(at int, seen uint64, length int)
	search = func(at int, seen uint64, length int) {
		if at == end {
			best = max(best, length)
			return
		}
		for _, a := range adj[at] {
			bit := uint64(1) << a.to
			if seen&bit == 0 {
				search(a.to, seen|bit, length+a.cost)
			}
		}
	}
	start := index[m.Start]
	search(start, uint64(1)<<start, 0)
	if best < 0 {
		return 0, ErrNoPath
	}

	return best, nil
}

// PartOne returns the longest hike when slopes are one-way.
func PartOne(input string) (int, error) {
	m, err := Parse(input, true)
	if err != nil {
		return 0, err
	}

	return m.LongestAcyclic()
}

// PartTwo returns the longest hike when slopes are ordinary paths.
func PartTwo(input string) (int, error) {
	m, err := Parse(input, false)
	if err != nil {
		return 0, err
	}

	return m.Longest()
}
