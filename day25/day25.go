// Package day25 splits the component wiring diagram by cutting exactly
// three wires.
//
// The cut is found deterministically with max flow: fix one component as
// source and try sinks until the flow is exactly three, at which point the
// residual graph's source side is one half. Karger's randomised
// contraction is kept alongside as a cross-check.
package day25

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/flow"
	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// CutSize is the number of wires to disconnect.
const CutSize = 3

var (
	// ErrInvalidInput indicates a malformed wiring line.
	ErrInvalidInput = errors.New("day25: invalid input")

	// ErrNoCut indicates no cut of the wanted size exists or was found.
	ErrNoCut = errors.New("day25: no cut of the wanted size")
)

// Parse builds the undirected component graph from "name: a b c" lines.
func Parse(input string) (*core.Graph, error) {
	g := core.NewGraph()
	for _, l := range aoc.Lines(input) {
		from, rest, ok := strings.Cut(l, ":")
		from = strings.TrimSpace(from)
		if !ok || from == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInput, l)
		}
		for _, to := range strings.Fields(rest) {
			if to == from || g.HasEdge(from, to) {
				continue
			}
			if _, err := g.AddEdge(from, to, 0); err != nil {
				return nil, err
			}
		}
	}
	if g.VertexCount() < 2 {
		return nil, fmt.Errorf("%w: fewer than two components", ErrInvalidInput)
	}

	return g, nil
}

// Split returns the sizes of the two groups left after removing a cut of
// size wires, found with Edmonds–Karp from the first vertex.
func Split(g *core.Graph, size int) (int, int, error) {
	verts := g.Vertices()
	src := verts[0]
	for _, sink := range verts[1:] {
		res, err := flow.EdmondsKarp(g, src, sink, flow.WithStopAbove(int64(size)))
		if err != nil {
			return 0, 0, err
		}
		if res.MaxFlow == int64(size) {
			side := len(res.SourceSide())
			return side, len(verts) - side, nil
		}
	}

	return 0, 0, ErrNoCut
}

// Cut is one contraction outcome.
type Cut struct {
	Size  int    // edges crossing the cut
	Sides [2]int // group sizes
}

// Karger contracts random edges until two groups remain.
func Karger(g *core.Graph, rng *rand.Rand) (Cut, error) {
	verts := g.Vertices()
	if len(verts) < 2 {
		return Cut{}, ErrNoCut
	}
	index := make(map[string]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}
	pairs := make([][2]int, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		pairs = append(pairs, [2]int{index[e.From], index[e.To]})
	}

	// Contracting edges in a random order is the same as picking a random
	// surviving edge each round.
	uf := newUnionFind(len(verts))
	groups := len(verts)
	for _, i := range rng.Perm(len(pairs)) {
		if groups == 2 {
			break
		}
		if uf.union(pairs[i][0], pairs[i][1]) {
			groups--
		}
	}
	if groups != 2 {
		return Cut{}, fmt.Errorf("%w: graph has %d parts", ErrNoCut, groups)
	}

	var c Cut
	for _, p := range pairs {
		if uf.find(p[0]) != uf.find(p[1]) {
			c.Size++
		}
	}
	root := uf.find(0)
	for i := range verts {
		if uf.find(i) == root {
			c.Sides[0]++
		} else {
			c.Sides[1]++
		}
	}

	return c, nil
}

// FindCut repeats Karger until a cut of the wanted size appears or
// attempts run out.
func FindCut(g *core.Graph, rng *rand.Rand, size, attempts int) (Cut, error) {
	for i := 0; i < attempts; i++ {
		c, err := Karger(g, rng)
		if err != nil {
			return Cut{}, err
		}
		if c.Size == size {
			return c, nil
		}
	}

	return Cut{}, fmt.Errorf("%w: %d attempts", ErrNoCut, attempts)
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}

	return u
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}

	return true
}

// PartOne multiplies the sizes of the two groups.
func PartOne(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	a, b, err := Split(g, CutSize)
	if err != nil {
		return 0, err
	}

	return a * b, nil
}

// PartTwo has no puzzle on the last day.
func PartTwo(string) (int, error) {
	return 0, nil
}
