// Package day08 navigates the desert node network by its left/right
// instructions. Nodes are vertices of a directed core.Graph whose edges
// carry the label "L" or "R".
package day08

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed network or an unreachable exit.
var ErrInvalidInput = errors.New("day08: invalid input")

// Network is the parsed puzzle: the instruction string and the node graph.
type Network struct {
	Instructions string
	Graph        *core.Graph

	// next caches the L/R successors read back from Graph.
	next map[string][2]string
}

// Parse reads the instruction line and "AAA = (BBB, CCC)" node lines.
func Parse(input string) (*Network, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: want instructions and a node block", ErrInvalidInput)
	}
	instr := strings.TrimSpace(blocks[0][0])
	if instr == "" || strings.Trim(instr, "LR") != "" {
		return nil, fmt.Errorf("%w: instructions %q", ErrInvalidInput, instr)
	}

	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, l := range blocks[1] {
		name, rest, ok := strings.Cut(l, "=")
		rest = strings.TrimSpace(rest)
		if !ok || !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
			return nil, fmt.Errorf("%w: node %q", ErrInvalidInput, l)
		}
		left, right, ok := strings.Cut(rest[1:len(rest)-1], ",")
		if !ok {
			return nil, fmt.Errorf("%w: node %q", ErrInvalidInput, l)
		}
		name = strings.TrimSpace(name)
		if _, err := g.AddEdge(name, strings.TrimSpace(left), 0, core.WithEdgeLabel("L")); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, err := g.AddEdge(name, strings.TrimSpace(right), 0, core.WithEdgeLabel("R")); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	n := &Network{Instructions: instr, Graph: g, next: make(map[string][2]string)}
	for _, id := range g.Vertices() {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		var lr [2]string
		for _, e := range edges {
			if e.Label == "L" {
				lr[0] = e.To
			} else {
				lr[1] = e.To
			}
		}
		n.next[id] = lr
	}

	return n, nil
}

// Steps walks from start until isExit holds, returning the number of moves.
// At least one move is made.
func (n *Network) Steps(start string, isExit func(string) bool) (int, error) {
	if _, ok := n.next[start]; !ok {
		return 0, fmt.Errorf("%w: unknown node %q", ErrInvalidInput, start)
	}
	limit := len(n.next)*len(n.Instructions) + 1
	cur := start
	for steps := 1; steps <= limit; steps++ {
		lr := n.next[cur]
		if n.Instructions[(steps-1)%len(n.Instructions)] == 'L' {
			cur = lr[0]
		} else {
			cur = lr[1]
		}
		if cur == "" {
			return 0, fmt.Errorf("%w: dead end after %d steps", ErrInvalidInput, steps)
		}
		if isExit(cur) {
			return steps, nil
		}
	}

	return 0, fmt.Errorf("%w: no exit reachable from %q", ErrInvalidInput, start)
}

// PartOne counts the steps from AAA to ZZZ.
func PartOne(input string) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return n.Steps("AAA", func(id string) bool { return id == "ZZZ" })
}

// PartTwo walks every node ending in 'A' at once and returns the first step
// at which all of them stand on nodes ending in 'Z'. Each ghost's path is a
// cycle through its exit, so this is the LCM of the individual step counts.
func PartTwo(input string) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var lengths []int
	for _, id := range n.Graph.Vertices() {
		if !strings.HasSuffix(id, "A") {
			continue
		}
		s, err := n.Steps(id, func(v string) bool { return strings.HasSuffix(v, "Z") })
		if err != nil {
			return 0, err
		}
		lengths = append(lengths, s)
	}
	if len(lengths) == 0 {
		return 0, fmt.Errorf("%w: no start nodes", ErrInvalidInput)
	}

	return aoc.LCM(lengths...), nil
}
