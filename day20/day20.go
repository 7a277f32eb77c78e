// Package day20 simulates pulses through a network of communication
// modules: one broadcaster, '%' flip-flops and '&' conjunctions.
//
// The wiring is a directed core.Graph. Outgoing neighbours in insertion
// order give each module's destinations; incoming neighbours give the
// inputs a conjunction has to remember.
package day20

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed module line or an unsolvable network.
var ErrInvalidInput = errors.New("day20: invalid input")

const (
	broadcaster = "broadcaster"
	button      = "button"

	// maxPresses bounds the search for rx feeder cycles.
	maxPresses = 1 << 16
)

// Kind is a module type.
type Kind byte

// Module kinds, keyed by the prefix byte of their definition line.
const (
	Untyped     Kind = 0   // named only as a destination, e.g. rx
	Broadcaster Kind = 'b' // repeats every pulse to all outputs
	FlipFlop    Kind = '%' // toggles on low pulses, ignores high
	Conjunction Kind = '&' // sends low only when all inputs were high
)

// Pulse is one signal in flight.
type Pulse struct {
	From, To string
	High     bool
}

// Machine holds the wiring and the mutable module state.
type Machine struct {
	Graph   *core.Graph
	kinds   map[string]Kind
	outputs map[string][]string
	on      map[string]bool            // flip-flop state
	memory  map[string]map[string]bool // conjunction input memory
}

// Parse builds a Machine from "kind name -> dest, dest" lines.
func Parse(input string) (*Machine, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	m := &Machine{
		Graph:   g,
		kinds:   make(map[string]Kind),
		outputs: make(map[string][]string),
		on:      make(map[string]bool),
		memory:  make(map[string]map[string]bool),
	}
	for _, l := range aoc.Lines(input) {
		src, dst, ok := strings.Cut(l, "->")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInput, l)
		}
		name := strings.TrimSpace(src)
		kind := Broadcaster
		switch {
		case strings.HasPrefix(name, "%"):
			kind, name = FlipFlop, name[1:]
		case strings.HasPrefix(name, "&"):
			kind, name = Conjunction, name[1:]
		case name != broadcaster:
			return nil, fmt.Errorf("%w: module %q", ErrInvalidInput, name)
		}
		if _, dup := m.kinds[name]; dup || name == "" {
			return nil, fmt.Errorf("%w: module %q defined twice or unnamed", ErrInvalidInput, name)
		}
		m.kinds[name] = kind
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		for _, d := range strings.Split(dst, ",") {
			if _, err := g.AddEdge(name, strings.TrimSpace(d), 0); err != nil {
				return nil, fmt.Errorf("%w: %s -> %q: %v", ErrInvalidInput, name, d, err)
			}
		}
	}
	if m.kinds[broadcaster] != Broadcaster {
		return nil, fmt.Errorf("%w: no broadcaster", ErrInvalidInput)
	}

	for _, id := range g.Vertices() {
		out, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		m.outputs[id] = out
		if m.kinds[id] == Conjunction {
			in, err := g.InNeighborIDs(id)
			if err != nil {
				return nil, err
			}
			m.memory[id] = make(map[string]bool, len(in))
			for _, src := range in {
				m.memory[id][src] = false
			}
		}
	}

	return m, nil
}

// Press pushes the button once, processing pulses in FIFO order.
// observe, if non-nil, sees every pulse. It returns the low and high
// pulse counts, the button pulse included.
func (m *Machine) Press(observe func(Pulse)) (low, high int) {
	queue := []Pulse{{From: button, To: broadcaster}}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if p.High {
			high++
		} else {
			low++
		}
		if observe != nil {
			observe(p)
		}

		var out bool
		switch m.kinds[p.To] {
		case Broadcaster:
			out = p.High
		case FlipFlop:
			if p.High {
				continue
			}
			m.on[p.To] = !m.on[p.To]
			out = m.on[p.To]
		case Conjunction:
			mem := m.memory[p.To]
			mem[p.From] = p.High
			out = false
			for _, v := range mem {
				if !v {
					out = true
					break
				}
			}
		default:
			continue
		}
		for _, d := range m.outputs[p.To] {
			queue = append(queue, Pulse{From: p.To, To: d, High: out})
		}
	}

	return low, high
}

// PartOne multiplies the low and high pulse totals over 1000 presses.
func PartOne(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	lows, highs := 0, 0
	for i := 0; i < 1000; i++ {
		l, h := m.Press(nil)
		lows += l
		highs += h
	}

	return lows * highs, nil
}

// PartTwo returns the fewest presses that deliver a low pulse to rx. rx is
// fed by one conjunction, which sends low only when each of its inputs has
// just sent high; those inputs fire on independent cycles, so the answer
// is the LCM of the first press at which each one sends high.
func PartTwo(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if !m.Graph.HasVertex("rx") {
		return 0, fmt.Errorf("%w: no rx module", ErrInvalidInput)
	}
	feeders, err := m.Graph.InNeighborIDs("rx")
	if err != nil {
		return 0, err
	}
	if len(feeders) != 1 || m.kinds[feeders[0]] != Conjunction {
		return 0, fmt.Errorf("%w: rx must be fed by a single conjunction", ErrInvalidInput)
	}
	hub := feeders[0]
	inputs, err := m.Graph.InNeighborIDs(hub)
	if err != nil {
		return 0, err
	}

	first := make(map[string]int, len(inputs))
	for press := 1; press <= maxPresses && len(first) < len(inputs); press++ {
		m.Press(func(p Pulse) {
			if p.To == hub && p.High {
				if _, ok := first[p.From]; !ok {
					first[p.From] = press
				}
			}
		})
	}
	if len(first) < len(inputs) {
		return 0, fmt.Errorf("%w: %s inputs did not all fire within %d presses", ErrInvalidInput, hub, maxPresses)
	}
	cycles := make([]int, 0, len(first))
	for _, n := range first {
		cycles = append(cycles, n)
	}

	return aoc.LCM(cycles...), nil
}
