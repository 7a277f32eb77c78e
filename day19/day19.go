// Package day19 sorts machine parts through a system of workflows.
package day19

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed workflow or part, or a workflow
// chain that never decides.
var ErrInvalidInput = errors.New("day19: invalid input")

const categories = "xmas"

// Rule sends a part to Target when its category Var compares to Val by Op.
// Op is 0 for the unconditional last rule of a workflow.
type Rule struct {
	Var    int
	Op     byte
	Val    int
	Target string
}

// Matches reports whether rating satisfies the rule.
func (r Rule) Matches(part [4]int) bool {
	switch r.Op {
	case '<':
		return part[r.Var] < r.Val
	case '>':
		return part[r.Var] > r.Val
	default:
		return true
	}
}

// Range is the inclusive interval [Lo, Hi]; empty when Lo > Hi.
type Range struct {
	Lo, Hi int
}

// Len returns the number of integers in r.
func (r Range) Len() int { return max(0, r.Hi-r.Lo+1) }

// Template is a box of parts: one Range per category, in xmas order.
type Template [4]Range

// Count returns the number of parts in t.
func (t Template) Count() int {
	n := 1
	for _, r := range t {
		n *= r.Len()
	}

	return n
}

// Split divides t into the parts matched by r and the rest. Either side
// may be empty (Count() == 0).
func (t Template) Split(r Rule) (match, rest Template) {
	match, rest = t, t
	v := r.Var
	switch r.Op {
	case '<':
		match[v].Hi = min(t[v].Hi, r.Val-1)
		rest[v].Lo = max(t[v].Lo, r.Val)
	case '>':
		match[v].Lo = max(t[v].Lo, r.Val+1)
		rest[v].Hi = min(t[v].Hi, r.Val)
	default:
		rest[0] = Range{1, 0}
	}

	return match, rest
}

type system struct {
	workflows map[string][]Rule
	parts     [][4]int
}

func parseRule(s string) (Rule, error) {
	cond, target, ok := strings.Cut(s, ":")
	if !ok {
		if s == "" {
			return Rule{}, fmt.Errorf("%w: empty rule", ErrInvalidInput)
		}
		return Rule{Target: s}, nil
	}
	if len(cond) < 3 || strings.IndexByte(categories, cond[0]) < 0 || (cond[1] != '<' && cond[1] != '>') {
		return Rule{}, fmt.Errorf("%w: rule %q", ErrInvalidInput, s)
	}
	n, err := strconv.Atoi(cond[2:])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: rule %q: %v", ErrInvalidInput, s, err)
	}

	return Rule{Var: strings.IndexByte(categories, cond[0]), Op: cond[1], Val: n, Target: target}, nil
}

func parse(input string) (*system, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: no workflows", ErrInvalidInput)
	}
	sys := &system{workflows: make(map[string][]Rule)}
	for _, l := range blocks[0] {
		name, body, ok := strings.Cut(l, "{")
		if !ok || !strings.HasSuffix(body, "}") {
			return nil, fmt.Errorf("%w: workflow %q", ErrInvalidInput, l)
		}
		var rules []Rule
		for _, rs := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
			r, err := parseRule(rs)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
		if rules[len(rules)-1].Op != 0 {
			return nil, fmt.Errorf("%w: workflow %q has no default", ErrInvalidInput, name)
		}
		sys.workflows[name] = rules
	}
	if _, ok := sys.workflows["in"]; !ok {
		return nil, fmt.Errorf("%w: no workflow named in", ErrInvalidInput)
	}
	if len(blocks) > 1 {
		for _, l := range blocks[1] {
			var p [4]int
			body := strings.TrimSuffix(strings.TrimPrefix(l, "{"), "}")
			fields := strings.Split(body, ",")
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: part %q", ErrInvalidInput, l)
			}
			for _, f := range fields {
				k, v, ok := strings.Cut(f, "=")
				i := strings.Index(categories, k)
				n, err := strconv.Atoi(v)
				if !ok || len(k) != 1 || i < 0 || err != nil {
					return nil, fmt.Errorf("%w: rating %q", ErrInvalidInput, f)
				}
				p[i] = n
			}
			sys.parts = append(sys.parts, p)
		}
	}

	return sys, nil
}

func (s *system) accepts(part [4]int) (bool, error) {
	name := "in"
	for hops := 0; hops <= len(s.workflows); hops++ {
		rules, ok := s.workflows[name]
		if !ok {
			return false, fmt.Errorf("%w: unknown workflow %q", ErrInvalidInput, name)
		}
		for _, r := range rules {
			if r.Matches(part) {
				name = r.Target
				break
			}
		}
		switch name {
		case "A":
			return true, nil
		case "R":
			return false, nil
		}
	}

	return false, fmt.Errorf("%w: workflow cycle", ErrInvalidInput)
}

// count returns the accepted parts in t entering workflow name.
func (s *system) count(name string, t Template, depth int) (int, error) {
	switch {
	case t.Count() == 0 || name == "R":
		return 0, nil
	case name == "A":
		return t.Count(), nil
	case depth > len(s.workflows):
		return 0, fmt.Errorf("%w: workflow cycle", ErrInvalidInput)
	}
	rules, ok := s.workflows[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown workflow %q", ErrInvalidInput, name)
	}
	total := 0
	for _, r := range rules {
		match, rest := t.Split(r)
		n, err := s.count(r.Target, match, depth+1)
		if err != nil {
			return 0, err
		}
		total += n
		t = rest
	}

	return total, nil
}

// PartOne sums the ratings of every accepted part.
func PartOne(input string) (int, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, p := range s.parts {
		ok, err := s.accepts(p)
		if err != nil {
			return 0, err
		}
		if ok {
			sum += p[0] + p[1] + p[2] + p[3]
		}
	}

	return sum, nil
}

// PartTwo counts the rating combinations in 1..4000 that are accepted.
func PartTwo(input string) (int, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	full := Template{{1, 4000}, {1, 4000}, {1, 4000}, {1, 4000}}

	return s.count("in", full, 0)
}
