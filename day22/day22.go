// Package day22 settles falling sand bricks and works out which can be
// disintegrated safely.
package day22

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed brick.
var ErrInvalidInput = errors.New("day22: invalid input")

// Brick spans the inclusive box Min..Max.
type Brick struct {
	Min, Max [3]int
}

// ParseBrick reads "x,y,z~x,y,z".
func ParseBrick(line string) (Brick, error) {
	a, b, ok := strings.Cut(line, "~")
	if !ok {
		return Brick{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}
	p, err := aoc.Ints(a)
	if err != nil || len(p) != 3 {
		return Brick{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}
	q, err := aoc.Ints(b)
	if err != nil || len(q) != 3 {
		return Brick{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}
	var br Brick
	for i := 0; i < 3; i++ {
		br.Min[i], br.Max[i] = min(p[i], q[i]), max(p[i], q[i])
	}
	if br.Min[2] < 1 {
		return Brick{}, fmt.Errorf("%w: brick below ground %q", ErrInvalidInput, line)
	}

	return br, nil
}

// Stack is a settled pile. SupportedBy[i] lists the bricks directly under
// brick i; Supports[i] the bricks directly on top of it. Bricks are indexed
// in settling order (lowest first).
type Stack struct {
	Bricks      []Brick
	SupportedBy [][]int
	Supports    [][]int
}

type column struct {
	height int
	brick  int // -1 for the ground
}

// Settle drops the bricks, lowest first, onto a height map.
func Settle(bricks []Brick) *Stack {
	bs := append([]Brick(nil), bricks...)
	sort.SliceStable(bs, func(i, j int) bool { return bs[i].Min[2] < bs[j].Min[2] })

	s := &Stack{
		Bricks:      bs,
		SupportedBy: make([][]int, len(bs)),
		Supports:    make([][]int, len(bs)),
	}
	top := make(map[[2]int]column)
	for i := range bs {
		b := &s.Bricks[i]
		// Stage 1: find the highest surface under the footprint.
		rest := 0
		for x := b.Min[0]; x <= b.Max[0]; x++ {
			for y := b.Min[1]; y <= b.Max[1]; y++ {
				rest = max(rest, top[[2]int{x, y}].height)
			}
		}
		// Stage 2: record the distinct supporters at that height.
		seen := map[int]bool{}
		for x := b.Min[0]; x <= b.Max[0]; x++ {
			for y := b.Min[1]; y <= b.Max[1]; y++ {
				c, ok := top[[2]int{x, y}]
				if ok && c.height == rest && rest > 0 && !seen[c.brick] {
					seen[c.brick] = true
					s.SupportedBy[i] = append(s.SupportedBy[i], c.brick)
					s.Supports[c.brick] = append(s.Supports[c.brick], i)
				}
			}
		}
		// Stage 3: drop and update the height map.
		drop := b.Min[2] - (rest + 1)
		b.Min[2] -= drop
		b.Max[2] -= drop
		for x := b.Min[0]; x <= b.Max[0]; x++ {
			for y := b.Min[1]; y <= b.Max[1]; y++ {
				top[[2]int{x, y}] = column{height: b.Max[2], brick: i}
			}
		}
	}

	return s
}

// Falls returns how many other bricks fall when brick i is removed.
func (s *Stack) Falls(i int) int {
	gone := make([]bool, len(s.Bricks))
	gone[i] = true
	n := 0
	// supporters always settle before the bricks they hold up
	for j := i + 1; j < len(s.Bricks); j++ {
		if len(s.SupportedBy[j]) == 0 {
			continue
		}
		all := true
		for _, k := range s.SupportedBy[j] {
			if !gone[k] {
				all = false
				break
			}
		}
		if all {
			gone[j] = true
			n++
		}
	}

	return n
}

func parse(input string) (*Stack, error) {
	var bricks []Brick
	for _, l := range aoc.Lines(input) {
		b, err := ParseBrick(l)
		if err != nil {
			return nil, err
		}
		bricks = append(bricks, b)
	}

	return Settle(bricks), nil
}

// PartOne counts the bricks that are not the only support of any brick.
func PartOne(input string) (int, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	sole := make([]bool, len(s.Bricks))
	for _, under := range s.SupportedBy {
		if len(under) == 1 {
			sole[under[0]] = true
		}
	}
	n := 0
	for _, v := range sole {
		if !v {
			n++
		}
	}

	return n, nil
}

// PartTwo sums, over every brick, the number of other bricks that would
// fall if it were disintegrated.
func PartTwo(input string) (int, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i := range s.Bricks {
		sum += s.Falls(i)
	}

	return sum, nil
}
