// Package day16 traces light beams through a contraption of mirrors and
// splitters.
package day16

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

// ErrInvalidInput indicates an unexpected tile.
var ErrInvalidInput = errors.New("day16: invalid input")

// Dir is a beam heading.
type Dir uint8

// Beam directions. Each is a distinct bit so a tile can record every
// direction that has crossed it.
const (
	Up Dir = 1 << iota
	Right
	Down
	Left
)

func (d Dir) step() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

var (
	slash     = map[Dir]Dir{Up: Right, Right: Up, Down: Left, Left: Down}
	backslash = map[Dir]Dir{Up: Left, Left: Up, Down: Right, Right: Down}
)

// Contraption is the parsed tile layout.
type Contraption struct {
	grid *gridgraph.Grid
}

// Parse validates and wraps the layout.
func Parse(input string) (*Contraption, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.At(x, y) {
			case '.', '/', '\\', '|', '-':
			default:
				return nil, fmt.Errorf("%w: tile %q at (%d,%d)", ErrInvalidInput, g.At(x, y), x, y)
			}
		}
	}

	return &Contraption{grid: g}, nil
}

// Energized counts tiles crossed by a beam entering (x, y) heading d.
func (c *Contraption) Energized(x, y int, d Dir) int {
	seen := make([]Dir, c.grid.Width*c.grid.Height)
	c.trace(seen, x, y, d)
	n := 0
	for _, s := range seen {
		if s != 0 {
			n++
		}
	}

	return n
}

// trace follows one beam; splitters recurse for one branch and continue
// with the other. seen holds the headings already traced through each cell.
func (c *Contraption) trace(seen []Dir, x, y int, d Dir) {
	for c.grid.InBounds(x, y) {
		i := y*c.grid.Width + x
		if seen[i]&d != 0 {
			return
		}
		seen[i] |= d

		switch c.grid.At(x, y) {
		case '/':
			d = slash[d]
		case '\\':
			d = backslash[d]
		case '|':
			if d == Left || d == Right {
				c.trace(seen, x, y-1, Up)
				d = Down
			}
		case '-':
			if d == Up || d == Down {
				c.trace(seen, x-1, y, Left)
				d = Right
			}
		}
		dx, dy := d.step()
		x, y = x+dx, y+dy
	}
}

// PartOne energizes from the top-left corner heading right.
func PartOne(input string) (int, error) {
	c, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return c.Energized(0, 0, Right), nil
}

// PartTwo returns the best energy over every edge entry.
func PartTwo(input string) (int, error) {
	c, err := Parse(input)
	if err != nil {
		return 0, err
	}
	w, h := c.grid.Width, c.grid.Height
	best := 0
	for x := 0; x < w; x++ {
		best = max(best, c.Energized(x, 0, Down), c.Energized(x, h-1, Up))
	}
	for y := 0; y < h; y++ {
		best = max(best, c.Energized(0, y, Right), c.Energized(w-1, y, Left))
	}

	return best, nil
}
