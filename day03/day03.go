// Package day03 reads part numbers off an engine schematic.
package day03

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates an empty or ragged schematic.
var ErrInvalidInput = errors.New("day03: invalid input")

// number is a run of digits on row y spanning columns [x0, x1).
type number struct {
	value  int
	y      int
	x0, x1 int
}

type schematic struct {
	rows    []string
	numbers []number
}

func parse(input string) (*schematic, error) {
	rows := aoc.Lines(input)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty schematic", ErrInvalidInput)
	}
	s := &schematic{rows: rows}
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidInput, y, len(row), len(rows[0]))
		}
		for x := 0; x < len(row); {
			if _, ok := aoc.Digit(row[x]); !ok {
				x++
				continue
			}
			n := number{y: y, x0: x}
			for ; x < len(row); x++ {
				d, ok := aoc.Digit(row[x])
				if !ok {
					break
				}
				n.value = 10*n.value + d
			}
			n.x1 = x
			s.numbers = append(s.numbers, n)
		}
	}

	return s, nil
}

func isSymbol(b byte) bool {
	_, digit := aoc.Digit(b)

	return b != '.' && !digit
}

// around calls fn for every in-bounds cell bordering n, diagonals included.
func (s *schematic) around(n number, fn func(x, y int)) {
	for y := n.y - 1; y <= n.y+1; y++ {
		if y < 0 || y >= len(s.rows) {
			continue
		}
		for x := n.x0 - 1; x <= n.x1; x++ {
			if x < 0 || x >= len(s.rows[y]) || (y == n.y && x >= n.x0 && x < n.x1) {
				continue
			}
			fn(x, y)
		}
	}
}

// PartOne sums every number adjacent to a symbol.
func PartOne(input string) (int, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, n := range s.numbers {
		adjacent := false
		s.around(n, func(x, y int) {
			adjacent = adjacent || isSymbol(s.rows[y][x])
		})
		if adjacent {
			sum += n.value
		}
	}

	return sum, nil
}

// PartTwo sums the gear ratios: products of the two numbers touching a '*'
// that touches exactly two numbers.
func PartTwo(input string) (int, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	gears := make(map[[2]int][]int)
	for _, n := range s.numbers {
		s.around(n, func(x, y int) {
			if s.rows[y][x] == '*' {
				k := [2]int{x, y}
				gears[k] = append(gears[k], n.value)
			}
		})
	}
	sum := 0
	for _, parts := range gears {
		if len(parts) == 2 {
			sum += parts[0] * parts[1]
		}
	}

	return sum, nil
}
