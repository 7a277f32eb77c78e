// Package aoc holds small helpers shared by the day packages: generic
// integer arithmetic, 2-D points and input splitting/number parsing.
package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns |x|.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// AbsDiff returns |x-y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	return Abs(x - y)
}

// GCD returns the greatest common divisor of a and b (non-negative).
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// LCM returns the least common multiple of every value in xs.
// LCM of an empty list is 1; a zero anywhere yields 0.
func LCM[T constraints.Integer](xs ...T) T {
	var acc T = 1
	for _, x := range xs {
		if x == 0 {
			return 0
		}
		acc = acc / GCD(acc, x) * x
	}
	if acc < 0 {
		return -acc
	}

	return acc
}

// Sum adds up xs.
func Sum[T Number](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}

	return s
}

// Max returns the largest of xs, or the zero value for an empty slice.
func Max[T constraints.Ordered](xs ...T) T {
	var m T
	for i, x := range xs {
		if i == 0 || x > m {
			m = x
		}
	}

	return m
}

// Pt2 is a 2-D point with signed coordinates.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Add returns p+q.
func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }

// MDist returns the Manhattan distance between p and q.
func (p Pt2[T]) MDist(q Pt2[T]) T {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y)
}

// Lines splits input into lines, dropping '\r' and a trailing newline.
func Lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r", ""), "\n")
	if input == "" {
		return nil
	}

	return strings.Split(input, "\n")
}

// Blocks splits input into blank-line separated groups of lines.
func Blocks(input string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// Ints parses every whitespace- or comma-separated field of s as an int.
// Empty fields are skipped.
func Ints(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("aoc: parse %q: %w", f, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// Digit reports the value of an ASCII digit byte.
func Digit(b byte) (int, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}

	return int(b - '0'), true
}
