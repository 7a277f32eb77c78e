// Package day24 traces hailstones: pairwise path crossings in the XY
// plane, and the single rock throw that hits every stone.
package day24

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
	"github.com/katalvlaran/aoc2023/matrix"
	"github.com/katalvlaran/aoc2023/matrix/ops"
)

var (
	// ErrInvalidInput indicates a malformed hailstone line.
	ErrInvalidInput = errors.New("day24: invalid input")

	// ErrDegenerate indicates the stones do not pin down a single throw.
	ErrDegenerate = errors.New("day24: degenerate hailstones")
)

// Test area for part one.
const (
	AreaMin = 200000000000000
	AreaMax = 400000000000000
)

// Hailstone has an integer position and velocity.
type Hailstone struct {
	P, V [3]int
}

// ParseHailstone reads "px, py, pz @ vx, vy, vz".
func ParseHailstone(line string) (Hailstone, error) {
	pos, vel, ok := strings.Cut(line, "@")
	if !ok {
		return Hailstone{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}
	p, err := aoc.Ints(pos)
	if err != nil || len(p) != 3 {
		return Hailstone{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}
	v, err := aoc.Ints(vel)
	if err != nil || len(v) != 3 {
		return Hailstone{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}

	return Hailstone{P: [3]int{p[0], p[1], p[2]}, V: [3]int{v[0], v[1], v[2]}}, nil
}

func parse(input string) ([]Hailstone, error) {
	var out []Hailstone
	for _, l := range aoc.Lines(input) {
		h, err := ParseHailstone(l)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}

	return out, nil
}

// CrossXY reports whether the future XY paths of a and b cross inside
// [lo, hi] on both axes. Parallel paths never cross.
func CrossXY(a, b Hailstone, lo, hi float64) bool {
	den := a.V[1]*b.V[0] - a.V[0]*b.V[1]
	if den == 0 {
		return false
	}
	dx, dy := b.P[0]-a.P[0], b.P[1]-a.P[1]
	c := b.V[0]*dy - b.V[1]*dx
	d := a.V[0]*dy - a.V[1]*dx
	// both times must be non-negative: numerators share den's sign
	if (c < 0) != (den < 0) && c != 0 {
		return false
	}
	if (d < 0) != (den < 0) && d != 0 {
		return false
	}
	t := float64(c) / float64(den)
	x := float64(a.P[0]) + t*float64(a.V[0])
	y := float64(a.P[1]) + t*float64(a.V[1])

	return x >= lo && x <= hi && y >= lo && y <= hi
}

// CountIntersections counts the stone pairs whose paths cross inside
// [lo, hi].
func CountIntersections(input string, lo, hi float64) (int, error) {
	stones, err := parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range stones {
		for j := i + 1; j < len(stones); j++ {
			if CrossXY(stones[i], stones[j], lo, hi) {
				n++
			}
		}
	}

	return n, nil
}

// Throw finds the rock position that hits every stone.
//
// Stage 1: shift the origin to stone 0 to keep magnitudes small.
// Stage 2: equating the XY collision condition of stone 0 with stones
// 1..4 cancels the bilinear terms and leaves a 4×4 linear system in the
// rock's x, y, vx and vy. Its inverse gives float estimates; only the
// small integer velocities are trusted from them.
// Stage 3: for integer velocities near the estimate, recover the position
// exactly and keep the first one that hits every stone.
func Throw(stones []Hailstone) ([3]int, error) {
	if len(stones) < 5 {
		return [3]int{}, fmt.Errorf("%w: need 5 stones, have %d", ErrDegenerate, len(stones))
	}
	// Stage 1
	o := stones[0].P
	type stone struct{ px, py, vx, vy float64 }
	rel := make([]stone, 5)
	for i := range rel {
		h := stones[i]
		rel[i] = stone{
			px: float64(h.P[0] - o[0]), py: float64(h.P[1] - o[1]),
			vx: float64(h.V[0]), vy: float64(h.V[1]),
		}
	}

	// Stage 2
	h1 := rel[0]
	rows := make([][]float64, 4)
	rhs := make([][]float64, 4)
	for i, h2 := range rel[1:] {
		rows[i] = []float64{h2.vy - h1.vy, h1.vx - h2.vx, h1.py - h2.py, h2.px - h1.px}
		rhs[i] = []float64{h1.vx*h1.py - h2.vx*h2.py + h2.px*h2.vy - h1.px*h1.vy}
	}
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return [3]int{}, err
	}
	b, err := matrix.NewDenseFromRows(rhs)
	if err != nil {
		return [3]int{}, err
	}
	inv, err := ops.Inverse(a)
	if err != nil {
		return [3]int{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	prod, err := matrix.Mul(inv, b)
	if err != nil {
		return [3]int{}, err
	}
	sol, err := prod.Column(0)
	if err != nil {
		return [3]int{}, err
	}
	vx, vy := int(math.Round(sol[2])), int(math.Round(sol[3]))

	// Stage 3
	for _, d := range nearby {
		if p, ok := exactThrow(stones, vx+d[0], vy+d[1]); ok {
			return p, nil
		}
	}

	return [3]int{}, fmt.Errorf("%w: no integer throw near velocity (%d,%d)", ErrDegenerate, vx, vy)
}

// nearby lists velocity corrections within radius 3, closest first.
var nearby = func() [][2]int {
	const r = 3
	var out [][2]int
	for dist := 0; dist <= 2*r; dist++ {
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if aoc.Abs(dx)+aoc.Abs(dy) == dist {
					out = append(out, [2]int{dx, dy})
				}
			}
		}
	}

	return out
}()

// exactThrow recovers the rock for a given XY velocity in integer
// arithmetic and checks it against every stone.
func exactThrow(stones []Hailstone, vx, vy int) ([3]int, bool) {
	x, y, ok := meetXY(stones, vx, vy)
	if !ok {
		return [3]int{}, false
	}
	// collision times
	times := make([]int, len(stones))
	for i, s := range stones {
		var num, den int
		switch {
		case s.V[0] != vx:
			num, den = x-s.P[0], s.V[0]-vx
		case s.V[1] != vy:
			num, den = y-s.P[1], s.V[1]-vy
		default:
			return [3]int{}, false
		}
		if num%den != 0 {
			return [3]int{}, false
		}
		t := num / den
		if t < 0 || s.P[0]+s.V[0]*t != x+vx*t || s.P[1]+s.V[1]*t != y+vy*t {
			return [3]int{}, false
		}
		times[i] = t
	}
	// z from two stones hit at different times
	j := 1
	for j < len(stones) && times[j] == times[0] {
		j++
	}
	if j == len(stones) {
		return [3]int{}, false
	}
	s0, sj := stones[0], stones[j]
	num := s0.P[2] - sj.P[2] + times[0]*s0.V[2] - times[j]*sj.V[2]
	den := times[0] - times[j]
	if num%den != 0 {
		return [3]int{}, false
	}
	vz := num / den
	z := s0.P[2] + times[0]*(s0.V[2]-vz)
	for i, s := range stones {
		if s.P[2]+s.V[2]*times[i] != z+vz*times[i] {
			return [3]int{}, false
		}
	}

	return [3]int{x, y, z}, true
}

// meetXY solves for the rock's XY start from the first pair of stones whose
// collision lines are independent. For a stone p, v the rock satisfies
// X·(vy−ry) − Y·(vx−rx) = px·(vy−ry) − py·(vx−rx); the right-hand side
// products overflow int64 when combined, so Cramer's rule runs on big.Int.
func meetXY(stones []Hailstone, vx, vy int) (int, int, bool) {
	coef := func(s Hailstone) (a, b int64, c *big.Int) {
		a, b = int64(s.V[1]-vy), -int64(s.V[0]-vx)
		c = new(big.Int).Mul(big.NewInt(int64(s.P[0])), big.NewInt(a))
		c.Add(c, new(big.Int).Mul(big.NewInt(int64(s.P[1])), big.NewInt(b)))
		return a, b, c
	}
	for i := 0; i < len(stones); i++ {
		a1, b1, c1 := coef(stones[i])
		for j := i + 1; j < len(stones); j++ {
			a2, b2, c2 := coef(stones[j])
			det := a1*b2 - a2*b1
			if det == 0 {
				continue
			}
			// X = (c1·b2 − c2·b1)/det, Y = (a1·c2 − a2·c1)/det
			nx := new(big.Int).Sub(new(big.Int).Mul(c1, big.NewInt(b2)), new(big.Int).Mul(c2, big.NewInt(b1)))
			ny := new(big.Int).Sub(new(big.Int).Mul(c2, big.NewInt(a1)), new(big.Int).Mul(c1, big.NewInt(a2)))
			d := big.NewInt(det)
			x, rx := new(big.Int).QuoRem(nx, d, new(big.Int))
			y, ry := new(big.Int).QuoRem(ny, d, new(big.Int))
			if rx.Sign() != 0 || ry.Sign() != 0 || !x.IsInt64() || !y.IsInt64() {
				return 0, 0, false
			}
			return int(x.Int64()), int(y.Int64()), true
		}
	}

	return 0, 0, false
}

// PartOne counts crossings inside the standard test area.
func PartOne(input string) (int, error) {
	return CountIntersections(input, AreaMin, AreaMax)
}

// PartTwo returns the sum of the rock's starting coordinates.
func PartTwo(input string) (int, error) {
	stones, err := parse(input)
	if err != nil {
		return 0, err
	}
	p, err := Throw(stones)
	if err != nil {
		return 0, err
	}

	return p[0] + p[1] + p[2], nil
}
