// Package day15 implements the HASH algorithm and the HASHMAP lens boxes.
package day15

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput indicates a malformed initialization step.
var ErrInvalidInput = errors.New("day15: invalid input")

// Hash returns the HASH value of s.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}

	return h
}

func steps(input string) []string {
	input = strings.NewReplacer("\n", "", "\r", "").Replace(input)
	if input == "" {
		return nil
	}

	return strings.Split(input, ",")
}

// PartOne sums the HASH of every step.
func PartOne(input string) (int, error) {
	sum := 0
	for _, s := range steps(input) {
		sum += Hash(s)
	}

	return sum, nil
}

type lens struct {
	label string
	focal int
}

// Boxes is the HASHMAP: 256 boxes of ordered lenses.
type Boxes [256][]lens

// Apply runs one "label=n" or "label-" step.
func (b *Boxes) Apply(step string) error {
	if label, ok := strings.CutSuffix(step, "-"); ok && label != "" {
		box := &b[Hash(label)]
		for i, l := range *box {
			if l.label == label {
				*box = append((*box)[:i], (*box)[i+1:]...)
				break
			}
		}
		return nil
	}
	label, fl, ok := strings.Cut(step, "=")
	if !ok || label == "" {
		return fmt.Errorf("%w: step %q", ErrInvalidInput, step)
	}
	focal, err := strconv.Atoi(fl)
	if err != nil || focal < 1 || focal > 9 {
		return fmt.Errorf("%w: focal length in %q", ErrInvalidInput, step)
	}
	box := &b[Hash(label)]
	for i := range *box {
		if (*box)[i].label == label {
			(*box)[i].focal = focal
			return nil
		}
	}
	*box = append(*box, lens{label: label, focal: focal})

	return nil
}

// Power returns the total focusing power of all lenses.
func (b *Boxes) Power() int {
	total := 0
	for i, box := range b {
		for slot, l := range box {
			total += (i + 1) * (slot + 1) * l.focal
		}
	}

	return total
}

// PartTwo arranges the lenses and returns their focusing power.
func PartTwo(input string) (int, error) {
	var b Boxes
	for _, s := range steps(input) {
		if err := b.Apply(s); err != nil {
			return 0, err
		}
	}

	return b.Power(), nil
}
