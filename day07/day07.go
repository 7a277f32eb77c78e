// Package day07 ranks Camel Cards hands.
package day07

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed hand or bid.
var ErrInvalidInput = errors.New("day07: invalid input")

// HandType orders hands from weakest to strongest.
type HandType int

// Hand types, weakest first.
const (
	HighCard    HandType = iota // five distinct labels
	OnePair                     // one pair, three singles
	TwoPair                     // two pairs and a single
	ThreeOfKind                 // a triple and two singles
	FullHouse                   // a triple and a pair
	FourOfKind                  // four of one label
	FiveOfKind                  // all five the same
)

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int
	Type  HandType
}

// Classify returns the type of a five-card hand. With jokers set, every
// 'J' joins the largest group of other cards.
func Classify(cards string, jokers bool) (HandType, error) {
	if len(cards) != 5 {
		return 0, fmt.Errorf("%w: hand %q has %d cards", ErrInvalidInput, cards, len(cards))
	}
	counts := make(map[rune]int, 5)
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild
	second := 0
	if len(groups) > 1 {
		second = groups[1]
	}

	switch {
	case groups[0] == 5:
		return FiveOfKind, nil
	case groups[0] == 4:
		return FourOfKind, nil
	case groups[0] == 3 && second == 2:
		return FullHouse, nil
	case groups[0] == 3:
		return ThreeOfKind, nil
	case groups[0] == 2 && second == 2:
		return TwoPair, nil
	case groups[0] == 2:
		return OnePair, nil
	default:
		return HighCard, nil
	}
}

func parse(input string, jokers bool) ([]Hand, error) {
	var hands []Hand
	for _, l := range aoc.Lines(input) {
		f := strings.Fields(l)
		if len(f) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInput, l)
		}
		for _, c := range f[0] {
			if !strings.ContainsRune(order, c) {
				return nil, fmt.Errorf("%w: card %q", ErrInvalidInput, c)
			}
		}
		bid, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bid %q: %v", ErrInvalidInput, f[1], err)
		}
		typ, err := Classify(f[0], jokers)
		if err != nil {
			return nil, err
		}
		hands = append(hands, Hand{Cards: f[0], Bid: bid, Type: typ})
	}

	return hands, nil
}

func winnings(input string, jokers bool) (int, error) {
	hands, err := parse(input, jokers)
	if err != nil {
		return 0, err
	}
	ranks := order
	if jokers {
		ranks = jokerOrder
	}
	sort.SliceStable(hands, func(i, j int) bool {
		a, b := hands[i], hands[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		for k := 0; k < 5; k++ {
			if a.Cards[k] != b.Cards[k] {
				return strings.IndexByte(ranks, a.Cards[k]) < strings.IndexByte(ranks, b.Cards[k])
			}
		}
		return false
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.Bid
	}

	return total, nil
}

// PartOne returns the total winnings.
func PartOne(input string) (int, error) { return winnings(input, false) }

// PartTwo returns the total winnings with jokers wild.
func PartTwo(input string) (int, error) { return winnings(input, true) }
