// Package day02 scores cube-drawing games.
package day02

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed game record.
var ErrInvalidInput = errors.New("day02: invalid input")

// Draw is one handful of cubes.
type Draw struct {
	Red, Green, Blue int
}

// Game is a numbered sequence of draws.
type Game struct {
	ID    int
	Draws []Draw
}

// ParseGame parses "Game N: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrInvalidInput, line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(head, "Game")))
	if err != nil {
		return Game{}, fmt.Errorf("%w: game id in %q: %v", ErrInvalidInput, line, err)
	}
	g := Game{ID: id}
	for _, set := range strings.Split(body, ";") {
		var d Draw
		for _, item := range strings.Split(set, ",") {
			fields := strings.Fields(item)
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("%w: cube count %q", ErrInvalidInput, item)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return Game{}, fmt.Errorf("%w: cube count %q: %v", ErrInvalidInput, item, err)
			}
			switch fields[1] {
			case "red":
				d.Red += n
			case "green":
				d.Green += n
			case "blue":
				d.Blue += n
			default:
				return Game{}, fmt.Errorf("%w: colour %q", ErrInvalidInput, fields[1])
			}
		}
		g.Draws = append(g.Draws, d)
	}

	return g, nil
}

// Max returns the per-colour maxima over all draws.
func (g Game) Max() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = aoc.Max(m.Red, d.Red)
		m.Green = aoc.Max(m.Green, d.Green)
		m.Blue = aoc.Max(m.Blue, d.Blue)
	}

	return m
}

// Power is the product of the minimum cube counts that make g possible.
func Power(g Game) int {
	m := g.Max()

	return m.Red * m.Green * m.Blue
}

func parseAll(input string) ([]Game, error) {
	lines := aoc.Lines(input)
	games := make([]Game, 0, len(lines))
	for _, l := range lines {
		g, err := ParseGame(l)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, nil
}

// PartOne sums the ids of games possible with 12 red, 13 green and 14 blue cubes.
func PartOne(input string) (int, error) {
	games, err := parseAll(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if m := g.Max(); m.Red <= 12 && m.Green <= 13 && m.Blue <= 14 {
			sum += g.ID
		}
	}

	return sum, nil
}

// PartTwo sums the power of every game.
func PartTwo(input string) (int, error) {
	games, err := parseAll(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += Power(g)
	}

	return sum, nil
}
