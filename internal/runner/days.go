package runner

import (
	"github.com/katalvlaran/aoc2023/day01"
	"github.com/katalvlaran/aoc2023/day02"
	"github.com/katalvlaran/aoc2023/day03"
	"github.com/katalvlaran/aoc2023/day04"
	"github.com/katalvlaran/aoc2023/day05"
	"github.com/katalvlaran/aoc2023/day06"
	"github.com/katalvlaran/aoc2023/day07"
	"github.com/katalvlaran/aoc2023/day08"
	"github.com/katalvlaran/aoc2023/day09"
	"github.com/katalvlaran/aoc2023/day10"
	"github.com/katalvlaran/aoc2023/day11"
	"github.com/katalvlaran/aoc2023/day12"
	"github.com/katalvlaran/aoc2023/day13"
	"github.com/katalvlaran/aoc2023/day14"
	"github.com/katalvlaran/aoc2023/day15"
	"github.com/katalvlaran/aoc2023/day16"
	"github.com/katalvlaran/aoc2023/day17"
	"github.com/katalvlaran/aoc2023/day18"
	"github.com/katalvlaran/aoc2023/day19"
	"github.com/katalvlaran/aoc2023/day20"
	"github.com/katalvlaran/aoc2023/day21"
	"github.com/katalvlaran/aoc2023/day22"
	"github.com/katalvlaran/aoc2023/day23"
	"github.com/katalvlaran/aoc2023/day24"
	"github.com/katalvlaran/aoc2023/day25"
)

// AllDays returns the registry of every solved day.
func AllDays() []Day {
	return []Day{
		{Number: 1, PartOne: day01.PartOne, PartTwo: day01.PartTwo},
		{Number: 2, PartOne: day02.PartOne, PartTwo: day02.PartTwo},
		{Number: 3, PartOne: day03.PartOne, PartTwo: day03.PartTwo},
		{Number: 4, PartOne: day04.PartOne, PartTwo: day04.PartTwo},
		{Number: 5, PartOne: day05.PartOne, PartTwo: day05.PartTwo},
		{Number: 6, PartOne: day06.PartOne, PartTwo: day06.PartTwo},
		{Number: 7, PartOne: day07.PartOne, PartTwo: day07.PartTwo},
		{Number: 8, PartOne: day08.PartOne, PartTwo: day08.PartTwo},
		{Number: 9, PartOne: day09.PartOne, PartTwo: day09.PartTwo},
		{Number: 10, PartOne: day10.PartOne, PartTwo: day10.PartTwo},
		{Number: 11, PartOne: day11.PartOne, PartTwo: day11.PartTwo},
		{Number: 12, PartOne: day12.PartOne, PartTwo: day12.PartTwo},
		{Number: 13, PartOne: day13.PartOne, PartTwo: day13.PartTwo},
		{Number: 14, PartOne: day14.PartOne, PartTwo: day14.PartTwo},
		{Number: 15, PartOne: day15.PartOne, PartTwo: day15.PartTwo},
		{Number: 16, PartOne: day16.PartOne, PartTwo: day16.PartTwo},
		{Number: 17, PartOne: day17.PartOne, PartTwo: day17.PartTwo},
		{Number: 18, PartOne: day18.PartOne, PartTwo: day18.PartTwo},
		{Number: 19, PartOne: day19.PartOne, PartTwo: day19.PartTwo},
		{Number: 20, PartOne: day20.PartOne, PartTwo: day20.PartTwo},
		{Number: 21, PartOne: day21.PartOne, PartTwo: day21.PartTwo},
		{Number: 22, PartOne: day22.PartOne, PartTwo: day22.PartTwo},
		{Number: 23, PartOne: day23.PartOne, PartTwo: day23.PartTwo},
		{Number: 24, PartOne: day24.PartOne, PartTwo: day24.PartTwo},
		{Number: 25, PartOne: day25.PartOne, PartTwo: day25.PartTwo},
	}
}
