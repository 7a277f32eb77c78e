// Command aoc runs one Advent of Code 2023 day, or all of them, against
// input files on disk.
package main

import "github.com/katalvlaran/aoc2023/internal/cli"

func main() {
	cli.Execute()
}
