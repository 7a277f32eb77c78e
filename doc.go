// Package aoc2023 collects solutions to the 25 Advent of Code 2023 puzzles
// together with the small graph and matrix toolkit they share.
//
// Every day lives in its own package (day01 … day25) and exposes
//
//	func PartOne(input string) (int, error)
//	func PartTwo(input string) (int, error)
//
// Malformed input is reported through each package's ErrInvalidInput
// rather than a panic.
//
// Under the hood, the shared pieces are organized as:
//
//	core/         thread-safe Graph, Vertex and Edge primitives
//	bfs/          breadth-first search with depth limits
//	dfs/          topological sort over directed graphs
//	dijkstra/     shortest paths on implicit state spaces
//	flow/         Edmonds–Karp max flow and minimum cuts
//	gridgraph/    character grids and their conversion to graphs
//	matrix/       dense matrices; matrix/ops adds LU and Inverse
//	internal/     config, logging, the day runner and the CLI
//
// Quick start:
//
//	go run ./cmd/aoc 7          # solve day 7 from ./input07.txt
//	go run ./cmd/aoc --all      # solve every day concurrently
package aoc2023
