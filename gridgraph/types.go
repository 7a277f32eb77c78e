// Package gridgraph treats a rectangular character grid as a graph.
//
// It supports:
//
//   - Parsing puzzle text into a Grid (one row per line)
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds checks, neighbor enumeration and symbol lookup
//   - Conversion of passable cells to an unweighted, undirected *core.Graph
//     whose vertex IDs are "x,y" (see VertexID)
//
// Coordinates are (x, y) with x growing to the right and y growing down;
// Cells[y][x] holds the byte at that position.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is a rectangular byte grid. Width and Height define dimensions.
type Grid struct {
	Width, Height   int
	Cells           [][]byte
	Conn            Connectivity
	neighborOffsets [][2]int
}
