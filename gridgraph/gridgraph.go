package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/core"
)

// Parse builds a Grid from newline-separated rows. Blank trailing lines
// and '\r' are ignored.
// Returns ErrEmptyGrid if there is no content, ErrNonRectangular if any
// row length differs.
// Complexity: O(W×H).
func Parse(input string, opts GridOptions) (*Grid, error) {
	input = strings.ReplaceAll(input, "\r", "")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(input, "\n")
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}

	return NewGrid(rows, opts)
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice,
// deep-copying the input.
func NewGrid(rows [][]byte, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]byte, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = append([]byte(nil), row...)
	}
	// Precompute neighbor offsets based on connectivity
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the byte at (x,y). The caller guarantees InBounds.
func (g *Grid) At(x, y int) byte {
	return g.Cells[y][x]
}

// Neighbors returns the in-bounds neighbor coordinates of (x,y).
func (g *Grid) Neighbors(x, y int) [][2]int {
	out := make([][2]int, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, [2]int{nx, ny})
		}
	}

	return out
}

// Find returns the first (row-major) coordinates holding b.
func (g *Grid) Find(b byte) (x, y int, ok bool) {
	for y = 0; y < g.Height; y++ {
		for x = 0; x < g.Width; x++ {
			if g.Cells[y][x] == b {
				return x, y, true
			}
		}
	}

	return 0, 0, false
}

// String renders the grid back to newline-separated text.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.Cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(row)
	}

	return b.String()
}

// VertexID formats the vertex identifier for cell (x,y).
func VertexID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ToCoreGraph converts the passable cells of g into an unweighted,
// undirected *core.Graph. Every passable cell becomes a vertex "x,y";
// neighboring passable cells are joined by one edge.
// Complexity: O(W×H×d).
func (g *Grid) ToCoreGraph(passable func(b byte) bool) *core.Graph {
	out := core.NewGraph()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !passable(g.Cells[y][x]) {
				continue
			}
			uID := VertexID(x, y)
			_ = out.AddVertex(uID)
			for _, d := range g.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				// only look "forward" so each undirected pair is added once
				if ny < y || (ny == y && nx < x) {
					continue
				}
				if !g.InBounds(nx, ny) || !passable(g.Cells[ny][nx]) {
					continue
				}
				_, _ = out.AddEdge(uID, VertexID(nx, ny), 0)
			}
		}
	}

	return out
}
