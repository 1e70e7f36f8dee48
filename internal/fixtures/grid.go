// Package fixtures builds small synthetic binary images for tests,
// using a functional-constructor idiom: BuildGrid creates a Grid and
// applies a sequence of Constructor closures to it in order.
package fixtures

import "github.com/nullcluster/edgetrace/core"

// Grid is a dense row-major binary image satisfying core.Image.
type Grid struct {
	rows, cols int
	pixels     []uint8
}

// NewGrid returns an all-zero rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, pixels: make([]uint8, rows*cols)}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) PixelAt(x, y int) uint8 {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return 0
	}

	return g.pixels[y*g.cols+x]
}

// Set marks (x, y) as an edge pixel. Out-of-bounds calls are ignored,
// so constructors can be written without separate bounds checks.
func (g *Grid) Set(x, y int) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return
	}
	g.pixels[y*g.cols+x] = 1
}

// SetAll marks every point in pts.
func (g *Grid) SetAll(pts ...core.Point) {
	for _, p := range pts {
		g.Set(p.X, p.Y)
	}
}

// Constructor draws a deterministic shape into g.
type Constructor func(g *Grid)

// BuildGrid creates a rows x cols Grid and applies every constructor
// to it in order.
func BuildGrid(rows, cols int, cons ...Constructor) *Grid {
	g := NewGrid(rows, cols)
	for _, c := range cons {
		c(g)
	}

	return g
}

// HorizontalLine draws a horizontal run of pixels at row y from x0 to
// x1 inclusive.
func HorizontalLine(y, x0, x1 int) Constructor {
	return func(g *Grid) {
		for x := x0; x <= x1; x++ {
			g.Set(x, y)
		}
	}
}

// VerticalLine draws a vertical run of pixels at column x from y0 to
// y1 inclusive.
func VerticalLine(x, y0, y1 int) Constructor {
	return func(g *Grid) {
		for y := y0; y <= y1; y++ {
			g.Set(x, y)
		}
	}
}

// DiagonalLine draws a run of pixels stepping (dx, dy) each step,
// starting at (x0, y0), for n steps inclusive of the start.
func DiagonalLine(x0, y0, dx, dy, n int) Constructor {
	return func(g *Grid) {
		x, y := x0, y0
		for i := 0; i <= n; i++ {
			g.Set(x, y)
			x += dx
			y += dy
		}
	}
}

// Pixel marks a single isolated pixel.
func Pixel(x, y int) Constructor {
	return func(g *Grid) { g.Set(x, y) }
}

// Ring draws the boundary of an (inclusive) rectangle, producing a
// closed loop of edge pixels.
func Ring(x0, y0, x1, y1 int) Constructor {
	return func(g *Grid) {
		for x := x0; x <= x1; x++ {
			g.Set(x, y0)
			g.Set(x, y1)
		}
		for y := y0; y <= y1; y++ {
			g.Set(x0, y)
			g.Set(x1, y)
		}
	}
}

// Cross draws a four-armed plus centered at (cx, cy): a horizontal run
// and a vertical run sharing the center pixel, producing the
// structurally-ambiguous cluster around the shared center.
func Cross(cx, cy, arm int) Constructor {
	return func(g *Grid) {
		HorizontalLine(cy, cx-arm, cx+arm)(g)
		VerticalLine(cx, cy-arm, cy+arm)(g)
	}
}
