package core

import "math"

// Point is an integer pixel coordinate within an image grid.
type Point struct {
	X, Y int
}

// Add returns p+q componentwise.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// distanceSquared returns the squared Euclidean distance between p and q.
func distanceSquared(p, q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Sqrt(float64(distanceSquared(p, q)))
}

// IsEightNeighbor reports whether p and q are distinct pixels at
// Chebyshev distance 1, i.e. Euclidean distance < 1.5 (1.5 stands in
// for sqrt(2): every non-8-neighbor pair of distinct lattice points
// has distance >= 2).
func IsEightNeighbor(p, q Point) bool {
	if p == q {
		return false
	}

	return distanceSquared(p, q) < 3 // 1^2, 2 (=1+1) both < 3; next closest integer square is 4
}

// Image is the read-only binary pixel-grid contract the core consumes.
// A pixel is an edge pixel iff PixelAt returns a strictly positive value.
type Image interface {
	Rows() int
	Cols() int
	PixelAt(x, y int) uint8
}

// InBounds reports whether (x,y) lies within img's grid.
func InBounds(img Image, x, y int) bool {
	return x >= 0 && x < img.Cols() && y >= 0 && y < img.Rows()
}

// IsEdgePixel reports whether (x,y) is in-bounds and strictly positive.
func IsEdgePixel(img Image, x, y int) bool {
	return InBounds(img, x, y) && img.PixelAt(x, y) > 0
}

// Bitmask weights for the eight-direction occupancy code, ordered
// clockwise from top-left.
const (
	bitTopLeft     uint8 = 128
	bitTopCenter   uint8 = 64
	bitTopRight    uint8 = 32
	bitMidRight    uint8 = 16
	bitBottomRight uint8 = 8
	bitBottomCntr  uint8 = 4
	bitBottomLeft  uint8 = 2
	bitMidLeft     uint8 = 1
)

// Corner four-cluster masks: a pixel's occupancy code contains a
// four-cluster iff any of these is fully set.
const (
	cornerUpperLeft  uint8 = bitTopLeft | bitTopCenter | bitMidLeft
	cornerUpperRight uint8 = bitTopCenter | bitTopRight | bitMidRight
	cornerLowerRight uint8 = bitMidRight | bitBottomRight | bitBottomCntr
	cornerLowerLeft  uint8 = bitBottomCntr | bitBottomLeft | bitMidLeft
)

// offset pairs the clockwise-from-top-left neighbor direction with its
// occupancy bit weight.
type offset struct {
	dx, dy int
	bit    uint8
}

// clockwiseOffsets lists the eight neighbor directions in the fixed
// clockwise order used by both the occupancy code and direct-neighbor
// enumeration.
var clockwiseOffsets = [8]offset{
	{-1, -1, bitTopLeft},
	{0, -1, bitTopCenter},
	{1, -1, bitTopRight},
	{1, 0, bitMidRight},
	{1, 1, bitBottomRight},
	{0, 1, bitBottomCntr},
	{-1, 1, bitBottomLeft},
	{-1, 0, bitMidLeft},
}

// BinaryCode returns the eight-direction occupancy code of p: a bit is
// set iff the corresponding neighbor is in-bounds and an edge pixel.
func BinaryCode(img Image, p Point) uint8 {
	var code uint8
	for _, o := range clockwiseOffsets {
		if IsEdgePixel(img, p.X+o.dx, p.Y+o.dy) {
			code |= o.bit
		}
	}

	return code
}

// ContainsFourCluster reports whether code has any of the four corner
// three-pixel masks fully set.
func ContainsFourCluster(code uint8) bool {
	return code&cornerUpperLeft == cornerUpperLeft ||
		code&cornerUpperRight == cornerUpperRight ||
		code&cornerLowerRight == cornerLowerRight ||
		code&cornerLowerLeft == cornerLowerLeft
}

// bracketingOrthogonals maps each diagonal direction index in
// clockwiseOffsets to the indices of the two orthogonal neighbors that
// bracket it (used to suppress redundant diagonal steps).
var bracketingOrthogonals = map[int][2]int{
	0: {1, 7}, // top-left:     bracketed by top-center, mid-left
	2: {1, 3}, // top-right:    bracketed by top-center, mid-right
	4: {3, 5}, // bottom-right: bracketed by mid-right, bottom-center
	6: {5, 7}, // bottom-left:  bracketed by bottom-center, mid-left
}

// DirectNeighbors returns the reduced eight-neighborhood of p: in
// clockwise order starting top-left, a neighbor is included iff it
// is in-bounds and an edge pixel, and — if diagonal — neither of the
// two orthogonal neighbors bracketing it is itself an edge pixel.
func DirectNeighbors(img Image, p Point) []Point {
	var out []Point
	for i, o := range clockwiseOffsets {
		if !IsEdgePixel(img, p.X+o.dx, p.Y+o.dy) {
			continue
		}
		if pair, isDiagonal := bracketingOrthogonals[i]; isDiagonal {
			a := clockwiseOffsets[pair[0]]
			b := clockwiseOffsets[pair[1]]
			if IsEdgePixel(img, p.X+a.dx, p.Y+a.dy) || IsEdgePixel(img, p.X+b.dx, p.Y+b.dy) {
				continue
			}
		}
		out = append(out, Point{p.X + o.dx, p.Y + o.dy})
	}

	return out
}
