package geometry

import "github.com/nullcluster/edgetrace/core"

// Bridge returns the discrete points of the line from p to q using
// integer-only Bresenham with steep/shallow axis swap and
// left-to-right normalization. Both endpoints are included,
// consecutive points are 8-neighbors, and Bridge(p,q) is the reverse
// of Bridge(q,p) as sets.
func Bridge(p, q core.Point) []core.Point {
	x0, y0 := p.X, p.Y
	x1, y1 := q.X, q.Y

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	reversed := x0 > x1
	if reversed {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	errTerm := dx / 2
	ystep := 1
	if y0 > y1 {
		ystep = -1
	}

	y := y0
	points := make([]core.Point, 0, dx+1)
	for x := x0; x <= x1; x++ {
		if steep {
			points = append(points, core.Point{X: y, Y: x})
		} else {
			points = append(points, core.Point{X: x, Y: y})
		}
		errTerm -= dy
		if errTerm < 0 {
			y += ystep
			errTerm += dx
		}
	}

	if reversed {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
