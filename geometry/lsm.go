package geometry

import (
	"math"

	"github.com/nullcluster/edgetrace/core"
)

// degeneracyThreshold is the variance floor below which a least-squares
// line fit is declared degenerate (near-vertical line).
const degeneracyThreshold = 1e-9

// LSMFit fits a line y = a*x + b through points via ordinary least
// squares, anchoring the intercept at points[0] (b = y0 - a*x0) rather
// than at the mean, so the fit extrapolates stably through the
// connection endpoint. Returns the sum-of-squared-residuals error, or
// +Inf if var(x) < 1e-9 (near-vertical degeneracy).
//
// points must have length >= 2.
func LSMFit(points []core.Point) (a, b, err float64) {
	n := float64(len(points))
	var sumX, sumY, sumXX, sumXY float64
	for _, p := range points {
		x, y := float64(p.X), float64(p.Y)
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}
	meanX, meanY := sumX/n, sumY/n
	meanXX, meanXY := sumXX/n, sumXY/n

	varX := meanXX - meanX*meanX
	if math.Abs(varX) < degeneracyThreshold {
		return 0, 0, math.Inf(1)
	}

	a = (meanXY - meanX*meanY) / varX
	b = float64(points[0].Y) - a*float64(points[0].X)

	for _, p := range points {
		yApprox := a*float64(p.X) + b
		d := yApprox - float64(p.Y)
		err += d * d
	}

	return a, b, err
}

// EdgeAngle fits points with LSMFit and returns the angle, in degrees
// normalized to [0, 360), of the line segment between the first and
// last fitted point, using atan2(dx, dy) (an azimuthal convention).
// It then retries with x and y swapped; if the swapped fit has lower
// error, the angle is recomputed with atan2(dy, dx) in the swapped
// frame instead. This hemisphere ambiguity is intentional — it mirrors
// the source's empirical behavior and callers compensate for it via
// the |180 - |a1-a2|| fold used when scoring connection candidates.
//
// points must have length >= 2; shorter input is a caller error. A
// single point gives a degenerate fit (Inf error internally) and yields
// a meaningless finite angle; an empty slice panics.
func EdgeAngle(points []core.Point) float64 {
	a, b, errFit := LSMFit(points)

	first, last := points[0], points[len(points)-1]
	dx := float64(first.X - last.X)
	dy := (a*float64(first.X) + b) - (a*float64(last.X) + b)
	angle := math.Atan2(dx, dy)

	swapped := make([]core.Point, len(points))
	for i, p := range points {
		swapped[i] = core.Point{X: p.Y, Y: p.X}
	}
	a, b, swappedErr := LSMFit(swapped)
	if swappedErr < errFit {
		sf, sl := swapped[0], swapped[len(swapped)-1]
		dx = float64(sf.X - sl.X)
		dy = (a*float64(sf.X) + b) - (a*float64(sl.X) + b)
		angle = math.Atan2(dy, dx)
	}

	return normalizeDegrees(angle)
}

// PointPairAngle returns the angle, in degrees normalized to [0, 360),
// of the direction from p toward q, using atan2(dx, dy) — the same
// azimuthal convention EdgeAngle's unswapped branch uses. The (dx, dy)
// argument order is intentional, not a transposition bug.
func PointPairAngle(p, q core.Point) float64 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)

	return normalizeDegrees(math.Atan2(dx, dy))
}

func normalizeDegrees(radians float64) float64 {
	deg := radians * (180 / math.Pi)
	if deg < 0 {
		deg += 360.0
	}

	return deg
}
