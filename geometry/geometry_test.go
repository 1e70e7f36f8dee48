package geometry_test

import (
	"math"
	"testing"

	"github.com/nullcluster/edgetrace/core"
	"github.com/nullcluster/edgetrace/geometry"
	"github.com/stretchr/testify/require"
)

func TestLSMFit_HorizontalLineIsExact(t *testing.T) {
	pts := []core.Point{{0, 3}, {1, 3}, {2, 3}, {3, 3}}
	a, b, err := geometry.LSMFit(pts)
	require.InDelta(t, 0, a, 1e-9)
	require.InDelta(t, 3, b, 1e-9)
	require.InDelta(t, 0, err, 1e-9)
}

func TestLSMFit_VerticalLineIsDegenerate(t *testing.T) {
	pts := []core.Point{{5, 0}, {5, 1}, {5, 2}, {5, 3}}
	_, _, err := geometry.LSMFit(pts)
	require.True(t, math.IsInf(err, 1), "vertical line must report an infinite fitting error")
}

func TestLSMFit_InterceptAnchoredAtFirstPoint(t *testing.T) {
	pts := []core.Point{{10, 10}, {11, 11}, {12, 12}}
	a, b, _ := geometry.LSMFit(pts)
	require.InDelta(t, 1, a, 1e-9)
	// b = y0 - a*x0 = 10 - 1*10 = 0
	require.InDelta(t, 0, b, 1e-9)
}

func TestEdgeAngle_NormalizedRange(t *testing.T) {
	cases := [][]core.Point{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {-1, -1}, {-2, -2}},
	}
	for _, pts := range cases {
		angle := geometry.EdgeAngle(pts)
		require.GreaterOrEqual(t, angle, 0.0)
		require.Less(t, angle, 360.0)
	}
}

func TestPointPairAngle_NormalizedRange(t *testing.T) {
	cases := []struct{ p, q core.Point }{
		{core.Point{0, 0}, core.Point{1, 0}},
		{core.Point{0, 0}, core.Point{0, -1}},
		{core.Point{5, 5}, core.Point{0, 0}},
	}
	for _, tc := range cases {
		angle := geometry.PointPairAngle(tc.p, tc.q)
		require.GreaterOrEqual(t, angle, 0.0)
		require.Less(t, angle, 360.0)
	}
}

func TestPointPairAngle_OppositeDirectionsAreAntipodal(t *testing.T) {
	p, q := core.Point{0, 0}, core.Point{4, 0}
	a1 := geometry.PointPairAngle(p, q)
	a2 := geometry.PointPairAngle(q, p)
	diff := math.Abs(a1 - a2)
	require.InDelta(t, 180, diff, 1e-9)
}

func TestBridge_EndpointsAndAdjacency(t *testing.T) {
	cases := []struct{ p, q core.Point }{
		{core.Point{0, 0}, core.Point{5, 0}},
		{core.Point{5, 0}, core.Point{0, 0}},
		{core.Point{0, 0}, core.Point{0, 5}},
		{core.Point{0, 5}, core.Point{0, 0}},
		{core.Point{0, 0}, core.Point{5, 3}},
		{core.Point{2, 2}, core.Point{2, 2}},
	}
	for _, tc := range cases {
		line := geometry.Bridge(tc.p, tc.q)
		require.Equal(t, tc.p, line[0], "bridge must start at p")
		require.Equal(t, tc.q, line[len(line)-1], "bridge must end at q")
		for i := 1; i < len(line); i++ {
			require.True(t, core.IsEightNeighbor(line[i-1], line[i]) || line[i-1] == line[i],
				"consecutive bridge points must be 8-neighbors: %v -> %v", line[i-1], line[i])
		}
	}
}

func TestBridge_SymmetricAsReversedSet(t *testing.T) {
	p, q := core.Point{1, 1}, core.Point{8, 4}
	forward := geometry.Bridge(p, q)
	backward := geometry.Bridge(q, p)

	require.Len(t, backward, len(forward))
	for i := range forward {
		require.Equal(t, forward[i], backward[len(backward)-1-i])
	}
}
