package core_test

import (
	"testing"

	"github.com/nullcluster/edgetrace/core"
)

// grid is a minimal core.Image backed by a [][]uint8 for tests.
type grid [][]uint8

func (g grid) Rows() int { return len(g) }
func (g grid) Cols() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}
func (g grid) PixelAt(x, y int) uint8 { return g[y][x] }

func TestIsEightNeighbor(t *testing.T) {
	cases := []struct {
		name string
		p, q core.Point
		want bool
	}{
		{"same point", core.Point{0, 0}, core.Point{0, 0}, false},
		{"orthogonal", core.Point{0, 0}, core.Point{1, 0}, true},
		{"diagonal", core.Point{0, 0}, core.Point{1, 1}, true},
		{"two away", core.Point{0, 0}, core.Point{2, 0}, false},
		{"knight move", core.Point{0, 0}, core.Point{1, 2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.IsEightNeighbor(tc.p, tc.q); got != tc.want {
				t.Errorf("IsEightNeighbor(%v,%v) = %v; want %v", tc.p, tc.q, got, tc.want)
			}
			// Symmetric under argument swap.
			if got := core.IsEightNeighbor(tc.q, tc.p); got != tc.want {
				t.Errorf("IsEightNeighbor(%v,%v) = %v; want %v", tc.q, tc.p, got, tc.want)
			}
		})
	}
}

func TestContainsFourCluster(t *testing.T) {
	cases := []struct {
		name string
		code uint8
		want bool
	}{
		{"empty", 0, false},
		{"upper-left corner", 0b11000001, true},
		{"upper-right corner", 0b01110000, true},
		{"lower-right corner", 0b00011100, true},
		{"lower-left corner", 0b00000111, true},
		{"upper-left partial", 0b10000001, false},
		{"all set", 0xFF, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.ContainsFourCluster(tc.code); got != tc.want {
				t.Errorf("ContainsFourCluster(%08b) = %v; want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestDirectNeighbors_TJunction(t *testing.T) {
	// .#.
	// ###
	// .#.
	img := grid{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	}
	neighbors := core.DirectNeighbors(img, core.Point{1, 1})
	if len(neighbors) != 4 {
		t.Fatalf("DirectNeighbors at T-junction center = %v (len %d); want 4", neighbors, len(neighbors))
	}
}

func TestDirectNeighbors_SuppressesRedundantDiagonal(t *testing.T) {
	// A diagonal neighbor bracketed by two orthogonal edge pixels must
	// not be reported as a direct neighbor of the center pixel.
	img := grid{
		{1, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	}
	neighbors := core.DirectNeighbors(img, core.Point{0, 0})
	for _, n := range neighbors {
		if n == (core.Point{1, 1}) {
			t.Fatalf("DirectNeighbors(%v) unexpectedly includes bracketed diagonal %v", core.Point{0, 0}, n)
		}
	}
}

func TestBinaryCode_OutOfBoundsClamped(t *testing.T) {
	img := grid{{1}}
	// 1x1 image: every neighbor is out of bounds, code must be 0, no panic.
	if got := core.BinaryCode(img, core.Point{0, 0}); got != 0 {
		t.Errorf("BinaryCode on isolated 1x1 pixel = %08b; want 0", got)
	}
}
