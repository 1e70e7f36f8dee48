package tracer

import (
	"testing"

	"github.com/nullcluster/edgetrace/core"
	"github.com/stretchr/testify/require"
)

func pts(coords ...int) []core.Point {
	out := make([]core.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		out = append(out, core.Point{X: coords[i], Y: coords[i+1]})
	}

	return out
}

func TestSpliceEdges_CaseI_HeadMeetsHead(t *testing.T) {
	A := pts(0, 0, 1, 0, 2, 0)
	B := pts(0, 0, 0, 1, 0, 2)

	got := spliceEdges(A, B)
	want := pts(0, 2, 0, 1, 0, 0, 1, 0, 2, 0)
	require.Equal(t, want, got)
}

func TestSpliceEdges_CaseII_HeadMeetsTail(t *testing.T) {
	A := pts(0, 0, 1, 0, 2, 0)
	B := pts(0, 2, 0, 1, 0, 0)

	got := spliceEdges(A, B)
	want := pts(0, 2, 0, 1, 0, 0, 1, 0, 2, 0)
	require.Equal(t, want, got)
}

func TestSpliceEdges_CaseIII_TailMeetsHead(t *testing.T) {
	A := pts(0, 0, 1, 0, 2, 0)
	B := pts(2, 0, 3, 0, 4, 0)

	got := spliceEdges(A, B)
	want := pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0)
	require.Equal(t, want, got)
}

func TestSpliceEdges_CaseIV_TailMeetsTail(t *testing.T) {
	A := pts(0, 0, 1, 0, 2, 0)
	B := pts(4, 0, 3, 0, 2, 0)

	got := spliceEdges(A, B)
	want := pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0)
	require.Equal(t, want, got)
}

func TestSpliceEdges_NoEndpointMatch_ReturnsAUnchanged(t *testing.T) {
	A := pts(0, 0, 1, 0)
	B := pts(5, 5, 6, 6)

	got := spliceEdges(A, B)
	require.Equal(t, A, got)
}

func TestMergeEdges_SelfMergeIsNoOp(t *testing.T) {
	p := NewProcessor()
	p.edges.PushBack(pts(0, 0, 1, 0))
	p.traced = true

	before := append([]core.Point(nil), p.edges.Get(0)...)
	p.mergeEdges(0, 0)
	require.Equal(t, before, p.edges.Get(0))
}

func TestMergeEdges_ReassignsEdgeMapToSurvivor(t *testing.T) {
	p := NewProcessor()
	p.edgeMap.Init(3, 3)

	a := p.edges.PushBack(pts(0, 0, 1, 0))
	b := p.edges.PushBack(pts(1, 0, 2, 0))
	for _, pt := range p.edges.Get(a) {
		p.edgeMap.PushEdgeID(pt, a)
	}
	for _, pt := range p.edges.Get(b) {
		p.edgeMap.PushEdgeID(pt, b)
	}
	p.traced = true

	p.mergeEdges(a, b)

	require.Empty(t, p.edges.Get(b))
	require.Equal(t, pts(0, 0, 1, 0, 2, 0), p.edges.Get(a))

	require.Equal(t, []int{a}, p.edgeMap.EdgeIDs(core.Point{X: 2, Y: 0}))
	require.Equal(t, []int{a}, p.edgeMap.EdgeIDs(core.Point{X: 1, Y: 0}))
}
