package tracer

import (
	"log"

	"github.com/nullcluster/edgetrace/core"
)

// mergeEdges splices edge b into edge a in place and tombstones b,
// reassigning every point of b in the edge-id index from b to a.
// a and b are interchangeable: the smaller id always survives, to keep
// identifiers stable and low, and endpoint matching decides only how
// the two point sequences are spliced.
func (p *Processor) mergeEdges(a, b int) {
	if a == b {
		log.Printf("tracer: merge_edges: cannot merge edge %d with itself", a)
		return
	}
	if b < a {
		a, b = b, a
	}

	A := p.edges.Get(a)
	B := append([]core.Point(nil), p.edges.Get(b)...)

	p.edges.ClearEdge(b)

	for _, pt := range B {
		p.edgeMap.EraseEdgeID(pt, b)
		p.edgeMap.PushEdgeID(pt, a)
	}

	p.edges.Overwrite(a, spliceEdges(A, B))
}

// spliceEdges joins A and B at whichever pair of endpoints coincide,
// trying the four cases in a fixed priority order. The first match
// wins even when more than one pair of endpoints coincides. If none
// match, A is returned unchanged and the mismatch is logged rather
// than treated as an error.
func spliceEdges(A, B []core.Point) []core.Point {
	switch {
	case A[0] == B[0]: // Case I: A's head meets B's head.
		b2 := B[1:]
		if len(b2) > 0 && A[len(A)-1] == b2[len(b2)-1] {
			b2 = b2[:len(b2)-1]
		}
		return append(reversePoints(b2), A...)

	case A[0] == B[len(B)-1]: // Case II: A's head meets B's tail.
		b2 := B[:len(B)-1]
		if len(b2) > 0 && A[len(A)-1] == b2[0] {
			b2 = b2[1:]
		}
		out := append([]core.Point(nil), b2...)
		return append(out, A...)

	case A[len(A)-1] == B[0]: // Case III: A's tail meets B's head.
		b2 := B[1:]
		out := append([]core.Point(nil), A...)
		return append(out, b2...)

	case A[len(A)-1] == B[len(B)-1]: // Case IV: A's tail meets B's tail.
		b2 := B[:len(B)-1]
		out := append([]core.Point(nil), A...)
		return append(out, reversePoints(b2)...)

	default:
		log.Printf("tracer: merge_edges: no endpoint match between edges, edge %v left unchanged", A[0])
		return A
	}
}

func reversePoints(pts []core.Point) []core.Point {
	out := make([]core.Point, len(pts))
	for i, pt := range pts {
		out[len(pts)-1-i] = pt
	}

	return out
}
