package tracer

import "github.com/nullcluster/edgetrace/core"

// traceFrom seeds a trace at an edge pixel with no edge-id that is not
// in a cluster. It is the one place a genuine two-way fork can
// occur: a non-cluster pixel has at most two direct neighbors, and once
// one of them has been visited (walked away from) only one remains
// unvisited, so forking can only happen at the very first step of a
// trace, before any neighbor has been marked visited. That structural
// fact is what lets a naturally recursive tracer collapse into a
// single seed step plus two independent linear walks, rather than a
// general explicit work stack.
func (p *Processor) traceFrom(img core.Image, seed core.Point) {
	edge := []core.Point{seed}
	p.edgeMap.PushEdgeID(seed, p.edges.Size())

	unvisited := p.unvisitedDirectNeighbors(img, seed)
	switch len(unvisited) {
	case 0:
		p.finalizeEdge(edge)
	case 1:
		p.finalizeEdge(p.followChain(img, unvisited[0], edge))
	case 2:
		first := p.followChain(img, unvisited[0], []core.Point{seed})
		firstID := p.finalizeEdge(first)
		second := p.followChain(img, unvisited[1], []core.Point{seed})
		secondID := p.finalizeEdge(second)
		p.mergeEdges(firstID, secondID)
	default:
		panic("tracer: direct-neighbor fan-out above two at a non-cluster seed pixel")
	}
}

// followChain walks a linear continuation starting at cur, appending to
// edge until it reaches a pixel with zero or more-than-one unvisited
// direct neighbors. By the invariant described on traceFrom, the
// more-than-one case cannot occur once a chain is underway; it is
// guarded defensively rather than assumed away.
func (p *Processor) followChain(img core.Image, cur core.Point, edge []core.Point) []core.Point {
	for {
		edge = append(edge, cur)
		p.edgeMap.PushEdgeID(cur, p.edges.Size())

		unvisited := p.unvisitedDirectNeighbors(img, cur)
		switch len(unvisited) {
		case 0:
			return edge
		case 1:
			cur = unvisited[0]
		default:
			panic("tracer: unexpected branch while following an already-started chain")
		}
	}
}

func (p *Processor) finalizeEdge(edge []core.Point) int {
	return p.edges.PushBack(edge)
}

// unvisitedDirectNeighbors computes the direct neighbors of p eligible
// for expansion: none if p is itself in a cluster (step 3), otherwise
// every direct neighbor with no edge-id yet, or itself in a cluster
// (step 4 — cluster pixels are admissible so tracing reaches a
// cluster's boundary without walking its interior).
func (p *Processor) unvisitedDirectNeighbors(img core.Image, pt core.Point) []core.Point {
	if p.edgeMap.IsCluster(pt) {
		return nil
	}

	var unvisited []core.Point
	for _, n := range core.DirectNeighbors(img, pt) {
		if p.edgeMap.NumEdgeIDs(n) == 0 || p.edgeMap.IsCluster(n) {
			unvisited = append(unvisited, n)
		}
	}

	return unvisited
}
