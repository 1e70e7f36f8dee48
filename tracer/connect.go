package tracer

import (
	"github.com/nullcluster/edgetrace/core"
	"github.com/nullcluster/edgetrace/geometry"
)

// ConnectEdgesInClusters walks every ambiguity cluster and, for each
// pair of edges terminating there, bridges the pair with the lowest
// continuity cost alpha*delta + beta*distance among the pairs whose
// angular mismatch delta stays below thresholdAngle. It repeats over a cluster until no
// further connection is found, since merging two edges can expose a
// new best pair at the same cluster.
func (p *Processor) ConnectEdgesInClusters(n int, thresholdAngle float64, opts ...Option) error {
	if err := p.requireTraced(); err != nil {
		return err
	}

	o := applyOptions(defaultOptions(), opts)
	o.N, o.ThresholdAngle = n, thresholdAngle

	visited := make(map[core.Point]bool)

	rows, cols := p.edgeMap.Rows(), p.edgeMap.Cols()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			at := core.Point{X: x, Y: y}
			if !p.edgeMap.IsCluster(at) || visited[at] {
				continue
			}
			for _, q := range p.edgeMap.ClusterPoints(at) {
				visited[q] = true
			}

			p.connectEdgesInCluster(at, o)
		}
	}

	return nil
}

func (p *Processor) connectEdgesInCluster(at core.Point, o Options) {
	for {
		ids := p.edgeMap.ClusterEdgeIDs(at)

		bestCost := -1.0
		var bestI, bestJ int
		var bestCP1, bestCP2 core.Point
		found := false

		for i := 0; i < len(ids); i++ {
			for j := i; j < len(ids); j++ {
				first, second := ids[i], ids[j]
				if first == second {
					if !o.ConnectSameEdge || p.edges.IsThreePixelL(first) || p.edges.IsClosed(first) {
						continue
					}
				}

				for _, cp1 := range p.findConnectionPointsInCluster(at, first) {
					for _, cp2 := range p.findConnectionPointsInCluster(at, second) {
						if first == second && cp1 == cp2 {
							continue
						}

						a1 := p.connectionAngle(first, cp1, o.N)
						a2 := p.connectionAngle(second, cp2, o.N)
						delta := abs180(180 - abs180(a1-a2))

						dist := core.Distance(cp1, cp2)
						cost := o.Alpha*delta + o.Beta*dist

						if delta < o.ThresholdAngle && (!found || cost < bestCost) {
							found = true
							bestCost = cost
							bestI, bestJ = first, second
							bestCP1, bestCP2 = cp1, cp2
						}
					}
				}
			}
		}

		if !found {
			return
		}

		bridge := geometry.Bridge(bestCP1, bestCP2)
		tmpID := p.edges.PushBack(bridge)
		for _, pt := range bridge {
			p.edgeMap.PushEdgeID(pt, tmpID)
		}

		p.mergeEdges(bestI, tmpID)
		if bestI != bestJ {
			p.mergeEdges(bestI, bestJ)
		}
	}
}

func (p *Processor) connectionAngle(edgeID int, cp core.Point, n int) float64 {
	pts := p.edges.PointsAlongEdgeFrom(edgeID, cp, n)
	if len(pts) < 2 {
		other := p.edges.Start(edgeID)
		if other == cp {
			other = p.edges.End(edgeID)
		}
		return geometry.PointPairAngle(cp, other)
	}

	return geometry.EdgeAngle(pts)
}

func abs180(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// findConnectionPointsInCluster returns, among edgeID's endpoints, the
// ones that lie in the cluster stored at at. A closed edge or an
// edge with neither endpoint in the cluster contributes nothing.
func (p *Processor) findConnectionPointsInCluster(at core.Point, edgeID int) []core.Point {
	if p.edges.IsClosed(edgeID) {
		return nil
	}

	var out []core.Point

	start, end := p.edges.Start(edgeID), p.edges.End(edgeID)
	if p.edgeMap.IsPointInCluster(at, start) {
		out = append(out, start)
	}
	if end != start && p.edgeMap.IsPointInCluster(at, end) {
		out = append(out, end)
	}

	return out
}

// findStartOrEndPointInCluster returns whichever single endpoint of
// edgeID lies in the cluster stored at at, used by operations that
// require exactly one connection point rather than the full set. It
// reports false when neither or both endpoints lie in the cluster.
func (p *Processor) findStartOrEndPointInCluster(at core.Point, edgeID int) (core.Point, bool) {
	cps := p.findConnectionPointsInCluster(at, edgeID)
	if len(cps) != 1 {
		return core.Point{}, false
	}

	return cps[0], true
}
