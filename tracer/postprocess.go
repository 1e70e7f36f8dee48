package tracer

import (
	"github.com/nullcluster/edgetrace/core"
	"github.com/nullcluster/edgetrace/geometry"
)

// ThreePointEdgesToClusters absorbs every three-pixel edge whose
// endpoints both lie in clusters into those clusters, merging the two
// clusters together if they differ. The cluster at the start
// endpoint is grown first, then compared against the end endpoint's
// cluster-edge-ids; the growth must happen before the comparison, since
// growing the start cluster can make the two sides already equal.
func (p *Processor) ThreePointEdgesToClusters() error {
	if err := p.requireTraced(); err != nil {
		return err
	}

	for id := 0; id < p.edges.Size(); id++ {
		edge := p.edges.Get(id)
		if len(edge) != 3 {
			continue
		}

		start, end := edge[0], edge[2]
		if !p.edgeMap.IsCluster(start) || !p.edgeMap.IsCluster(end) {
			continue
		}

		p.edgeMap.AddPointToCluster(start, edge[1])

		if !intSlicesEqual(p.edgeMap.ClusterEdgeIDs(start), p.edgeMap.ClusterEdgeIDs(end)) {
			for _, pt := range p.edgeMap.ClusterPoints(end) {
				p.edgeMap.AddPointToCluster(start, pt)
			}
		}

		p.edgeMap.EraseEdgeID(start, id)
		p.edgeMap.EraseEdgeID(edge[1], id)
		p.edgeMap.EraseEdgeID(end, id)
		p.edges.ClearEdge(id)
	}

	return nil
}

func intSlicesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// endpointClass classifies an edge by how many of its endpoints lie in
// a cluster: free (0), dangling (1), bridged (2).
func (p *Processor) endpointClass(id int) (free, dangling, bridged bool) {
	startIn := p.edgeMap.IsCluster(p.edges.Start(id))
	endIn := p.edgeMap.IsCluster(p.edges.End(id))

	switch {
	case startIn && endIn:
		return false, false, true
	case startIn || endIn:
		return false, true, false
	default:
		return true, false, false
	}
}

func (p *Processor) removeEdgesByLength(isCandidate func(length int) bool, o Options) bool {
	changed := false

	for id := 0; id < p.edges.Size(); id++ {
		length := p.edges.Length(id)
		if length == 0 || !isCandidate(length) {
			continue
		}

		free, dangling, bridged := p.endpointClass(id)
		if (free && !o.Free) || (dangling && !o.Dangling) || (bridged && !o.Bridged) {
			continue
		}

		for _, pt := range p.edges.Get(id) {
			p.edgeMap.EraseEdgeID(pt, id)
		}
		p.edges.ClearEdge(id)
		changed = true
	}

	if changed {
		_ = p.ConnectEdgesInTwoEdgeClusters(WithOnlyIf8Neighbors(false), WithDeleteClustersAfterConnect(true))
		_ = p.RemoveZeroAndOneEdgeClusters()
	}

	return changed
}

// RemoveEdgesShorterThan deletes every edge with 0 < length < n in the
// selected endpoint classes, then connects any cluster left with
// exactly two edges and drops any cluster left with at most one.
func (p *Processor) RemoveEdgesShorterThan(n int, opts ...Option) (bool, error) {
	if err := p.requireTraced(); err != nil {
		return false, err
	}

	o := applyOptions(defaultOptions(), opts)

	return p.removeEdgesByLength(func(length int) bool { return length > 0 && length < n }, o), nil
}

// RemoveEdgesLongerThan deletes every edge with length > n in the
// selected endpoint classes, with the same cluster cleanup as
// RemoveEdgesShorterThan.
func (p *Processor) RemoveEdgesLongerThan(n int, opts ...Option) (bool, error) {
	if err := p.requireTraced(); err != nil {
		return false, err
	}

	o := applyOptions(defaultOptions(), opts)

	return p.removeEdgesByLength(func(length int) bool { return length > n }, o), nil
}

// searchCandidate names a free endpoint found within a bridging search
// window and the edge it belongs to.
type searchCandidate struct {
	edgeID int
	point  core.Point
}

// edgesInSearchArea scans the Chebyshev square of radius blockDistance
// around reference for the free endpoints of edges other than
// referenceEdge whose approach angle (candidateAngle) gives an angular
// mismatch |180 - |referenceAngle - angle|| below thresholdAngle. The
// reference pixel itself is excluded from the candidate set: a pixel
// matching itself is never a useful bridge target.
func (p *Processor) edgesInSearchArea(referenceEdge int, reference core.Point, blockDistance int, thresholdAngle, referenceAngle float64) []searchCandidate {
	var out []searchCandidate

	rows, cols := p.edgeMap.Rows(), p.edgeMap.Cols()
	for dy := -blockDistance; dy <= blockDistance; dy++ {
		for dx := -blockDistance; dx <= blockDistance; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}

			n := core.Point{X: reference.X + dx, Y: reference.Y + dy}
			if n == reference || n.X < 0 || n.X >= cols || n.Y < 0 || n.Y >= rows {
				continue
			}
			if p.edgeMap.NumEdgeIDs(n) != 1 || p.edgeMap.IsCluster(n) {
				continue
			}

			id := p.edgeMap.EdgeIDs(n)[0]
			if id == referenceEdge {
				continue
			}
			if p.edges.Start(id) != n && p.edges.End(id) != n {
				continue
			}
			if p.edges.IsClosed(id) {
				continue
			}

			angle := p.candidateAngle(reference, id, n)
			delta := abs180(180 - abs180(referenceAngle-angle))
			if delta < thresholdAngle {
				out = append(out, searchCandidate{edgeID: id, point: n})
			}
		}
	}

	return out
}

// candidateAngle computes the approach angle of a candidate endpoint
// cp of edgeID as seen from reference: its tangent, fit from up to 5
// of its own points, except when the candidate edge is a single pixel,
// which has no tangent of its own — there the direction from reference
// straight to cp is used instead.
func (p *Processor) candidateAngle(reference core.Point, edgeID int, cp core.Point) float64 {
	if p.edges.Length(edgeID) == 1 {
		return geometry.PointPairAngle(reference, cp)
	}

	return p.connectionAngle(edgeID, cp, 5)
}

// bridgeAngle computes the tangent angle at endpoint cp of edgeID,
// used for the side being actively extended rather than a candidate;
// a length-1 edge here has no well-defined tangent and falls back to
// whatever connectionAngle's own degenerate handling produces.
func (p *Processor) bridgeAngle(edgeID int, cp core.Point, n int) float64 {
	return p.connectionAngle(edgeID, cp, n)
}

// BridgeEdgeGaps walks every edge's two free endpoints and, when a
// continuous candidate endpoint is found within blockDistance, bridges
// the gap with a straight line of pixels and merges the three edges
// into one, then revisits the merged edge's new lower id in case
// further bridging is now possible there.
func (p *Processor) BridgeEdgeGaps(n int, thresholdAngle float64, opts ...Option) error {
	if err := p.requireTraced(); err != nil {
		return err
	}

	o := applyOptions(defaultOptions(), opts)
	o.N, o.ThresholdAngle = n, thresholdAngle

	for edgeID := 0; edgeID < p.edges.Size(); edgeID++ {
		for {
			if p.edges.Length(edgeID) == 0 || p.edges.IsClosed(edgeID) {
				break
			}

			merged, ok := p.bridgeOneGap(edgeID, o)
			if !ok {
				break
			}

			edgeID = merged
		}
	}

	return nil
}

func (p *Processor) bridgeOneGap(edgeID int, o Options) (int, bool) {
	for _, end := range []core.Point{p.edges.Start(edgeID), p.edges.End(edgeID)} {
		referenceAngle := p.bridgeAngle(edgeID, end, o.N)

		candidates := p.edgesInSearchArea(edgeID, end, o.BlockDistance, o.ThresholdAngle, referenceAngle)
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		bestDelta := abs180(180 - abs180(referenceAngle-p.candidateAngle(end, best.edgeID, best.point)))
		bestCost := o.Alpha*bestDelta + o.Beta*core.Distance(end, best.point)
		for _, c := range candidates[1:] {
			delta := abs180(180 - abs180(referenceAngle-p.candidateAngle(end, c.edgeID, c.point)))
			cost := o.Alpha*delta + o.Beta*core.Distance(end, c.point)
			if cost < bestCost {
				best, bestCost = c, cost
			}
		}

		bridge := geometry.Bridge(end, best.point)
		tmpID := p.edges.PushBack(bridge)
		for _, pt := range bridge {
			p.edgeMap.PushEdgeID(pt, tmpID)
		}

		p.mergeEdges(edgeID, tmpID)
		merged := edgeID
		if tmpID < merged {
			merged = tmpID
		}

		p.mergeEdges(merged, best.edgeID)
		if best.edgeID < merged {
			merged = best.edgeID
		}

		return merged, true
	}

	return edgeID, false
}

// CloseEdgesInClusters scans every cluster and, for every edge with
// length >= 5 whose both endpoints lie in that cluster, bridges its
// two endpoints to close it.
func (p *Processor) CloseEdgesInClusters() error {
	if err := p.requireTraced(); err != nil {
		return err
	}

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

			for _, id := range p.edgeMap.ClusterEdgeIDs(at) {
				if p.edges.Length(id) < 5 || p.edges.IsClosed(id) {
					continue
				}

				start, end := p.edges.Start(id), p.edges.End(id)
				if !p.edgeMap.IsPointInCluster(at, start) || !p.edgeMap.IsPointInCluster(at, end) {
					continue
				}

				bridge := geometry.Bridge(end, start)
				tmpID := p.edges.PushBack(bridge)
				for _, pt := range bridge {
					p.edgeMap.PushEdgeID(pt, tmpID)
				}
				p.mergeEdges(id, tmpID)
			}
		}
	}

	return nil
}

// ConnectEdgesInTwoEdgeClusters merges the two edges of every cluster
// that has exactly two edge ids and neither is already closed,
// bridging their two connection points. When OnlyIf8Neighbors
// is set, clusters whose connection points are not already 8-neighbors
// are left untouched; the bridge is then the literal two-point pair
// rather than a computed line. After merging, the surviving edge id is
// the smaller of the two. When DeleteClustersAfterConnect is set the
// cluster is cleared; otherwise, if the merged edge is closed, it is
// rotated so it starts at its first point that lies in the cluster.
func (p *Processor) ConnectEdgesInTwoEdgeClusters(opts ...Option) error {
	if err := p.requireTraced(); err != nil {
		return err
	}

	o := applyOptions(defaultOptions(), opts)

	visited := make(map[core.Point]bool)
	rows, cols := p.edgeMap.Rows(), p.edgeMap.Cols()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			at := core.Point{X: x, Y: y}
			if !p.edgeMap.IsCluster(at) || visited[at] {
				continue
			}
			cluster := p.edgeMap.ClusterPoints(at)
			for _, q := range cluster {
				visited[q] = true
			}

			ids := p.edgeMap.ClusterEdgeIDs(at)
			if len(ids) != 2 {
				continue
			}
			a, b := ids[0], ids[1]
			if p.edges.IsClosed(a) || p.edges.IsClosed(b) {
				continue
			}

			cp1, ok1 := p.findStartOrEndPointInCluster(at, a)
			cp2, ok2 := p.findStartOrEndPointInCluster(at, b)
			if !ok1 || !ok2 {
				continue
			}

			are8Neighbors := core.Distance(cp1, cp2) < 1.5
			if o.OnlyIf8Neighbors && !are8Neighbors {
				continue
			}

			var bridge []core.Point
			if o.OnlyIf8Neighbors {
				bridge = []core.Point{cp1, cp2}
			} else {
				bridge = geometry.Bridge(cp1, cp2)
			}

			tmpID := p.edges.PushBack(bridge)
			for _, pt := range bridge {
				p.edgeMap.PushEdgeID(pt, tmpID)
			}

			p.mergeEdges(a, tmpID)
			merged := min(a, tmpID)
			p.mergeEdges(merged, b)
			merged = min(merged, b)

			if o.DeleteClustersAfterConnect {
				p.edgeMap.ClearCluster(at)
			} else {
				p.rotateClosedEdgeToCluster(merged, cluster)
			}
		}
	}

	return nil
}

// rotateClosedEdgeToCluster rotates a closed edge's point sequence so
// it starts at whichever of its points lies in cluster, if any.
func (p *Processor) rotateClosedEdgeToCluster(id int, cluster []core.Point) {
	if !p.edges.IsClosed(id) {
		return
	}

	edge := p.edges.Get(id)
	inCluster := func(pt core.Point) bool {
		for _, q := range cluster {
			if q == pt {
				return true
			}
		}
		return false
	}

	pivot := -1
	for i, pt := range edge {
		if inCluster(pt) {
			pivot = i
			break
		}
	}
	if pivot <= 0 {
		return
	}

	rotated := make([]core.Point, len(edge))
	copy(rotated, edge[pivot:])
	copy(rotated[len(edge)-pivot:], edge[:pivot])
	p.edges.Overwrite(id, rotated)
}

// RemoveZeroAndOneEdgeClusters clears every cluster whose edge-id union
// has at most one member, since such a cluster no longer mediates an
// ambiguity between two or more edges.
func (p *Processor) RemoveZeroAndOneEdgeClusters() error {
	if err := p.requireTraced(); err != nil {
		return err
	}

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

			if len(p.edgeMap.ClusterEdgeIDs(at)) <= 1 {
				p.edgeMap.ClearCluster(at)
			}
		}
	}

	return nil
}
