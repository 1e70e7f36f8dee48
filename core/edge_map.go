package core

import "sort"

// EdgeMap owns two per-pixel associations over an image grid of known
// rows x cols: the edge-id index (which edges pass through a pixel)
// and the cluster index (which ambiguity cluster, if any, a pixel
// belongs to). Cluster membership is replicated at every member pixel
// per the cluster-replication invariant.
type EdgeMap struct {
	rows, cols int
	edgeIDs    [][]int
	clusters   [][]Point
}

// NewEdgeMap returns an EdgeMap initialized for a rows x cols grid.
func NewEdgeMap(rows, cols int) *EdgeMap {
	m := &EdgeMap{}
	m.Init(rows, cols)

	return m
}

// Init (re)initializes the map for a rows x cols grid, discarding any
// prior state.
func (m *EdgeMap) Init(rows, cols int) {
	m.rows, m.cols = rows, cols
	m.edgeIDs = make([][]int, rows*cols)
	m.clusters = make([][]Point, rows*cols)
}

// Rows returns the number of grid rows.
func (m *EdgeMap) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *EdgeMap) Cols() int { return m.cols }

func (m *EdgeMap) index(p Point) int {
	return p.Y*m.cols + p.X
}

// EdgeIDs returns the edge identifiers registered at p, in insertion
// order. The returned slice must not be mutated.
func (m *EdgeMap) EdgeIDs(p Point) []int {
	return m.edgeIDs[m.index(p)]
}

// NumEdgeIDs returns the number of edge identifiers registered at p.
func (m *EdgeMap) NumEdgeIDs(p Point) int {
	return len(m.edgeIDs[m.index(p)])
}

// PushEdgeID appends id to p's edge-id list unless it is already
// present (idempotent per pixel).
func (m *EdgeMap) PushEdgeID(p Point, id int) {
	i := m.index(p)
	for _, existing := range m.edgeIDs[i] {
		if existing == id {
			return
		}
	}
	m.edgeIDs[i] = append(m.edgeIDs[i], id)
}

// EraseEdgeID removes id from p's edge-id list; a no-op if absent.
func (m *EdgeMap) EraseEdgeID(p Point, id int) {
	i := m.index(p)
	for j, existing := range m.edgeIDs[i] {
		if existing == id {
			m.edgeIDs[i] = append(m.edgeIDs[i][:j], m.edgeIDs[i][j+1:]...)

			return
		}
	}
}

// ResetEdgeIDMap clears the edge-id index at every pixel.
func (m *EdgeMap) ResetEdgeIDMap() {
	m.edgeIDs = make([][]int, m.rows*m.cols)
}

// MaxEdgeID scans the edge-id index and returns the largest identifier
// registered anywhere, or -1 if the index is empty.
func (m *EdgeMap) MaxEdgeID() int {
	max := -1
	for _, ids := range m.edgeIDs {
		for _, id := range ids {
			if id > max {
				max = id
			}
		}
	}

	return max
}

// ClusterPoints returns the cluster list stored at p: empty if p is
// not in a cluster, otherwise every pixel of the cluster containing p.
// The returned slice must not be mutated.
func (m *EdgeMap) ClusterPoints(p Point) []Point {
	return m.clusters[m.index(p)]
}

// IsCluster reports whether p belongs to a (non-empty) cluster.
func (m *EdgeMap) IsCluster(p Point) bool {
	return len(m.clusters[m.index(p)]) > 0
}

// SetClusterPoints overwrites the cluster list stored at p (without
// propagation). Used by cluster preprocessing once a cluster's full
// membership is known.
func (m *EdgeMap) SetClusterPoints(p Point, cluster []Point) {
	m.clusters[m.index(p)] = cluster
}

// AddPointToCluster appends q to the cluster list stored at p and then
// propagates: the resulting list is written back to every pixel it now
// names.
func (m *EdgeMap) AddPointToCluster(p, q Point) {
	i := m.index(p)
	m.clusters[i] = append(m.clusters[i], q)
	updated := m.clusters[i]
	for _, r := range updated {
		m.clusters[m.index(r)] = updated
	}
}

// ClearCluster clears the cluster list at every pixel of p's cluster.
func (m *EdgeMap) ClearCluster(p Point) {
	for _, q := range m.clusters[m.index(p)] {
		m.clusters[m.index(q)] = nil
	}
}

// ResetClusterMap clears the cluster index at every pixel.
func (m *EdgeMap) ResetClusterMap() {
	m.clusters = make([][]Point, m.rows*m.cols)
}

// IsPointInCluster reports whether point is a member of the cluster
// stored at pixel at — useful to check whether an edge endpoint lies in a
// specific cluster.
func (m *EdgeMap) IsPointInCluster(at Point, point Point) bool {
	for _, q := range m.clusters[m.index(at)] {
		if q == point {
			return true
		}
	}

	return false
}

// ClusterEdgeIDs returns the sorted, deduplicated union of edge
// identifiers over every pixel of p's cluster.
func (m *EdgeMap) ClusterEdgeIDs(p Point) []int {
	seen := make(map[int]struct{})
	for _, q := range m.clusters[m.index(p)] {
		for _, id := range m.edgeIDs[m.index(q)] {
			seen[id] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
