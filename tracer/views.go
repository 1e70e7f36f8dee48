package tracer

import "github.com/nullcluster/edgetrace/core"

// EdgesView is a read-only projection of a Processor's EdgeTable,
// handed to external callers strictly after processing completes.
type EdgesView struct {
	table *core.EdgeTable
}

func (v EdgesView) Get(id int) []core.Point   { return v.table.Get(id) }
func (v EdgesView) Size() int                 { return v.table.Size() }
func (v EdgesView) Start(id int) core.Point   { return v.table.Start(id) }
func (v EdgesView) End(id int) core.Point     { return v.table.End(id) }
func (v EdgesView) Length(id int) int         { return v.table.Length(id) }
func (v EdgesView) IsClosed(id int) bool      { return v.table.IsClosed(id) }
func (v EdgesView) IsThreePixelL(id int) bool { return v.table.IsThreePixelL(id) }

// All returns every edge, indexed by id. The result must not be mutated.
func (v EdgesView) All() [][]core.Point { return v.table.AllEdges() }

// EdgeMapView is a read-only projection of a Processor's EdgeMap.
type EdgeMapView struct {
	m *core.EdgeMap
}

func (v EdgeMapView) Rows() int                              { return v.m.Rows() }
func (v EdgeMapView) Cols() int                               { return v.m.Cols() }
func (v EdgeMapView) EdgeIDs(p core.Point) []int              { return v.m.EdgeIDs(p) }
func (v EdgeMapView) NumEdgeIDs(p core.Point) int             { return v.m.NumEdgeIDs(p) }
func (v EdgeMapView) ClusterPoints(p core.Point) []core.Point { return v.m.ClusterPoints(p) }
func (v EdgeMapView) IsCluster(p core.Point) bool             { return v.m.IsCluster(p) }
func (v EdgeMapView) ClusterEdgeIDs(p core.Point) []int       { return v.m.ClusterEdgeIDs(p) }
func (v EdgeMapView) MaxEdgeID() int                          { return v.m.MaxEdgeID() }
