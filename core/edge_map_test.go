package core_test

import (
	"testing"

	"github.com/nullcluster/edgetrace/core"
	"github.com/stretchr/testify/require"
)

func TestEdgeMap_PushEdgeIDIdempotent(t *testing.T) {
	m := core.NewEdgeMap(3, 3)
	p := core.Point{1, 1}
	m.PushEdgeID(p, 7)
	m.PushEdgeID(p, 7)
	m.PushEdgeID(p, 9)

	require.Equal(t, []int{7, 9}, m.EdgeIDs(p))
	require.Equal(t, 2, m.NumEdgeIDs(p))
}

func TestEdgeMap_EraseEdgeIDNoopIfAbsent(t *testing.T) {
	m := core.NewEdgeMap(2, 2)
	p := core.Point{0, 0}
	m.EraseEdgeID(p, 5) // must not panic
	require.Empty(t, m.EdgeIDs(p))

	m.PushEdgeID(p, 5)
	m.EraseEdgeID(p, 5)
	require.Empty(t, m.EdgeIDs(p))
}

func TestEdgeMap_ClusterReplication(t *testing.T) {
	m := core.NewEdgeMap(3, 3)
	a := core.Point{0, 0}
	b := core.Point{1, 0}
	c := core.Point{2, 0}

	m.SetClusterPoints(a, []core.Point{a})
	m.AddPointToCluster(a, b)
	m.AddPointToCluster(a, c)

	for _, p := range []core.Point{a, b, c} {
		require.True(t, m.IsCluster(p))
		got := m.ClusterPoints(p)
		require.ElementsMatch(t, []core.Point{a, b, c}, got, "cluster list must be replicated identically at every member pixel")
	}
}

func TestEdgeMap_ClearClusterClearsEveryMember(t *testing.T) {
	m := core.NewEdgeMap(3, 3)
	a, b := core.Point{0, 0}, core.Point{1, 0}
	m.SetClusterPoints(a, []core.Point{a})
	m.AddPointToCluster(a, b)

	m.ClearCluster(a)

	require.False(t, m.IsCluster(a))
	require.False(t, m.IsCluster(b))
}

func TestEdgeMap_ClusterEdgeIDsSortedDeduped(t *testing.T) {
	m := core.NewEdgeMap(3, 3)
	a, b := core.Point{0, 0}, core.Point{1, 0}
	m.SetClusterPoints(a, []core.Point{a})
	m.AddPointToCluster(a, b)

	m.PushEdgeID(a, 3)
	m.PushEdgeID(b, 1)
	m.PushEdgeID(b, 3)

	require.Equal(t, []int{1, 3}, m.ClusterEdgeIDs(a))
}

func TestEdgeMap_MaxEdgeID(t *testing.T) {
	m := core.NewEdgeMap(2, 2)
	require.Equal(t, -1, m.MaxEdgeID())

	m.PushEdgeID(core.Point{0, 0}, 4)
	m.PushEdgeID(core.Point{1, 1}, 2)
	require.Equal(t, 4, m.MaxEdgeID())
}

func TestEdgeMap_ResetClearsEverything(t *testing.T) {
	m := core.NewEdgeMap(2, 2)
	p := core.Point{0, 0}
	m.PushEdgeID(p, 1)
	m.SetClusterPoints(p, []core.Point{p})

	m.ResetEdgeIDMap()
	m.ResetClusterMap()

	require.Empty(t, m.EdgeIDs(p))
	require.False(t, m.IsCluster(p))
}
