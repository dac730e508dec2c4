package graphmodel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/graphmodel"
)

func buildK4(t *testing.T) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.New()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}
	return g
}

func TestAddEdgeSymmetric(t *testing.T) {
	g := buildK4(t)
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	require.Equal(t, 4, g.N())
	require.Equal(t, 6, g.M())
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := graphmodel.New()
	err := g.AddEdge(1, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, graphmodel.ErrSelfLoop))
}

func TestRemoveSelfLoops(t *testing.T) {
	g := graphmodel.New()
	require.NoError(t, g.AddVertex(0))
	g2 := g.Clone()
	// g has no loops, so RemoveSelfLoops removes nothing; the clone g2 is
	// not used further.
	_ = g2
	require.Equal(t, 0, g.RemoveSelfLoops())
}

func TestNormalizeIDsDensifies(t *testing.T) {
	g := graphmodel.New()
	require.NoError(t, g.AddVertex(5))
	require.NoError(t, g.AddVertex(10))
	require.NoError(t, g.AddEdge(5, 10))

	norm, idmap := g.NormalizeIDs()
	require.True(t, norm.Normalized())
	require.Equal(t, 2, norm.N())
	require.Equal(t, 0, idmap[5])
	require.Equal(t, 1, idmap[10])
	require.True(t, norm.HasEdge(0, 1))
}

func TestDegeneracyOfK4(t *testing.T) {
	g := buildK4(t)
	require.Equal(t, 3, g.Degeneracy())
}

func TestTrimLowAndHighDegree(t *testing.T) {
	g := graphmodel.New()
	// star: center 0 with degree 3, leaves degree 1
	for i := 1; i <= 3; i++ {
		require.NoError(t, g.AddEdge(0, i))
	}
	trimmed := g.TrimLowAndHighDegree(2, 10)
	// round 1 drops the three leaves (degree 1 < 2); the center is then
	// isolated (degree 0 < 2), so round 2 drops it too.
	require.Equal(t, 0, trimmed.N())
	require.False(t, trimmed.HasVertex(0))
}
