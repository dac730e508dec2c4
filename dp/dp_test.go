package dp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/dp"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

func singleVertexGraph(t *testing.T) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.New()
	require.NoError(t, g.AddVertex(0))
	return g
}

func edgeGraph(t *testing.T) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.New()
	require.NoError(t, g.AddEdge(0, 1))
	return g
}

func TestEvaluatorCountsSingleVertexPattern(t *testing.T) {
	g := singleVertexGraph(t)
	colorOf := map[int]int{0: 0}
	tdd, err := decompose.BuildTDD([]int{0}, colorOf, g.Neighbors)
	require.NoError(t, err)

	h := pattern.New()
	require.NoError(t, h.AddVertex(0))

	table := dp.NewScalarTable(g, tdd)
	count := dp.NewEvaluator(table).Run(tdd, h, 1)
	require.Equal(t, int64(1), count)
}

func TestEvaluatorCountsEdgePatternInEdgeHost(t *testing.T) {
	g := edgeGraph(t)
	colorOf := map[int]int{0: 0, 1: 1}
	tdd, err := decompose.BuildTDD([]int{0, 1}, colorOf, g.Neighbors)
	require.NoError(t, err)
	require.Equal(t, 0, tdd.Root)

	h := edgeGraph(t)

	table := dp.NewScalarTable(g, tdd)
	count := dp.NewEvaluator(table).Run(tdd, h, 2)
	require.Equal(t, int64(2), count)
}

func TestScalarTableFreeRemovesTuple(t *testing.T) {
	g := singleVertexGraph(t)
	colorOf := map[int]int{0: 0}
	tdd, err := decompose.BuildTDD([]int{0}, colorOf, g.Neighbors)
	require.NoError(t, err)

	h := pattern.New()
	require.NoError(t, h.AddVertex(0))

	table := dp.NewScalarTable(g, tdd)
	table.Leaf(0, pattern.AllPatterns(h, 0))
	_, ok := table.Get([]int{0}, pattern.TrivialPattern(h))
	require.True(t, ok)

	table.Free([]int{0})
	_, ok = table.Get([]int{0}, pattern.TrivialPattern(h))
	require.False(t, ok)
}

func TestColorTableGetSumsCounterAcrossColorSets(t *testing.T) {
	g := edgeGraph(t)
	colorOf := map[int]int{0: 0, 1: 1}
	tdd, err := decompose.BuildTDD([]int{0, 1}, colorOf, g.Neighbors)
	require.NoError(t, err)

	chi := coloring.New()
	chi.Set(0, 0)
	chi.Set(1, 1)

	h := edgeGraph(t)
	table := dp.NewColorTable(g, tdd, chi)

	table.Leaf(1, pattern.AllPatterns(h, tdd.Depth[1]))
	scalarTotal, ok := table.Get([]int{1}, pattern.TrivialPattern(h))
	require.True(t, ok)
	require.GreaterOrEqual(t, scalarTotal, int64(0))
}

func TestBVTableIsScalarTable(t *testing.T) {
	g := singleVertexGraph(t)
	colorOf := map[int]int{0: 0}
	tdd, err := decompose.BuildTDD([]int{0}, colorOf, g.Neighbors)
	require.NoError(t, err)

	table := dp.NewBVTable(g, tdd)
	require.IsType(t, &dp.ScalarTable{}, table)
}

func TestRequiredBits(t *testing.T) {
	require.Equal(t, 1, dp.RequiredBits(1, 5))
	require.Equal(t, 4, dp.RequiredBits(3, 2)) // 3^2+1=10 -> 4 bits
	require.True(t, dp.FitsInInt64(10, 6))
}
