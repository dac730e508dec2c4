package decompose_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/graphmodel"
)

func k4(t *testing.T) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.New()
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}
	return g
}

func TestCombinationsSweepVisitsAllColorSets(t *testing.T) {
	g := k4(t)
	col, err := coloring.BuildPCenteredColoring(g, 3, coloring.Options{})
	require.NoError(t, err)

	var sets [][]int
	cb := decompose.Callbacks{
		OnComponent: func(colors []int, component []int) error {
			sets = append(sets, colors)
			return nil
		},
	}
	require.NoError(t, decompose.CombinationsSweep{}.Components(g, col, 1, col.NumColors(), cb))
	require.NotEmpty(t, sets)
}

func TestDFSSweepAndCombinationsSweepAgreeOnComponents(t *testing.T) {
	g := k4(t)
	col, err := coloring.BuildPCenteredColoring(g, 3, coloring.Options{})
	require.NoError(t, err)

	collect := func(sw decompose.Sweep) map[string]bool {
		out := make(map[string]bool)
		cb := decompose.Callbacks{
			OnComponent: func(colors []int, component []int) error {
				out[key(colors, component)] = true
				return nil
			},
		}
		require.NoError(t, sw.Components(g, col, 1, col.NumColors(), cb))
		return out
	}

	a := collect(decompose.CombinationsSweep{})
	b := collect(decompose.DFSSweep{})
	require.Equal(t, a, b)
}

func key(colors, component []int) string {
	return fmt.Sprintf("%v|%v", colors, component)
}

func TestBuildTDDOnTriangleWithThreeColors(t *testing.T) {
	g := graphmodel.New()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	colorOf := map[int]int{0: 0, 1: 1, 2: 2}
	tdd, err := decompose.BuildTDD([]int{0, 1, 2}, colorOf, g.Neighbors)
	require.NoError(t, err)
	require.Equal(t, 0, tdd.Depth[tdd.Root])
	require.Equal(t, 2, tdd.MaxDepth())
}

func TestBuildTDDFastPathTwoColors(t *testing.T) {
	// star: center colored uniquely, leaves share one color (independent set).
	g := graphmodel.New()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))

	colorOf := map[int]int{0: 9, 1: 1, 2: 1, 3: 1}
	tdd, err := decompose.BuildTDD([]int{0, 1, 2, 3}, colorOf, g.Neighbors)
	require.NoError(t, err)
	require.Equal(t, 0, tdd.Root)
	require.Equal(t, 1, tdd.MaxDepth())
	require.ElementsMatch(t, []int{1, 2, 3}, tdd.Children[0])
}
