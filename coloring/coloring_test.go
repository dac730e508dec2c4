package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/coloring"
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

func cycle(t *testing.T, n int) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.New()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n))
	}
	return g
}

func TestGreedyColoringIsProper(t *testing.T) {
	g := k4(t)
	col := coloring.Greedy(g, coloring.NextFreeColor)
	require.True(t, coloring.IsProper(g, col))
}

func TestDSATURColoringIsProper(t *testing.T) {
	g := cycle(t, 6)
	col := coloring.DSATUR(g, coloring.NextFreeColor)
	require.True(t, coloring.IsProper(g, col))
}

func TestCheckTreeDepthK4WithP3(t *testing.T) {
	g := k4(t)
	col, err := coloring.BuildPCenteredColoring(g, 3, coloring.Options{})
	require.NoError(t, err)
	require.True(t, coloring.IsProper(g, col))
	ok, _ := coloring.CheckTreeDepth(g, col, 3)
	require.True(t, ok)
}

func TestCheckTreeDepthDetectsNonCentered(t *testing.T) {
	// Color a 4-cycle with only two colors (proper, but the whole 4-cycle
	// on those two colors has no center for p=2).
	g := graphmodel.New()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))

	col := coloring.New()
	col.Set(0, 0)
	col.Set(1, 1)
	col.Set(2, 0)
	col.Set(3, 1)
	require.True(t, coloring.IsProper(g, col))

	ok, witness := coloring.CheckTreeDepth(g, col, 2)
	require.False(t, ok)
	require.NotNil(t, witness)
	require.ElementsMatch(t, []int{0, 1}, witness.Colors)
}

func TestBuildPCenteredColoringRejectsTooLargeP(t *testing.T) {
	g := k4(t)
	_, err := coloring.BuildPCenteredColoring(g, 1000, coloring.Options{})
	require.ErrorIs(t, err, coloring.ErrPTooLarge)
}

func TestColoringNormalizeOrdersByFrequency(t *testing.T) {
	c := coloring.New()
	c.Set(0, 7) // color 7 used once
	c.Set(1, 3) // color 3 used twice
	c.Set(2, 3)
	norm := c.Normalize()
	col1, _ := norm.Get(1)
	col0, _ := norm.Get(0)
	require.Less(t, col1, col0) // the more frequent color gets the smaller id
}
