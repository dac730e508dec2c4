package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/combine"
	"github.com/concussgo/concuss/config"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

func mustGraph(t *testing.T, edges [][2]int, n int) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.New()
	for v := 0; v < n; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func mustPattern(t *testing.T, b pattern.Builder) *pattern.Graph {
	t.Helper()
	h, err := pattern.Build(b)
	require.NoError(t, err)
	return h
}

// path5 is a 5-vertex path 0-1-2-3-4, used as the host graph across cases.
func path5(t *testing.T) *graphmodel.Graph {
	return mustGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, 5)
}

func TestRunMatchesBruteForceOnPathHostAndEdgePattern(t *testing.T) {
	g := path5(t)
	h := mustPattern(t, pattern.Path(2))
	cfg := config.Default()

	res, err := Run(g, h, cfg, Options{})
	require.NoError(t, err)
	require.Equal(t, BruteForceCount(g, h), res.Count)
}

func TestRunMatchesBruteForceOnPathHostAndPathSubpattern(t *testing.T) {
	g := path5(t)
	h := mustPattern(t, pattern.Path(3))
	cfg := config.Default()

	res, err := Run(g, h, cfg, Options{})
	require.NoError(t, err)
	require.Equal(t, BruteForceCount(g, h), res.Count)
}

func TestRunOnCliqueHostCountsEveryTriangle(t *testing.T) {
	g := mustGraph(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, 4)
	h := mustPattern(t, pattern.Clique(3))
	cfg := config.Default()

	res, err := Run(g, h, cfg, Options{})
	require.NoError(t, err)
	require.Equal(t, BruteForceCount(g, h), res.Count)
}

func TestRunEmptyPatternReturnsError(t *testing.T) {
	g := path5(t)
	h := graphmodel.New()
	cfg := config.Default()

	_, err := Run(g, h, cfg, Options{})
	require.ErrorIs(t, err, ErrEmptyPattern)
}

func TestRunRejectsUnverifiedBadSuppliedColoring(t *testing.T) {
	g := path5(t)
	h := mustPattern(t, pattern.Path(2))
	cfg := config.Default()

	bad := coloring.New()
	for _, v := range g.Vertices() {
		bad.Set(v, 0)
	}

	_, err := Run(g, h, cfg, Options{Coloring: bad})
	require.ErrorIs(t, err, ErrSuppliedColoringNotCentered)
}

func TestRunSkipVerificationTrustsSuppliedColoring(t *testing.T) {
	g := path5(t)
	h := mustPattern(t, pattern.Path(2))
	cfg := config.Default()

	chi, err := coloring.BuildPCenteredColoring(g, len(h.Vertices()), cfg.Color)
	require.NoError(t, err)

	res, err := Run(g, h, cfg, Options{Coloring: chi, SkipVerification: true})
	require.NoError(t, err)
	require.Equal(t, BruteForceCount(g, h), res.Count)
}

func TestRunPopulatesColorSetCountsOnlyForInclusionExclusion(t *testing.T) {
	g := path5(t)
	h := mustPattern(t, pattern.Path(2))

	ieCfg := config.Default()
	res, err := Run(g, h, ieCfg, Options{})
	require.NoError(t, err)
	require.NotNil(t, res.ColorSetCounts)

	ccCfg := config.Default()
	ccCfg.Combine = combine.KindColorCount
	res2, err := Run(g, h, ccCfg, Options{})
	require.NoError(t, err)
	require.Nil(t, res2.ColorSetCounts)
	require.Equal(t, BruteForceCount(g, h), res2.Count)
}

func TestRunColorCountAndHybridCountAgreeWithInclusionExclusion(t *testing.T) {
	g := mustGraph(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, 4)
	h := mustPattern(t, pattern.Clique(3))

	ieCfg := config.Default()
	ie, err := Run(g, h, ieCfg, Options{})
	require.NoError(t, err)

	ccCfg := config.Default()
	ccCfg.Combine = combine.KindColorCount
	cc, err := Run(g, h, ccCfg, Options{})
	require.NoError(t, err)

	hcCfg := config.Default()
	hcCfg.Combine = combine.KindHybridCount
	hc, err := Run(g, h, hcCfg, Options{})
	require.NoError(t, err)

	require.Equal(t, ie.Count, cc.Count)
	require.Equal(t, ie.Count, hc.Count)
}

func TestBruteForceCountStarHostAgainstStarPattern(t *testing.T) {
	g := mustGraph(t, [][2]int{{0, 1}, {0, 2}, {0, 3}}, 4)
	h := mustPattern(t, pattern.Star(3))

	require.Equal(t, int64(6), BruteForceCount(g, h))
}
