package combine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/coloring"
)

func coloringWithColors(colors ...int) *coloring.Coloring {
	chi := coloring.New()
	for i, c := range colors {
		chi.Set(i, c)
	}
	return chi
}

func TestInclusionExclusionTrivialWhenTreeDepthEqualsP(t *testing.T) {
	chi := coloringWithColors(0, 1, 2)
	ie := NewInclusionExclusion(3, chi, 3, false)
	require.Equal(t, []int64{1}, ie.inEx)

	ie.BeforeColorSet([]int{0, 1, 2})
	ie.CombineCount(ScalarCount(5))
	require.Equal(t, int64(5), ie.GetCount())
	require.Equal(t, int64(5), ie.ColorSetCount())
}

func TestInclusionExclusionIgnoresOutOfRangeColorSets(t *testing.T) {
	chi := coloringWithColors(0, 1, 2, 3)
	ie := NewInclusionExclusion(2, chi, 2, false)

	ie.BeforeColorSet([]int{0, 1, 2})
	ie.CombineCount(ScalarCount(100))
	require.Equal(t, int64(0), ie.GetCount())

	ie.BeforeColorSet([]int{0, 1})
	ie.CombineCount(ScalarCount(7))
	require.Equal(t, int64(7), ie.GetCount())
}

func TestColorCountMergeMaxAcrossColorSets(t *testing.T) {
	chi := coloringWithColors(0, 1, 2)
	cc := NewColorCount(3, chi)

	cc.BeforeColorSet([]int{0, 1, 2})
	cc.CombineCount(ColorSetCounts{"0,1": 2, "2": 1})
	cc.AfterColorSet([]int{0, 1, 2})

	cc.BeforeColorSet([]int{0, 1, 3})
	cc.CombineCount(ColorSetCounts{"0,1": 5})
	cc.AfterColorSet([]int{0, 1, 3})

	require.Equal(t, int64(5+1), cc.GetCount()) // max(2,5) for "0,1", plus 1 for "2"
}

func TestHybridCountCoveringFamilyCoversEverySubset(t *testing.T) {
	chi := coloringWithColors(0, 1, 2)
	hc := NewHybridCount(2, chi, false)

	require.NotEmpty(t, hc.colorDPSet)
	covered := make(map[string]bool)
	for key := range hc.colorDPSet {
		set := parseColorKey(key)
		for _, sub := range combinations(set, hc.minP-1) {
			covered[colorKey(sub)] = true
		}
	}
	for _, sub := range combinations(chi.Colors(), hc.minP-1) {
		require.True(t, covered[colorKey(sub)], "subset %v must be covered", sub)
	}
}

func TestHybridCountSubtractsOvercountedSubsets(t *testing.T) {
	chi := coloringWithColors(0, 1, 2)
	hc := NewHybridCount(2, chi, false)

	for key := range hc.colorDPSet {
		colors := parseColorKey(key)
		hc.BeforeColorSet(colors)
		cs := ColorSetCounts{}
		for _, sub := range combinations(colors, hc.minP-1) {
			cs[colorKey(sub)] = 3
		}
		hc.CombineCount(cs)
		hc.AfterColorSet(colors)
	}

	allTwoSets := combinations(chi.Colors(), hc.minP)
	for _, set := range allTwoSets {
		key := colorKey(set)
		if hc.colorDPSet[key] {
			continue
		}
		hc.BeforeColorSet(set)
		hc.CombineCount(ScalarCount(10))
		hc.AfterColorSet(set)
	}

	require.GreaterOrEqual(t, hc.GetCount(), int64(0))
}

func TestChooseBinomialCoefficients(t *testing.T) {
	require.Equal(t, int64(1), choose(5, 0))
	require.Equal(t, int64(5), choose(5, 1))
	require.Equal(t, int64(10), choose(5, 2))
	require.Equal(t, int64(10), choose(5, 3))
}

func TestCombinationsLexicographicOrder(t *testing.T) {
	got := combinations([]int{0, 1, 2, 3}, 2)
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	require.Equal(t, want, got)
}
