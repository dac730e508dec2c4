package execdata

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/combine"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/dp"
	"github.com/concussgo/concuss/graphmodel"
)

func TestCheckCompatibleRejectsMultiPatternAndOtherCombiners(t *testing.T) {
	require.NoError(t, CheckCompatible(false, combine.KindInclusionExclusion))
	require.ErrorIs(t, CheckCompatible(true, combine.KindInclusionExclusion), ErrIncompatibleMode)
	require.ErrorIs(t, CheckCompatible(false, combine.KindColorCount), ErrIncompatibleMode)
}

func TestLargestComponentPicksBiggestComponent(t *testing.T) {
	g := graphmodel.New()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(3, 4))

	comp := LargestComponent(g)
	require.ElementsMatch(t, []int{0, 1, 2}, comp)
}

func TestWriterProducesReadableZipArchive(t *testing.T) {
	g := graphmodel.New()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	tdd := &decompose.TDD{
		Root:     1,
		Parent:   map[int]int{0: 1, 1: -1, 2: 1},
		Children: map[int][]int{1: {0, 2}},
		Vertices: []int{0, 1, 2},
	}

	table := dp.NewScalarTable(g, tdd)

	var buf bytes.Buffer
	w := New(&buf)
	require.NoError(t, w.WriteVisInfo(VisInfo{
		GraphFile: "g.txt", PatternName: "path{3}", PatternSize: 3,
		NumColors: 3, TreeDepthLow: 2, Combiner: combine.KindInclusionExclusion, Count: 1,
	}))
	require.NoError(t, w.WriteLargestComponent(g, "largest_component.txt"))
	require.NoError(t, w.WriteTDD(tdd, "tdd.txt"))
	require.NoError(t, w.WriteDPTable(table, "dptable.txt"))
	require.NoError(t, w.WriteColorSetCounts(map[string]int64{"0,1,2": 1}, "counts_per_colorset.txt"))
	require.NoError(t, w.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	require.True(t, names["visinfo.cfg"])
	require.True(t, names["largest_component.txt"])
	require.True(t, names["tdd.txt"])
	require.True(t, names["dptable.txt"])
	require.True(t, names["counts_per_colorset.txt"])
}
