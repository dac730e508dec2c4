package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/coloring"
)

func TestReadEdgelistSkipsCommentsAndBlankLines(t *testing.T) {
	src := "# a triangle\n0 1\n\n1 2\n2 0\n"
	g, err := readEdgelist(strings.NewReader(src))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2}, g.Vertices())
	require.ElementsMatch(t, []int{1, 2}, g.Neighbors(0))
}

func TestReadEdgelistRejectsMalformedLine(t *testing.T) {
	_, err := readEdgelist(strings.NewReader("0\n"))
	require.ErrorIs(t, err, ErrMalformedLine)
}

func TestWriteEdgelistRoundTrips(t *testing.T) {
	g, err := readEdgelist(strings.NewReader("0 1\n1 2\n"))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteEdgelist(g, &buf))

	g2, err := readEdgelist(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.ElementsMatch(t, g.Vertices(), g2.Vertices())
	for _, v := range g.Vertices() {
		require.ElementsMatch(t, g.Neighbors(v), g2.Neighbors(v))
	}
}

func TestReadLEDAShiftsOneBasedToZeroBased(t *testing.T) {
	src := "LEDA.GRAPH\nstring\nstring\n-1\n3\n|{}|\n|{}|\n|{}|\n2\n1 2 0 |{}|\n2 3 0 |{}|\n"
	g, err := readLEDA(strings.NewReader(src))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2}, g.Vertices())
	require.ElementsMatch(t, []int{1}, g.Neighbors(0))
	require.ElementsMatch(t, []int{0, 2}, g.Neighbors(1))
}

func TestWriteLEDARoundTrips(t *testing.T) {
	g, err := readEdgelist(strings.NewReader("0 1\n1 2\n"))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteLEDA(g, &buf))

	g2, err := readLEDA(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.ElementsMatch(t, g.Vertices(), g2.Vertices())
	for _, v := range g.Vertices() {
		require.ElementsMatch(t, g.Neighbors(v), g2.Neighbors(v))
	}
}

func TestReadGMLParsesNodesAndEdges(t *testing.T) {
	src := `graph [
  directed 0
  node [
    id 0
  ]
  node [
    id 1
  ]
  edge [
    source 0
    target 1
  ]
]
`
	g, err := readGML(strings.NewReader(src))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1}, g.Vertices())
	require.ElementsMatch(t, []int{1}, g.Neighbors(0))
}

func TestReadGMLRejectsMissingGraphBlock(t *testing.T) {
	_, err := readGML(strings.NewReader("node [ id 0 ]\n"))
	require.ErrorIs(t, err, ErrMalformedGML)
}

func TestWriteGMLRoundTrips(t *testing.T) {
	g, err := readEdgelist(strings.NewReader("0 1\n1 2\n"))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteGML(g, &buf))

	g2, err := readGML(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.ElementsMatch(t, g.Vertices(), g2.Vertices())
	for _, v := range g.Vertices() {
		require.ElementsMatch(t, g.Neighbors(v), g2.Neighbors(v))
	}
}

func TestReadGEXFParsesNodesAndEdges(t *testing.T) {
	src := `<?xml version="1.0"?>
<gexf><graph defaultedgetype="undirected"><nodes>
<node id="a" label="a"/>
<node id="b" label="b"/>
</nodes><edges>
<edge id="0" source="a" target="b"/>
</edges></graph></gexf>`
	g, err := readGEXF(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, g.Vertices(), 2)
	require.Len(t, g.Neighbors(g.Vertices()[0]), 1)
}

func TestReadGraphMLParsesNodesAndEdges(t *testing.T) {
	src := `<?xml version="1.0"?>
<graphml><graph edgedefault="undirected">
<node id="n0"/>
<node id="n1"/>
<edge source="n0" target="n1"/>
</graph></graphml>`
	g, err := readGraphML(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, g.Vertices(), 2)
	require.Len(t, g.Neighbors(g.Vertices()[0]), 1)
}

func TestWriteGEXFRoundTrips(t *testing.T) {
	g, err := readEdgelist(strings.NewReader("0 1\n1 2\n"))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteGEXF(g, &buf))

	g2, err := readGEXF(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, g2.Vertices(), len(g.Vertices()))
}

func TestReadColoringParsesHeaderAndLines(t *testing.T) {
	src := "3\n0: 0\n1: 1\n2: 0\n"
	chi, err := readColoring(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, chi.Len())
	c, ok := chi.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, c)
}

func TestReadColoringRejectsHeaderMismatch(t *testing.T) {
	_, err := readColoring(strings.NewReader("2\n0: 0\n"))
	require.ErrorIs(t, err, ErrMalformedColoring)
}

func TestWriteColoringRoundTrips(t *testing.T) {
	chi := coloring.New()
	chi.Set(0, 0)
	chi.Set(1, 1)
	chi.Set(2, 0)

	var buf strings.Builder
	require.NoError(t, WriteColoring(chi, &buf))

	chi2, err := readColoring(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, chi.Vertices(), chi2.Vertices())
	for _, v := range chi.Vertices() {
		c1, _ := chi.Get(v)
		c2, _ := chi2.Get(v)
		require.Equal(t, c1, c2)
	}
}

func TestReadMultiPatternFileParsesNames(t *testing.T) {
	src := "# batch\nclique{3}\npath{4}\n"
	patterns, err := readMultiPatternFile(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	require.Equal(t, "clique{3}", patterns[0].Name)
	require.Len(t, patterns[0].Graph.Vertices(), 3)
	require.Equal(t, "path{4}", patterns[1].Name)
	require.Len(t, patterns[1].Graph.Vertices(), 4)
}

func TestReadMultiPatternFileRejectsUnknownName(t *testing.T) {
	_, err := readMultiPatternFile(strings.NewReader("bogus{3}\n"))
	require.Error(t, err)
}

func TestReadMultiPatternYAMLParsesNames(t *testing.T) {
	src := "patterns:\n  - clique{3}\n  - star{4}\n"
	patterns, err := readMultiPatternYAML(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	require.Equal(t, "clique{3}", patterns[0].Name)
	require.Equal(t, "star{4}", patterns[1].Name)
}
