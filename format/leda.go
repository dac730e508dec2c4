package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/concussgo/concuss/graphmodel"
)

// ReadLEDA reads the LEDA.GRAPH format (spec.md §6 "LEDA (.leda); 1-based
// and must be shifted to 0-based"), ported from
// original_source/lib/graph/graphformats.py's read_leda: four preamble
// lines, a vertex count, that many vertex-label lines, an edge count, then
// "source target reversal label" lines.
func ReadLEDA(path string) (*graphmodel.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("format.ReadLEDA: %w", err)
	}
	defer f.Close()
	return readLEDA(f)
}

func readLEDA(r io.Reader) (*graphmodel.Graph, error) {
	scanner := bufio.NewScanner(r)
	next := func() (string, bool) {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	for i := 0; i < 4; i++ {
		if _, ok := next(); !ok {
			return nil, fmt.Errorf("format.ReadLEDA: truncated preamble: %w", ErrMalformedLine)
		}
	}

	nLine, ok := next()
	if !ok {
		return nil, fmt.Errorf("format.ReadLEDA: missing vertex count: %w", ErrMalformedLine)
	}
	n, err := strconv.Atoi(nLine)
	if err != nil {
		return nil, fmt.Errorf("format.ReadLEDA: vertex count %q: %w", nLine, err)
	}
	for i := 0; i < n; i++ {
		if _, ok := next(); !ok {
			return nil, fmt.Errorf("format.ReadLEDA: truncated vertex labels: %w", ErrMalformedLine)
		}
	}

	mLine, ok := next()
	if !ok {
		return nil, fmt.Errorf("format.ReadLEDA: missing edge count: %w", ErrMalformedLine)
	}
	m, err := strconv.Atoi(mLine)
	if err != nil {
		return nil, fmt.Errorf("format.ReadLEDA: edge count %q: %w", mLine, err)
	}

	g := graphmodel.New()
	for i := 0; i < m; i++ {
		line, ok := next()
		if !ok {
			return nil, fmt.Errorf("format.ReadLEDA: truncated edge list: %w", ErrMalformedLine)
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("format.ReadLEDA: edge line %q: %w", line, ErrMalformedLine)
		}
		s, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("format.ReadLEDA: edge line %q: %w", line, err)
		}
		t, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("format.ReadLEDA: edge line %q: %w", line, err)
		}
		if err := g.AddEdge(s-1, t-1); err != nil { // LEDA is 1-based
			return nil, fmt.Errorf("format.ReadLEDA: edge line %q: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("format.ReadLEDA: %w", err)
	}
	return g, nil
}

// WriteLEDA writes g in LEDA.GRAPH form, shifting vertex ids back to
// 1-based, with empty string labels (`|{}|`) as original_source's write_leda
// does.
func WriteLEDA(g *graphmodel.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprint(bw, "LEDA.GRAPH\nstring\nstring\n-1\n"); err != nil {
		return fmt.Errorf("format.WriteLEDA: %w", err)
	}
	vertices := g.Vertices()
	if _, err := fmt.Fprintf(bw, "%d\n", len(vertices)); err != nil {
		return fmt.Errorf("format.WriteLEDA: %w", err)
	}
	for range vertices {
		if _, err := fmt.Fprint(bw, "|{}|\n"); err != nil {
			return fmt.Errorf("format.WriteLEDA: %w", err)
		}
	}

	var edges [][2]int
	for _, u := range vertices {
		for _, v := range g.Neighbors(u) {
			if v >= u {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	if _, err := fmt.Fprintf(bw, "%d\n", len(edges)); err != nil {
		return fmt.Errorf("format.WriteLEDA: %w", err)
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d 0 |{}|\n", e[0]+1, e[1]+1); err != nil {
			return fmt.Errorf("format.WriteLEDA: %w", err)
		}
	}
	return bw.Flush()
}
