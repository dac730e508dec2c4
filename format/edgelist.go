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

// ReadEdgelist reads the SNAP-style edgelist format (spec.md §6 "edgelist
// (.txt), one `u v` per line, `#` comments"), ported from
// original_source/lib/graph/graphformats.py's read_edgelist.
func ReadEdgelist(path string) (*graphmodel.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("format.ReadEdgelist: %w", err)
	}
	defer f.Close()
	return readEdgelist(f)
}

func readEdgelist(r io.Reader) (*graphmodel.Graph, error) {
	g := graphmodel.New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("format.ReadEdgelist: line %q: %w", line, ErrMalformedLine)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("format.ReadEdgelist: line %q: %w", line, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("format.ReadEdgelist: line %q: %w", line, err)
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("format.ReadEdgelist: line %q: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("format.ReadEdgelist: %w", err)
	}
	return g, nil
}

// WriteEdgelist writes g in the same "u\tv" one-edge-per-line shape
// ReadEdgelist reads, vertex ids ascending by source then target
// (graphmodel.Graph iterates both in ascending order).
func WriteEdgelist(g *graphmodel.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			if v < u {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d\t%d\n", u, v); err != nil {
				return fmt.Errorf("format.WriteEdgelist: %w", err)
			}
		}
	}
	return bw.Flush()
}
