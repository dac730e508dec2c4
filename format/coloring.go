package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/concussgo/concuss/coloring"
)

// ReadColoring reads a coloring file (spec.md §6: a vertex-count header
// line followed by "vertex: color" lines), ported from
// original_source/lib/graph/graphformats.py's load_coloring.
func ReadColoring(path string) (*coloring.Coloring, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("format.ReadColoring: %w", err)
	}
	defer f.Close()
	return readColoring(f)
}

func readColoring(r io.Reader) (*coloring.Coloring, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("format.ReadColoring: missing header: %w", ErrMalformedColoring)
	}
	header := strings.TrimSpace(scanner.Text())
	n, err := strconv.Atoi(header)
	if err != nil {
		return nil, fmt.Errorf("format.ReadColoring: header %q: %w", header, err)
	}

	chi := coloring.New()
	count := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("format.ReadColoring: line %q: %w", line, ErrMalformedColoring)
		}
		v, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("format.ReadColoring: line %q: %w", line, err)
		}
		c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("format.ReadColoring: line %q: %w", line, err)
		}
		chi.Set(v, c)
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("format.ReadColoring: %w", err)
	}
	if count != n {
		return nil, fmt.Errorf("format.ReadColoring: header declared %d vertices, read %d: %w", n, count, ErrMalformedColoring)
	}
	return chi, nil
}

// WriteColoring writes chi in the same header-plus-"vertex: color"-lines
// shape ReadColoring reads, vertices in ascending order.
func WriteColoring(chi *coloring.Coloring, w io.Writer) error {
	bw := bufio.NewWriter(w)
	vertices := chi.Vertices()
	if _, err := fmt.Fprintf(bw, "%d\n", len(vertices)); err != nil {
		return fmt.Errorf("format.WriteColoring: %w", err)
	}
	for _, v := range vertices {
		c, _ := chi.Get(v)
		if _, err := fmt.Fprintf(bw, "%d: %d\n", v, c); err != nil {
			return fmt.Errorf("format.WriteColoring: %w", err)
		}
	}
	return bw.Flush()
}
