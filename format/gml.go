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

// gmlBlock is one `name [ ... ]` block of a parsed GML file, ported from
// original_source/lib/graph/graphformats.py's read_gml_data: GML is its own
// bracket-delimited text format (not XML), so this is a small hand-rolled
// tokenizer and stack-based block parser rather than an encoding/xml use.
type gmlBlock struct {
	name     string
	fields   map[string]string
	children []*gmlBlock
}

func (b *gmlBlock) blocks(name string) []*gmlBlock {
	var out []*gmlBlock
	for _, c := range b.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// ReadGML reads a GML graph file, ported from original_source's
// read_gml_data/read_gml: a `graph [ node [ id N ] ... edge [ source S
// target T ] ... ]` block structure.
func ReadGML(path string) (*graphmodel.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("format.ReadGML: %w", err)
	}
	defer f.Close()
	return readGML(f)
}

func readGML(r io.Reader) (*graphmodel.Graph, error) {
	tokens, err := tokenizeGML(r)
	if err != nil {
		return nil, fmt.Errorf("format.ReadGML: %w", err)
	}
	root := &gmlBlock{name: "__root__", fields: map[string]string{}}
	if _, err := parseGMLBlock(tokens, 0, root); err != nil {
		return nil, fmt.Errorf("format.ReadGML: %w", err)
	}

	graphs := root.blocks("graph")
	if len(graphs) != 1 {
		return nil, fmt.Errorf("format.ReadGML: expected exactly one graph block: %w", ErrMalformedGML)
	}
	gb := graphs[0]

	g := graphmodel.New()
	idToVertex := map[string]int{}
	for _, n := range gb.blocks("node") {
		id, ok := n.fields["id"]
		if !ok {
			return nil, fmt.Errorf("format.ReadGML: node missing id: %w", ErrMalformedGML)
		}
		v, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("format.ReadGML: node id %q: %w", id, err)
		}
		idToVertex[id] = v
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("format.ReadGML: %w", err)
		}
	}
	for _, e := range gb.blocks("edge") {
		s, ok := e.fields["source"]
		if !ok {
			return nil, fmt.Errorf("format.ReadGML: edge missing source: %w", ErrMalformedGML)
		}
		t, ok := e.fields["target"]
		if !ok {
			return nil, fmt.Errorf("format.ReadGML: edge missing target: %w", ErrMalformedGML)
		}
		u, ok := idToVertex[s]
		if !ok {
			return nil, fmt.Errorf("format.ReadGML: edge source %q: %w", s, ErrMalformedGML)
		}
		v, ok := idToVertex[t]
		if !ok {
			return nil, fmt.Errorf("format.ReadGML: edge target %q: %w", t, ErrMalformedGML)
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("format.ReadGML: %w", err)
		}
	}
	return g, nil
}

// tokenizeGML splits GML source into a flat stream of "[", "]", and
// whitespace-delimited words, matching original_source's regex-based
// tokenizer.
func tokenizeGML(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var tokens []string
	for scanner.Scan() {
		line := scanner.Text()
		var word strings.Builder
		flush := func() {
			if word.Len() > 0 {
				tokens = append(tokens, word.String())
				word.Reset()
			}
		}
		for _, ch := range line {
			switch ch {
			case '[', ']':
				flush()
				tokens = append(tokens, string(ch))
			case ' ', '\t':
				flush()
			default:
				word.WriteRune(ch)
			}
		}
		flush()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// parseGMLBlock consumes tokens[pos:] into block's fields/children until a
// matching "]" (or end of input for the synthetic root), returning the next
// unconsumed index.
func parseGMLBlock(tokens []string, pos int, block *gmlBlock) (int, error) {
	for pos < len(tokens) {
		tok := tokens[pos]
		if tok == "]" {
			return pos + 1, nil
		}
		name := tok
		pos++
		if pos >= len(tokens) {
			return pos, fmt.Errorf("field %q with no value: %w", name, ErrMalformedGML)
		}
		if tokens[pos] == "[" {
			child := &gmlBlock{name: name, fields: map[string]string{}}
			next, err := parseGMLBlock(tokens, pos+1, child)
			if err != nil {
				return next, err
			}
			block.children = append(block.children, child)
			pos = next
			continue
		}
		block.fields[name] = strings.Trim(tokens[pos], `"`)
		pos++
	}
	return pos, nil
}

// WriteGML writes g as a minimal GML graph block: undirected, bare node ids
// and source/target edges, matching the shape original_source's write_gml
// produces.
func WriteGML(g *graphmodel.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprint(bw, "graph [\n  directed 0\n"); err != nil {
		return fmt.Errorf("format.WriteGML: %w", err)
	}
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(bw, "  node [\n    id %d\n  ]\n", v); err != nil {
			return fmt.Errorf("format.WriteGML: %w", err)
		}
	}
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			if v < u {
				continue
			}
			if _, err := fmt.Fprintf(bw, "  edge [\n    source %d\n    target %d\n  ]\n", u, v); err != nil {
				return fmt.Errorf("format.WriteGML: %w", err)
			}
		}
	}
	if _, err := fmt.Fprint(bw, "]\n"); err != nil {
		return fmt.Errorf("format.WriteGML: %w", err)
	}
	return bw.Flush()
}
