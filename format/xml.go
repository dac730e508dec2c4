package format

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/concussgo/concuss/graphmodel"
)

// original_source/lib/graph/graphformats.py parses GEXF and GraphML with
// BeautifulSoup, which has no Go equivalent in the example pack; encoding/xml
// is the idiomatic stdlib substitute and is sufficient for the flat
// node/edge shape both formats share.

type gexfDocument struct {
	XMLName xml.Name `xml:"gexf"`
	Graph   struct {
		Nodes struct {
			Node []struct {
				ID string `xml:"id,attr"`
			} `xml:"node"`
		} `xml:"nodes"`
		Edges struct {
			Edge []struct {
				Source string `xml:"source,attr"`
				Target string `xml:"target,attr"`
			} `xml:"edge"`
		} `xml:"edges"`
	} `xml:"graph"`
}

// ReadGEXF reads a GEXF graph file, ported from original_source's
// read_gexf: every <node id="..."/> becomes a vertex, every
// <edge source="..." target="..."/> an edge; GEXF node/edge ids may be
// arbitrary strings so they are remapped to dense 0-based integers in
// first-seen order.
func ReadGEXF(path string) (*graphmodel.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("format.ReadGEXF: %w", err)
	}
	defer f.Close()
	return readGEXF(f)
}

func readGEXF(r io.Reader) (*graphmodel.Graph, error) {
	var doc gexfDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("format.ReadGEXF: %w", err)
	}
	g := graphmodel.New()
	ids := map[string]int{}
	nextID := func(s string) int {
		if v, ok := ids[s]; ok {
			return v
		}
		v := len(ids)
		ids[s] = v
		return v
	}
	for _, n := range doc.Graph.Nodes.Node {
		if err := g.AddVertex(nextID(n.ID)); err != nil {
			return nil, fmt.Errorf("format.ReadGEXF: %w", err)
		}
	}
	for _, e := range doc.Graph.Edges.Edge {
		if err := g.AddEdge(nextID(e.Source), nextID(e.Target)); err != nil {
			return nil, fmt.Errorf("format.ReadGEXF: %w", err)
		}
	}
	return g, nil
}

type graphmlDocument struct {
	XMLName xml.Name `xml:"graphml"`
	Graph   struct {
		Node []struct {
			ID string `xml:"id,attr"`
		} `xml:"node"`
		Edge []struct {
			Source string `xml:"source,attr"`
			Target string `xml:"target,attr"`
		} `xml:"edge"`
	} `xml:"graph"`
}

// ReadGraphML reads a GraphML graph file, ported from original_source's
// read_graphml, with the same string-id remapping ReadGEXF uses.
func ReadGraphML(path string) (*graphmodel.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("format.ReadGraphML: %w", err)
	}
	defer f.Close()
	return readGraphML(f)
}

func readGraphML(r io.Reader) (*graphmodel.Graph, error) {
	var doc graphmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("format.ReadGraphML: %w", err)
	}
	g := graphmodel.New()
	ids := map[string]int{}
	nextID := func(s string) int {
		if v, ok := ids[s]; ok {
			return v
		}
		v := len(ids)
		ids[s] = v
		return v
	}
	for _, n := range doc.Graph.Node {
		if err := g.AddVertex(nextID(n.ID)); err != nil {
			return nil, fmt.Errorf("format.ReadGraphML: %w", err)
		}
	}
	for _, e := range doc.Graph.Edge {
		if err := g.AddEdge(nextID(e.Source), nextID(e.Target)); err != nil {
			return nil, fmt.Errorf("format.ReadGraphML: %w", err)
		}
	}
	return g, nil
}

// WriteGEXF writes g as a minimal undirected GEXF 1.2 document, grounded on
// original_source's write_gexf.
func WriteGEXF(g *graphmodel.Graph, w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("format.WriteGEXF: %w", err)
	}
	if _, err := fmt.Fprint(w, `<gexf xmlns="http://www.gexf.net/1.2draft" version="1.2"><graph defaultedgetype="undirected"><nodes>`); err != nil {
		return fmt.Errorf("format.WriteGEXF: %w", err)
	}
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, `<node id="%d" label="%d"/>`, v, v); err != nil {
			return fmt.Errorf("format.WriteGEXF: %w", err)
		}
	}
	if _, err := io.WriteString(w, "</nodes><edges>"); err != nil {
		return fmt.Errorf("format.WriteGEXF: %w", err)
	}
	id := 0
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			if v < u {
				continue
			}
			if _, err := fmt.Fprintf(w, `<edge id="%d" source="%d" target="%d"/>`, id, u, v); err != nil {
				return fmt.Errorf("format.WriteGEXF: %w", err)
			}
			id++
		}
	}
	_, err := io.WriteString(w, "</edges></graph></gexf>")
	if err != nil {
		return fmt.Errorf("format.WriteGEXF: %w", err)
	}
	return nil
}
