package format

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/concussgo/concuss/graphmodel"
)

// ReadGraph dispatches to the reader matching path's extension, ported
// from original_source/lib/graph/graphformats.py's get_parser extension
// table.
func ReadGraph(path string) (*graphmodel.Graph, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".edgelist":
		return ReadEdgelist(path)
	case ".leda", ".gw":
		return ReadLEDA(path)
	case ".gml":
		return ReadGML(path)
	case ".gexf":
		return ReadGEXF(path)
	case ".graphml":
		return ReadGraphML(path)
	default:
		return nil, fmt.Errorf("format.ReadGraph: %q: %w", path, ErrUnknownExtension)
	}
}

// WriteGraph dispatches to the writer matching path's extension, ported
// from original_source's get_writer extension table. GraphML is read-only
// here, matching original_source (it never implements a GraphML writer).
func WriteGraph(g *graphmodel.Graph, path string, w io.Writer) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".edgelist":
		return WriteEdgelist(g, w)
	case ".leda", ".gw":
		return WriteLEDA(g, w)
	case ".gml":
		return WriteGML(g, w)
	case ".gexf":
		return WriteGEXF(g, w)
	default:
		return fmt.Errorf("format.WriteGraph: %q: %w", path, ErrUnknownExtension)
	}
}
