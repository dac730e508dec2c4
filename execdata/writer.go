package execdata

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/concussgo/concuss/combine"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/dp"
	"github.com/concussgo/concuss/format"
	"github.com/concussgo/concuss/graphmodel"
)

// CheckCompatible enforces spec.md §6's "execution-data capture is only
// supported with the InclusionExclusion combiner", and is never offered
// together with multi-pattern mode.
func CheckCompatible(multiPattern bool, kind combine.Kind) error {
	if multiPattern || kind != combine.KindInclusionExclusion {
		return ErrIncompatibleMode
	}
	return nil
}

// VisInfo is the run summary written to visinfo.cfg.
type VisInfo struct {
	GraphFile    string
	PatternName  string
	PatternSize  int
	NumColors    int
	TreeDepthLow int
	Combiner     combine.Kind
	Count        int64
}

// Writer streams execution-data archive entries to a zip.Writer as each is
// added and finalizes the archive on Close, grounded on the archive named by spec.md §6:
// config, graph file, pattern file, visinfo.cfg, largest-component
// edgelist, its TDD as "child parent" lines, a DP table dump, and
// counts_per_colorset.txt.
type Writer struct {
	zw *zip.Writer
}

// New returns a Writer that streams entries into w.
func New(w io.Writer) *Writer {
	return &Writer{zw: zip.NewWriter(w)}
}

// Close finalizes the archive. The underlying io.Writer is left open for
// the caller to close.
func (wr *Writer) Close() error {
	if err := wr.zw.Close(); err != nil {
		return fmt.Errorf("execdata.Writer.Close: %w", err)
	}
	return nil
}

func (wr *Writer) create(name string) (io.Writer, error) {
	w, err := wr.zw.Create(name)
	if err != nil {
		return nil, fmt.Errorf("execdata.Writer: create %q: %w", name, err)
	}
	return w, nil
}

// CopyFile adds the file at path into the archive under name, verbatim —
// used for the config, graph and pattern source files.
func (wr *Writer) CopyFile(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("execdata.Writer.CopyFile: %w", err)
	}
	defer f.Close()

	w, err := wr.create(name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("execdata.Writer.CopyFile: %q: %w", name, err)
	}
	return nil
}

// WriteVisInfo writes visinfo.cfg.
func (wr *Writer) WriteVisInfo(info VisInfo) error {
	w, err := wr.create("visinfo.cfg")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w,
		"graph: %s\npattern: %s\nk: %d\ncolors: %d\ntreedepth_lower_bound: %d\ncombiner: %s\ncount: %d\n",
		info.GraphFile, info.PatternName, info.PatternSize, info.NumColors,
		info.TreeDepthLow, info.Combiner, info.Count)
	if err != nil {
		return fmt.Errorf("execdata.Writer.WriteVisInfo: %w", err)
	}
	return nil
}

// WriteLargestComponent writes g's largest connected component as an
// edgelist under the given name.
func (wr *Writer) WriteLargestComponent(g *graphmodel.Graph, name string) error {
	comp := LargestComponent(g)
	sub := InducedSubgraph(g, comp)
	w, err := wr.create(name)
	if err != nil {
		return err
	}
	if err := format.WriteEdgelist(sub, w); err != nil {
		return fmt.Errorf("execdata.Writer.WriteLargestComponent: %w", err)
	}
	return nil
}

// WriteTDD writes tdd as one "child parent" line per non-root vertex,
// ascending by child id.
func (wr *Writer) WriteTDD(tdd *decompose.TDD, name string) error {
	w, err := wr.create(name)
	if err != nil {
		return err
	}
	children := append([]int(nil), tdd.Vertices...)
	sort.Ints(children)
	for _, v := range children {
		if v == tdd.Root {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d %d\n", v, tdd.Parent[v]); err != nil {
			return fmt.Errorf("execdata.Writer.WriteTDD: %w", err)
		}
	}
	return nil
}

// WriteDPTable dumps table's surviving entries, one "tuple | pattern : count"
// line per entry, if table implements dp.Dumper; ColorTable and other
// non-dumping variants are silently skipped, matching the §6 guarantee that
// capture is only meaningful for the InclusionExclusion combiner's
// Scalar/ForwardTable.
func (wr *Writer) WriteDPTable(table dp.Table, name string) error {
	dumper, ok := table.(dp.Dumper)
	if !ok {
		return nil
	}
	w, err := wr.create(name)
	if err != nil {
		return err
	}
	data := dumper.Dump()
	tuples := make([]string, 0, len(data))
	for tuple := range data {
		tuples = append(tuples, tuple)
	}
	sort.Strings(tuples)
	for _, tuple := range tuples {
		patterns := make([]string, 0, len(data[tuple]))
		for p := range data[tuple] {
			patterns = append(patterns, p)
		}
		sort.Strings(patterns)
		for _, p := range patterns {
			if _, err := fmt.Fprintf(w, "%s | %s : %d\n", tuple, p, data[tuple][p]); err != nil {
				return fmt.Errorf("execdata.Writer.WriteDPTable: %w", err)
			}
		}
	}
	return nil
}

// WriteColorSetCounts writes counts_per_colorset.txt: one "c1,c2,... : n"
// line per entry, keys already formatted as comma-joined ascending color
// ids (spec.md §6).
func (wr *Writer) WriteColorSetCounts(counts map[string]int64, name string) error {
	w, err := wr.create(name)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s : %d\n", k, counts[k]); err != nil {
			return fmt.Errorf("execdata.Writer.WriteColorSetCounts: %w", err)
		}
	}
	return nil
}
