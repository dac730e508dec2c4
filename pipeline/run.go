package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/combine"
	"github.com/concussgo/concuss/config"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/dp"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/internal/progress"
	"github.com/concussgo/concuss/pattern"
)

// Options carries everything about one Run beyond the host graph, pattern
// and config: a caller-supplied coloring (the CLI's -c flag) and whether to
// trust it unverified (-C), plus an optional progress sink.
type Options struct {
	// Coloring, if non-nil, is used in place of BuildPCenteredColoring.
	Coloring *coloring.Coloring
	// SkipVerification trusts Coloring without checking properness or
	// p-centeredness first.
	SkipVerification bool
	// Progress, if non-nil, receives stage/percent updates as the run
	// proceeds.
	Progress *progress.Reporter
}

// Result is everything a caller (the CLI, or execdata's archive writer)
// needs out of one Run.
type Result struct {
	Count               int64
	Coloring            *coloring.Coloring
	TreeDepthLowerBound int
	// Normalized is the dense-0..n-1-id host graph the count, coloring and
	// tree-depth bound above were computed over — execdata capture builds
	// its diagnostic TDD from this graph, not the caller's original ids.
	Normalized *graphmodel.Graph
	// ColorSetCounts maps an ascending comma-joined color-id key to the
	// count InclusionExclusion attributed to that color set, for
	// execdata's counts_per_colorset.txt. Only populated when cfg.Combine
	// is KindInclusionExclusion; nil otherwise (spec.md §6's execdata
	// compatibility rule).
	ColorSetCounts map[string]int64
}

// Run counts copies of pattern h inside host graph g under config cfg
// (spec.md §2's end-to-end pipeline): normalize g, build or verify a
// p-centered coloring, sweep color sets, build one treedepth decomposition
// per component, evaluate the k-pattern DP table bottom-up, and fold every
// component's count into the configured combiner.
//
// Both the coloring's centeredness depth p and the k-pattern boundary size
// k are set to len(h.Vertices()): a pattern of n vertices can only ever
// need an n-vertex boundary and an n-colored witness to a copy of itself.
func Run(g *graphmodel.Graph, h *pattern.Graph, cfg *config.Config, opts Options) (*Result, error) {
	k := len(h.Vertices())
	if k == 0 {
		return nil, ErrEmptyPattern
	}

	norm, _ := g.NormalizeIDs()
	td := pattern.TreedepthLowerBound(h)

	opts.Progress.Report("normalize", 5)

	chi, err := resolveColoring(norm, k, cfg, opts)
	if err != nil {
		return nil, err
	}
	opts.Progress.Report("coloring", 20)

	comb, err := combine.New(cfg.Combine, k, chi, td, cfg.Forward)
	if err != nil {
		return nil, err
	}

	colorSetCounts := make(map[string]int64)
	total := totalColorSets(chi.NumColors(), td, k)
	processed := int64(0)
	var currentKey string

	callbacks := decompose.Callbacks{
		BeforeColorSet: func(colors []int) {
			currentKey = colorKey(colors)
			comb.BeforeColorSet(colors)
		},
		OnComponent: func(colors, component []int) error {
			return evaluateComponent(norm, chi, comb, h, k, component)
		},
		AfterColorSet: func(colors []int) {
			comb.AfterColorSet(colors)
			if ie, ok := comb.(*combine.InclusionExclusion); ok {
				colorSetCounts[currentKey] = ie.ColorSetCount()
			}
			processed++
			if total > 0 {
				opts.Progress.Report("combine", 20+70*float64(processed)/float64(total))
			}
		},
	}

	if err := cfg.Sweep.Components(norm, chi, td, k, callbacks); err != nil {
		return nil, fmt.Errorf("pipeline.Run: %w", err)
	}
	opts.Progress.Report("combine", 100)

	result := &Result{
		Count:               comb.GetCount(),
		Coloring:            chi,
		TreeDepthLowerBound: td,
		Normalized:          norm,
	}
	if cfg.Combine == combine.KindInclusionExclusion {
		result.ColorSetCounts = colorSetCounts
	}
	return result, nil
}

// resolveColoring returns opts.Coloring after verification, or builds a
// fresh p-centered coloring when none was supplied.
func resolveColoring(g *graphmodel.Graph, p int, cfg *config.Config, opts Options) (*coloring.Coloring, error) {
	if opts.Coloring == nil {
		return coloring.BuildPCenteredColoring(g, p, cfg.Color)
	}
	if opts.SkipVerification {
		return opts.Coloring, nil
	}
	if !coloring.IsProper(g, opts.Coloring) {
		return nil, ErrSuppliedColoringNotCentered
	}
	if ok, _ := coloring.CheckTreeDepth(g, opts.Coloring, p); !ok {
		return nil, ErrSuppliedColoringNotCentered
	}
	return opts.Coloring, nil
}

// evaluateComponent builds one component's TDD, evaluates it through the
// combiner's DP table, and folds the result back into comb.
func evaluateComponent(g *graphmodel.Graph, chi *coloring.Coloring, comb combine.Combiner, h *pattern.Graph, k int, component []int) error {
	colorOf := make(map[int]int, len(component))
	for _, v := range component {
		col, _ := chi.Get(v)
		colorOf[v] = col
	}
	tdd, err := decompose.BuildTDD(component, colorOf, g.Neighbors)
	if err != nil {
		return fmt.Errorf("pipeline: building TDD: %w", err)
	}

	table := comb.Table(g, tdd, h, k)
	ev := dp.NewEvaluator(table)

	if _, ok := table.(dp.ColorCounter); ok {
		comb.CombineCount(combine.ColorSetCounts(ev.RunColor(tdd, h, k)))
		return nil
	}
	comb.CombineCount(combine.ScalarCount(ev.Run(tdd, h, k)))
	return nil
}

// colorKey canonicalizes a color subset the same way combine's internal
// colorKey does, kept private to pipeline since combine does not export it.
func colorKey(colors []int) string {
	cp := append([]int(nil), colors...)
	sort.Ints(cp)
	parts := make([]string, len(cp))
	for i, c := range cp {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// totalColorSets sums C(numColors, s) for s in [tdLow, p], the exact
// number of color-set combinations CombinationsSweep.Components (and,
// modulo traversal order, DFSSweep) will yield, used only to scale progress
// reporting.
func totalColorSets(numColors, tdLow, p int) int64 {
	var total int64
	for s := tdLow; s <= p && s <= numColors; s++ {
		if s <= 0 {
			continue
		}
		total += binomial(numColors, s)
	}
	return total
}

func binomial(n, m int) int64 {
	if m < 0 || m > n {
		return 0
	}
	if m == 0 {
		return 1
	}
	result := int64(1)
	for i := 0; i < m; i++ {
		result = result * int64(n-i) / int64(i+1)
	}
	return result
}
