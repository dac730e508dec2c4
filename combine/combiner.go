package combine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/dp"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

// Combiner is the common capability set every combiner variant exposes
// (spec.md §4.8 "table(G_tdd), before_color_set, combine_count,
// after_color_set, get_count").
type Combiner interface {
	// Table constructs the DP table variant this combiner needs for one TDD.
	Table(g *graphmodel.Graph, tdd *decompose.TDD, h *pattern.Graph, k int) dp.Table
	// BeforeColorSet is invoked before the sweep yields components of a new
	// color set.
	BeforeColorSet(colors []int)
	// CombineCount folds in the count returned by one TDD's evaluation.
	// ScalarCount-based combiners expect a ScalarCount; color-tracking ones
	// expect a ColorSetCounts.
	CombineCount(count interface{})
	// AfterColorSet is invoked once every component of the current color set
	// has been processed.
	AfterColorSet(colors []int)
	// GetCount returns the running total. Only authoritative once every
	// color set has been processed.
	GetCount() int64
}

// ScalarCount is the count CombineCount receives from a scalar or forward
// DP table's root-tuple read.
type ScalarCount int64

// ColorSetCounts is the count CombineCount receives from a color-tracking DP
// table's root-tuple read: occupied-color-subset key -> occurrence count.
type ColorSetCounts map[string]int64

// colorKey canonicalizes a color subset (ascending, comma-joined), the same
// deterministic representation dp.colorSetKey uses, kept as a private
// helper here since combine never imports dp's unexported identifiers.
func colorKey(colors []int) string {
	cp := append([]int(nil), colors...)
	sort.Ints(cp)
	parts := make([]string, len(cp))
	for i, c := range cp {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// parseColorKey reverses colorKey, used where a color set must be
// recovered from the string key it was stored under.
func parseColorKey(key string) []int {
	if key == "" {
		return nil
	}
	parts := strings.Split(key, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, _ := strconv.Atoi(p)
		out[i] = n
	}
	return out
}

// combinations enumerates every size-m subset of colors (already ascending),
// in lexicographic order, mirroring Python's itertools.combinations — the
// deterministic order spec.md §9 calls for when iterating color sets.
func combinations(colors []int, m int) [][]int {
	n := len(colors)
	if m < 0 || m > n {
		return nil
	}
	if m == 0 {
		return [][]int{{}}
	}
	var out [][]int
	idx := make([]int, m)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, m)
		for i, j := range idx {
			combo[i] = colors[j]
		}
		out = append(out, combo)

		i := m - 1
		for i >= 0 && idx[i] == n-m+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < m; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// powerset enumerates every subset of colors, in ascending-size order,
// mirroring itertools_ext.powerset.
func powerset(colors []int) [][]int {
	var out [][]int
	for m := 0; m <= len(colors); m++ {
		out = append(out, combinations(colors, m)...)
	}
	return out
}

// mergeMax folds src into dst, taking the per-key maximum — the semantics
// of Python's Counter.__ior__, which ColorCount's and HybridCount's
// after_color_set both rely on (spec.md §4.8 "takes the slot-wise maximum
// of the accumulator into the totals map").
func mergeMax(dst, src map[string]int64) {
	for k, v := range src {
		if v > dst[k] {
			dst[k] = v
		}
	}
}

// choose computes the binomial coefficient n-choose-m via the same
// incremental product original_source/lib/util/itertools_ext.py's choose
// uses (exact at every step since the running product is always divisible
// by the next denominator).
func choose(n, m int) int64 {
	if m == 0 {
		return 1
	}
	result := int64(1)
	for i := 0; i < m; i++ {
		result = result * int64(n-i) / int64(i+1)
	}
	return result
}
