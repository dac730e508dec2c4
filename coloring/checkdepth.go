package coloring

import (
	"sort"

	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/unionfind"
)

// Witness names a connected component on <= t colors with no center: the
// failure result of CheckTreeDepth (spec.md §4.2 "Contract").
type Witness struct {
	Colors    []int // the color combination S, ascending
	Component []int // vertices of the centerless component R, ascending
}

// CheckTreeDepth reports whether c is t-centered on g: for every connected
// subgraph induced on any <=t color classes, some color appears exactly
// once. On failure it returns a Witness (spec.md §4.2).
//
// Combinations are walked in DFS order over a stack of Histogram
// union-finds, one per depth, so that extending a combination by one color
// reuses the previous combination's merge work instead of recomputing it
// (spec.md §4.2 "Combinations are walked in a DFS order that reuses work").
func CheckTreeDepth(g *graphmodel.Graph, c *Coloring, t int) (bool, *Witness) {
	if t > unionfind.MaxCombinationSize {
		t = unionfind.MaxCombinationSize
	}
	if t <= 0 {
		return true, nil
	}

	freq := c.Frequency()
	// Drop colors of frequency 1: they trivially serve as centers
	// (spec.md §4.2 "Data preparation").
	candidates := make([]int, 0)
	for _, col := range c.Colors() {
		if freq[col] > 1 {
			candidates = append(candidates, col)
		}
	}
	sort.Ints(candidates)

	n := g.N()
	vertsOfColor := make(map[int][]int)
	for _, v := range c.Vertices() {
		col, _ := c.Get(v)
		vertsOfColor[col] = append(vertsOfColor[col], v)
	}

	stack := unionfind.NewHistogramStack(t)
	combo := make([]int, 0, t)

	var walk func(startIdx int) (bool, *Witness)
	walk = func(startIdx int) (bool, *Witness) {
		for idx := startIdx; idx < len(candidates); idx++ {
			color := candidates[idx]
			frame, err := stack.Push(n)
			if err != nil {
				// stack bounded by t; len(combo) < t is the loop invariant
				// below so this path is unreachable; if reached, it reports
				// the coloring as centered.
				return true, nil
			}
			combo = append(combo, color)
			slot := len(combo) - 1

			for _, v := range vertsOfColor[color] {
				frame.NewRoot(v, slot)
			}
			for _, v := range vertsOfColor[color] {
				for _, u := range g.Neighbors(v) {
					if frame.Present(u) {
						frame.Union(v, u)
					}
				}
			}

			if root, bad := firstCenterlessRoot(frame, n); bad {
				witness := &Witness{
					Colors:    append([]int(nil), combo...),
					Component: frame.Members(root),
				}
				stack.Pop()
				combo = combo[:len(combo)-1]
				return false, witness
			}

			if len(combo) < t {
				if ok, w := walk(idx + 1); !ok {
					return false, w
				}
			}

			stack.Pop()
			combo = combo[:len(combo)-1]
		}
		return true, nil
	}

	return walk(0)
}

// firstCenterlessRoot scans the frame for the first (by vertex id) present
// root whose component has no center, returning it and true; (0,false) if
// every component present has a center.
func firstCenterlessRoot(frame *unionfind.Histogram, n int) (int, bool) {
	seen := make(map[int]bool)
	for v := 0; v < n; v++ {
		if !frame.Present(v) {
			continue
		}
		root := frame.Find(v)
		if seen[root] {
			continue
		}
		seen[root] = true
		if !frame.HasCenter(v) {
			return root, true
		}
	}
	return 0, false
}
