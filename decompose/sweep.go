package decompose

import (
	"sort"

	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/unionfind"
)

// Callbacks lets a caller observe the sweep's progress per color set and per
// component, mirroring the combiner hooks of spec.md §4.5: "Before yielding
// components from a color set the sweep invokes before_color_set(S); after
// all of S's components have been yielded, after_color_set(S)."
type Callbacks struct {
	BeforeColorSet func(colors []int)
	OnComponent    func(colors []int, component []int) error
	AfterColorSet  func(colors []int)
}

// Sweep enumerates, for color sets of size tdLow..p drawn from χ's palette,
// the connected components of the host graph induced on each set
// (spec.md §4.5).
type Sweep interface {
	Components(g *graphmodel.Graph, chi *coloring.Coloring, tdLow, p int, cb Callbacks) error
}

func groupByColor(chi *coloring.Coloring) map[int][]int {
	out := make(map[int][]int)
	for _, v := range chi.Vertices() {
		col, _ := chi.Get(v)
		out[col] = append(out[col], v)
	}
	return out
}

func cloneInts(s []int) []int { return append([]int(nil), s...) }

// CombinationsSweep enumerates every color-set combination of each size
// explicitly (spec.md §4.5 "the combinations sweep walks C(colors, k) for k
// from td_low to p"), recomputing the induced components from scratch for
// each combination via a plain BFS.
type CombinationsSweep struct{}

// Components implements Sweep.
func (CombinationsSweep) Components(g *graphmodel.Graph, chi *coloring.Coloring, tdLow, p int, cb Callbacks) error {
	colors := chi.Colors()
	n := len(colors)

	for k := tdLow; k <= p && k <= n; k++ {
		if k <= 0 {
			continue
		}
		combo := make([]int, k)
		if err := combinationsRec(colors, combo, 0, 0, func(chosen []int) error {
			return emitColorSet(g, chi, chosen, cb)
		}); err != nil {
			return err
		}
	}
	return nil
}

func combinationsRec(pool, combo []int, start, idx int, emit func([]int) error) error {
	if idx == len(combo) {
		return emit(combo)
	}
	for i := start; i < len(pool); i++ {
		combo[idx] = pool[i]
		if err := combinationsRec(pool, combo, i+1, idx+1, emit); err != nil {
			return err
		}
	}
	return nil
}

func emitColorSet(g *graphmodel.Graph, chi *coloring.Coloring, colors []int, cb Callbacks) error {
	set := make(map[int]bool, len(colors))
	for _, c := range colors {
		set[c] = true
	}
	verts := chi.VerticesOfColorSet(set)

	if cb.BeforeColorSet != nil {
		cb.BeforeColorSet(cloneInts(colors))
	}
	for _, comp := range connectedSubcomponents(verts, g.Neighbors) {
		if cb.OnComponent != nil {
			if err := cb.OnComponent(cloneInts(colors), comp); err != nil {
				return err
			}
		}
	}
	if cb.AfterColorSet != nil {
		cb.AfterColorSet(cloneInts(colors))
	}
	return nil
}

// DFSSweep enumerates color-set combinations in DFS order over a bounded
// stack of Size union-finds, one per depth, so a combination's components
// are built incrementally from its parent's instead of recomputed from
// scratch (spec.md §4.5 "the DFS sweep reuses the prefix union-find of the
// combination currently on the stack").
type DFSSweep struct{}

// Components implements Sweep.
func (DFSSweep) Components(g *graphmodel.Graph, chi *coloring.Coloring, tdLow, p int, cb Callbacks) error {
	colors := chi.Colors()
	n := g.N()
	vertsOfColor := groupByColor(chi)

	stack := unionfind.NewSizeStack(p)
	combo := make([]int, 0, p)

	var walk func(start int) error
	walk = func(start int) error {
		for i := start; i < len(colors); i++ {
			color := colors[i]
			frame, err := stack.Push(n)
			if err != nil {
				return err
			}
			combo = append(combo, color)

			for _, v := range vertsOfColor[color] {
				frame.NewRoot(v)
			}
			for _, v := range vertsOfColor[color] {
				for _, u := range g.Neighbors(v) {
					if frame.Present(u) {
						frame.Union(v, u)
					}
				}
			}

			if len(combo) >= tdLow {
				if err := emitFromFrame(frame, combo, cb); err != nil {
					stack.Pop()
					combo = combo[:len(combo)-1]
					return err
				}
			}
			if len(combo) < p {
				if err := walk(i + 1); err != nil {
					stack.Pop()
					combo = combo[:len(combo)-1]
					return err
				}
			}
			stack.Pop()
			combo = combo[:len(combo)-1]
		}
		return nil
	}
	return walk(0)
}

func emitFromFrame(frame *unionfind.Size, combo []int, cb Callbacks) error {
	if cb.BeforeColorSet != nil {
		cb.BeforeColorSet(cloneInts(combo))
	}
	roots := frame.Roots()
	sort.Ints(roots)
	for _, root := range roots {
		comp := frame.Members(root)
		if cb.OnComponent != nil {
			if err := cb.OnComponent(cloneInts(combo), comp); err != nil {
				return err
			}
		}
	}
	if cb.AfterColorSet != nil {
		cb.AfterColorSet(cloneInts(combo))
	}
	return nil
}
