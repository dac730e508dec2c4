package coloring

import (
	"sort"

	"github.com/concussgo/concuss/graphmodel"
)

// IsProper reports whether c is a proper coloring of g: no edge joins two
// same-colored vertices (spec.md §3, §8 invariant 1).
func IsProper(g *graphmodel.Graph, c *Coloring) bool {
	for _, v := range g.Vertices() {
		cv, ok := c.Get(v)
		if !ok {
			continue
		}
		for _, u := range g.Neighbors(v) {
			if cu, ok := c.Get(u); ok && cu == cv && u != v {
				return false
			}
		}
	}
	return true
}

// independent reports whether no edge of g runs between the vertex sets of
// colors c1 and c2.
func independent(g *graphmodel.Graph, c *Coloring, c1, c2 int) bool {
	set := map[int]bool{c1: true, c2: true}
	verts := c.VerticesOfColorSet(set)
	for _, v := range verts {
		cv, _ := c.Get(v)
		for _, u := range g.Neighbors(v) {
			if cu, ok := c.Get(u); ok && cu != cv && set[cu] {
				return false
			}
		}
	}
	return true
}

// MergeColors greedily merges color classes to reduce the color count
// without breaking t-centeredness (spec.md §4.4 "Merge-colors postprocess").
// Colors are ordered by descending frequency (ties by ascending color id,
// for determinism); for every pair (c1,c2) with c1<c2 in that order, the
// merge c2->c1 is committed if the two classes are independent in g and the
// resulting coloring is still t-centered, else reverted.
func MergeColors(g *graphmodel.Graph, c *Coloring, t int) *Coloring {
	cur := c.Clone()
	freq := cur.Frequency()
	colors := cur.Colors()
	sort.SliceStable(colors, func(i, j int) bool {
		if freq[colors[i]] != freq[colors[j]] {
			return freq[colors[i]] > freq[colors[j]]
		}
		return colors[i] < colors[j]
	})

	alive := make(map[int]bool, len(colors))
	for _, col := range colors {
		alive[col] = true
	}

	for i := 0; i < len(colors); i++ {
		c1 := colors[i]
		if !alive[c1] {
			continue
		}
		for j := i + 1; j < len(colors); j++ {
			c2 := colors[j]
			if !alive[c2] {
				continue
			}
			if !independent(g, cur, c1, c2) {
				continue
			}
			candidate := cur.Clone()
			relabelColor(candidate, c2, c1)
			if ok, _ := CheckTreeDepth(g, candidate, t); ok {
				cur = candidate
				alive[c2] = false
			}
		}
	}
	return cur
}

// relabelColor reassigns every vertex colored `from` to color `to`, in place.
func relabelColor(c *Coloring, from, to int) {
	for _, v := range c.Vertices() {
		if col, _ := c.Get(v); col == from {
			c.Set(v, to)
		}
	}
}
