package dp

import (
	"sort"

	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

// RootPath returns the ancestor chain from tdd's root down to v inclusive,
// indexed by depth (RootPath(tdd,v)[d] is the ancestor of v at depth d).
func RootPath(tdd *decompose.TDD, v int) []int {
	path := []int{v}
	cur := v
	for {
		parent, ok := tdd.Parent[cur]
		if !ok || parent == -1 {
			break
		}
		path = append(path, parent)
		cur = parent
	}
	// path is currently v, parent(v), grandparent(v), ...; reverse to root..v.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// isIsomorphism decides whether the root-to-v path in tdd is isomorphic to
// the boundary of pattern π, ported from
// original_source/lib/pattern_counting/dp/dptable.py's isIsomorphism
// (spec.md §4.7 "isIsomorphism(v, π)").
func isIsomorphism(g *graphmodel.Graph, tdd *decompose.TDD, v int, p pattern.Pattern) bool {
	vertices := p.Vertices()
	boundary := p.Boundary()
	if !sameIntSet(vertices, boundary) {
		return false
	}
	if len(vertices) > tdd.Depth[v]+1 {
		return false
	}
	if len(vertices) <= 1 {
		return true
	}

	rootPath := RootPath(tdd, v)
	hToG := make(map[int]int, len(boundary))
	for _, u := range boundary {
		idx, _ := p.Slot(u)
		if idx >= len(rootPath) {
			return false
		}
		hToG[u] = rootPath[idx]
	}

	hInG := make(map[int]bool, len(hToG))
	for _, gv := range hToG {
		hInG[gv] = true
	}

	h := p.Host()
	for _, u := range boundary {
		uPrime := hToG[u]
		nPrime := make(map[int]bool)
		for _, x := range h.Neighbors(u) {
			if gv, ok := hToG[x]; ok {
				nPrime[gv] = true
			}
		}
		gNeighborsInImage := make(map[int]bool)
		for _, gn := range g.Neighbors(uPrime) {
			if hInG[gn] {
				gNeighborsInImage[gn] = true
			}
		}
		if !mapsEqual(nPrime, gNeighborsInImage) {
			return false
		}
	}
	return true
}

// isIsomorphismColor is isIsomorphism's color-tracking counterpart (ported
// from color_dptable.py's isIsomorphism): on success it returns the set of
// host colors the image occupies; on failure it reports ok=false.
func isIsomorphismColor(g *graphmodel.Graph, tdd *decompose.TDD, v int, p pattern.Pattern, colorOf map[int]int) (colorSet []int, ok bool) {
	vertices := p.Vertices()
	boundary := p.Boundary()
	if !sameIntSet(vertices, boundary) {
		return nil, false
	}
	if len(vertices) > tdd.Depth[v]+1 {
		return nil, false
	}

	rootPath := RootPath(tdd, v)
	hToG := make(map[int]int, len(boundary))
	for _, u := range boundary {
		idx, _ := p.Slot(u)
		if idx >= len(rootPath) {
			return nil, false
		}
		hToG[u] = rootPath[idx]
	}

	hInG := make(map[int]bool, len(hToG))
	for _, gv := range hToG {
		hInG[gv] = true
	}

	h := p.Host()
	for _, u := range boundary {
		uPrime := hToG[u]
		nPrime := make(map[int]bool)
		for _, x := range h.Neighbors(u) {
			if gv, ok := hToG[x]; ok {
				nPrime[gv] = true
			}
		}
		gNeighborsInImage := make(map[int]bool)
		for _, gn := range g.Neighbors(uPrime) {
			if hInG[gn] {
				gNeighborsInImage[gn] = true
			}
		}
		if !mapsEqual(nPrime, gNeighborsInImage) {
			return nil, false
		}
	}

	colorSet = make([]int, 0, len(hInG))
	seen := make(map[int]bool)
	for gv := range hInG {
		c := colorOf[gv]
		if !seen[c] {
			seen[c] = true
			colorSet = append(colorSet, c)
		}
	}
	sort.Ints(colorSet)
	return colorSet, true
}

func sameIntSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		if !set[v] {
			return false
		}
	}
	return true
}

func mapsEqual(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
