package pipeline

import "github.com/concussgo/concuss/pattern"

// BruteForceCount counts the injective maps f: V(H) -> V(G) under which
// every H-edge maps to a G-edge — a homomorphic-image count, not an induced
// subgraph count (spec.md's clarification that the counting kernel counts
// copies of H, not induced occurrences). It exists purely as a correctness
// oracle for small graphs: exponential in |V(H)|, never reachable from the
// production Run path.
func BruteForceCount(g *pattern.Graph, h *pattern.Graph) int64 {
	hVerts := h.Vertices()
	gVerts := g.Vertices()
	used := make(map[int]bool, len(gVerts))
	assign := make(map[int]int, len(hVerts))

	var count int64
	var recurse func(i int)
	recurse = func(i int) {
		if i == len(hVerts) {
			count++
			return
		}
		hv := hVerts[i]
		for _, gv := range gVerts {
			if used[gv] {
				continue
			}
			if !edgesConsistent(h, g, assign, hv, gv) {
				continue
			}
			used[gv] = true
			assign[hv] = gv
			recurse(i + 1)
			delete(assign, hv)
			used[gv] = false
		}
	}
	recurse(0)
	return count
}

// edgesConsistent reports whether assigning hv->gv preserves every H-edge
// between hv and an already-assigned H-vertex as a G-edge between their
// images.
func edgesConsistent(h, g *pattern.Graph, assign map[int]int, hv, gv int) bool {
	for other, otherImg := range assign {
		if h.HasEdge(hv, other) && !g.HasEdge(gv, otherImg) {
			return false
		}
	}
	return true
}
