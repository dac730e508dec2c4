package pattern

import "sync"

// allPatternsKey identifies a memoised AllPatterns result (spec.md §5.6
// "memoised by (h identity, k)").
type allPatternsKey struct {
	h *Graph
	k int
}

var (
	allPatternsMu    sync.RWMutex
	allPatternsCache = make(map[allPatternsKey][]Pattern)
)

// AllPatterns enumerates every k-pattern over h: for every vertex subset V,
// every boundary B ⊆ V with |B| <= k, and every injection B ↪ {0,...,k-1},
// yield the dictionary-backed KPattern if it is a separator (spec.md §4.7
// "allPatterns(H, k)"). Results are memoised per (h, k) for the pattern
// graph's lifetime.
func AllPatterns(h *Graph, k int) []Pattern {
	key := allPatternsKey{h: h, k: k}

	allPatternsMu.RLock()
	if cached, ok := allPatternsCache[key]; ok {
		allPatternsMu.RUnlock()
		return cached
	}
	allPatternsMu.RUnlock()

	vertices := h.Vertices()
	n := len(vertices)
	var out []Pattern

	for vmask := 0; vmask < (1 << uint(n)); vmask++ {
		vList := make([]int, 0, n)
		for i, v := range vertices {
			if vmask&(1<<uint(i)) != 0 {
				vList = append(vList, v)
			}
		}
		m := len(vList)
		for bmask := 0; bmask < (1 << uint(m)); bmask++ {
			bList := make([]int, 0, m)
			for i, v := range vList {
				if bmask&(1<<uint(i)) != 0 {
					bList = append(bList, v)
				}
			}
			if len(bList) > k {
				continue
			}
			for _, phi := range injections(bList, k) {
				p := &KPattern{H: h, K: k, V: toSet(vList), B: toSet(bList), Phi: phi}
				if p.IsSeparator() {
					out = append(out, p)
				}
			}
		}
	}

	allPatternsMu.Lock()
	allPatternsCache[key] = out
	allPatternsMu.Unlock()
	return out
}

func toSet(vs []int) map[int]bool {
	out := make(map[int]bool, len(vs))
	for _, v := range vs {
		out[v] = true
	}
	return out
}

// injections enumerates every injective function from b (size m) into
// {0,...,k-1}, as vertex -> slot maps.
func injections(b []int, k int) []map[int]int {
	if len(b) > k {
		return nil
	}
	if len(b) == 0 {
		return []map[int]int{{}}
	}
	used := make([]bool, k)
	var out []map[int]int
	assign := make(map[int]int, len(b))

	var rec func(idx int)
	rec = func(idx int) {
		if idx == len(b) {
			cp := make(map[int]int, len(assign))
			for v, s := range assign {
				cp[v] = s
			}
			out = append(out, cp)
			return
		}
		v := b[idx]
		for s := 0; s < k; s++ {
			if used[s] {
				continue
			}
			used[s] = true
			assign[v] = s
			rec(idx + 1)
			delete(assign, v)
			used[s] = false
		}
	}
	rec(0)
	return out
}
