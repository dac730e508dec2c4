package graphmodel

import (
	"fmt"
	"sort"
	"sync"
)

// file-local method tags, following the teacher's fmt.Errorf("%s: ...: %w", tag, ...) idiom.
const (
	methodAddVertex   = "AddVertex"
	methodAddEdge     = "AddEdge"
	methodRemoveLoops = "RemoveSelfLoops"
	methodNormalize   = "NormalizeIDs"
	methodTrim        = "TrimLowAndHighDegree"
)

// Graph is an undirected, simple, integer-vertex adjacency-set graph.
//
// Invariants (enforced once the graph enters the counting kernel, see
// NormalizeIDs): no self-loops; the neighbour relation is symmetric; vertex
// ids form a dense 0..n-1 range. Before normalization, ids may be an
// arbitrary non-negative sparse set (as produced by a loader).
//
// mu guards vertices/adjacency for the rare case a caller mutates the graph
// from multiple goroutines while loading; the read methods take it as a
// read lock, so concurrent readers of a built Graph do not block each other.
type Graph struct {
	mu        sync.RWMutex
	adjacency map[int]map[int]struct{}
	normal    bool // true once NormalizeIDs has been applied
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{adjacency: make(map[int]map[int]struct{})}
}

// AddVertex inserts v with no incident edges if it is not already present.
func (g *Graph) AddVertex(v int) error {
	if v < 0 {
		return fmt.Errorf("%s: v=%d: %w", methodAddVertex, v, ErrNegativeVertex)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[int]struct{})
		g.normal = false
	}
	return nil
}

// AddEdge inserts the undirected edge {u,v}. Both endpoints are auto-added.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("%s: (%d,%d): %w", methodAddEdge, u, v, ErrNegativeVertex)
	}
	if u == v {
		return fmt.Errorf("%s: v=%d: %w", methodAddEdge, u, ErrSelfLoop)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[u]; !ok {
		g.adjacency[u] = make(map[int]struct{})
	}
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[int]struct{})
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.normal = false
	return nil
}

// HasVertex reports whether v is present.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]
	return ok
}

// HasEdge reports whether {u,v} is an edge.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]
	return ok
}

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacency[v])
}

// Neighbors returns the sorted neighbour list of v. Sorted so that
// iteration order never affects downstream counts (spec.md §5).
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs := g.adjacency[v]
	out := make([]int, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// Vertices returns all vertex ids in ascending order.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// N returns the number of vertices.
func (g *Graph) N() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacency)
}

// M returns the number of undirected edges.
func (g *Graph) M() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m := 0
	for _, nbrs := range g.adjacency {
		m += len(nbrs)
	}
	return m / 2
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := New()
	out.normal = g.normal
	for v, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for u := range nbrs {
			cp[u] = struct{}{}
		}
		out.adjacency[v] = cp
	}
	return out
}

// Normalized reports whether NormalizeIDs has been applied since the last mutation.
func (g *Graph) Normalized() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.normal
}

// RemoveSelfLoops strips any v->v edge. Loaders must call this before the
// graph enters the counting kernel (spec.md §1 Non-goals: self-loops are
// out of scope for the kernel, not for the loader).
func (g *Graph) RemoveSelfLoops() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	removed := 0
	for v, nbrs := range g.adjacency {
		if _, ok := nbrs[v]; ok {
			delete(nbrs, v)
			removed++
		}
	}
	return removed
}

// IDMap records the relabeling performed by NormalizeIDs, old id -> new id.
type IDMap map[int]int

// Inverse returns the new-id -> old-id mapping.
func (m IDMap) Inverse() IDMap {
	inv := make(IDMap, len(m))
	for old, nu := range m {
		inv[nu] = old
	}
	return inv
}

// NormalizeIDs relabels vertices to a dense 0..n-1 range in ascending order
// of their original id, returning the new graph and the old->new mapping
// (spec.md §3 "Graph" lifecycle: "normalised to a dense 0..n-1 id range").
func (g *Graph) NormalizeIDs() (*Graph, IDMap) {
	old := g.Vertices()
	idmap := make(IDMap, len(old))
	for i, v := range old {
		idmap[v] = i
	}
	out := New()
	for i := range old {
		out.adjacency[i] = make(map[int]struct{})
	}
	for v, nbrs := range g.adjacency {
		nv := idmap[v]
		for u := range nbrs {
			out.adjacency[nv][idmap[u]] = struct{}{}
		}
	}
	out.normal = true
	return out, idmap
}

// Degeneracy returns the graph's degeneracy: the smallest k such that every
// subgraph has a vertex of degree <= k. Computed by repeatedly peeling the
// minimum-residual-degree vertex, found here by a linear scan (the coloring
// package's LowDegreeOrientation peels the same way with a bucket queue),
// exposed standalone here
// for diagnostics (original_source/lib/graph/graph.py keeps a similar
// degeneracy() helper independent of the orientation it feeds).
func (g *Graph) Degeneracy() int {
	g.mu.RLock()
	n := len(g.adjacency)
	residual := make(map[int]int, n)
	for v, nbrs := range g.adjacency {
		residual[v] = len(nbrs)
	}
	adj := g.adjacency
	g.mu.RUnlock()

	removed := make(map[int]bool, n)
	maxSeen := 0
	for i := 0; i < n; i++ {
		// find min residual-degree un-removed vertex (deterministic: smallest id breaks ties)
		best, bestDeg := -1, -1
		for v, d := range residual {
			if removed[v] {
				continue
			}
			if bestDeg == -1 || d < bestDeg || (d == bestDeg && v < best) {
				best, bestDeg = v, d
			}
		}
		if best == -1 {
			break
		}
		if bestDeg > maxSeen {
			maxSeen = bestDeg
		}
		removed[best] = true
		for u := range adj[best] {
			if !removed[u] {
				residual[u]--
			}
		}
	}
	return maxSeen
}

// TrimLowAndHighDegree iteratively removes vertices with degree < minDeg or
// degree > maxDeg (recomputing degrees after each removal round) until a
// fixed point, mirroring
// original_source/lib/coloring/basic/trim_low_and_high_degree.py. This is a
// pure graph-size preprocessing step and must run before coloring begins:
// whether it preserves p-centeredness of a coloring already computed is an
// open question this package does not need to answer, because trimming
// always precedes, and never follows, BuildPCenteredColoring.
func (g *Graph) TrimLowAndHighDegree(minDeg, maxDeg int) *Graph {
	cur := g.Clone()
	for {
		toRemove := make([]int, 0)
		for _, v := range cur.Vertices() {
			d := cur.Degree(v)
			if d < minDeg || d > maxDeg {
				toRemove = append(toRemove, v)
			}
		}
		if len(toRemove) == 0 {
			return cur
		}
		for _, v := range toRemove {
			cur.removeVertex(v)
		}
	}
}

// removeVertex deletes v and all incident edges. Unexported: callers outside
// this package only ever see whole-graph operations (TrimLowAndHighDegree,
// NormalizeIDs) so that external code never mutates a graph mid-traversal.
func (g *Graph) removeVertex(v int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for u := range g.adjacency[v] {
		delete(g.adjacency[u], v)
	}
	delete(g.adjacency, v)
	g.normal = false
}
