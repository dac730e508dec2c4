package tfgraph

import "sort"

// Arc is a directed edge u->v introduced at augmentation step Weight.
type Arc struct {
	From, To int
	Weight   int
}

// TFGraph is an oriented graph over the same vertex set as a host
// graphmodel.Graph, with at most one arc per ordered pair and weighted
// in-neighbour indexing by weight (spec.md §3, §4.1).
type TFGraph struct {
	n int
	// outArcs[v] = arcs leaving v, in insertion order
	outArcs [][]Arc
	// inByWeight[v][w] = in-neighbours u with arc u->v of weight w
	inByWeight []map[int][]int
	// inDegree[v] = total in-degree regardless of weight
	inDegree []int
}

// New returns an empty TFGraph over vertex ids 0..n-1.
func New(n int) *TFGraph {
	tf := &TFGraph{
		n:          n,
		outArcs:    make([][]Arc, n),
		inByWeight: make([]map[int][]int, n),
		inDegree:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		tf.inByWeight[v] = make(map[int][]int)
	}
	return tf
}

// N returns the number of vertices.
func (tf *TFGraph) N() int { return tf.n }

// HasArc reports whether an arc u->v already exists.
func (tf *TFGraph) HasArc(u, v int) bool {
	for _, a := range tf.outArcs[u] {
		if a.To == v {
			return true
		}
	}
	return false
}

// AddArc inserts arc u->v with the given weight. Returns ErrArcExists if the
// ordered pair already has an arc (spec.md §3 invariant).
func (tf *TFGraph) AddArc(u, v, weight int) error {
	if tf.HasArc(u, v) {
		return ErrArcExists
	}
	tf.outArcs[u] = append(tf.outArcs[u], Arc{From: u, To: v, Weight: weight})
	tf.inByWeight[v][weight] = append(tf.inByWeight[v][weight], u)
	tf.inDegree[v]++
	return nil
}

// OutNeighbors returns the sorted out-neighbours of v.
func (tf *TFGraph) OutNeighbors(v int) []int {
	out := make([]int, len(tf.outArcs[v]))
	for i, a := range tf.outArcs[v] {
		out[i] = a.To
	}
	sort.Ints(out)
	return out
}

// InNeighborsWithWeight returns the in-neighbours u of v whose arc u->v has
// exactly the given weight (spec.md §4.1 "weighted variant ... using the
// per-weight in-neighbour index").
func (tf *TFGraph) InNeighborsWithWeight(v, weight int) []int {
	us := tf.inByWeight[v][weight]
	out := make([]int, len(us))
	copy(out, us)
	sort.Ints(out)
	return out
}

// InNeighborsOf returns every in-neighbour of v regardless of arc weight,
// sorted ascending.
func (tf *TFGraph) InNeighborsOf(v int) []int {
	out := make([]int, 0, tf.inDegree[v])
	for _, us := range tf.inByWeight[v] {
		out = append(out, us...)
	}
	sort.Ints(out)
	return out
}

// InDegree returns the total in-degree of v across all weights.
func (tf *TFGraph) InDegree(v int) int { return tf.inDegree[v] }

// OutDegree returns the out-degree of v.
func (tf *TFGraph) OutDegree(v int) int { return len(tf.outArcs[v]) }

// Arcs returns every arc in the graph, ordered by (From, To) for determinism.
func (tf *TFGraph) Arcs() []Arc {
	out := make([]Arc, 0)
	for v := 0; v < tf.n; v++ {
		out = append(out, tf.outArcs[v]...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// RemoveArc deletes the arc u->v if present; a no-op otherwise. Used by the
// sandpile reorientation loop to flip an arc's direction.
func (tf *TFGraph) RemoveArc(u, v int) {
	out := tf.outArcs[u]
	for i, a := range out {
		if a.To == v {
			tf.outArcs[u] = append(out[:i], out[i+1:]...)
			break
		}
	}
	us := tf.inByWeight[v]
	for w, list := range us {
		for i, x := range list {
			if x == u {
				us[w] = append(list[:i], list[i+1:]...)
				tf.inDegree[v]--
				return
			}
		}
	}
}

// ArcWeight returns the weight of arc u->v and whether it exists.
func (tf *TFGraph) ArcWeight(u, v int) (int, bool) {
	for _, a := range tf.outArcs[u] {
		if a.To == v {
			return a.Weight, true
		}
	}
	return 0, false
}

// Undirected reports whether there is an arc in either direction between u and v.
func (tf *TFGraph) Undirected(u, v int) bool {
	return tf.HasArc(u, v) || tf.HasArc(v, u)
}

// MaxInDegree returns the maximum in-degree over all vertices.
func (tf *TFGraph) MaxInDegree() int {
	m := 0
	for _, d := range tf.inDegree {
		if d > m {
			m = d
		}
	}
	return m
}

// Clone returns a deep copy of tf.
func (tf *TFGraph) Clone() *TFGraph {
	out := New(tf.n)
	for _, a := range tf.Arcs() {
		_ = out.AddArc(a.From, a.To, a.Weight)
	}
	return out
}
