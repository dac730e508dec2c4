package coloring

import (
	"sort"

	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/tfgraph"
)

// LowDegreeOrientation orients every edge of g by repeatedly popping the
// vertex of minimum residual degree from a bucket queue and orienting its
// remaining incident edges toward it (spec.md §4.1 "LDO"): the arc u->v is
// added when v is popped and u is still un-removed. The resulting maximum
// in-degree is within a factor of g's degeneracy.
func LowDegreeOrientation(g *graphmodel.Graph) *tfgraph.TFGraph {
	n := g.N()
	tf := tfgraph.New(n)
	removed := make([]bool, n)
	residual := make([]int, n)
	buckets := make([][]int, n+1)
	pos := make([]int, n) // index of v within its current bucket, for O(1) removal

	for _, v := range g.Vertices() {
		d := g.Degree(v)
		residual[v] = d
		pos[v] = len(buckets[d])
		buckets[d] = append(buckets[d], v)
	}

	for processed := 0; processed < n; processed++ {
		// find smallest non-empty bucket
		d := 0
		for d <= n && len(buckets[d]) == 0 {
			d++
		}
		if d > n {
			break
		}
		v := popLast(&buckets[d])
		if removed[v] {
			processed--
			continue
		}
		removed[v] = true

		for _, u := range g.Neighbors(v) {
			if removed[u] {
				continue
			}
			_ = tf.AddArc(u, v, 0)
			oldDeg := residual[u]
			// remove u from its current bucket in O(1): swap with last.
			removeFromBucket(buckets[oldDeg], pos, u)
			buckets[oldDeg] = buckets[oldDeg][:len(buckets[oldDeg])-1]
			residual[u] = oldDeg - 1
			pos[u] = len(buckets[oldDeg-1])
			buckets[oldDeg-1] = append(buckets[oldDeg-1], u)
		}
	}
	return tf
}

func popLast(bucket *[]int) int {
	b := *bucket
	v := b[len(b)-1]
	*bucket = b[:len(b)-1]
	return v
}

func removeFromBucket(bucket []int, pos []int, u int) {
	last := len(bucket) - 1
	idx := pos[u]
	bucket[idx] = bucket[last]
	pos[bucket[idx]] = idx
}

// SandpileOrientation runs LowDegreeOrientation, then repeatedly flips arcs
// to further reduce max in-degree: while some vertex v has a low-in-degree
// neighbour w such that indeg(w)+weight(w) <= indeg(v)+weight(v)-2, flip
// w->v to v->w (spec.md §4.1 "sandpile"). weight is an optional per-vertex
// tiebreak (nil means all zero).
func SandpileOrientation(g *graphmodel.Graph, weight map[int]int) *tfgraph.TFGraph {
	tf := LowDegreeOrientation(g)
	n := tf.N()
	w := func(v int) int {
		if weight == nil {
			return 0
		}
		return weight[v]
	}

	for {
		flipped := false
		vertices := make([]int, n)
		for i := range vertices {
			vertices[i] = i
		}
		sort.Ints(vertices)
		for _, v := range vertices {
			for _, ww := range inNeighborsAnyWeight(tf, v) {
				if tf.InDegree(ww)+w(ww) <= tf.InDegree(v)+w(v)-2 {
					flipArc(tf, ww, v)
					flipped = true
				}
			}
		}
		if !flipped {
			break
		}
	}
	return tf
}

func inNeighborsAnyWeight(tf *tfgraph.TFGraph, v int) []int {
	out := make([]int, 0)
	for u := 0; u < tf.N(); u++ {
		if tf.HasArc(u, v) {
			out = append(out, u)
		}
	}
	return out
}

// flipArc reorients arc w->v to v->w, preserving its weight.
func flipArc(tf *tfgraph.TFGraph, w, v int) {
	weight, _ := tf.ArcWeight(w, v)
	tf.RemoveArc(w, v)
	_ = tf.AddArc(v, w, weight)
}
