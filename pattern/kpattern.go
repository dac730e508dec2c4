package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// KPattern is the dictionary-backed k-pattern representation: plain Go maps
// for V, B and φ. It favors clarity over allocation count. AllPatterns
// builds KPattern values only, so the DP tables run on this representation;
// BVKPattern implements the same interface but the pipeline does not
// construct it.
type KPattern struct {
	H   *Graph
	K   int
	V   map[int]bool
	B   map[int]bool
	Phi map[int]int // boundary vertex -> slot, only entries for v in B
}

// NewKPattern returns the empty pattern (V = B = ∅) over h with k slots.
func NewKPattern(h *Graph, k int) *KPattern {
	return &KPattern{H: h, K: k, V: map[int]bool{}, B: map[int]bool{}, Phi: map[int]int{}}
}

// TrivialPattern returns the whole-pattern-graph k-pattern (V = V(H), B = ∅)
// an evaluation reads its final count back from at the decomposition's root
// (spec.md §4.7 "trivialPattern(V(H))").
func TrivialPattern(h *Graph) *KPattern {
	p := NewKPattern(h, 0)
	for _, v := range h.Vertices() {
		p.V[v] = true
	}
	return p
}

func (p *KPattern) clone() *KPattern {
	out := &KPattern{H: p.H, K: p.K, V: make(map[int]bool, len(p.V)), B: make(map[int]bool, len(p.B)), Phi: make(map[int]int, len(p.Phi))}
	for v := range p.V {
		out.V[v] = true
	}
	for v := range p.B {
		out.B[v] = true
	}
	for v, s := range p.Phi {
		out.Phi[v] = s
	}
	return out
}

// Host implements Pattern.
func (p *KPattern) Host() *Graph { return p.H }

// Vertices implements Pattern.
func (p *KPattern) Vertices() []int { return sortedKeys(p.V) }

// Boundary implements Pattern.
func (p *KPattern) Boundary() []int { return sortedKeys(p.B) }

// Slot implements Pattern.
func (p *KPattern) Slot(v int) (int, bool) {
	s, ok := p.Phi[v]
	return s, ok
}

// IsSeparator implements Pattern: every non-boundary vertex of V has all of
// its H-neighbors inside V (spec.md §3 "V \ B has no H-edges leaving V").
func (p *KPattern) IsSeparator() bool {
	for v := range p.V {
		if p.B[v] {
			continue
		}
		for _, u := range p.H.Neighbors(v) {
			if !p.V[u] {
				return false
			}
		}
	}
	return true
}

// Key implements Pattern.
func (p *KPattern) Key() string {
	var buf strings.Builder
	buf.WriteString("V:")
	for _, v := range p.Vertices() {
		fmt.Fprintf(&buf, "%d,", v)
	}
	buf.WriteString("|phi:")
	slots := make([]int, 0, len(p.Phi))
	for v := range p.Phi {
		slots = append(slots, v)
	}
	sort.Slice(slots, func(i, j int) bool { return p.Phi[slots[i]] < p.Phi[slots[j]] })
	for _, v := range slots {
		fmt.Fprintf(&buf, "%d:%d,", p.Phi[v], v)
	}
	return buf.String()
}

// Forget implements Pattern.
func (p *KPattern) Forget(i int) (Pattern, bool) {
	victim := -1
	for v, s := range p.Phi {
		if s == i {
			victim = v
			break
		}
	}
	if victim == -1 {
		return p, true
	}
	next := p.clone()
	delete(next.Phi, victim)
	delete(next.B, victim)
	if !next.IsSeparator() {
		return nil, false
	}
	return next, true
}

// InverseForget implements Pattern.
func (p *KPattern) InverseForget(i int) []Pattern {
	var out []Pattern
	freeHere := true
	for _, s := range p.Phi {
		if s == i {
			freeHere = false
			break
		}
	}
	if freeHere {
		out = append(out, p)
	}
	for _, v := range sortedKeys(p.V) {
		if p.B[v] {
			continue
		}
		next := p.clone()
		next.B[v] = true
		next.Phi[v] = i
		out = append(out, next)
	}
	return out
}

// Join implements Pattern.
func (p *KPattern) Join(qIface Pattern) (Pattern, bool) {
	q, ok := qIface.(*KPattern)
	if !ok || q.H != p.H {
		return nil, false
	}
	if !sameBoundary(p, q) {
		return nil, false
	}
	for v := range p.V {
		if q.V[v] && !p.B[v] {
			return nil, false
		}
	}
	for v := range q.V {
		if p.V[v] && !q.B[v] {
			return nil, false
		}
	}
	next := p.clone()
	for v := range q.V {
		next.V[v] = true
	}
	if !next.IsSeparator() {
		return nil, false
	}
	return next, true
}

func sameBoundary(p, q *KPattern) bool {
	if len(p.B) != len(q.B) {
		return false
	}
	for v := range p.B {
		if !q.B[v] {
			return false
		}
	}
	for v, s := range p.Phi {
		if qs, ok := q.Phi[v]; !ok || qs != s {
			return false
		}
	}
	return true
}

// InverseJoin implements Pattern by splitting V \ B into every ordered pair
// of subsets (spec.md §4.7 "enumerated by splitting non-boundary vertices
// into two subsets").
func (p *KPattern) InverseJoin() [][2]Pattern {
	nonBoundary := make([]int, 0, len(p.V))
	for _, v := range sortedKeys(p.V) {
		if !p.B[v] {
			nonBoundary = append(nonBoundary, v)
		}
	}
	m := len(nonBoundary)
	var out [][2]Pattern
	for mask := 0; mask < (1 << uint(m)); mask++ {
		p1 := p.boundaryOnly()
		p2 := p.boundaryOnly()
		for i, v := range nonBoundary {
			if mask&(1<<uint(i)) != 0 {
				p1.V[v] = true
			} else {
				p2.V[v] = true
			}
		}
		if p1.IsSeparator() && p2.IsSeparator() {
			out = append(out, [2]Pattern{p1, p2})
		}
	}
	return out
}

func (p *KPattern) boundaryOnly() *KPattern {
	out := &KPattern{H: p.H, K: p.K, V: make(map[int]bool, len(p.B)), B: make(map[int]bool, len(p.B)), Phi: make(map[int]int, len(p.Phi))}
	for v := range p.B {
		out.V[v] = true
		out.B[v] = true
	}
	for v, s := range p.Phi {
		out.Phi[v] = s
	}
	return out
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
