package pattern

import (
	"fmt"
	"math/bits"
	"strings"
)

// BVKPattern is the bit-vector-backed k-pattern representation (spec.md
// §4.7 "the bit-vector implementation represents V, boundary-vertex mask
// and φ as integers"): V and B are bitmasks over the pattern graph's
// vertex ids (H is always small enough to fit one uint64 of vertices), and
// φ is stored as a fixed-size slot array instead of a packed integer — the
// same information, addressed by slot rather than by vertex, which is what
// InverseForget/InverseJoin actually need to walk. AllPatterns does not
// build this representation, so the DP tables run on KPattern values; a
// BVKPattern is only made directly, via NewBVKPattern.
type BVKPattern struct {
	H       *Graph
	N       int // number of vertices in H
	K       int
	Vmask   uint64
	Bmask   uint64
	PhiSlot []int // slot -> vertex id, -1 if unassigned
}

// NewBVKPattern returns the empty pattern over h with n vertices and k slots.
func NewBVKPattern(h *Graph, n, k int) *BVKPattern {
	slots := make([]int, k)
	for i := range slots {
		slots[i] = -1
	}
	return &BVKPattern{H: h, N: n, K: k, PhiSlot: slots}
}

func (p *BVKPattern) clone() *BVKPattern {
	slots := make([]int, len(p.PhiSlot))
	copy(slots, p.PhiSlot)
	return &BVKPattern{H: p.H, N: p.N, K: p.K, Vmask: p.Vmask, Bmask: p.Bmask, PhiSlot: slots}
}

func maskBits(mask uint64) []int {
	out := make([]int, 0, bits.OnesCount64(mask))
	for mask != 0 {
		v := bits.TrailingZeros64(mask)
		out = append(out, v)
		mask &^= 1 << uint(v)
	}
	return out
}

// Host implements Pattern.
func (p *BVKPattern) Host() *Graph { return p.H }

// Vertices implements Pattern.
func (p *BVKPattern) Vertices() []int { return maskBits(p.Vmask) }

// Boundary implements Pattern.
func (p *BVKPattern) Boundary() []int { return maskBits(p.Bmask) }

// Slot implements Pattern.
func (p *BVKPattern) Slot(v int) (int, bool) {
	for i, u := range p.PhiSlot {
		if u == v {
			return i, true
		}
	}
	return 0, false
}

// IsSeparator implements Pattern.
func (p *BVKPattern) IsSeparator() bool {
	nonBoundary := p.Vmask &^ p.Bmask
	for _, v := range maskBits(nonBoundary) {
		for _, u := range p.H.Neighbors(v) {
			if p.Vmask&(1<<uint(u)) == 0 {
				return false
			}
		}
	}
	return true
}

// Key implements Pattern.
func (p *BVKPattern) Key() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "V:%064b|phi:", p.Vmask)
	for i, v := range p.PhiSlot {
		if v >= 0 {
			fmt.Fprintf(&buf, "%d:%d,", i, v)
		}
	}
	return buf.String()
}

// Forget implements Pattern.
func (p *BVKPattern) Forget(i int) (Pattern, bool) {
	victim := p.PhiSlot[i]
	if victim == -1 {
		return p, true
	}
	next := p.clone()
	next.Bmask &^= 1 << uint(victim)
	next.PhiSlot[i] = -1
	if !next.IsSeparator() {
		return nil, false
	}
	return next, true
}

// InverseForget implements Pattern.
func (p *BVKPattern) InverseForget(i int) []Pattern {
	var out []Pattern
	if p.PhiSlot[i] == -1 {
		out = append(out, p)
	}
	nonBoundary := p.Vmask &^ p.Bmask
	for _, v := range maskBits(nonBoundary) {
		next := p.clone()
		next.Bmask |= 1 << uint(v)
		next.PhiSlot[i] = v
		out = append(out, next)
	}
	return out
}

// Join implements Pattern.
func (p *BVKPattern) Join(qIface Pattern) (Pattern, bool) {
	q, ok := qIface.(*BVKPattern)
	if !ok || q.H != p.H {
		return nil, false
	}
	if p.Bmask != q.Bmask || !samePhiSlots(p.PhiSlot, q.PhiSlot) {
		return nil, false
	}
	if p.Vmask&q.Vmask != p.Bmask {
		return nil, false
	}
	next := p.clone()
	next.Vmask |= q.Vmask
	if !next.IsSeparator() {
		return nil, false
	}
	return next, true
}

func samePhiSlots(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// InverseJoin implements Pattern by enumerating every submask of the
// non-boundary bits (spec.md §4.7 "inverseJoin partitions the non-boundary
// mask by enumerating subsets").
func (p *BVKPattern) InverseJoin() [][2]Pattern {
	nonBoundary := maskBits(p.Vmask &^ p.Bmask)
	m := len(nonBoundary)
	var out [][2]Pattern
	for mask := 0; mask < (1 << uint(m)); mask++ {
		p1 := p.boundaryOnly()
		p2 := p.boundaryOnly()
		for i, v := range nonBoundary {
			if mask&(1<<uint(i)) != 0 {
				p1.Vmask |= 1 << uint(v)
			} else {
				p2.Vmask |= 1 << uint(v)
			}
		}
		if p1.IsSeparator() && p2.IsSeparator() {
			out = append(out, [2]Pattern{p1, p2})
		}
	}
	return out
}

func (p *BVKPattern) boundaryOnly() *BVKPattern {
	next := p.clone()
	next.Vmask = p.Bmask
	return next
}
