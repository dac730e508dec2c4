package unionfind

// Histogram is a bit-packed union-find over a fixed vertex universe,
// tracking a saturating per-color frequency histogram at each root
// (spec.md §3 "Union-find (bit-packed)", §4.2 "Incremental merge").
//
// Unlike a classical union-by-rank DSU (compare lvlath/prim_kruskal's
// parent[]/rank[] maps), Find here always walks parent pointers directly
// without path compression: each Histogram snapshot is immutable once
// copied onto the combination stack (the coloring center check pushes a
// fresh copy per depth), so compressing paths on a structure about to be discarded or
// copied again buys nothing and would mutate state the caller may still
// reference.
type Histogram struct {
	slots []uint64 // slots[v] == 0 (typeAbsent) until v joins the combination
}

// NewHistogram returns an empty Histogram over vertex ids 0..n-1, with every
// vertex initially absent from the combination.
func NewHistogram(n int) *Histogram {
	return &Histogram{slots: make([]uint64, n)}
}

// Clone returns an independent copy, the "copy the depth-(d-1) union-find"
// step of spec.md §4.2's incremental merge.
func (h *Histogram) Clone() *Histogram {
	out := &Histogram{slots: make([]uint64, len(h.slots))}
	copy(out.slots, h.slots)
	return out
}

// colorBit returns the histogram payload with exactly color c set to "01"
// (appears once), used when seeding a fresh singleton root.
func colorBit(c int) uint64 {
	return uint64(1) << uint(2*c)
}

// NewRoot makes v a fresh singleton root whose histogram has color c at
// frequency one (spec.md §4.2 step 2: "write a fresh root with frequency 01
// in slot d").
func (h *Histogram) NewRoot(v, c int) {
	h.slots[v] = makeSlot(typeRoot, colorBit(c))
}

// Present reports whether v has joined the current combination.
func (h *Histogram) Present(v int) bool {
	return slotTypeOf(h.slots[v]) != typeAbsent
}

// Find returns the root vertex of v's component. v must be Present.
func (h *Histogram) Find(v int) int {
	for slotTypeOf(h.slots[v]) == typeChild {
		v = int(payloadOf(h.slots[v]))
	}
	return v
}

// Union merges the components of u and v, slot-wise saturating their
// histograms (spec.md §4.2 step 3). A no-op if u and v are already in the
// same component. The smaller-indexed root (by convention) becomes the
// surviving root, keeping the merge deterministic regardless of call order.
func (h *Histogram) Union(u, v int) {
	ru, rv := h.Find(u), h.Find(v)
	if ru == rv {
		return
	}
	if rv < ru {
		ru, rv = rv, ru
	}
	merged := saturatingAdd(payloadOf(h.slots[ru]), payloadOf(h.slots[rv]))
	h.slots[ru] = makeSlot(typeRoot, merged)
	h.slots[rv] = makeSlot(typeChild, uint64(ru))
}

// HistogramOf returns the raw packed histogram payload of v's component
// root (for inspection/testing).
func (h *Histogram) HistogramOf(v int) uint64 {
	return payloadOf(h.slots[h.Find(v)])
}

// HasCenter reports whether the component containing v has some color that
// appears exactly once in it (spec.md §4.2 step 4: the component has a
// center iff the merged histogram has a "01" bit anywhere).
func (h *Histogram) HasCenter(v int) bool {
	return payloadOf(h.slots[h.Find(v)])&histogramLowMask != 0
}

// Members returns every vertex currently in the same component as v,
// discovered by a linear scan of Find — used only by the center check's
// failure path to collect the witness component (spec.md §4.2 step 4: "walk
// the union-find to collect the responsible vertices"), which runs at most
// once per failed combination.
func (h *Histogram) Members(v int) []int {
	root := h.Find(v)
	out := make([]int, 0)
	for u := range h.slots {
		if slotTypeOf(h.slots[u]) != typeAbsent && h.Find(u) == root {
			out = append(out, u)
		}
	}
	return out
}
