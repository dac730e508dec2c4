package pattern

import "math"

// TreedepthLowerBound returns a lower bound on H's treedepth, used only as
// the color-set sweep's loop lower bound td(H), never substituted for p
// (spec.md §5.6, §9 Open Question: "whether treedepth(G) may return values
// too low — resolved: yes, by design, it is a lower bound used solely to
// start the sweep's size range, not a certified value"). Ported from
// original_source/lib/graph/treedepth.py's fallback branch: the degeneracy
// of H, or 2, whichever is larger.
func TreedepthLowerBound(h *Graph) int {
	if d := h.Degeneracy(); d > 2 {
		return d
	}
	return 2
}

// TreedepthLowerBoundNamed returns the closed-form treedepth lower bound
// for a named pattern family, ported from
// original_source/lib/graph/treedepth.py's per-shape formulas (star, wheel,
// path, clique, cycle, biclique), each tighter than the generic degeneracy
// fallback TreedepthLowerBound uses for an arbitrary H.
func TreedepthLowerBoundNamed(name string, ns ...int) (int, error) {
	if len(ns) == 0 {
		return 0, ErrInvalidPatternSize
	}
	switch name {
	case "star":
		return 2, nil
	case "wheel":
		return int(math.Ceil(math.Log2(float64(ns[0]-1)))) + 2, nil
	case "path":
		return int(math.Ceil(math.Log2(float64(ns[0] + 1)))), nil
	case "clique":
		return ns[0], nil
	case "cycle":
		return int(math.Ceil(math.Log2(float64(ns[0])))) + 1, nil
	case "biclique":
		if len(ns) < 2 {
			return 0, ErrInvalidPatternSize
		}
		if ns[1] < ns[0] {
			return ns[1] + 1, nil
		}
		return ns[0] + 1, nil
	default:
		return 0, ErrUnknownPatternName
	}
}
