// Package unionfind implements the bit-packed union-find structures used by
// the coloring stage's tree-depth center check and by the decompose
// package's color-set sweep (spec.md §3 "Union-find (bit-packed)").
//
// Each vertex occupies one machine word. The low bits carry a type tag:
//
//	00 - vertex not part of the current color combination (ignored)
//	01 - root; remaining bits hold a 2-bit-per-color saturating payload
//	10 - child; remaining bits hold the index of the parent
//
// Two payload shapes share this tag layout: a saturating color-frequency
// histogram (histogram.go, used by the center check) and a plain
// component-size counter (size.go, used by the sweep). Both are generalized
// from lvlath/prim_kruskal's DSU (parent[]/rank[] maps with iterative
// path-compressing Find and union-by-rank Union) into a single packed-word
// encoding, and the field width is parameterized rather than hard-coded
// (spec.md §9 "Implementers should parameterise the field width") so the
// hard cap on combination size is MaxCombinationSize, (FieldWidth-2)/2;
// coloring.BuildPCenteredColoring rejects a larger p.
package unionfind

// FieldWidth is the machine word width, in bits, backing each union-find
// slot. Two of those bits are the type tag; the histogram packing reserves
// 2 bits per color in the remainder, so the maximum representable
// color-combination size is (FieldWidth-typeBits)/2 (spec.md §9, which
// hard-codes this at 31 for a 64-bit word).
const FieldWidth = 64

const typeBits = 2

// MaxCombinationSize is the hard upper bound on p imposed by FieldWidth.
const MaxCombinationSize = (FieldWidth - typeBits) / 2
