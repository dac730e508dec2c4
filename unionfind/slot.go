package unionfind

// slotType is the 2-bit tag stored in the low bits of every union-find word.
type slotType uint8

const (
	typeAbsent slotType = 0 // 00 - vertex not in the current combination
	typeRoot   slotType = 1 // 01 - root of its component
	typeChild  slotType = 2 // 10 - child; payload is the parent's index
)

const typeMask = uint64(0x3)

func packType(t slotType) uint64 { return uint64(t) }

func slotTypeOf(word uint64) slotType { return slotType(word & typeMask) }

func payloadOf(word uint64) uint64 { return word >> typeBits }

func makeSlot(t slotType, payload uint64) uint64 {
	return packType(t) | (payload << typeBits)
}

// saturating 2-bit-per-color histogram masks (spec.md §4.2): LOW picks out
// the low bit of every 2-bit field, HIGH the high bit. Parameterized to the
// payload width (FieldWidth-typeBits bits) rather than hard-coded to a
// specific 64-bit constant, per spec.md §9's parameterization guidance.
var (
	histogramLowMask, histogramHighMask = buildHistogramMasks()
)

func buildHistogramMasks() (low, high uint64) {
	payloadBits := FieldWidth - typeBits
	for i := 0; i < payloadBits; i += 2 {
		low |= uint64(1) << uint(i)
		high |= uint64(1) << uint(i+1)
	}
	return low, high
}

// saturatingAdd merges two 2-bit-per-color histograms with the rule
// 00+00=00, 00+x=x, 10+x=10, 01+01=10 (spec.md §4.2), using exactly the two
// word-wide mask operations (LOW/HIGH) the spec calls out: no per-lane loop.
func saturatingAdd(a, b uint64) uint64 {
	a0 := a & histogramLowMask
	b0 := b & histogramLowMask
	a1 := a & histogramHighMask
	b1 := b & histogramHighMask

	// high bit of the result lane is set when the sum is >= 2: either
	// operand was already saturated (a1|b1), or both operands were
	// exactly 1 (a0&b0, shifted up into the high-bit position).
	carry := (a0 & b0) << 1
	hi := (a1 | b1 | carry) & histogramHighMask

	// low bit of the result lane is set only when the sum is exactly 1,
	// i.e. exactly one operand contributed a low bit and the lane did not
	// saturate.
	lo := (a0 | b0) &^ (hi >> 1) & histogramLowMask

	return lo | hi
}
