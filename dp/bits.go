package dp

import "math/big"

// RequiredBits returns the minimum field width, in bits, needed to hold any
// value up to n^p without overflow (spec.md §7 "arithmetic saturation":
// field width ≥ ⌈log₂(n^p+1)⌉ bits). n and p are host order and pattern
// size respectively; np is computed with arbitrary precision since n^p can
// exceed int64 long before the bit count does.
func RequiredBits(n, p int) int {
	if n <= 1 || p <= 0 {
		return 1
	}
	np := new(big.Int).Exp(big.NewInt(int64(n)), big.NewInt(int64(p)), nil)
	return np.BitLen()
}

// FitsInInt64 reports whether RequiredBits(n, p) fits in a signed 64-bit
// field, the width ScalarTable and ColorTable store counts in.
func FitsInInt64(n, p int) bool {
	return RequiredBits(n, p) <= 63
}
