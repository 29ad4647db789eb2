package readcost

import (
	"fmt"
	"math/bits"
)

// FloorLog2 returns the index of the highest set bit of x, which is
// floor(log2 x). x must be non zero.
func FloorLog2(x uint64) (uint64, error) {
	if x == 0 {
		return 0, fmt.Errorf("%w: log2 of zero", ErrOutOfDomain)
	}
	return uint64(bits.Len64(x)) - 1, nil
}

// CeilLog2 returns ceil(log2 x). x must be non zero.
func CeilLog2(x uint64) (uint64, error) {
	if x == 0 {
		return 0, fmt.Errorf("%w: log2 of zero", ErrOutOfDomain)
	}
	if x&(x-1) == 0 {
		return uint64(bits.Len64(x)) - 1, nil
	}
	return uint64(bits.Len64(x)), nil
}

// Pow2 returns 2^j. A j of 64 or more is out of domain, and callers rely
// on that to signal "no further bits" when walking a decomposition.
func Pow2(j uint64) (uint64, error) {
	if j >= 64 {
		return 0, fmt.Errorf("%w: 2^%d overflows 64 bits", ErrOutOfDomain, j)
	}
	return 1 << j, nil
}

// LowMask returns value with all bits at position width and above cleared.
// Widths of 64 or more place no restriction and return value unchanged.
func LowMask(value, width uint64) uint64 {
	if width >= 64 {
		return value
	}
	return value & ((1 << width) - 1)
}

// OnesCount returns the number of set bits in x.
func OnesCount(x uint64) uint64 { return uint64(bits.OnesCount64(x)) }
