package readcost

import (
	"fmt"
	"math/bits"
)

// The in-block cost law is the zero count of the offset: a block of
// height h charges h - popcount(offset) reads. These helpers expose the
// law and its envelope directly over the h bit values, for validation and
// plotting independent of any particular forest.

// ZeroBits returns the count of zero bits in the h bit representation of
// x. h must be in [1, 63] and x must fit in h bits.
func ZeroBits(x, h uint64) (uint64, error) {
	if err := checkWidth(x, h); err != nil {
		return 0, err
	}
	return h - OnesCount(x), nil
}

// ZeroBitsUpperBound returns floor(log2(2^h - x)), the tight upper bound
// on ZeroBits(x, h). It is zero at x = 2^h - 1.
func ZeroBitsUpperBound(x, h uint64) (uint64, error) {
	if err := checkWidth(x, h); err != nil {
		return 0, err
	}
	return uint64(bits.Len64((1<<h)-x)) - 1, nil
}

// ZeroBitsLowerBound returns h - floor(log2(x + 1)), the tight lower
// bound on ZeroBits(x, h).
func ZeroBitsLowerBound(x, h uint64) (uint64, error) {
	if err := checkWidth(x, h); err != nil {
		return 0, err
	}
	return h - (uint64(bits.Len64(x+1)) - 1), nil
}

// ZeroBitsExpected returns the midpoint of the two bounds.
func ZeroBitsExpected(x, h uint64) (float64, error) {
	lower, err := ZeroBitsLowerBound(x, h)
	if err != nil {
		return 0, err
	}
	upper, err := ZeroBitsUpperBound(x, h)
	if err != nil {
		return 0, err
	}
	return float64(lower) + float64(upper-lower)/2, nil
}

func checkWidth(x, h uint64) error {
	if h == 0 || h > 63 {
		return fmt.Errorf("%w: bit width %d not in [1, 63]", ErrOutOfDomain, h)
	}
	if x >= 1<<h {
		return fmt.Errorf("%w: %d does not fit in %d bits", ErrOutOfDomain, x, h)
	}
	return nil
}
