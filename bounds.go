package readcost

import (
	"fmt"
	"math/bits"
)

// BlockBounds carries the analytic cost envelope for one block. Upper and
// Lower are indexed by local rank - 1, so Upper[0] bounds the block's
// first rank and Upper[Size()-1] its last.
type BlockBounds struct {
	Block Block
	Upper []uint64
	Lower []uint64
}

// CostWitness records, for one cost value, the extremal ranks paying it.
type CostWitness struct {
	Worst uint64 // smallest rank observed with this cost
	Best  uint64 // largest rank observed with this cost
}

// UpperBoundAt returns the analytic worst case cost at local rank m of
// block b, m in [1, Size()]. lastBlock selects whether the routing read
// charged to non final blocks applies. The bound is
// floor(log2(size - m + 1)), and it coincides with the access cost at the
// block's first rank (m=1, the block height) and last rank (m=size, zero).
func UpperBoundAt(b Block, m uint64, lastBlock bool) (uint64, error) {
	if err := checkLocalRank(b, m); err != nil {
		return 0, err
	}
	return blockUpperBound(b.Size(), m, routingAdj(lastBlock)), nil
}

// LowerBoundAt returns the analytic best case cost at local rank m of
// block b, m in [1, Size()]. The bound is ceil(log2(size / m)), computed
// exactly in integers as Height - floor(log2 m), which is valid because
// the size is an exact power of two.
func LowerBoundAt(b Block, m uint64, lastBlock bool) (uint64, error) {
	if err := checkLocalRank(b, m); err != nil {
		return 0, err
	}
	return blockLowerBound(b.Height, m, routingAdj(lastBlock)), nil
}

// Bounds returns the upper and lower cost envelopes for every block of
// the forest decomposition of n. The curves are materialized per rank, so
// this is intended for the modest n used in validation and plotting.
func Bounds(n uint64) ([]BlockBounds, error) {
	forest, err := Decompose(n)
	if err != nil {
		return nil, err
	}
	curves := make([]BlockBounds, len(forest))
	for i, b := range forest {
		adj := routingAdj(b.EndRank == n)
		s := b.Size()
		bb := BlockBounds{
			Block: b,
			Upper: make([]uint64, s),
			Lower: make([]uint64, s),
		}
		for m := uint64(1); m <= s; m++ {
			bb.Upper[m-1] = blockUpperBound(s, m, adj)
			bb.Lower[m-1] = blockLowerBound(b.Height, m, adj)
		}
		curves[i] = bb
	}
	return curves, nil
}

// CostExtremes scans every rank of n and records, per cost value, the
// first and last rank observed paying it. The index into the result is
// the cost value; costs range over [0, ceil(log2 n)] and every value in
// that range is achieved. This is a full O(n) scan with O(1) bookkeeping
// per rank.
func CostExtremes(n uint64) ([]CostWitness, error) {
	forest, err := Decompose(n)
	if err != nil {
		return nil, err
	}
	witnesses := make([]CostWitness, maxCost(n)+1)
	seen := make([]bool, len(witnesses))
	for k := uint64(1); k <= n; k++ {
		d, err := ForestAccessCost(forest, k)
		if err != nil {
			return nil, err
		}
		if !seen[d] {
			witnesses[d].Worst = k
			seen[d] = true
		}
		witnesses[d].Best = k
	}
	return witnesses, nil
}

// CostHistogram returns the count of ranks paying each cost value, with
// the same index convention as CostExtremes. The counts sum to n.
func CostHistogram(n uint64) ([]uint64, error) {
	forest, err := Decompose(n)
	if err != nil {
		return nil, err
	}
	counts := make([]uint64, maxCost(n)+1)
	for k := uint64(1); k <= n; k++ {
		d, err := ForestAccessCost(forest, k)
		if err != nil {
			return nil, err
		}
		counts[d]++
	}
	return counts, nil
}

// maxCost returns ceil(log2 n) for n >= 1, the largest cost any rank of n
// can pay. The first rank of the largest block pays its height, plus the
// routing read unless n is a single block, and in both cases that is
// exactly ceil(log2 n).
func maxCost(n uint64) uint64 { return uint64(bits.Len64(n - 1)) }

// routingAdj is the extra read charged to every block except the last.
func routingAdj(lastBlock bool) uint64 {
	if lastBlock {
		return 0
	}
	return 1
}

func blockUpperBound(size, m, adj uint64) uint64 {
	return uint64(bits.Len64(size-m+1)) - 1 + adj
}

func blockLowerBound(height, m, adj uint64) uint64 {
	return height - (uint64(bits.Len64(m)) - 1) + adj
}

func checkLocalRank(b Block, m uint64) error {
	if m == 0 || m > b.Size() {
		return fmt.Errorf(
			"%w: local rank %d not in [1, %d]", ErrOutOfDomain, m, b.Size())
	}
	return nil
}
