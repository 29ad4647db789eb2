package readcost

import "fmt"

// AccessCost returns the number of index reads needed to reach rank k in
// the forest decomposition of n. k must lie in [1, n].
//
// Within the containing block, the zero based offset of k encodes the
// root to entry traversal path, and each set bit in the offset discharges
// one pending comparison. The residual is Height - popcount(offset): the
// block's first rank pays the full height, its last rank pays nothing.
// Every block except the forest's last charges one additional read to
// route to it; the last block is directly addressable.
func AccessCost(k, n uint64) (uint64, error) {
	forest, err := Decompose(n)
	if err != nil {
		return 0, err
	}
	return ForestAccessCost(forest, k)
}

// ForestAccessCost is AccessCost for an already decomposed forest.
// Callers making many point queries against the same n can decompose once
// and reuse the blocks; the result is identical to AccessCost(k, n) for
// the n the forest was built from.
func ForestAccessCost(forest []Block, k uint64) (uint64, error) {
	if len(forest) == 0 {
		return 0, fmt.Errorf("%w: empty forest", ErrOutOfDomain)
	}
	n := forest[len(forest)-1].EndRank
	if k == 0 || k > n {
		return 0, fmt.Errorf("%w: rank %d not in [1, %d]", ErrOutOfDomain, k, n)
	}
	for _, b := range forest {
		if !b.Contains(k) {
			continue
		}
		cost := b.Height - OnesCount(k-b.StartRank())
		if b.EndRank != n {
			cost++
		}
		return cost, nil
	}
	// unreachable for a forest produced by Decompose: the blocks
	// partition [1, n]
	return 0, fmt.Errorf("%w: rank %d not covered by the forest", ErrOutOfDomain, k)
}
