package readcost

// StartRank returns the smallest rank covered by the block.
func (b Block) StartRank() uint64 { return b.EndRank - b.Size() + 1 }

// maskedStartRank derives the start rank by masking the block extent below
// the block height. For any block produced by Decompose this is identical
// to StartRank, because a block's size evenly divides its own extent. It
// is retained only so the tests can pin the equivalence.
func maskedStartRank(b Block) uint64 {
	return b.EndRank - LowMask(b.EndRank-1, b.Height)
}

// Contains reports whether rank k falls within the block.
func (b Block) Contains(k uint64) bool {
	return b.StartRank() <= k && k <= b.EndRank
}

// RangeInclusive returns the closed rank interval covered by the block.
// Both ends are valid ranks within the block.
func (b Block) RangeInclusive() (uint64, uint64) {
	return b.StartRank(), b.EndRank
}
