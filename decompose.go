package readcost

import (
	"fmt"
	"math/bits"
)

// Block is one perfectly balanced binary search block in the forest
// decomposition of n. EndRank is the largest (one based) rank the block
// covers. The size of a block is always an exact power of two, so only
// the height is stored.
//
// Decompose never produces a height of 64 or more, which keeps Size total.
type Block struct {
	Height  uint64
	EndRank uint64
}

// Size returns the number of ranks the block covers.
func (b Block) Size() uint64 { return 1 << b.Height }

// Decompose returns the forest blocks for n, largest first. The block
// sizes are the binary digits of n read from the most significant set bit
// down, so the sequence is strictly decreasing in size, has popcount(n)
// entries, and the blocks exactly partition the ranks [1, n].
//
// For example Decompose(7) covers the ranks as
//
//	[1 2 3 4] [5 6] [7]
//	 height 2  h 1   h 0
//
// The count of blocks is bounded by 64, so the sequence is materialized
// rather than streamed. An n of zero is out of domain.
func Decompose(n uint64) ([]Block, error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: forest size must be at least 1", ErrOutOfDomain)
	}
	forest := make([]Block, 0, bits.OnesCount64(n))
	remaining := n
	for remaining > 0 {
		j := uint64(bits.Len64(remaining)) - 1
		size := uint64(1) << j
		forest = append(forest, Block{Height: j, EndRank: n - remaining + size})
		remaining -= size
	}
	return forest, nil
}
