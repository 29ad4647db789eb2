// Package readcost models the read amplification of rank addressed access
// to a forest of perfectly balanced binary search blocks.
package readcost

/*

# The forest shape

An append only collection of n ranked entries can always be organised as a
forest of perfectly balanced binary search blocks whose sizes are the
binary digits of n. This is the same decomposition that gives an MMR its
peaks: knowing only n, the block heights and boundaries are fully
determined, and adding entries only ever merges the smallest blocks on the
right.

For n = 7 the ranks partition as

	[1 2 3 4] [5 6] [7]
	 height 2  h 1   h 0

The blocks are emitted largest first, are pairwise disjoint and
contiguous, and the last block always ends at rank n.

# The cost law

Within a block of height h, the zero based offset of a rank encodes the
root to entry path of the implicit search tree. Each set bit in the offset
discharges one pending comparison, so reaching the rank costs

	h - popcount(offset)

reads. The block's first rank (offset zero) pays the full height; its last
rank (offset all ones) is free. On top of that, every block except the
forest's last charges one routing read, modeling the extra indirection to
an older, non resident block. The most recent block is assumed directly
addressable.

The package is arranged as functional primitives in the manner of
go-merklelog/mmr: small pure functions over uint64, no state retained
between calls. Decompose derives the forest from n, AccessCost (and its
decomposition reusing variant ForestAccessCost) prices a single rank, and
Bounds/CostExtremes/CostHistogram produce the analytic envelopes and full
scan summaries used for validation and plotting.

Everything is deterministic arithmetic; the only failure mode is an
argument outside its domain, reported by wrapping ErrOutOfDomain.

*/
