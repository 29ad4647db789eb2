package readcost

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessCost(t *testing.T) {
	type args struct {
		k uint64
		n uint64
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		// n=7 decomposes to [1 2 3 4] [5 6] [7]
		{"first rank of 7 pays height 2 plus routing", args{1, 7}, 3},
		{"rank 2 of 7", args{2, 7}, 2},
		{"rank 3 of 7", args{3, 7}, 2},
		{"last rank of the big block is offset all ones", args{4, 7}, 1},
		{"first rank of the middle block", args{5, 7}, 2},
		{"last rank of the middle block", args{6, 7}, 1},
		{"the final unit block is free", args{7, 7}, 0},
		{"singleton forest", args{1, 1}, 0},
		{"first rank of a perfect forest pays only the height", args{1, 8}, 3},
		{"last rank of a perfect forest", args{8, 8}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AccessCost(tt.args.k, tt.args.n)
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("AccessCost(%d, %d) = %d, want %d", tt.args.k, tt.args.n, got, tt.want)
			}
		})
	}
}

func TestAccessCostOutOfDomain(t *testing.T) {
	type args struct {
		k uint64
		n uint64
	}
	tests := []struct {
		name string
		args args
	}{
		{"rank zero", args{0, 7}},
		{"rank beyond n", args{8, 7}},
		{"zero forest", args{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AccessCost(tt.args.k, tt.args.n)
			assert.ErrorIs(t, err, ErrOutOfDomain)
		})
	}

	_, err := ForestAccessCost(nil, 1)
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

// Every cost lies in [0, ceil(log2 n)], each block's first rank pays its
// height plus the routing read, its last rank pays only the routing read,
// and pricing against a reused decomposition matches pricing from n.
func TestAccessCostBlockExtremes(t *testing.T) {
	for n := uint64(1); n <= 512; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			forest, err := Decompose(n)
			require.NoError(t, err)

			for k := uint64(1); k <= n; k++ {
				d, err := AccessCost(k, n)
				require.NoError(t, err)
				if d > maxCost(n) {
					t.Fatalf("AccessCost(%d, %d) = %d, exceeds %d", k, n, d, maxCost(n))
				}
				dForest, err := ForestAccessCost(forest, k)
				require.NoError(t, err)
				if dForest != d {
					t.Fatalf("ForestAccessCost(%d) = %d, AccessCost = %d", k, dForest, d)
				}
			}

			for _, b := range forest {
				adj := routingAdj(b.EndRank == n)
				first, err := ForestAccessCost(forest, b.StartRank())
				require.NoError(t, err)
				assert.Equal(t, b.Height+adj, first)
				last, err := ForestAccessCost(forest, b.EndRank)
				require.NoError(t, err)
				assert.Equal(t, adj, last)
			}
		})
	}
}
