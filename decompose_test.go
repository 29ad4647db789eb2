package readcost

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	type args struct {
		n uint64
	}
	tests := []struct {
		name string
		args args
		want []Block
	}{
		{"size 1 gives a single unit block", args{1}, []Block{
			{Height: 0, EndRank: 1},
		}},
		{"size 7 gives three blocks", args{7}, []Block{
			{Height: 2, EndRank: 4},
			{Height: 1, EndRank: 6},
			{Height: 0, EndRank: 7},
		}},
		{"size 8 is a single perfect block", args{8}, []Block{
			{Height: 3, EndRank: 8},
		}},
		{"size 11 gives three blocks", args{11}, []Block{
			{Height: 3, EndRank: 8},
			{Height: 1, EndRank: 10},
			{Height: 0, EndRank: 11},
		}},
		{"size 352 decomposes from the most significant bit down", args{352}, []Block{
			{Height: 8, EndRank: 256},
			{Height: 6, EndRank: 320},
			{Height: 5, EndRank: 352},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(tt.args.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecomposeZeroIsOutOfDomain(t *testing.T) {
	_, err := Decompose(0)
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

// The blocks of any decomposition partition [1, n] exactly: contiguous,
// disjoint, strictly decreasing in size, one block per set bit of n, and
// the sizes sum back to n.
func TestDecomposePartitionInvariant(t *testing.T) {
	for n := uint64(1); n <= 1024; n++ {
		t.Run(fmt.Sprintf("Decompose(%d)", n), func(t *testing.T) {
			forest, err := Decompose(n)
			require.NoError(t, err)
			require.Len(t, forest, bits.OnesCount64(n))

			var sum uint64
			nextStart := uint64(1)
			for i, b := range forest {
				start, end := b.RangeInclusive()
				if start != nextStart {
					t.Fatalf("block %d starts at %d, want %d", i, start, nextStart)
				}
				if end != start+b.Size()-1 {
					t.Fatalf("block %d ends at %d, want %d", i, end, start+b.Size()-1)
				}
				if i > 0 && b.Size() >= forest[i-1].Size() {
					t.Fatalf("block %d size %d not smaller than previous %d",
						i, b.Size(), forest[i-1].Size())
				}
				sum += b.Size()
				nextStart = end + 1
			}
			assert.Equal(t, n, sum)
			assert.Equal(t, n, forest[len(forest)-1].EndRank)
		})
	}
}
