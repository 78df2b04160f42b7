package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rectpacksolver/packing"
)

func TestPRPGeneratorPartition(t *testing.T) {
	gen := NewPRPGenerator(20, 15, 20, 42, 2, 0.2)

	leaves := gen.Placements()
	require.NotEmpty(t, leaves)
	assert.LessOrEqual(t, len(leaves), 20)
	require.NoError(t, gen.VerifyPartition())

	// 每片叶子都满足最小边长
	for _, leaf := range leaves {
		assert.GreaterOrEqual(t, leaf.Width, 2)
		assert.GreaterOrEqual(t, leaf.Height, 2)
	}
}

func TestPRPGeneratorDeterminism(t *testing.T) {
	g1 := NewPRPGenerator(20, 15, 20, 7, 2, 0.25)
	g2 := NewPRPGenerator(20, 15, 20, 7, 2, 0.25)
	assert.Equal(t, g1.Placements(), g2.Placements())
	assert.Equal(t, g1.Shuffled(), g2.Shuffled())

	// 不同种子几乎必然产生不同切割
	g3 := NewPRPGenerator(20, 15, 20, 8, 2, 0.25)
	assert.NotEqual(t, g1.Placements(), g3.Placements())
}

func TestPRPGeneratorShuffledIsPermutation(t *testing.T) {
	gen := NewPRPGenerator(12, 10, 10, 3, 2, 0.25)
	leaves := gen.Placements()
	shuffled := gen.Shuffled()
	require.Len(t, shuffled, len(leaves))

	byID := make(map[int]packing.Size, len(leaves))
	for _, sz := range shuffled {
		byID[sz.ID] = sz
	}
	for _, leaf := range leaves {
		sz, ok := byID[leaf.ID]
		require.True(t, ok, "leaf %d missing from shuffle", leaf.ID)
		assert.Equal(t, leaf.Size, sz)
	}
}

func TestPRPGeneratorInstanceIsSolvable(t *testing.T) {
	gen := NewPRPGenerator(10, 10, 8, 11, 2, 0.2)
	require.NoError(t, gen.VerifyPartition())

	s, err := packing.NewPRPSolver(10, 10)
	require.NoError(t, err)
	require.True(t, s.Pack(gen.Shuffled(), packing.OrderDecreasing))
	assert.Equal(t, 0, s.Wasted())
	assert.Len(t, s.Placed(), len(gen.Placements()))
}

func TestPRPGeneratorInfo(t *testing.T) {
	gen := NewPRPGenerator(8, 8, 4, 1, 2, 0.25)
	info := gen.Info()
	assert.Contains(t, info, "8×8")
	assert.Contains(t, info, "rects")
}
