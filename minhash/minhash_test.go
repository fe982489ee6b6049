package minhash

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashRegisterShape(t *testing.T) {
	features := []uint32{1, 2, 3, 4, 5, 42, 1337}
	register := Hash(slices.Values(features))

	require.Len(t, register, NumPermutations)
	for i, v := range register {
		require.LessOrEqual(t, uint64(v), uint64(max32), "slot %d exceeds 2^32-1", i)
	}
}

func TestHashDeterministic(t *testing.T) {
	features := []uint32{7, 11, 13, 99}
	a := Hash(slices.Values(features))
	b := Hash(slices.Values(features))
	require.Equal(t, a, b)
}

func TestHashEmptyFeaturesIsAllOnes(t *testing.T) {
	register := Hash(slices.Values[[]uint32](nil))
	for _, v := range register {
		require.Equal(t, uint32(max32), v)
	}
}

func TestHashOrderIndependent(t *testing.T) {
	a := Hash(slices.Values([]uint32{1, 2, 3, 4}))
	b := Hash(slices.Values([]uint32{4, 3, 2, 1}))
	require.Equal(t, a, b)
}

func TestFoldShape(t *testing.T) {
	register := Hash(slices.Values([]uint32{1, 2, 3, 4, 5}))
	digest := Fold(register)
	require.Len(t, digest, 8)
}

func TestFoldDeterministic(t *testing.T) {
	register := Hash(slices.Values([]uint32{9, 8, 7}))
	require.Equal(t, Fold(register), Fold(register))
}
