// Package simhash implements the similarity-preserving bit-column
// majority-vote hash (L3) shared by every ISCC component builder.
package simhash

import (
	"math/big"

	"github.com/iscc-foundation/goiscc/internal/mustassert"
)

// Hash computes the similarity hash of digests: a big-endian byte
// sequence of the same length as each input digest, where bit i is 1
// iff at least half of the input digests have bit i set (ties round
// to 1, i >= len/2 not >). digests must be non-empty and all of equal
// length. The result is invariant under permutation of digests.
func Hash(digests [][]byte) []byte {
	mustassert.True(len(digests) > 0, "similarity hash requires at least one digest")

	nBytes := len(digests[0])
	nBits := nBytes * 8
	vector := make([]int, nBits)

	for _, d := range digests {
		mustassert.True(len(d) == nBytes, "similarity hash digests must all have the same length")

		h := new(big.Int).SetBytes(d)
		for i := 0; i < nBits; i++ {
			vector[i] += int(h.Bit(i))
		}
	}

	minFeatures := float64(len(digests)) / 2

	result := new(big.Int)
	for i := 0; i < nBits; i++ {
		if float64(vector[i]) >= minFeatures {
			result.SetBit(result, i, 1)
		}
	}

	out := make([]byte, nBytes)
	result.FillBytes(out)
	return out
}
