// Package minhash implements the 128-permutation MinHash construction
// (L4) over a stream of 32-bit features, plus the least-significant-bit
// fold used by Content-ID-Text and Data-ID to collapse a MinHash
// register into two 64-bit halves and simhash them into one 64-bit
// digest.
package minhash

import (
	"iter"

	"github.com/iscc-foundation/goiscc/simhash"
)

// Hash runs the 128-slot MinHash register over features, returning the
// final register. Each slot always holds a value <= 2^32-1. The
// arithmetic uses explicit 64-bit unsigned truncation at the multiply
// and a modular reduction by the Mersenne prime 2^61-1, matching the
// reference bit for bit.
func Hash(features iter.Seq[uint32]) [NumPermutations]uint32 {
	var register [NumPermutations]uint32
	for i := range register {
		register[i] = uint32(max32)
	}

	for hv := range features {
		h := uint64(hv)
		for x := 0; x < NumPermutations; x++ {
			nh := ((PermA[x]*h + PermB[x]) % mersennePrime61) & max32
			if uint32(nh) < register[x] {
				register[x] = uint32(nh)
			}
		}
	}

	return register
}

// Fold collapses a 128-slot MinHash register into a single 64-bit
// digest: the least significant bit of each slot (slot 0 -> MSB) forms
// a 128-bit string, split into two 64-bit halves, which are then
// combined with simhash.Hash. This is the shape Content-ID-Text and
// Data-ID consume.
func Fold(register [NumPermutations]uint32) []byte {
	a := make([]byte, 8)
	b := make([]byte, 8)

	for i := 0; i < 64; i++ {
		if register[i]&1 == 1 {
			a[i/8] |= 1 << uint(7-i%8)
		}
	}
	for i := 0; i < 64; i++ {
		j := i + 64
		if register[j]&1 == 1 {
			b[i/8] |= 1 << uint(7-i%8)
		}
	}

	return simhash.Hash([][]byte{a, b})
}
