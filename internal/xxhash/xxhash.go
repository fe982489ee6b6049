// Package xxhash wraps the two xxHash variants the ISCC kernel needs:
// xxHash64 for Meta-ID n-grams and xxHash32 for Content-ID-Text shingles
// and Data-ID chunk features.
package xxhash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/pierrec/xxHash/xxHash32"
)

// Sum64 returns the xxHash64 digest of data, matching xxhash.xxh64(s).digest()
// in the reference implementation.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum32 returns the xxHash32 digest of data with seed 0, matching
// xxhash.xxh32(s).intdigest() in the reference implementation.
func Sum32(data []byte) uint32 {
	return xxHash32.Checksum(data, 0)
}
