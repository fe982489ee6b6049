// Package merkle implements the Merkle-style top hash (L7) used by
// Instance-ID: a balanced binary tree of sha256d leaves over 64000-byte
// slices of the input stream, with odd-node duplication and 0x00/0x01
// domain-separation tags.
package merkle

import (
	"crypto/sha256"
	"io"

	"github.com/iscc-foundation/goiscc/internal/mustassert"
)

// LeafSize is the byte width of each Merkle leaf slice (the final
// slice of a stream may be shorter).
const LeafSize = 64000

const (
	leafTag     = 0x00
	internalTag = 0x01
)

// sha256d returns sha256(sha256(data)).
func sha256d(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// TopHash reads r to EOF in LeafSize-byte slices, hashes each as a
// domain-separated leaf, and reduces the leaves to a single 32-byte
// root via sha256d(0x01 || left || right), duplicating the last leaf
// of an odd-length level to pair it with itself.
func TopHash(r io.Reader) ([]byte, error) {
	var leaves [][]byte
	buf := make([]byte, LeafSize)

	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			slice := append([]byte{leafTag}, buf[:n]...)
			leaves = append(leaves, sha256d(slice))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if len(leaves) == 0 {
		leaves = append(leaves, sha256d([]byte{leafTag}))
	}

	return reduce(leaves), nil
}

// reduce recursively pairs adjacent leaves until a single root remains.
func reduce(level [][]byte) []byte {
	mustassert.True(len(level) > 0, "merkle reduce requires at least one node")

	if len(level) == 1 {
		return level[0]
	}

	next := make([][]byte, 0, (len(level)+1)/2)
	for i := 0; i+1 < len(level); i += 2 {
		next = append(next, hashInnerNodes(level[i], level[i+1]))
	}
	if len(level)%2 == 1 {
		last := level[len(level)-1]
		next = append(next, hashInnerNodes(last, last))
	}

	return reduce(next)
}

func hashInnerNodes(a, b []byte) []byte {
	buf := make([]byte, 0, 1+len(a)+len(b))
	buf = append(buf, internalTag)
	buf = append(buf, a...)
	buf = append(buf, b...)
	return sha256d(buf)
}
