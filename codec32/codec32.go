package codec32

import (
	"encoding/base32"
	"errors"
	"fmt"
	"math/bits"
)

// Alphabet is the fixed base32 alphabet used by the v1 wire format
// (RFC 4648, unpadded). Normative for this codec generation.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var encoding = base32.NewEncoding(Alphabet).WithPadding(base32.NoPadding)

// Sentinel errors. Callers can errors.Is against these.
var (
	ErrInvalidCode    = errors.New("codec32: malformed code string")
	ErrHeaderMismatch = errors.New("codec32: header values do not match")
)

// Code is the parsed form of an ISCC v1 component code: a typed header
// plus its digest. It models the reference implementation's dynamic
// `Code | str | bytes | int` union as a single explicit variant.
type Code struct {
	Header
	Digest []byte
}

// Encode packs header and digest into the 2-byte header plus digest
// wire form and base32-encodes the result.
func Encode(h Header, digest []byte) (string, error) {
	if len(digest)*8 != h.Length {
		return "", fmt.Errorf("%w: header declares %d bits, digest has %d", ErrInvalidCode, h.Length, len(digest)*8)
	}
	packed, err := h.pack()
	if err != nil {
		return "", err
	}
	record := append(packed[:], digest...)
	return encoding.EncodeToString(record), nil
}

// ParseCode decodes a base32 ISCC v1 code string into its header and
// digest.
func ParseCode(s string) (Code, error) {
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %s", ErrInvalidCode, err)
	}
	if len(raw) < 3 {
		return Code{}, fmt.Errorf("%w: code too short", ErrInvalidCode)
	}
	h := unpackHeader([2]byte{raw[0], raw[1]})
	digest := raw[2:]
	if len(digest)*8 != h.Length {
		return Code{}, fmt.Errorf("%w: header declares %d bits, digest has %d", ErrInvalidCode, h.Length, len(digest)*8)
	}
	return Code{Header: h, Digest: digest}, nil
}

// String re-encodes c back to its base32 form.
func (c Code) String() (string, error) {
	return Encode(c.Header, c.Digest)
}

// Distance returns the Hamming distance between two ISCC v1 codes. By
// default MainType, SubType, Version, and Length must all match
// exactly. If mixed is true, only MainType and Version must match, and
// the comparison truncates to the shorter of the two digests.
func Distance(a, b Code, mixed bool) (int, error) {
	if mixed {
		if a.MainType != b.MainType || a.Version != b.Version {
			return 0, fmt.Errorf("%w: main type or version differ", ErrHeaderMismatch)
		}
		n := len(a.Digest)
		if len(b.Digest) < n {
			n = len(b.Digest)
		}
		return hammingDistance(a.Digest[:n], b.Digest[:n]), nil
	}

	if a.MainType != b.MainType || a.SubType != b.SubType || a.Version != b.Version || a.Length != b.Length {
		return 0, fmt.Errorf("%w: code header values do not match", ErrHeaderMismatch)
	}
	return hammingDistance(a.Digest, b.Digest), nil
}

func hammingDistance(a, b []byte) int {
	count := 0
	for i := range a {
		count += bits.OnesCount8(a[i] ^ b[i])
	}
	return count
}
