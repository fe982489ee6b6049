// Package codec implements the legacy typed base58 codec (L8): a
// one-byte header prepended to an 8-byte digest, encoded with a fixed
// 58-character alphabet (1-byte input to 2 characters, 8-byte input to
// 11, the 9-byte record to 13), plus Hamming-distance helpers over
// decoded codes.
package codec

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// Sentinel errors. Callers can errors.Is against these.
var (
	ErrInvalidDigestLength = errors.New("codec: digest must be 1, 8, or 9 bytes")
	ErrInvalidCodeLength   = errors.New("codec: code must be 2, 11, or 13 characters")
	ErrInvalidCharacter    = errors.New("codec: illegal character in code")
	ErrHeaderMismatch      = errors.New("codec: header values do not match")
)

var (
	big58  = big.NewInt(58)
	big256 = big.NewInt(256)
)

// EncodeDigest encodes a 1-, 8-, or 9-byte digest into its base58 code.
// A 9-byte digest (header + 8-byte body) is split and encoded as two
// parts (2 + 11 = 13 characters); a 1-byte or 8-byte digest is encoded
// directly (2 or 11 characters).
func EncodeDigest(digest []byte) (string, error) {
	switch len(digest) {
	case 9:
		head, err := EncodeDigest(digest[:1])
		if err != nil {
			return "", err
		}
		body, err := EncodeDigest(digest[1:])
		if err != nil {
			return "", err
		}
		return head + body, nil
	case 1, 8:
		return encodeFixed(digest), nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrInvalidDigestLength, len(digest))
	}
}

// EncodeComponent prepends header to digest and encodes the resulting
// 9-byte record, returning the 13-character component code.
func EncodeComponent(header byte, digest []byte) (string, error) {
	record := append([]byte{header}, digest...)
	return EncodeDigest(record)
}

func encodeFixed(digest []byte) string {
	l := len(digest)
	value := new(big.Int).SetBytes(digest)
	numvalues := new(big.Int).Exp(big256, big.NewInt(int64(l)), nil)

	var chars []byte
	mod := new(big.Int)
	zero := big.NewInt(0)

	for numvalues.Cmp(zero) > 0 {
		value.DivMod(value, big58, mod)
		chars = append(chars, Alphabet[mod.Int64()])
		numvalues.Div(numvalues, big58)
	}

	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars)
}

// DecodeCode decodes a 2-, 11-, or 13-character code back into its raw
// digest bytes (1, 8, or 9 bytes respectively). It is the inverse of
// EncodeDigest for every legal input.
func DecodeCode(code string) ([]byte, error) {
	switch len(code) {
	case 13:
		head, err := DecodeCode(code[:2])
		if err != nil {
			return nil, err
		}
		body, err := DecodeCode(code[2:])
		if err != nil {
			return nil, err
		}
		return append(head, body...), nil
	case 2:
		return decodeFixed(code, 1)
	case 11:
		return decodeFixed(code, 8)
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCodeLength, len(code))
	}
}

func decodeFixed(code string, byteLen int) ([]byte, error) {
	value := new(big.Int)
	numvalues := big.NewInt(1)

	for i := len(code) - 1; i >= 0; i-- {
		digit, ok := inverse[code[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, code[i])
		}
		term := new(big.Int).Mul(big.NewInt(int64(digit)), numvalues)
		value.Add(value, term)
		numvalues.Mul(numvalues, big58)
	}

	out := make([]byte, byteLen)
	value.FillBytes(out)
	return out, nil
}

// Distance returns the Hamming distance between the digests of two
// component codes. By default both codes must share the exact same
// header byte (same main type, sub type, version, and length); if
// mixed is true, only the header's main type (high nibble) must agree,
// and the comparison truncates to the shorter of the two digests.
func Distance(a, b string, mixed bool) (int, error) {
	ra, err := DecodeCode(a)
	if err != nil {
		return 0, err
	}
	rb, err := DecodeCode(b)
	if err != nil {
		return 0, err
	}

	headerA, digestA := ra[0], ra[1:]
	headerB, digestB := rb[0], rb[1:]

	if mixed {
		if headerA&0xf0 != headerB&0xf0 {
			return 0, fmt.Errorf("%w: main types %#x and %#x differ", ErrHeaderMismatch, headerA&0xf0, headerB&0xf0)
		}
		n := len(digestA)
		if len(digestB) < n {
			n = len(digestB)
		}
		return hammingDistance(digestA[:n], digestB[:n]), nil
	}

	if headerA != headerB {
		return 0, fmt.Errorf("%w: %s vs %s", ErrHeaderMismatch, headerName(headerA), headerName(headerB))
	}
	if len(digestA) != len(digestB) {
		return 0, fmt.Errorf("%w: digest lengths %d and %d differ", ErrHeaderMismatch, len(digestA), len(digestB))
	}
	return hammingDistance(digestA, digestB), nil
}

// hammingDistance returns the popcount of the XOR of two equal-length
// byte slices.
func hammingDistance(a, b []byte) int {
	count := 0
	for i := range a {
		count += bits.OnesCount8(a[i] ^ b[i])
	}
	return count
}
