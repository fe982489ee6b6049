// Package codec32 implements the newer, header-packing ISCC v1 codec
// referenced in spec.md §4.8's design note: a typed header — main type,
// sub type, version, and digest bit-length — packed into a 2-byte
// prefix, followed by the digest, and encoded with base32. The semantic
// contract is identical to the legacy codec package: a typed header
// followed by a fixed-length digest.
package codec32

import (
	"errors"
	"fmt"
)

// MainType identifies which ISCC component kind a code belongs to.
type MainType uint8

// SubType further distinguishes codes of the same MainType (e.g. text
// vs. image Content-IDs, full vs. partial).
type SubType uint8

const (
	MainTypeMeta MainType = iota
	MainTypeContent
	MainTypeData
	MainTypeInstance
)

const (
	SubTypeNone SubType = iota
	SubTypeText
	SubTypeTextPartial
	SubTypeImage
	SubTypeImagePartial
)

// ErrUnsupportedLength is returned when a digest's bit length isn't a
// multiple of 32, the granularity the packed header's length field can
// represent.
var ErrUnsupportedLength = errors.New("codec32: digest length must be a positive multiple of 32 bits")

// Header is the parsed form of the 2-byte packed header: main type and
// sub type in the first byte, version and bit-length code in the
// second.
type Header struct {
	MainType MainType
	SubType  SubType
	Version  uint8
	Length   int // digest length in bits
}

// pack encodes h as its 2-byte wire form.
func (h Header) pack() ([2]byte, error) {
	if h.Length <= 0 || h.Length%32 != 0 || h.Length/32 > 16 {
		return [2]byte{}, fmt.Errorf("%w: got %d", ErrUnsupportedLength, h.Length)
	}
	lengthCode := uint8(h.Length/32 - 1)
	return [2]byte{
		uint8(h.MainType)<<4 | uint8(h.SubType),
		h.Version<<4 | lengthCode,
	}, nil
}

// unpackHeader decodes the 2-byte packed header form.
func unpackHeader(b [2]byte) Header {
	return Header{
		MainType: MainType(b[0] >> 4),
		SubType:  SubType(b[0] & 0x0f),
		Version:  b[1] >> 4,
		Length:   (int(b[1]&0x0f) + 1) * 32,
	}
}
