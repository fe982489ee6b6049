// Package goiscc computes the International Standard Content Code
// (ISCC): a suite of compact, similarity-preserving identifiers derived
// from a digital asset's metadata, content, raw bytes, and cryptographic
// digest.
//
// This package provides convenient top-level wrappers — MetaID,
// ContentIDText, ContentIDImage, DataID, InstanceID, Distance — around
// the lower-level text, simhash, minhash, chunker, imagehash, merkle,
// and codec packages. For fine-grained control over any single stage
// (e.g. running the chunker standalone, or composing a custom simhash),
// use those packages directly.
//
// The kernel is synchronous and holds no shared mutable state: every
// top-level call here is a pure function of its inputs plus the fixed
// global tables (gear table, MinHash permutations, codec alphabets). It
// never logs, never retries, and never returns a partial result — only
// a well-formed code, or an error with enough context to diagnose it.
package goiscc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"slices"
	"strings"

	"github.com/iscc-foundation/goiscc/chunker"
	"github.com/iscc-foundation/goiscc/codec"
	"github.com/iscc-foundation/goiscc/imagehash"
	xxhashint "github.com/iscc-foundation/goiscc/internal/xxhash"
	"github.com/iscc-foundation/goiscc/merkle"
	"github.com/iscc-foundation/goiscc/minhash"
	"github.com/iscc-foundation/goiscc/simhash"
	"github.com/iscc-foundation/goiscc/text"
)

// Version is the only ISCC component version this kernel currently
// supports.
const Version = 0

// Default window and trim sizes, per spec.
const (
	DefaultTrimTitle  = 128
	DefaultTrimExtra  = 4096
	DefaultWindowMeta = 4
	DefaultWindowText = 5
)

// Sentinel errors. Callers can errors.Is against these. They guard the
// public option boundary: WindowMeta/WindowText/TrimTitle/TrimExtra
// feed internal helpers that panic on out-of-range values
// (text.SlidingWindow via mustassert, text.Trim on a negative cap via an
// out-of-range slice index), so out-of-range option
// values are rejected here, before they ever reach those helpers.
var (
	ErrUnsupportedVersion = errors.New("goiscc: unsupported version")
	ErrInvalidWindow      = errors.New("goiscc: window width must be at least 2")
	ErrInvalidTrim        = errors.New("goiscc: trim cap must be non-negative")
)

// ComponentOpts carries the tunable knobs the reference implementation
// exposes beyond its hard-coded defaults.
type ComponentOpts struct {
	TrimTitle  int
	TrimExtra  int
	WindowMeta int
	WindowText int
	Version    int
}

// DefaultOpts returns the spec-mandated default options.
func DefaultOpts() ComponentOpts {
	return ComponentOpts{
		TrimTitle:  DefaultTrimTitle,
		TrimExtra:  DefaultTrimExtra,
		WindowMeta: DefaultWindowMeta,
		WindowText: DefaultWindowText,
		Version:    Version,
	}
}

// Option configures a ComponentOpts value.
type Option func(*ComponentOpts)

// WithTrimTitle overrides the title trim cap, in UTF-8 bytes.
func WithTrimTitle(n int) Option { return func(o *ComponentOpts) { o.TrimTitle = n } }

// WithTrimExtra overrides the extra-metadata trim cap, in UTF-8 bytes.
func WithTrimExtra(n int) Option { return func(o *ComponentOpts) { o.TrimExtra = n } }

// WithWindowMeta overrides the Meta-ID n-gram width.
func WithWindowMeta(n int) Option { return func(o *ComponentOpts) { o.WindowMeta = n } }

// WithWindowText overrides the Content-ID-Text shingle width.
func WithWindowText(n int) Option { return func(o *ComponentOpts) { o.WindowText = n } }

func resolveOpts(opts []Option) (ComponentOpts, error) {
	o := DefaultOpts()
	for _, apply := range opts {
		apply(&o)
	}
	if o.Version != Version {
		return ComponentOpts{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, o.Version)
	}
	if o.WindowMeta < 2 || o.WindowText < 2 {
		return ComponentOpts{}, fmt.Errorf("%w: got WindowMeta=%d, WindowText=%d", ErrInvalidWindow, o.WindowMeta, o.WindowText)
	}
	if o.TrimTitle < 0 || o.TrimExtra < 0 {
		return ComponentOpts{}, fmt.Errorf("%w: got TrimTitle=%d, TrimExtra=%d", ErrInvalidTrim, o.TrimTitle, o.TrimExtra)
	}
	return o, nil
}

// MetaID computes the Meta-ID from title and extra metadata. It returns
// the encoded component code, and the (NFKC-normalized, trimmed) title
// and extra strings that were actually hashed, mirroring the reference
// implementation's three-tuple return.
//
// Inputs that originate as UTF-8 bytes should be converted with
// string(data) before calling.
func MetaID(title, extra string, opts ...Option) (code, trimmedTitle, trimmedExtra string, err error) {
	o, err := resolveOpts(opts)
	if err != nil {
		return "", "", "", err
	}

	title = text.NFKC(title)
	extra = text.NFKC(extra)

	title = text.Trim(title, o.TrimTitle)
	extra = text.Trim(extra, o.TrimExtra)

	concat := strings.TrimSpace(strings.Join([]string{title, extra}, " "))
	normalized := text.Normalize(concat)

	grams := text.SlidingWindow([]rune(normalized), o.WindowMeta)

	digests := make([][]byte, len(grams))
	for i, g := range grams {
		digests[i] = uint64ToBytes(xxhashint.Sum64([]byte(string(g))))
	}

	simhashDigest := simhash.Hash(digests)

	code, err = codec.EncodeComponent(codec.HeadMeta, simhashDigest)
	if err != nil {
		return "", "", "", err
	}
	return code, title, extra, nil
}

// ContentIDText computes the Content-ID-Text of text: NFKC normalize,
// fold via Normalize, split into words, build 5-word shingles (width
// configurable via WithWindowText), hash each with xxHash32, reduce
// with MinHash, fold to two 64-bit halves, and simhash those. partial
// selects the "partial content" header variant.
func ContentIDText(t string, partial bool, opts ...Option) (string, error) {
	o, err := resolveOpts(opts)
	if err != nil {
		return "", err
	}

	t = text.NFKC(t)
	t = text.Normalize(t)
	words := strings.Fields(t)

	shingles := text.SlidingWindowStrings(words, o.WindowText)

	features := make([]uint32, len(shingles))
	for i, sh := range shingles {
		features[i] = xxhashint.Sum32([]byte(strings.Join(sh, " ")))
	}

	register := minhash.Hash(slices.Values(features))
	digest := minhash.Fold(register)

	header := codec.HeadContentText
	if partial {
		header = codec.HeadContentTextPartial
	}
	return codec.EncodeComponent(header, digest)
}

// ContentIDImage computes the Content-ID-Image of a decoded image via
// the DCT perceptual hash pipeline. partial selects the "partial
// content" header variant.
func ContentIDImage(img image.Image, partial bool) (string, error) {
	digest := imagehash.HashBytes(img)

	header := codec.HeadContentImage
	if partial {
		header = codec.HeadContentImagePartial
	}
	return codec.EncodeComponent(header, digest)
}

// DataID computes the Data-ID of a byte stream: content-defined chunk
// it, hash each chunk with xxHash32, reduce with MinHash, fold, and
// simhash.
func DataID(r io.Reader) (string, error) {
	var features []uint32
	for chunk, err := range chunker.Chunks(r) {
		if err != nil {
			return "", fmt.Errorf("goiscc: data-id chunking failed: %w", err)
		}
		features = append(features, xxhashint.Sum32(chunk))
	}

	register := minhash.Hash(slices.Values(features))
	digest := minhash.Fold(register)

	return codec.EncodeComponent(codec.HeadData, digest)
}

// InstanceID computes the Instance-ID of a byte stream: the first 8
// bytes of its Merkle top hash (§4.7), header-prefixed and encoded.
func InstanceID(r io.Reader) (string, error) {
	root, err := merkle.TopHash(r)
	if err != nil {
		return "", fmt.Errorf("goiscc: instance-id merkle build failed: %w", err)
	}
	return codec.EncodeComponent(codec.HeadInstance, root[:8])
}

// Distance returns the Hamming distance between two component codes of
// matching type. See codec.Distance for the mixed-mode semantics.
func Distance(a, b string, mixed bool) (int, error) {
	return codec.Distance(a, b, mixed)
}

func uint64ToBytes(v uint64) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, v)
	return out
}
