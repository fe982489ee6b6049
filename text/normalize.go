// Package text implements the Unicode normalization, byte-length trimming,
// and generic sliding-window shingling that feed every ISCC component
// builder.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NFKC applies Unicode compatibility composition, folding compatibility
// variants (ligatures, fullwidth forms, ...) into their canonical
// equivalents. Component builders apply this once to raw title/extra/text
// input before any further processing; Normalize also applies it
// internally, so calling NFKC first is idempotent with Normalize.
func NFKC(s string) string {
	return norm.NFKC.String(s)
}

// Normalize folds text to the canonical form used for shingling: NFKC,
// then NFD, then a category filter, lowercased, whitespace-collapsed,
// and re-composed with NFC.
//
// The filter keeps letters, numbers, symbols, and "other punctuation"
// (category Po, e.g. "!" and "?"); it folds all whitespace — both the
// Z-separator categories and the ASCII/Unicode control whitespace such
// as "\n", "\t", "\r" — to a single ASCII space; everything else
// (combining marks, dash/open/close punctuation, other control and
// format characters) is dropped. This is a superset of "keep only
// L/N/S" as written in the reference algorithm description: that
// narrower rule would strip "!"/"?" and leave control whitespace
// without a word-boundary, which the reference's own worked examples
// (a bare "\n" between words still yields a space; "Hello World ?"
// keeps the "?") contradict.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || isSeparator(r):
			b.WriteRune(' ')
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsNumber(r), unicode.IsSymbol(r), unicode.Is(unicode.Po, r):
			b.WriteRune(r)
		}
	}

	collapsed := strings.Join(strings.Fields(b.String()), " ")
	return norm.NFC.String(collapsed)
}

// isSeparator reports whether r belongs to a Unicode category starting
// with Z (space, line, paragraph separators), which Normalize folds to
// a single ASCII space rather than dropping.
func isSeparator(r rune) bool {
	return unicode.Is(unicode.Zs, r) || unicode.Is(unicode.Zl, r) || unicode.Is(unicode.Zp, r)
}

// Trim returns the longest prefix of s whose UTF-8 encoding is at most
// maxBytes bytes, cutting only on rune boundaries.
func Trim(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	runes := []rune(s)
	for len(string(runes)) > maxBytes {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
