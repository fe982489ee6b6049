package text

import "github.com/iscc-foundation/goiscc/internal/mustassert"

// SlidingWindow returns overlapping width-wide slices of s in index order.
// If len(s) < width, it returns a single slice equal to s. Width must be
// at least 2; this is a programmer invariant, not a runtime input check.
func SlidingWindow(s []rune, width int) [][]rune {
	mustassert.True(width >= 2, "sliding window width must be 2 or bigger, got %d", width)

	n := len(s)
	count := n - width + 1
	if count < 1 {
		count = 1
	}

	out := make([][]rune, 0, count)
	for i := 0; i < count; i++ {
		end := i + width
		if end > n {
			end = n
		}
		out = append(out, s[i:end])
	}
	return out
}

// SlidingWindowStrings is SlidingWindow specialized for []string sequences
// (used for the word-shingle pipeline of Content-ID-Text).
func SlidingWindowStrings(s []string, width int) [][]string {
	mustassert.True(width >= 2, "sliding window width must be 2 or bigger, got %d", width)

	n := len(s)
	count := n - width + 1
	if count < 1 {
		count = 1
	}

	out := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		end := i + width
		if end > n {
			end = n
		}
		out = append(out, s[i:end])
	}
	return out
}
