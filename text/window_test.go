package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlidingWindow(t *testing.T) {
	t.Run("basic overlap", func(t *testing.T) {
		s := []rune("abcdef")
		got := SlidingWindow(s, 3)
		require.Len(t, got, 4)
		require.Equal(t, "abc", string(got[0]))
		require.Equal(t, "bcd", string(got[1]))
		require.Equal(t, "cde", string(got[2]))
		require.Equal(t, "def", string(got[3]))
	})

	t.Run("shorter than width yields single slice", func(t *testing.T) {
		s := []rune("ab")
		got := SlidingWindow(s, 5)
		require.Len(t, got, 1)
		require.Equal(t, "ab", string(got[0]))
	})

	t.Run("empty input yields single empty slice", func(t *testing.T) {
		got := SlidingWindow(nil, 4)
		require.Len(t, got, 1)
		require.Empty(t, got[0])
	})

	t.Run("exact width yields single slice", func(t *testing.T) {
		s := []rune("abcd")
		got := SlidingWindow(s, 4)
		require.Len(t, got, 1)
		require.Equal(t, "abcd", string(got[0]))
	})

	t.Run("panics below minimum width", func(t *testing.T) {
		require.Panics(t, func() { SlidingWindow([]rune("abc"), 1) })
	})
}

func TestSlidingWindowStrings(t *testing.T) {
	words := []string{"the", "quick", "brown", "fox", "jumps"}

	got := SlidingWindowStrings(words, 3)
	require.Len(t, got, 3)
	require.Equal(t, []string{"the", "quick", "brown"}, got[0])
	require.Equal(t, []string{"quick", "brown", "fox"}, got[1])
	require.Equal(t, []string{"brown", "fox", "jumps"}, got[2])

	short := SlidingWindowStrings(words[:2], 5)
	require.Len(t, short, 1)
	require.Equal(t, words[:2], short[0])
}
