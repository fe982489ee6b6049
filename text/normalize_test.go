package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "diacritics, punctuation, control chars, no-break space",
			in:   "  Iñtërnâtiôn\nàlizætiøn☃💩 –  is a tric\t ky   thing!\r",
			want: "internation alizætiøn☃💩 is a tric ky thing!",
		},
		{
			name: "collapses internal whitespace and keeps punctuation",
			in:   "  Hello  World ? ",
			want: "hello world ?",
		},
		{
			name: "bare newline is a word boundary",
			in:   "Hello\nWorld",
			want: "hello world",
		},
		{
			name: "single space collapses to empty",
			in:   " ",
			want: "",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  Iñtërnâtiôn\nàlizætiøn☃💩 –  is a tric\t ky   thing!\r",
		"Hello, World!",
		"",
		"日本語のテキスト",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		require.Equal(t, once, twice, "Normalize must be idempotent for %q", in)
	}
}

func TestTrimByteCap(t *testing.T) {
	t.Run("two-byte rune repeated", func(t *testing.T) {
		in := stringsRepeat("ü", 128)
		out := Trim(in, 128)
		require.LessOrEqual(t, len(out), 128)
		require.Equal(t, 64, len([]rune(out)))
		require.Equal(t, 128, len(out))
	})

	t.Run("three-byte rune repeated", func(t *testing.T) {
		in := stringsRepeat("驩", 128)
		out := Trim(in, 128)
		require.LessOrEqual(t, len(out), 128)
		require.Equal(t, 42, len([]rune(out)))
		require.Equal(t, 126, len(out))
	})

	t.Run("mixed-width text", func(t *testing.T) {
		in := stringsRepeat("Iñtërnâtiônàlizætiøn☃💩", 6)
		out := Trim(in, 128)
		require.LessOrEqual(t, len(out), 128)
		require.Equal(t, 85, len([]rune(out)))
		require.Equal(t, 128, len(out))
	})

	t.Run("already within cap", func(t *testing.T) {
		in := "short"
		require.Equal(t, in, Trim(in, 128))
	})
}

func stringsRepeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
