package imagehash

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Gray) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, c)
		}
	}
	return img
}

func gradientImage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x * 255) / w)})
		}
	}
	return img
}

func TestHashDeterministic(t *testing.T) {
	img := gradientImage(64, 64)
	require.Equal(t, Hash(img), Hash(img))
}

func TestHashBytesShape(t *testing.T) {
	img := gradientImage(64, 64)
	out := HashBytes(img)
	require.Len(t, out, 8)
}

func TestHashDiffersForDifferentImages(t *testing.T) {
	a := solidImage(64, 64, color.Gray{Y: 10})
	b := gradientImage(64, 64)
	require.NotEqual(t, Hash(a), Hash(b))
}

func TestHashSolidImageSetsDCBit(t *testing.T) {
	// A perfectly flat image has a large DC coefficient and every other
	// frequency at (near) zero, so the median of the corner is (near)
	// zero and the DC coefficient is strictly greater than it: the most
	// significant bit (coefficient 0) is set.
	img := solidImage(64, 64, color.Gray{Y: 128})
	require.Equal(t, uint64(1)<<63, Hash(img)&(uint64(1)<<63))
}

func TestDCT2DOutputShape(t *testing.T) {
	var grid [gridSize][gridSize]float64
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = float64(r*gridSize + c)
		}
	}
	out := dct2D(grid)
	require.Len(t, out, gridSize)
	require.Len(t, out[0], gridSize)
}

func TestMedianEvenAndOdd(t *testing.T) {
	require.Equal(t, 3.0, median([]float64{1, 5, 3, 2, 4}))
	require.Equal(t, 2.5, median([]float64{1, 2, 3, 4}))
}
