// Package imagehash implements the perceptual DCT image hash (L6):
// luminance conversion, bicubic-family resampling to 32x32, a separable
// 2-D type-II DCT, and an 8x8 low-frequency median hash.
package imagehash

import (
	"encoding/binary"
	"image"
	"math"
	"sort"

	"golang.org/x/image/draw"
)

// gridSize is the resampled luminance grid's side length.
const gridSize = 32

// cornerSize is the side length of the retained low-frequency DCT
// corner (and therefore sqrt of the output bit count).
const cornerSize = 8

// Hash computes the 64-bit perceptual hash of img: convert to
// single-channel luminance, resample to 32x32, apply a separable 2-D
// DCT-II, take the upper-left 8x8 corner, and set the i-th bit counting
// from the most significant (bit 63-i) iff coefficient i (row-major) is
// strictly greater than the corner's median.
func Hash(img image.Image) uint64 {
	gray := toGray32(img)
	matrix := dct2D(gray)

	corner := make([]float64, 0, cornerSize*cornerSize)
	for row := 0; row < cornerSize; row++ {
		corner = append(corner, matrix[row][:cornerSize]...)
	}

	med := median(corner)

	var hash uint64
	for i, v := range corner {
		if v > med {
			hash |= 1 << uint(63-i)
		}
	}
	return hash
}

// HashBytes is Hash, packed as an 8-byte big-endian digest.
func HashBytes(img image.Image) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, Hash(img))
	return out
}

// toGray32 converts img to a 32x32 luminance grid using a bicubic-family
// resampler (draw.CatmullRom), then reads it out in row-major order.
func toGray32(img image.Image) [gridSize][gridSize]float64 {
	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)

	resized := image.NewGray(image.Rect(0, 0, gridSize, gridSize))
	draw.CatmullRom.Scale(resized, resized.Bounds(), gray, gray.Bounds(), draw.Src, nil)

	var out [gridSize][gridSize]float64
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			out[row][col] = float64(resized.GrayAt(col, row).Y)
		}
	}
	return out
}

// dct1D applies the type-II DCT defined in the spec:
// X[k] = 2 * sum_{n=0}^{N-1} x[n] * cos(pi*k*(2n+1)/(2N))
func dct1D(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for i, v := range x {
			sum += v * math.Cos(math.Pi*float64(k)*float64(2*i+1)/float64(2*n))
		}
		out[k] = 2 * sum
	}
	return out
}

// dct2D applies dct1D row-by-row, then to each column of the result.
func dct2D(grid [gridSize][gridSize]float64) [gridSize][gridSize]float64 {
	var rows [gridSize][gridSize]float64
	for r := 0; r < gridSize; r++ {
		transformed := dct1D(grid[r][:])
		copy(rows[r][:], transformed)
	}

	var out [gridSize][gridSize]float64
	for c := 0; c < gridSize; c++ {
		col := make([]float64, gridSize)
		for r := 0; r < gridSize; r++ {
			col[r] = rows[r][c]
		}
		transformed := dct1D(col)
		for r := 0; r < gridSize; r++ {
			out[r][c] = transformed[r]
		}
	}
	return out
}

// median returns the statistical median of values, matching Python's
// statistics.median (average of the two middle elements for even length).
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
