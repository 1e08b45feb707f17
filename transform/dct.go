// Package transform provides the fixed-size block transforms behind the
// frequency-domain codecs.
package transform

import "math"

// BlockSize is the side length of the square tiles all transforms operate on.
const BlockSize = 8

// Block is one 8x8 tile of sample values.
type Block [BlockSize][BlockSize]float64

// cosTable[k][n] = cos((2n+1)k*pi/16), precomputed for both directions.
var cosTable [BlockSize][BlockSize]float64

// scale holds the orthonormal DCT-II scale factor per frequency.
var scale [BlockSize]float64

func init() {
	for k := 0; k < BlockSize; k++ {
		for n := 0; n < BlockSize; n++ {
			cosTable[k][n] = math.Cos(float64(2*n+1) * float64(k) * math.Pi / (2 * BlockSize))
		}
		scale[k] = math.Sqrt(2.0 / BlockSize)
	}
	scale[0] = math.Sqrt(1.0 / BlockSize)
}

// DCT2D returns the orthonormal two-dimensional DCT-II of b.
func DCT2D(b Block) Block {
	var tmp, out Block
	for y := 0; y < BlockSize; y++ {
		for k := 0; k < BlockSize; k++ {
			var sum float64
			for n := 0; n < BlockSize; n++ {
				sum += b[y][n] * cosTable[k][n]
			}
			tmp[y][k] = scale[k] * sum
		}
	}
	for x := 0; x < BlockSize; x++ {
		for k := 0; k < BlockSize; k++ {
			var sum float64
			for n := 0; n < BlockSize; n++ {
				sum += tmp[n][x] * cosTable[k][n]
			}
			out[k][x] = scale[k] * sum
		}
	}
	return out
}

// IDCT2D inverts DCT2D.
func IDCT2D(b Block) Block {
	var tmp, out Block
	for x := 0; x < BlockSize; x++ {
		for n := 0; n < BlockSize; n++ {
			var sum float64
			for k := 0; k < BlockSize; k++ {
				sum += scale[k] * b[k][x] * cosTable[k][n]
			}
			tmp[n][x] = sum
		}
	}
	for y := 0; y < BlockSize; y++ {
		for n := 0; n < BlockSize; n++ {
			var sum float64
			for k := 0; k < BlockSize; k++ {
				sum += scale[k] * tmp[y][k] * cosTable[k][n]
			}
			out[y][n] = sum
		}
	}
	return out
}

// LuminanceQuant is the JPEG luminance quantization table. The frequency-domain
// codecs quantize coefficients by the step at their embedding position so the
// carried bit survives the round trip through 8-bit pixels.
var LuminanceQuant = [BlockSize][BlockSize]int{
	{16, 11, 10, 16, 24, 40, 51, 61},
	{12, 12, 14, 19, 26, 58, 60, 55},
	{14, 13, 16, 24, 40, 57, 69, 56},
	{14, 17, 22, 29, 51, 87, 80, 62},
	{18, 22, 37, 56, 68, 109, 103, 77},
	{24, 35, 55, 64, 81, 104, 113, 92},
	{49, 64, 78, 87, 103, 121, 120, 101},
	{72, 92, 95, 98, 112, 100, 103, 99},
}

// Quantize maps a coefficient to its integer level for the given step.
func Quantize(c float64, step int) int {
	return int(math.Round(c / float64(step)))
}

// Dequantize maps a quantized level back to a coefficient.
func Dequantize(level, step int) float64 {
	return float64(level * step)
}
