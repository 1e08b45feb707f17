package transform

import (
	"math"
	"math/rand"
	"testing"
)

func randomBlock(rng *rand.Rand, lo, hi float64) Block {
	var b Block
	for y := 0; y < BlockSize; y++ {
		for x := 0; x < BlockSize; x++ {
			b[y][x] = lo + rng.Float64()*(hi-lo)
		}
	}
	return b
}

func TestDCT2D_IDCT2D_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		b := randomBlock(rng, -128, 127)
		got := IDCT2D(DCT2D(b))

		for y := 0; y < BlockSize; y++ {
			for x := 0; x < BlockSize; x++ {
				if math.Abs(got[y][x]-b[y][x]) > 1e-9 {
					t.Fatalf("trial %d: [%d][%d] = %v, want %v", trial, y, x, got[y][x], b[y][x])
				}
			}
		}
	}
}

func TestDCT2D_ConstantBlock(t *testing.T) {
	var b Block
	for y := 0; y < BlockSize; y++ {
		for x := 0; x < BlockSize; x++ {
			b[y][x] = 100
		}
	}

	freq := DCT2D(b)

	// Orthonormal DCT of a constant block puts all energy in DC.
	if math.Abs(freq[0][0]-800) > 1e-9 {
		t.Errorf("DC = %v, want 800", freq[0][0])
	}
	for y := 0; y < BlockSize; y++ {
		for x := 0; x < BlockSize; x++ {
			if y == 0 && x == 0 {
				continue
			}
			if math.Abs(freq[y][x]) > 1e-9 {
				t.Errorf("[%d][%d] = %v, want 0", y, x, freq[y][x])
			}
		}
	}
}

func TestQuantize_Dequantize(t *testing.T) {
	tests := []struct {
		name  string
		coeff float64
		step  int
		level int
	}{
		{"zero", 0, 56, 0},
		{"positive", 167.9, 56, 3},
		{"negative", -150, 56, -3},
		{"rounds up", 84.1, 56, 2},
		{"rounds down", 83.9, 56, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.coeff, tt.step); got != tt.level {
				t.Errorf("Quantize(%v, %d) = %d, want %d", tt.coeff, tt.step, got, tt.level)
			}
		})
	}

	if got := Dequantize(3, 56); got != 168 {
		t.Errorf("Dequantize(3, 56) = %v, want 168", got)
	}
	if got := Dequantize(-3, 56); got != -168 {
		t.Errorf("Dequantize(-3, 56) = %v, want -168", got)
	}
}

// A quantized coefficient forced onto the lattice must keep its level after
// the spatial samples are rounded to whole values, since that is the only
// way pixel storage is lossy.
func TestCoefficientParity_SurvivesRounding(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	step := LuminanceQuant[4][3]

	for trial := 0; trial < 100; trial++ {
		b := randomBlock(rng, -32, 31)
		freq := DCT2D(b)

		level := Quantize(freq[4][3], step)
		if trial%2 == 0 {
			level++
		}
		freq[4][3] = Dequantize(level, step)

		spatial := IDCT2D(freq)
		for y := 0; y < BlockSize; y++ {
			for x := 0; x < BlockSize; x++ {
				spatial[y][x] = math.Round(spatial[y][x])
			}
		}

		got := Quantize(DCT2D(spatial)[4][3], step)
		if got != level {
			t.Fatalf("trial %d: level after rounding = %d, want %d", trial, got, level)
		}
	}
}
