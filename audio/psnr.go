package audio

import (
	"math"

	"github.com/Shreyas-TP/Stegohub/stego"
)

// PSNR measures the distortion between two carriers across all channels in
// decibels. Identical carriers score +Inf; mismatched shapes score 0.
func PSNR(original, modified *stego.CarrierAudio) float64 {
	if original.Channels() != modified.Channels() || original.Channels() == 0 {
		return 0.0
	}

	var mse float64
	var count int
	for ch := range original.Samples {
		a, b := original.Samples[ch], modified.Samples[ch]
		if len(a) != len(b) {
			return 0.0
		}
		for i := range a {
			diff := a[i] - b[i]
			mse += diff * diff
		}
		count += len(a)
	}
	if count == 0 {
		return 0.0
	}
	mse /= float64(count)

	if mse == 0 {
		return math.Inf(1)
	}

	// For normalized float audio (-1.0 to 1.0), MAX_SIGNAL_VALUE = 1.0
	return 20 * math.Log10(1.0/math.Sqrt(mse))
}

// CalculatePSNRFloat64 calculates PSNR for a single channel of float64 samples.
func CalculatePSNRFloat64(original, modified []float64) float64 {
	if len(original) != len(modified) || len(original) == 0 {
		return 0.0
	}

	var mse float64
	for i := range original {
		diff := original[i] - modified[i]
		mse += diff * diff
	}
	mse /= float64(len(original))

	if mse == 0 {
		return math.Inf(1)
	}
	return 20 * math.Log10(1.0/math.Sqrt(mse))
}

// ValidatePSNR reports whether the distortion stays above the threshold.
func ValidatePSNR(psnr float64, threshold float64) bool {
	if math.IsInf(psnr, 1) {
		return true
	}
	return psnr >= threshold
}
