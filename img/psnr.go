package img

import (
	"math"

	"github.com/Shreyas-TP/Stegohub/stego"
)

// PSNR measures the distortion between two carriers over their RGB bytes in
// decibels. Identical carriers score +Inf; mismatched sizes score 0.
func PSNR(original, modified *stego.CarrierImage) float64 {
	if len(original.Pix) != len(modified.Pix) || len(original.Pix) == 0 {
		return 0.0
	}

	var mse float64
	var count int
	for i := range original.Pix {
		if i%4 == 3 {
			continue
		}
		diff := float64(original.Pix[i]) - float64(modified.Pix[i])
		mse += diff * diff
		count++
	}
	mse /= float64(count)

	if mse == 0 {
		return math.Inf(1)
	}

	// PSNR = 20 * log10(MAX_SIGNAL_VALUE / sqrt(MSE)), 255 for 8-bit channels
	return 20 * math.Log10(255.0/math.Sqrt(mse))
}
