package stego

import "github.com/Shreyas-TP/Stegohub/transform"

// The carried bit lives in the parity of the first diagonal-detail (HH)
// coefficient of the single-level Haar decomposition.
const (
	haarRow = 4
	haarCol = 4
)

// WaveletParity hides one bit per 8x8 block and channel in the parity of a
// Haar detail coefficient. It shares block order and capacity with the DCT
// codec; the integer lifting makes the round trip exact instead of merely
// rounding-stable.
type WaveletParity struct{}

func NewWaveletParity() *WaveletParity {
	return &WaveletParity{}
}

func (w *WaveletParity) Algorithm() Algorithm {
	return AlgorithmWavelet
}

// Capacity returns the payload budget in bytes for an escape-free payload.
func (w *WaveletParity) Capacity(c *CarrierImage) int {
	budget := blockBudget(c) - sentinelOverhead
	if budget < 0 {
		return 0
	}
	return budget
}

func (w *WaveletParity) Embed(c *CarrierImage, payload []byte) (*CarrierImage, error) {
	framed := FrameSentinel(payload)
	available := blockBudget(c)
	if len(framed) > available {
		return nil, &CapacityError{Algorithm: AlgorithmWavelet, Required: len(framed), Available: available}
	}

	bits := bytesToBits(framed)
	out := c.Clone()
	stride := c.Width * 4
	blocksX := c.Width / transform.BlockSize
	blocksY := c.Height / transform.BlockSize

	bitIndex := 0
	for channel := 0; channel < 3 && bitIndex < len(bits); channel++ {
		for by := 0; by < blocksY && bitIndex < len(bits); by++ {
			for bx := 0; bx < blocksX && bitIndex < len(bits); bx++ {
				x0, y0 := bx*transform.BlockSize, by*transform.BlockSize
				block := transform.ExtractIntBlock(out.Pix, stride, x0, y0, channel)

				// The detail coefficient is built from the block's top-left
				// 2x2 quad. Keeping those pixels one step inside the range
				// guarantees the parity nudge survives the inverse.
				for y := 0; y < 2; y++ {
					for x := 0; x < 2; x++ {
						if block[y][x] < 1 {
							block[y][x] = 1
						} else if block[y][x] > 254 {
							block[y][x] = 254
						}
					}
				}

				freq := transform.HaarForward(block)
				if freq[haarRow][haarCol]&1 != int(bits[bitIndex]) {
					if freq[haarRow][haarCol] > 0 {
						freq[haarRow][haarCol]--
					} else {
						freq[haarRow][haarCol]++
					}
				}
				transform.WriteIntBlock(out.Pix, stride, x0, y0, channel, transform.HaarInverse(freq))
				bitIndex++
			}
		}
	}
	return out, nil
}

func (w *WaveletParity) Extract(c *CarrierImage) ([]byte, error) {
	stride := c.Width * 4
	blocksX := c.Width / transform.BlockSize
	blocksY := c.Height / transform.BlockSize

	bits := make([]byte, 0, 3*blocksX*blocksY)
	for channel := 0; channel < 3; channel++ {
		for by := 0; by < blocksY; by++ {
			for bx := 0; bx < blocksX; bx++ {
				x0, y0 := bx*transform.BlockSize, by*transform.BlockSize
				freq := transform.HaarForward(transform.ExtractIntBlock(c.Pix, stride, x0, y0, channel))
				bits = append(bits, byte(freq[haarRow][haarCol]&1))
			}
		}
	}
	return UnframeSentinel(bitsToBytes(bits))
}
