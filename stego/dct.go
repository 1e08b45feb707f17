package stego

import (
	"math"

	"github.com/Shreyas-TP/Stegohub/transform"
)

// The carried bit lives in the parity of the quantized coefficient at this
// frequency. Mid-frequency: low enough to survive pixel rounding, high
// enough to stay invisible.
const (
	dctRow = 4
	dctCol = 3
)

// The coefficient rewrite moves the embedding coefficient by at most
// step/2 + step, and every basis value is at most 1/4, so no pixel moves by
// more than 21 before rounding. Keeping the block this far from the rails
// guarantees the write-back never clips, which would corrupt the parity.
const dctMargin = 22

// DCTParity hides one bit per 8x8 block and channel in the parity of a
// quantized DCT coefficient. Blocks run channel by channel, then left to
// right, top to bottom; trailing pixels that do not fill a block are left
// alone.
type DCTParity struct{}

func NewDCTParity() *DCTParity {
	return &DCTParity{}
}

func (d *DCTParity) Algorithm() Algorithm {
	return AlgorithmDCT
}

// Capacity returns the payload budget in bytes for an escape-free payload.
func (d *DCTParity) Capacity(c *CarrierImage) int {
	budget := blockBudget(c) - sentinelOverhead
	if budget < 0 {
		return 0
	}
	return budget
}

func (d *DCTParity) Embed(c *CarrierImage, payload []byte) (*CarrierImage, error) {
	framed := FrameSentinel(payload)
	available := blockBudget(c)
	if len(framed) > available {
		return nil, &CapacityError{Algorithm: AlgorithmDCT, Required: len(framed), Available: available}
	}

	bits := bytesToBits(framed)
	out := c.Clone()
	stride := c.Width * 4
	blocksX := c.Width / transform.BlockSize
	blocksY := c.Height / transform.BlockSize
	step := transform.LuminanceQuant[dctRow][dctCol]

	bitIndex := 0
	for channel := 0; channel < 3 && bitIndex < len(bits); channel++ {
		for by := 0; by < blocksY && bitIndex < len(bits); by++ {
			for bx := 0; bx < blocksX && bitIndex < len(bits); bx++ {
				x0, y0 := bx*transform.BlockSize, by*transform.BlockSize
				block := transform.ExtractBlock(out.Pix, stride, x0, y0, channel)
				block = shiftBlock(clampBlock(block, dctMargin, 255-dctMargin), -128)
				freq := transform.DCT2D(block)

				coeff := freq[dctRow][dctCol]
				level := transform.Quantize(coeff, step)
				if level&1 != int(bits[bitIndex]) {
					level = flipParity(coeff, level, step)
				}
				freq[dctRow][dctCol] = transform.Dequantize(level, step)

				transform.WriteBlock(out.Pix, stride, x0, y0, channel, shiftBlock(transform.IDCT2D(freq), 128))
				bitIndex++
			}
		}
	}
	return out, nil
}

func (d *DCTParity) Extract(c *CarrierImage) ([]byte, error) {
	stride := c.Width * 4
	blocksX := c.Width / transform.BlockSize
	blocksY := c.Height / transform.BlockSize
	step := transform.LuminanceQuant[dctRow][dctCol]

	bits := make([]byte, 0, 3*blocksX*blocksY)
	for channel := 0; channel < 3; channel++ {
		for by := 0; by < blocksY; by++ {
			for bx := 0; bx < blocksX; bx++ {
				x0, y0 := bx*transform.BlockSize, by*transform.BlockSize
				block := shiftBlock(transform.ExtractBlock(c.Pix, stride, x0, y0, channel), -128)
				freq := transform.DCT2D(block)
				level := transform.Quantize(freq[dctRow][dctCol], step)
				bits = append(bits, byte(level&1))
			}
		}
	}
	return UnframeSentinel(bitsToBytes(bits))
}

// blockBudget is the framed-byte budget shared by the block codecs: one bit
// per full 8x8 block per RGB channel.
func blockBudget(c *CarrierImage) int {
	blocks := (c.Width / transform.BlockSize) * (c.Height / transform.BlockSize)
	return 3 * blocks / 8
}

func clampBlock(b transform.Block, lo, hi float64) transform.Block {
	for y := range b {
		for x := range b[y] {
			if b[y][x] < lo {
				b[y][x] = lo
			} else if b[y][x] > hi {
				b[y][x] = hi
			}
		}
	}
	return b
}

func shiftBlock(b transform.Block, delta float64) transform.Block {
	for y := range b {
		for x := range b[y] {
			b[y][x] += delta
		}
	}
	return b
}

// flipParity moves the level to whichever odd/even neighbor sits closer to
// the raw coefficient.
func flipParity(coeff float64, level, step int) int {
	up := level + 1
	down := level - 1
	if math.Abs(coeff-transform.Dequantize(up, step)) < math.Abs(coeff-transform.Dequantize(down, step)) {
		return up
	}
	return down
}
