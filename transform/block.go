package transform

import "math"

// ExtractBlock reads the 8x8 tile of one channel (0=R, 1=G, 2=B) whose
// top-left pixel sits at (x0, y0) in a flat RGBA buffer with the given
// row stride in bytes.
func ExtractBlock(pix []uint8, stride, x0, y0, channel int) Block {
	var b Block
	for y := 0; y < BlockSize; y++ {
		row := (y0+y)*stride + x0*4 + channel
		for x := 0; x < BlockSize; x++ {
			b[y][x] = float64(pix[row+x*4])
		}
	}
	return b
}

// WriteBlock rounds the tile to whole values, clamps to [0, 255] and stores
// it back into the buffer.
func WriteBlock(pix []uint8, stride, x0, y0, channel int, b Block) {
	for y := 0; y < BlockSize; y++ {
		row := (y0+y)*stride + x0*4 + channel
		for x := 0; x < BlockSize; x++ {
			v := math.Round(b[y][x])
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			pix[row+x*4] = uint8(v)
		}
	}
}

// ExtractIntBlock is ExtractBlock for the integer transforms.
func ExtractIntBlock(pix []uint8, stride, x0, y0, channel int) IntBlock {
	var b IntBlock
	for y := 0; y < BlockSize; y++ {
		row := (y0+y)*stride + x0*4 + channel
		for x := 0; x < BlockSize; x++ {
			b[y][x] = int(pix[row+x*4])
		}
	}
	return b
}

// WriteIntBlock clamps the tile to [0, 255] and stores it back.
func WriteIntBlock(pix []uint8, stride, x0, y0, channel int, b IntBlock) {
	for y := 0; y < BlockSize; y++ {
		row := (y0+y)*stride + x0*4 + channel
		for x := 0; x < BlockSize; x++ {
			v := b[y][x]
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			pix[row+x*4] = uint8(v)
		}
	}
}
