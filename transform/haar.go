package transform

// IntBlock is one 8x8 tile of integer sample values.
type IntBlock [BlockSize][BlockSize]int

// HaarForward applies one level of the integer Haar lifting (S-transform) to
// rows, then columns. Averages land in the low half of each axis, differences
// in the high half. Unlike the float Haar, the integer lifting inverts exactly,
// so a parity written into a detail coefficient survives the trip back to
// pixel values.
func HaarForward(b IntBlock) IntBlock {
	for y := 0; y < BlockSize; y++ {
		b[y] = liftPairs(b[y])
	}
	for x := 0; x < BlockSize; x++ {
		var col [BlockSize]int
		for y := 0; y < BlockSize; y++ {
			col[y] = b[y][x]
		}
		col = liftPairs(col)
		for y := 0; y < BlockSize; y++ {
			b[y][x] = col[y]
		}
	}
	return b
}

// HaarInverse undoes HaarForward, columns first, then rows.
func HaarInverse(b IntBlock) IntBlock {
	for x := 0; x < BlockSize; x++ {
		var col [BlockSize]int
		for y := 0; y < BlockSize; y++ {
			col[y] = b[y][x]
		}
		col = unliftPairs(col)
		for y := 0; y < BlockSize; y++ {
			b[y][x] = col[y]
		}
	}
	for y := 0; y < BlockSize; y++ {
		b[y] = unliftPairs(b[y])
	}
	return b
}

func liftPairs(v [BlockSize]int) [BlockSize]int {
	var out [BlockSize]int
	half := BlockSize / 2
	for k := 0; k < half; k++ {
		a, b := v[2*k], v[2*k+1]
		out[k] = (a + b) >> 1
		out[half+k] = a - b
	}
	return out
}

func unliftPairs(v [BlockSize]int) [BlockSize]int {
	var out [BlockSize]int
	half := BlockSize / 2
	for k := 0; k < half; k++ {
		low, high := v[k], v[half+k]
		a := low + ((high + 1) >> 1)
		out[2*k] = a
		out[2*k+1] = a - high
	}
	return out
}
