package stego

// bytesToBits expands data into one byte per bit, most significant bit first.
func bytesToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

// bitsToBytes packs bits back into bytes, dropping any trailing partial byte.
func bitsToBytes(bits []byte) []byte {
	bytes := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b = (b << 1) | (bits[i+j] & 1)
		}
		bytes = append(bytes, b)
	}
	return bytes
}
