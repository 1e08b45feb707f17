package stego

// BitPlane embeds payload bits into the low bit of every R, G and B byte of
// an RGBA carrier, in buffer order. Alpha bytes are skipped so opacity never
// changes.
type BitPlane struct{}

func NewBitPlane() *BitPlane {
	return &BitPlane{}
}

func (bp *BitPlane) Algorithm() Algorithm {
	return AlgorithmBitPlane
}

// Capacity returns the payload budget in bytes for a payload free of escape
// bytes. Stuffed escapes eat into the budget one byte each.
func (bp *BitPlane) Capacity(c *CarrierImage) int {
	budget := c.Width*c.Height*3/8 - sentinelOverhead
	if budget < 0 {
		return 0
	}
	return budget
}

// Embed returns a copy of the carrier with the framed payload written into
// its low bits. The carrier is left untouched when the payload does not fit.
func (bp *BitPlane) Embed(c *CarrierImage, payload []byte) (*CarrierImage, error) {
	framed := FrameSentinel(payload)
	available := c.Width * c.Height * 3 / 8
	if len(framed) > available {
		return nil, &CapacityError{Algorithm: AlgorithmBitPlane, Required: len(framed), Available: available}
	}

	bits := bytesToBits(framed)
	out := c.Clone()
	bitIndex := 0
	for i := range out.Pix {
		if bitIndex >= len(bits) {
			break
		}
		if i%4 == 3 {
			continue
		}
		out.Pix[i] = out.Pix[i]&^1 | bits[bitIndex]
		bitIndex++
	}
	return out, nil
}

// Extract reads the low bits back in buffer order and unframes them.
func (bp *BitPlane) Extract(c *CarrierImage) ([]byte, error) {
	bits := make([]byte, 0, c.Width*c.Height*3)
	for i, b := range c.Pix {
		if i%4 == 3 {
			continue
		}
		bits = append(bits, b&1)
	}
	return UnframeSentinel(bitsToBytes(bits))
}
