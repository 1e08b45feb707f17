package stego

// CarrierImage is a decoded image carrier. Pix holds 8-bit straight-alpha
// RGBA values in row-major order, four bytes per pixel, matching
// image.NRGBA layout.
type CarrierImage struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewCarrierImage allocates an opaque black carrier of the given size.
func NewCarrierImage(width, height int) *CarrierImage {
	pix := make([]uint8, width*height*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xFF
	}
	return &CarrierImage{Width: width, Height: height, Pix: pix}
}

// Clone returns an independent copy of the carrier.
func (c *CarrierImage) Clone() *CarrierImage {
	pix := make([]uint8, len(c.Pix))
	copy(pix, c.Pix)
	return &CarrierImage{Width: c.Width, Height: c.Height, Pix: pix}
}

// CarrierAudio is a decoded audio carrier. Samples holds one slice per
// channel, values normalized to [-1, 1]. The codecs embed into the first
// channel and leave the others untouched.
type CarrierAudio struct {
	SampleRate int
	Samples    [][]float64
}

// NewCarrierAudio allocates a silent carrier with the given channel count
// and frames per channel.
func NewCarrierAudio(sampleRate, channels, frames int) *CarrierAudio {
	samples := make([][]float64, channels)
	for ch := range samples {
		samples[ch] = make([]float64, frames)
	}
	return &CarrierAudio{SampleRate: sampleRate, Samples: samples}
}

// Clone returns an independent copy of the carrier.
func (c *CarrierAudio) Clone() *CarrierAudio {
	samples := make([][]float64, len(c.Samples))
	for ch := range c.Samples {
		samples[ch] = make([]float64, len(c.Samples[ch]))
		copy(samples[ch], c.Samples[ch])
	}
	return &CarrierAudio{SampleRate: c.SampleRate, Samples: samples}
}

// Channels returns the channel count.
func (c *CarrierAudio) Channels() int {
	return len(c.Samples)
}

// Frames returns the number of samples per channel.
func (c *CarrierAudio) Frames() int {
	if len(c.Samples) == 0 {
		return 0
	}
	return len(c.Samples[0])
}
