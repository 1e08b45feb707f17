package stego

import "math"

// AudioLSB hides header-framed payload bits in the low bit of successive
// 16-bit PCM samples of the first channel. Other channels pass through
// untouched.
type AudioLSB struct{}

func NewAudioLSB() *AudioLSB {
	return &AudioLSB{}
}

func (a *AudioLSB) Algorithm() Algorithm {
	return AlgorithmAudioLSB
}

// Capacity returns the payload budget in bytes after the frame header.
func (a *AudioLSB) Capacity(c *CarrierAudio) int {
	budget := c.Frames()/8 - headerOverhead
	if budget < 0 {
		return 0
	}
	return budget
}

func (a *AudioLSB) Embed(c *CarrierAudio, payload []byte) (*CarrierAudio, error) {
	framed := FrameHeader(payload)
	available := c.Frames() / 8
	if len(framed) > available {
		return nil, &CapacityError{Algorithm: AlgorithmAudioLSB, Required: len(framed), Available: available}
	}

	bits := bytesToBits(framed)
	out := c.Clone()
	ch := out.Samples[0]
	for i, bit := range bits {
		pcm := PCM16(ch[i])
		if pcm&1 != int(bit) {
			// Step toward zero so the value never leaves int16 range.
			if pcm > 0 {
				pcm--
			} else {
				pcm++
			}
		}
		ch[i] = float64(pcm) / 32767
	}
	return out, nil
}

func (a *AudioLSB) Extract(c *CarrierAudio) ([]byte, error) {
	if c.Channels() == 0 {
		return nil, ErrNoHiddenData
	}
	ch := c.Samples[0]
	bits := make([]byte, 0, len(ch))
	for _, s := range ch {
		bits = append(bits, byte(PCM16(s)&1))
	}
	return UnframeHeader(bitsToBytes(bits))
}

// PCM16 converts a normalized sample to its 16-bit PCM value, the domain the
// low-bit contract is defined over: round(clamp(x, -1, 1) * 32767).
func PCM16(x float64) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int(math.Round(x * 32767))
}
