package stego

// Echo hiding parameters: one bit per segment, encoded as the delay of a
// faint copy of the original signal mixed back in.
const (
	echoSegment   = 1024
	echoDelayZero = 64
	echoDelayOne  = 128
	echoAmplitude = 0.4
)

// EchoHiding hides header-framed payload bits as echo kernels in the first
// channel, one bit per segment of samples. Decoding compares the segment
// autocorrelation at the two candidate delays, so it survives small
// amplitude changes that would strip a low-bit plane. Silent or degenerate
// segments carry no usable correlation and read back as zero bits.
type EchoHiding struct{}

func NewEchoHiding() *EchoHiding {
	return &EchoHiding{}
}

func (e *EchoHiding) Algorithm() Algorithm {
	return AlgorithmAudioEcho
}

// Capacity returns the payload budget in bytes after the frame header.
func (e *EchoHiding) Capacity(c *CarrierAudio) int {
	budget := c.Frames()/echoSegment/8 - headerOverhead
	if budget < 0 {
		return 0
	}
	return budget
}

func (e *EchoHiding) Embed(c *CarrierAudio, payload []byte) (*CarrierAudio, error) {
	framed := FrameHeader(payload)
	available := c.Frames() / echoSegment / 8
	if len(framed) > available {
		return nil, &CapacityError{Algorithm: AlgorithmAudioEcho, Required: len(framed), Available: available}
	}

	bits := bytesToBits(framed)
	out := c.Clone()
	dry := c.Samples[0]
	wet := out.Samples[0]
	for seg, bit := range bits {
		delay := echoDelayZero
		if bit == 1 {
			delay = echoDelayOne
		}
		start := seg * echoSegment
		for n := start; n < start+echoSegment; n++ {
			if n < delay {
				continue
			}
			v := wet[n] + echoAmplitude*dry[n-delay]
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			wet[n] = v
		}
	}
	return out, nil
}

func (e *EchoHiding) Extract(c *CarrierAudio) ([]byte, error) {
	if c.Channels() == 0 {
		return nil, ErrNoHiddenData
	}
	ch := c.Samples[0]
	segments := len(ch) / echoSegment
	bits := make([]byte, 0, segments)
	for seg := 0; seg < segments; seg++ {
		start := seg * echoSegment
		var bit byte
		if autocorrelate(ch, start, echoDelayOne) > autocorrelate(ch, start, echoDelayZero) {
			bit = 1
		}
		bits = append(bits, bit)
	}
	return UnframeHeader(bitsToBytes(bits))
}

// autocorrelate sums x[n]*x[n-delay] over one segment starting at start.
func autocorrelate(x []float64, start, delay int) float64 {
	var sum float64
	for n := start; n < start+echoSegment; n++ {
		if n < delay {
			continue
		}
		sum += x[n] * x[n-delay]
	}
	return sum
}
