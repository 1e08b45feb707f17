// Package stego implements the embedding algorithms shared by the image
// and audio pipelines.
package stego

import "fmt"

// Algorithm identifies one embedding scheme. The set is closed: dispatch
// switches over these values and rejects anything else.
type Algorithm uint8

const (
	// AlgorithmBitPlane hides bits in the low bit of each RGB channel byte.
	AlgorithmBitPlane Algorithm = iota
	// AlgorithmDCT hides one bit per 8x8 block in the parity of a quantized
	// mid-frequency DCT coefficient.
	AlgorithmDCT
	// AlgorithmWavelet hides one bit per 8x8 block in the parity of a
	// Haar detail coefficient.
	AlgorithmWavelet
	// AlgorithmAudioLSB hides bits in the low bit of each 16-bit sample.
	AlgorithmAudioLSB
	// AlgorithmAudioEcho hides bits as delayed echo kernels, one bit per
	// segment of samples.
	AlgorithmAudioEcho
)

// AlgorithmUnknown is what the detectors return when no codec claims the
// carrier. It never names a real codec, so it cannot be confused with the
// zero-valued AlgorithmBitPlane.
const AlgorithmUnknown Algorithm = 0xFF

var algorithmNames = map[Algorithm]string{
	AlgorithmBitPlane:  "bitplane",
	AlgorithmDCT:       "dct",
	AlgorithmWavelet:   "wavelet",
	AlgorithmAudioLSB:  "audio-lsb",
	AlgorithmAudioEcho: "audio-echo",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// CarrierKind is the carrier family an algorithm embeds into.
type CarrierKind uint8

const (
	KindImage CarrierKind = iota
	KindAudio
)

func (k CarrierKind) String() string {
	if k == KindAudio {
		return "audio"
	}
	return "image"
}

// Kind returns the carrier family of the algorithm.
func (a Algorithm) Kind() CarrierKind {
	switch a {
	case AlgorithmAudioLSB, AlgorithmAudioEcho:
		return KindAudio
	}
	return KindImage
}

// IsImage reports whether the algorithm embeds into image carriers.
func (a Algorithm) IsImage() bool {
	return a.Kind() == KindImage
}

// IsAudio reports whether the algorithm embeds into audio carriers.
func (a Algorithm) IsAudio() bool {
	return a.Kind() == KindAudio
}

// ParseAlgorithm maps a wire name like "dct" back to its Algorithm value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

// ImageAlgorithms returns the image-family algorithms in detection order.
func ImageAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmBitPlane, AlgorithmDCT, AlgorithmWavelet}
}

// AudioAlgorithms returns the audio-family algorithms in detection order.
func AudioAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmAudioLSB, AlgorithmAudioEcho}
}
