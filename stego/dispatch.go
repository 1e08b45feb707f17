package stego

import "fmt"

// ImageCodec is one embedding scheme over image carriers.
type ImageCodec interface {
	Algorithm() Algorithm
	Capacity(*CarrierImage) int
	Embed(*CarrierImage, []byte) (*CarrierImage, error)
	Extract(*CarrierImage) ([]byte, error)
}

// AudioCodec is one embedding scheme over audio carriers.
type AudioCodec interface {
	Algorithm() Algorithm
	Capacity(*CarrierAudio) int
	Embed(*CarrierAudio, []byte) (*CarrierAudio, error)
	Extract(*CarrierAudio) ([]byte, error)
}

func imageCodec(alg Algorithm) ImageCodec {
	switch alg {
	case AlgorithmBitPlane:
		return NewBitPlane()
	case AlgorithmDCT:
		return NewDCTParity()
	case AlgorithmWavelet:
		return NewWaveletParity()
	}
	return nil
}

func audioCodec(alg Algorithm) AudioCodec {
	switch alg {
	case AlgorithmAudioLSB:
		return NewAudioLSB()
	case AlgorithmAudioEcho:
		return NewEchoHiding()
	}
	return nil
}

func unsupported(alg Algorithm, kind CarrierKind) error {
	return fmt.Errorf("%w: %s on %s carrier", ErrUnsupportedCombination, alg, kind)
}

// EncodeImage embeds payload into the carrier with the given algorithm and
// returns the stego copy. The input carrier is never mutated.
func EncodeImage(c *CarrierImage, alg Algorithm, payload []byte) (*CarrierImage, error) {
	codec := imageCodec(alg)
	if codec == nil {
		return nil, unsupported(alg, KindImage)
	}
	return codec.Embed(c, payload)
}

// DecodeImage extracts the payload hidden with the given algorithm.
func DecodeImage(c *CarrierImage, alg Algorithm) ([]byte, error) {
	codec := imageCodec(alg)
	if codec == nil {
		return nil, unsupported(alg, KindImage)
	}
	return codec.Extract(c)
}

// DetectImage tries every image algorithm in fixed order and returns the
// first payload that unframes cleanly, along with the algorithm that
// produced it. On failure the algorithm is AlgorithmUnknown.
func DetectImage(c *CarrierImage) ([]byte, Algorithm, error) {
	for _, alg := range ImageAlgorithms() {
		payload, err := imageCodec(alg).Extract(c)
		if err == nil {
			return payload, alg, nil
		}
	}
	return nil, AlgorithmUnknown, ErrNoHiddenData
}

// EncodeAudio embeds payload into the carrier with the given algorithm and
// returns the stego copy. The input carrier is never mutated.
func EncodeAudio(c *CarrierAudio, alg Algorithm, payload []byte) (*CarrierAudio, error) {
	codec := audioCodec(alg)
	if codec == nil {
		return nil, unsupported(alg, KindAudio)
	}
	return codec.Embed(c, payload)
}

// DecodeAudio extracts the payload hidden with the given algorithm.
func DecodeAudio(c *CarrierAudio, alg Algorithm) ([]byte, error) {
	codec := audioCodec(alg)
	if codec == nil {
		return nil, unsupported(alg, KindAudio)
	}
	return codec.Extract(c)
}

// DetectAudio tries every audio algorithm in fixed order and returns the
// first payload that unframes cleanly. On failure the algorithm is
// AlgorithmUnknown.
func DetectAudio(c *CarrierAudio) ([]byte, Algorithm, error) {
	for _, alg := range AudioAlgorithms() {
		payload, err := audioCodec(alg).Extract(c)
		if err == nil {
			return payload, alg, nil
		}
	}
	return nil, AlgorithmUnknown, ErrNoHiddenData
}
