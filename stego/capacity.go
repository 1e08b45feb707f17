package stego

// ImageCapacity reports how many payload bytes the algorithm can hide in the
// carrier. The figure assumes a payload free of escape bytes; each escape in
// the payload costs one extra byte of budget.
func ImageCapacity(c *CarrierImage, alg Algorithm) (int, error) {
	codec := imageCodec(alg)
	if codec == nil {
		return 0, unsupported(alg, KindImage)
	}
	return codec.Capacity(c), nil
}

// AudioCapacity reports how many payload bytes the algorithm can hide in the
// carrier, net of the frame header.
func AudioCapacity(c *CarrierAudio, alg Algorithm) (int, error) {
	codec := audioCodec(alg)
	if codec == nil {
		return 0, unsupported(alg, KindAudio)
	}
	return codec.Capacity(c), nil
}
