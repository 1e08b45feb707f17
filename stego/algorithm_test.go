package stego

import "testing"

func TestParseAlgorithm_RoundTrip(t *testing.T) {
	names := []string{"bitplane", "dct", "wavelet", "audio-lsb", "audio-echo"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			alg, err := ParseAlgorithm(name)
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q) error = %v", name, err)
			}
			if alg.String() != name {
				t.Errorf("String() = %q, want %q", alg.String(), name)
			}
		})
	}
}

func TestParseAlgorithm_Unknown(t *testing.T) {
	for _, name := range []string{"", "lsb", "DCT", "echo"} {
		if _, err := ParseAlgorithm(name); err == nil {
			t.Errorf("ParseAlgorithm(%q) expected error", name)
		}
	}
}

func TestAlgorithm_Kind(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		kind CarrierKind
	}{
		{AlgorithmBitPlane, KindImage},
		{AlgorithmDCT, KindImage},
		{AlgorithmWavelet, KindImage},
		{AlgorithmAudioLSB, KindAudio},
		{AlgorithmAudioEcho, KindAudio},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			if got := tt.alg.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if tt.alg.IsImage() != (tt.kind == KindImage) {
				t.Errorf("IsImage() inconsistent with Kind()")
			}
			if tt.alg.IsAudio() != (tt.kind == KindAudio) {
				t.Errorf("IsAudio() inconsistent with Kind()")
			}
		})
	}
}

func TestAlgorithm_StringUnknown(t *testing.T) {
	if got := Algorithm(9).String(); got != "algorithm(9)" {
		t.Errorf("String() = %q, want %q", got, "algorithm(9)")
	}
}

func TestAlgorithmFamilies(t *testing.T) {
	for _, alg := range ImageAlgorithms() {
		if !alg.IsImage() {
			t.Errorf("%s listed as image algorithm but is not", alg)
		}
	}
	for _, alg := range AudioAlgorithms() {
		if !alg.IsAudio() {
			t.Errorf("%s listed as audio algorithm but is not", alg)
		}
	}
	if got := len(ImageAlgorithms()) + len(AudioAlgorithms()); got != 5 {
		t.Errorf("algorithm count = %d, want 5", got)
	}
}
