package stego

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestWaveletParity_EmbedExtract_RoundTrip(t *testing.T) {
	payload := []byte("HELLO")

	tests := []struct {
		name    string
		carrier *CarrierImage
	}{
		{"random", randomImage(rand.New(rand.NewSource(31)), 64, 64)},
		{"all black", NewCarrierImage(64, 64)},
		{"all white", grayImage(64, 64, 255)},
		{"flat gray", grayImage(64, 64, 128)},
	}

	codec := NewWaveletParity()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := codec.Embed(tt.carrier, payload)
			if err != nil {
				t.Fatalf("Embed() error = %v", err)
			}
			got, err := codec.Extract(out)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("payload = %v, want %v", got, payload)
			}
		})
	}
}

func TestWaveletParity_Payloads(t *testing.T) {
	allBytes := make([]byte, 16)
	for i := range allBytes {
		allBytes[i] = byte(0xF0 + i)
	}

	tests := []struct {
		name    string
		payload []byte
	}{
		{"empty", []byte{}},
		{"escape bytes", []byte{0x1B, 0x03, 0x1B}},
		{"binary", allBytes},
		{"near capacity", bytes.Repeat([]byte("y"), 20)},
	}

	codec := NewWaveletParity()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carrier := randomImage(rand.New(rand.NewSource(32)), 64, 64)

			out, err := codec.Embed(carrier, tt.payload)
			if err != nil {
				t.Fatalf("Embed() error = %v", err)
			}
			got, err := codec.Extract(out)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if !bytes.Equal(got, tt.payload) {
				t.Errorf("payload = %v, want %v", got, tt.payload)
			}
		})
	}
}

func TestWaveletParity_Capacity(t *testing.T) {
	// Shares the block budget with the DCT codec.
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		{"64x64", 64, 64, 22},
		{"60x60", 60, 60, 16},
		{"7x7", 7, 7, 0},
	}

	codec := NewWaveletParity()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCarrierImage(tt.width, tt.height)
			if got := codec.Capacity(c); got != tt.want {
				t.Errorf("Capacity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWaveletParity_CapacityExceeded(t *testing.T) {
	codec := NewWaveletParity()
	carrier := randomImage(rand.New(rand.NewSource(33)), 16, 16)
	snapshot := append([]byte(nil), carrier.Pix...)

	_, err := codec.Embed(carrier, nil)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if !bytes.Equal(carrier.Pix, snapshot) {
		t.Error("carrier was mutated by a failed embed")
	}
}

// Embedding touches at most the saturation clamp plus a one-step nudge, so
// no pixel may move further than two values.
func TestWaveletParity_DistortionBound(t *testing.T) {
	carrier := randomImage(rand.New(rand.NewSource(34)), 64, 64)

	out, err := NewWaveletParity().Embed(carrier, bytes.Repeat([]byte("z"), 20))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	for i := range carrier.Pix {
		diff := int(out.Pix[i]) - int(carrier.Pix[i])
		if diff < -2 || diff > 2 {
			t.Fatalf("pixel %d moved by %d", i, diff)
		}
	}
}

func TestWaveletParity_CleanCarrier(t *testing.T) {
	_, err := NewWaveletParity().Extract(NewCarrierImage(64, 64))
	if !errors.Is(err, ErrNoHiddenData) {
		t.Errorf("expected ErrNoHiddenData, got %v", err)
	}
}
