package img

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/Shreyas-TP/Stegohub/stego"
)

func testImage(rng *rand.Rand, width, height int, withAlpha bool) *stego.CarrierImage {
	c := stego.NewCarrierImage(width, height)
	for i := range c.Pix {
		if i%4 == 3 && !withAlpha {
			continue
		}
		c.Pix[i] = uint8(rng.Intn(256))
	}
	return c
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, FormatPNG},
		{"bmp", []byte{'B', 'M', 0x00, 0x00}, FormatBMP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.data)
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := DetectFormat([]byte("GIF89a...")); !errors.Is(err, stego.ErrCarrierDecode) {
		t.Errorf("expected ErrCarrierDecode, got %v", err)
	}
}

func TestEncodeDecode_PNGRoundTrip(t *testing.T) {
	// Translucent pixels included: the straight-alpha pipeline must bring
	// every byte back exactly, or the low-bit planes would be lossy.
	carrier := testImage(rand.New(rand.NewSource(71)), 48, 32, true)

	var buf bytes.Buffer
	if err := Encode(&buf, carrier, FormatPNG); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, format, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if format != FormatPNG {
		t.Errorf("format = %q, want %q", format, FormatPNG)
	}
	if got.Width != 48 || got.Height != 32 {
		t.Fatalf("size = %dx%d, want 48x32", got.Width, got.Height)
	}
	if !bytes.Equal(got.Pix, carrier.Pix) {
		t.Error("pixel data changed across the PNG round trip")
	}
}

func TestEncodeDecode_BMPRoundTrip(t *testing.T) {
	carrier := testImage(rand.New(rand.NewSource(72)), 40, 24, false)

	var buf bytes.Buffer
	if err := Encode(&buf, carrier, FormatBMP); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, format, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if format != FormatBMP {
		t.Errorf("format = %q, want %q", format, FormatBMP)
	}
	if !bytes.Equal(got.Pix, carrier.Pix) {
		t.Error("pixel data changed across the BMP round trip")
	}
}

func TestDecode_CorruptData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"unknown container", []byte("no image here")},
		{"truncated png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0xDE, 0xAD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decode(tt.data); !errors.Is(err, stego.ErrCarrierDecode) {
				t.Errorf("expected ErrCarrierDecode, got %v", err)
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, stego.NewCarrierImage(8, 8), "gif"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestEmbeddedPayload_SurvivesContainer(t *testing.T) {
	tests := []struct {
		name   string
		alg    stego.Algorithm
		format string
	}{
		{"bitplane png", stego.AlgorithmBitPlane, FormatPNG},
		{"bitplane bmp", stego.AlgorithmBitPlane, FormatBMP},
		{"dct png", stego.AlgorithmDCT, FormatPNG},
		{"wavelet png", stego.AlgorithmWavelet, FormatPNG},
	}

	payload := []byte("HELLO")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(73))
			carrier := stego.NewCarrierImage(64, 64)
			for i := range carrier.Pix {
				if i%4 == 3 {
					continue
				}
				carrier.Pix[i] = uint8(96 + rng.Intn(64))
			}

			encoded, err := stego.EncodeImage(carrier, tt.alg, payload)
			if err != nil {
				t.Fatalf("EncodeImage() error = %v", err)
			}

			var buf bytes.Buffer
			if err := Encode(&buf, encoded, tt.format); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			decoded, _, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			got, err := stego.DecodeImage(decoded, tt.alg)
			if err != nil {
				t.Fatalf("DecodeImage() error = %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("payload = %v, want %v", got, payload)
			}
		})
	}
}

func TestPSNR(t *testing.T) {
	carrier := testImage(rand.New(rand.NewSource(74)), 32, 32, false)

	if got := PSNR(carrier, carrier.Clone()); !math.IsInf(got, 1) {
		t.Errorf("PSNR of identical carriers = %v, want +Inf", got)
	}

	// Every RGB byte off by one gives MSE 1.
	offByOne := carrier.Clone()
	for i := range offByOne.Pix {
		if i%4 == 3 {
			continue
		}
		if offByOne.Pix[i] < 255 {
			offByOne.Pix[i]++
		} else {
			offByOne.Pix[i]--
		}
	}
	got := PSNR(carrier, offByOne)
	want := 20 * math.Log10(255)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("PSNR = %v, want %v", got, want)
	}

	if got := PSNR(carrier, stego.NewCarrierImage(8, 8)); got != 0 {
		t.Errorf("PSNR of mismatched sizes = %v, want 0", got)
	}
}

func TestPSNR_AfterEmbedding(t *testing.T) {
	carrier := testImage(rand.New(rand.NewSource(75)), 64, 64, false)

	encoded, err := stego.EncodeImage(carrier, stego.AlgorithmBitPlane, []byte("quality check"))
	if err != nil {
		t.Fatalf("EncodeImage() error = %v", err)
	}

	if got := PSNR(carrier, encoded); got < 40 {
		t.Errorf("PSNR after embedding = %v, want at least 40", got)
	}
}
