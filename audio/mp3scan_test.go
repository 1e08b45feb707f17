package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/Shreyas-TP/Stegohub/stego"
)

// mp3Frame builds one MPEG-1 Layer III frame filled with zero audio data.
// 0xFF 0xFB selects MPEG-1 Layer III without CRC; the third byte carries the
// bitrate index, sample rate index and padding flag.
func mp3Frame(bitrateIndex, sampleRateIndex, padding int) []byte {
	bitrate := mp3BitrateTable[bitrateIndex] * 1000
	sampleRate := mp3SampleRateTable[sampleRateIndex]
	frameLen := (144*bitrate)/sampleRate + padding

	frame := make([]byte, frameLen)
	frame[0] = 0xFF
	frame[1] = 0xFB
	frame[2] = byte(bitrateIndex<<4 | sampleRateIndex<<2 | padding<<1)
	return frame
}

func TestScanMP3_FrameWalk(t *testing.T) {
	var data []byte
	for range 3 {
		data = append(data, mp3Frame(9, 0, 0)...) // 128kbps, 44.1kHz
	}

	info, err := ScanMP3(data)
	if err != nil {
		t.Fatalf("ScanMP3() error = %v", err)
	}

	if info.Frames != 3 {
		t.Errorf("Frames = %d, want 3", info.Frames)
	}
	if info.Bitrate != 128000 {
		t.Errorf("Bitrate = %d, want 128000", info.Bitrate)
	}
	if info.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.SampleRate)
	}
	wantDuration := float64(3*1152) / 44100
	if math.Abs(info.Duration-wantDuration) > 1e-9 {
		t.Errorf("Duration = %v, want %v", info.Duration, wantDuration)
	}
	if info.HasID3v2 {
		t.Error("HasID3v2 = true for a bare stream")
	}
}

func TestScanMP3_PaddedFrames(t *testing.T) {
	var data []byte
	data = append(data, mp3Frame(9, 0, 1)...)
	data = append(data, mp3Frame(9, 0, 1)...)

	info, err := ScanMP3(data)
	if err != nil {
		t.Fatalf("ScanMP3() error = %v", err)
	}
	if info.Frames != 2 {
		t.Errorf("Frames = %d, want 2", info.Frames)
	}
}

func TestScanMP3_SkipsID3v2(t *testing.T) {
	// 10-byte ID3v2 header declaring a 16-byte syncsafe body.
	data := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 16}
	data = append(data, make([]byte, 16)...)
	data = append(data, mp3Frame(9, 0, 0)...)

	info, err := ScanMP3(data)
	if err != nil {
		t.Fatalf("ScanMP3() error = %v", err)
	}
	if !info.HasID3v2 {
		t.Error("HasID3v2 = false, want true")
	}
	if info.Frames != 1 {
		t.Errorf("Frames = %d, want 1", info.Frames)
	}
}

func TestScanMP3_ResyncsPastGarbage(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	data = append(data, mp3Frame(9, 0, 0)...)

	info, err := ScanMP3(data)
	if err != nil {
		t.Fatalf("ScanMP3() error = %v", err)
	}
	if info.Frames != 1 {
		t.Errorf("Frames = %d, want 1", info.Frames)
	}
}

func TestScanMP3_MixedBitrates(t *testing.T) {
	var data []byte
	data = append(data, mp3Frame(9, 0, 0)...)  // 128kbps
	data = append(data, mp3Frame(14, 0, 0)...) // 320kbps

	info, err := ScanMP3(data)
	if err != nil {
		t.Fatalf("ScanMP3() error = %v", err)
	}
	if info.Frames != 2 {
		t.Errorf("Frames = %d, want 2", info.Frames)
	}
	if info.Bitrate != 224000 {
		t.Errorf("Bitrate = %d, want 224000", info.Bitrate)
	}
}

// Headers with a valid sync word but a different MPEG version or layer must
// not be measured with the MPEG-1 Layer III tables.
func TestScanMP3_RejectsOtherVersionsAndLayers(t *testing.T) {
	tests := []struct {
		name  string
		byte1 byte
	}{
		{"mpeg2 layer3", 0xF3},
		{"mpeg2.5 layer3", 0xE3},
		{"mpeg1 layer2", 0xFD},
		{"mpeg1 layer1", 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append([]byte{0xFF, tt.byte1, 0x90, 0x00}, make([]byte, 64)...)
			if _, err := ScanMP3(data); !errors.Is(err, stego.ErrCarrierDecode) {
				t.Errorf("expected ErrCarrierDecode, got %v", err)
			}

			// Resync must still find a real frame past the foreign header.
			mixed := append([]byte{0xFF, tt.byte1, 0x90, 0x00}, mp3Frame(9, 0, 0)...)
			info, err := ScanMP3(mixed)
			if err != nil {
				t.Fatalf("ScanMP3() error = %v", err)
			}
			if info.Frames != 1 {
				t.Errorf("Frames = %d, want 1", info.Frames)
			}
		})
	}
}

func TestScanMP3_NoFrames(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"garbage", []byte("this is not audio at all")},
		{"id3 only", []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ScanMP3(tt.data); !errors.Is(err, stego.ErrCarrierDecode) {
				t.Errorf("expected ErrCarrierDecode, got %v", err)
			}
		})
	}
}
