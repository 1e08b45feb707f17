package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/Shreyas-TP/Stegohub/stego"
)

// MP3Info summarizes the frame structure of an MPEG-1 Layer III stream.
// The PCM decoder hides these numbers, so callers who want bitrate or frame
// counts get them from a header walk.
type MP3Info struct {
	Frames     int
	Bitrate    int // bits per second, averaged over frames
	SampleRate int
	Duration   float64
	HasID3v2   bool
}

// MPEG-1 Layer III lookup tables.
var (
	mp3BitrateTable = [16]int{
		0, 32, 40, 48, 56, 64, 80, 96,
		112, 128, 160, 192, 224, 256, 320, 0,
	}
	mp3SampleRateTable = [4]int{44100, 48000, 32000, 0}
)

const mp3SamplesPerFrame = 1152

// ScanMP3 walks the frame headers of an MP3 stream. Garbage between frames
// is skipped one byte at a time, the way players resync.
func ScanMP3(data []byte) (*MP3Info, error) {
	info := &MP3Info{}
	pos := 0

	// Skip a leading ID3v2 tag; its size field is syncsafe.
	if len(data) >= 10 && string(data[:3]) == "ID3" {
		info.HasID3v2 = true
		size := int(data[6]&0x7F)<<21 | int(data[7]&0x7F)<<14 | int(data[8]&0x7F)<<7 | int(data[9]&0x7F)
		pos = 10 + size
	}

	var bitrateSum int64
	for pos+4 <= len(data) {
		header := binary.BigEndian.Uint32(data[pos:])
		if header&0xFFE00000 != 0xFFE00000 {
			pos++
			continue
		}
		// Only MPEG-1 Layer III: the bitrate and sample-rate tables and the
		// samples-per-frame constant are version and layer specific.
		if (header>>19)&0x3 != 0x3 || (header>>17)&0x3 != 0x1 {
			pos++
			continue
		}

		bitrate := mp3BitrateTable[(header>>12)&0xF] * 1000
		sampleRate := mp3SampleRateTable[(header>>10)&0x3]
		if bitrate == 0 || sampleRate == 0 {
			pos++
			continue
		}
		padding := int((header >> 9) & 0x1)
		frameLen := (144*bitrate)/sampleRate + padding

		info.Frames++
		info.SampleRate = sampleRate
		bitrateSum += int64(bitrate)
		pos += frameLen
	}

	if info.Frames == 0 {
		return nil, fmt.Errorf("%w: no MP3 frames found", stego.ErrCarrierDecode)
	}
	info.Bitrate = int(bitrateSum / int64(info.Frames))
	info.Duration = float64(info.Frames*mp3SamplesPerFrame) / float64(info.SampleRate)
	return info, nil
}
