// Package audio adapts WAV, MP3 and FLAC containers to the carrier buffers
// the codecs work on. Output is always PCM WAV; re-encoding into a lossy
// container would strip the embedded bits.
package audio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aler9/writerseeker"
	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mewkiz/flac"
	"github.com/tosone/minimp3"

	"github.com/Shreyas-TP/Stegohub/models"
	"github.com/Shreyas-TP/Stegohub/stego"
)

// Container names understood by Decode.
const (
	FormatWAV  = "wav"
	FormatMP3  = "mp3"
	FormatFLAC = "flac"
)

type AudioDecoder struct{}

func NewAudioDecoder() *AudioDecoder {
	return &AudioDecoder{}
}

// DetectFormat sniffs the container from the leading bytes.
func (ad *AudioDecoder) DetectFormat(data []byte) (string, error) {
	switch {
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return FormatWAV, nil
	case bytes.HasPrefix(data, []byte("fLaC")):
		return FormatFLAC, nil
	case bytes.HasPrefix(data, []byte("ID3")),
		len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		return FormatMP3, nil
	}
	return "", fmt.Errorf("%w: unsupported audio container", stego.ErrCarrierDecode)
}

// Decode sniffs the container and parses it into a carrier.
func (ad *AudioDecoder) Decode(data []byte) (*stego.CarrierAudio, *models.AudioMetadata, error) {
	format, err := ad.DetectFormat(data)
	if err != nil {
		return nil, nil, err
	}
	switch format {
	case FormatWAV:
		return ad.DecodeWAV(data)
	case FormatFLAC:
		return ad.DecodeFLAC(data)
	default:
		return ad.DecodeMP3(data)
	}
}

// DecodeWAV parses a PCM WAV file into a carrier.
func (ad *AudioDecoder) DecodeWAV(data []byte) (*stego.CarrierAudio, *models.AudioMetadata, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", stego.ErrCarrierDecode, err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, nil, fmt.Errorf("%w: WAV file carries no PCM format", stego.ErrCarrierDecode)
	}

	channels := buf.Format.NumChannels
	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	frames := len(buf.Data) / channels

	carrier := stego.NewCarrierAudio(buf.Format.SampleRate, channels, frames)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			carrier.Samples[ch][i] = normalizeSample(buf.Data[i*channels+ch], bitDepth)
		}
	}

	metadata := &models.AudioMetadata{
		Format:     FormatWAV,
		SampleRate: buf.Format.SampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
		Duration:   float64(frames) / float64(buf.Format.SampleRate),
		TotalBytes: len(data),
	}
	return carrier, metadata, nil
}

// DecodeMP3 decodes an MP3 stream into a carrier. Frame statistics come from
// a header scan since the PCM decoder does not expose them.
func (ad *AudioDecoder) DecodeMP3(mp3Data []byte) (*stego.CarrierAudio, *models.AudioMetadata, error) {
	decoder, pcm, err := minimp3.DecodeFull(mp3Data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", stego.ErrCarrierDecode, err)
	}
	defer decoder.Close()

	if decoder.Channels <= 0 || decoder.SampleRate <= 0 {
		return nil, nil, fmt.Errorf("%w: MP3 stream carries no audio", stego.ErrCarrierDecode)
	}

	// pcm holds little-endian 16-bit samples, interleaved
	frames := len(pcm) / 2 / decoder.Channels
	carrier := stego.NewCarrierAudio(decoder.SampleRate, decoder.Channels, frames)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < decoder.Channels; ch++ {
			off := (i*decoder.Channels + ch) * 2
			v := int(int16(pcm[off]) | int16(pcm[off+1])<<8)
			carrier.Samples[ch][i] = normalizeSample(v, 16)
		}
	}

	metadata := &models.AudioMetadata{
		Format:     FormatMP3,
		SampleRate: decoder.SampleRate,
		Channels:   decoder.Channels,
		BitDepth:   16,
		Duration:   float64(frames) / float64(decoder.SampleRate),
		TotalBytes: len(mp3Data),
	}
	if info, err := ScanMP3(mp3Data); err == nil {
		metadata.Bitrate = info.Bitrate
	}
	return carrier, metadata, nil
}

// DecodeFLAC parses a FLAC stream into a carrier.
func (ad *AudioDecoder) DecodeFLAC(data []byte) (*stego.CarrierAudio, *models.AudioMetadata, error) {
	stream, err := flac.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", stego.ErrCarrierDecode, err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)
	if channels <= 0 {
		return nil, nil, fmt.Errorf("%w: FLAC stream carries no audio", stego.ErrCarrierDecode)
	}

	samples := make([][]float64, channels)
	for ch := range samples {
		samples[ch] = make([]float64, 0, info.NSamples)
	}
	for {
		frame, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", stego.ErrCarrierDecode, err)
		}
		if err := frame.Parse(); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", stego.ErrCarrierDecode, err)
		}
		for ch, subframe := range frame.Subframes {
			if ch >= channels {
				break
			}
			for _, sample := range subframe.Samples {
				samples[ch] = append(samples[ch], normalizeSample(int(sample), bitDepth))
			}
		}
	}

	carrier := &stego.CarrierAudio{SampleRate: int(info.SampleRate), Samples: samples}
	metadata := &models.AudioMetadata{
		Format:     FormatFLAC,
		SampleRate: int(info.SampleRate),
		Channels:   channels,
		BitDepth:   bitDepth,
		Duration:   float64(carrier.Frames()) / float64(info.SampleRate),
		TotalBytes: len(data),
	}
	return carrier, metadata, nil
}

// EncodeWAV writes the carrier as a 16-bit PCM WAV file, carrying any tags
// into the LIST-INFO chunk.
func (ad *AudioDecoder) EncodeWAV(c *stego.CarrierAudio, tags *models.AudioTags) ([]byte, error) {
	channels := c.Channels()
	if channels == 0 {
		return nil, fmt.Errorf("carrier has no audio channels")
	}
	frames := c.Frames()

	samples := make([]int, 0, frames*channels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			samples = append(samples, stego.PCM16(c.Samples[ch][i]))
		}
	}
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: channels, SampleRate: c.SampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}

	ws := &writerseeker.WriterSeeker{}
	encoder := wav.NewEncoder(ws, c.SampleRate, 16, channels, 1)
	if tags != nil {
		encoder.Metadata = &wav.Metadata{
			Title:        tags.Title,
			Artist:       tags.Artist,
			Product:      tags.Album,
			Genre:        tags.Genre,
			CreationDate: tags.Year,
		}
	}

	if err := encoder.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to encode WAV: %v", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to close WAV encoder: %v", err)
	}

	wavData, err := io.ReadAll(ws.Reader())
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV data: %v", err)
	}
	return wavData, nil
}

// normalizeSample maps an integer PCM sample to [-1, 1]. WAV stores 8-bit
// PCM unsigned; everything wider is signed.
func normalizeSample(v, bitDepth int) float64 {
	var s float64
	if bitDepth == 8 {
		s = (float64(v) - 128) / 127
	} else {
		if bitDepth <= 0 || bitDepth > 32 {
			bitDepth = 16
		}
		s = float64(v) / float64(int64(1)<<(bitDepth-1)-1)
	}
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}
