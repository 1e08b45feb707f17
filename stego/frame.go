package stego

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

// Image-family frames end with an escape/terminator pair. Payload bytes equal
// to the escape are doubled so any byte value can ride through.
const (
	frameEscape     = 0x1B
	frameTerminator = 0x03

	// sentinelOverhead is the terminator cost in bytes for a payload that
	// contains no escape bytes.
	sentinelOverhead = 2
)

// Audio-family frames carry an 8-byte header: a 4-byte magic followed by the
// payload length as a big-endian uint32.
const headerOverhead = 8

var audioMagic = []byte("STEG")

// FrameSentinel wraps payload for the image-family codecs: escape bytes are
// doubled and an escape/terminator pair marks the end.
func FrameSentinel(payload []byte) []byte {
	framed := make([]byte, 0, len(payload)+sentinelOverhead)
	for _, b := range payload {
		if b == frameEscape {
			framed = append(framed, frameEscape)
		}
		framed = append(framed, b)
	}
	return append(framed, frameEscape, frameTerminator)
}

// UnframeSentinel walks an extracted byte stream until the terminator pair.
// A stream that runs out before the terminator, or that pairs an escape with
// an unknown byte, is a bit plane that never carried a frame.
func UnframeSentinel(stream []byte) ([]byte, error) {
	payload := make([]byte, 0, len(stream))
	for i := 0; i < len(stream); i++ {
		b := stream[i]
		if b != frameEscape {
			payload = append(payload, b)
			continue
		}
		i++
		if i >= len(stream) {
			return nil, ErrNoHiddenData
		}
		switch stream[i] {
		case frameEscape:
			payload = append(payload, frameEscape)
		case frameTerminator:
			return payload, nil
		default:
			return nil, ErrNoHiddenData
		}
	}
	return nil, ErrNoHiddenData
}

// FrameHeader wraps payload for the audio-family codecs.
func FrameHeader(payload []byte) []byte {
	framed := make([]byte, headerOverhead, headerOverhead+len(payload))
	copy(framed, audioMagic)
	binary.BigEndian.PutUint32(framed[4:], uint32(len(payload)))
	return append(framed, payload...)
}

// UnframeHeader validates the magic and length of an extracted byte stream
// and returns the payload. The payload must decode as UTF-8; anything else
// means the carrier was re-encoded or the wrong variant was tried.
func UnframeHeader(stream []byte) ([]byte, error) {
	if len(stream) < headerOverhead {
		return nil, ErrNoHiddenData
	}
	if !bytes.Equal(stream[:4], audioMagic) {
		return nil, ErrNoHiddenData
	}
	length := binary.BigEndian.Uint32(stream[4:8])
	if int64(length) > int64(len(stream)-headerOverhead) {
		return nil, ErrCorruptPayload
	}
	payload := make([]byte, length)
	copy(payload, stream[headerOverhead:headerOverhead+int(length)])
	if !utf8.Valid(payload) {
		return nil, ErrCorruptPayload
	}
	return payload, nil
}
