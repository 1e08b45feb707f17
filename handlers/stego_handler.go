package handlers

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreyas-TP/Stegohub/audio"
	"github.com/Shreyas-TP/Stegohub/crypto"
	"github.com/Shreyas-TP/Stegohub/img"
	"github.com/Shreyas-TP/Stegohub/models"
	"github.com/Shreyas-TP/Stegohub/stego"
)

// StegoHandler serves the encode, decode and inspection endpoints. Carriers
// arrive as multipart uploads; the family (image or audio) is sniffed from
// the file content, never from its name.
type StegoHandler struct {
	audioDecoder *audio.AudioDecoder
	journal      *ActivityLog
	started      time.Time
}

func NewStegoHandler(journal *ActivityLog) *StegoHandler {
	return &StegoHandler{
		audioDecoder: audio.NewAudioDecoder(),
		journal:      journal,
		started:      time.Now(),
	}
}

// EncodeMessage hides a payload inside an uploaded carrier and streams the
// modified carrier back. When a key is supplied the payload is sealed with
// AES-GCM and base64-wrapped first, which also keeps the embedded bytes
// valid UTF-8 for the audio algorithms.
func (h *StegoHandler) EncodeMessage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil { // 32MB limit
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Failed to parse form data",
		})
		return
	}

	carrierData, carrierName, err := formFileBytes(c, "carrier")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Carrier file is required",
		})
		return
	}

	payload, err := requestPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	if key := c.PostForm("key"); key != "" {
		if err := crypto.ValidateKey(key); err != nil {
			c.JSON(http.StatusBadRequest, models.StegoResponse{
				Success: false,
				Message: fmt.Sprintf("Invalid key: %v", err),
			})
			return
		}
		sealed, err := crypto.NewPayloadCipher(key).Encrypt(payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.StegoResponse{
				Success: false,
				Message: "Encryption failed",
			})
			return
		}
		payload = []byte(base64.StdEncoding.EncodeToString(sealed))
	}

	algName := c.PostForm("algorithm")

	if format, err := img.DetectFormat(carrierData); err == nil {
		h.encodeImage(c, carrierData, carrierName, format, algName, payload)
		return
	}
	if format, err := h.audioDecoder.DetectFormat(carrierData); err == nil {
		h.encodeAudio(c, carrierData, carrierName, format, algName, payload)
		return
	}

	c.JSON(http.StatusBadRequest, models.StegoResponse{
		Success: false,
		Message: "Unsupported carrier format: expected PNG, BMP, WAV, MP3 or FLAC",
	})
}

func (h *StegoHandler) encodeImage(c *gin.Context, data []byte, name, format, algName string, payload []byte) {
	alg := stego.AlgorithmBitPlane
	if algName != "" {
		parsed, err := stego.ParseAlgorithm(algName)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.StegoResponse{
				Success: false,
				Message: fmt.Sprintf("Unknown algorithm: %s", algName),
			})
			return
		}
		alg = parsed
	}

	carrier, _, err := img.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to decode image: %v", err),
		})
		return
	}

	capacity, err := stego.ImageCapacity(carrier, alg)
	if err != nil {
		c.JSON(statusForError(err), models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Encoding failed: %v", err),
		})
		return
	}

	encoded, err := stego.EncodeImage(carrier, alg, payload)
	if err != nil {
		c.JSON(statusForError(err), models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Encoding failed: %v", err),
		})
		return
	}

	psnr := img.PSNR(carrier, encoded)

	var buf bytes.Buffer
	if err := img.Encode(&buf, encoded, format); err != nil {
		c.JSON(http.StatusInternalServerError, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to encode output image: %v", err),
		})
		return
	}

	outName := outputFilename(name, "_stego", format)
	h.journal.Record("encode", alg.String(), "image",
		fmt.Sprintf("%d byte payload into %s", len(payload), outName))

	sum := sha256.Sum256(buf.Bytes())
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outName))
	c.Header("Content-Type", mimeForImage(format))
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Header("X-Stego-Algorithm", alg.String())
	c.Header("X-Stego-Capacity", strconv.Itoa(capacity))
	c.Header("X-Stego-PSNR", fmt.Sprintf("%.2f", psnr))
	c.Header("X-Stego-Digest", hex.EncodeToString(sum[:]))

	c.Data(http.StatusOK, mimeForImage(format), buf.Bytes())
}

func (h *StegoHandler) encodeAudio(c *gin.Context, data []byte, name, format, algName string, payload []byte) {
	alg := stego.AlgorithmAudioLSB
	if algName != "" {
		parsed, err := stego.ParseAlgorithm(algName)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.StegoResponse{
				Success: false,
				Message: fmt.Sprintf("Unknown algorithm: %s", algName),
			})
			return
		}
		alg = parsed
	}

	carrier, _, err := h.audioDecoder.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to decode audio: %v", err),
		})
		return
	}

	capacity, err := stego.AudioCapacity(carrier, alg)
	if err != nil {
		c.JSON(statusForError(err), models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Encoding failed: %v", err),
		})
		return
	}

	encoded, err := stego.EncodeAudio(carrier, alg, payload)
	if err != nil {
		c.JSON(statusForError(err), models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Encoding failed: %v", err),
		})
		return
	}

	psnr := audio.PSNR(carrier, encoded)

	// Tags survive the container switch; the samples never go back through
	// a lossy encoder because that would strip the embedded bits.
	var tags *models.AudioTags
	if format == audio.FormatMP3 {
		tags = audio.ReadID3Tags(data)
	}

	out, err := h.audioDecoder.EncodeWAV(encoded, tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to encode output audio: %v", err),
		})
		return
	}

	outName := outputFilename(name, "_stego", "wav")
	h.journal.Record("encode", alg.String(), "audio",
		fmt.Sprintf("%d byte payload into %s", len(payload), outName))

	sum := sha256.Sum256(out)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outName))
	c.Header("Content-Type", "audio/wav")
	c.Header("Content-Length", strconv.Itoa(len(out)))
	c.Header("X-Stego-Algorithm", alg.String())
	c.Header("X-Stego-Capacity", strconv.Itoa(capacity))
	c.Header("X-Stego-PSNR", fmt.Sprintf("%.2f", psnr))
	c.Header("X-Stego-Digest", hex.EncodeToString(sum[:]))

	c.Data(http.StatusOK, "audio/wav", out)
}

// DecodeMessage recovers a hidden payload from an uploaded carrier. With
// algorithm "auto" (or no algorithm at all) each algorithm of the carrier's
// family is tried in order until one yields a well-formed payload.
func (h *StegoHandler) DecodeMessage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil { // 32MB limit
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Failed to parse form data",
		})
		return
	}

	carrierData, _, err := formFileBytes(c, "carrier")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Carrier file is required",
		})
		return
	}

	algName := c.PostForm("algorithm")
	key := c.PostForm("key")

	if _, err := img.DetectFormat(carrierData); err == nil {
		h.decodeImage(c, carrierData, algName, key)
		return
	}
	if _, err := h.audioDecoder.DetectFormat(carrierData); err == nil {
		h.decodeAudio(c, carrierData, algName, key)
		return
	}

	c.JSON(http.StatusBadRequest, models.StegoResponse{
		Success: false,
		Message: "Unsupported carrier format: expected PNG, BMP, WAV, MP3 or FLAC",
	})
}

func (h *StegoHandler) decodeImage(c *gin.Context, data []byte, algName, key string) {
	carrier, _, err := img.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to decode image: %v", err),
		})
		return
	}

	var (
		payload []byte
		alg     stego.Algorithm
	)
	if algName == "" || algName == "auto" {
		payload, alg, err = stego.DetectImage(carrier)
	} else {
		alg, err = stego.ParseAlgorithm(algName)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.StegoResponse{
				Success: false,
				Message: fmt.Sprintf("Unknown algorithm: %s", algName),
			})
			return
		}
		payload, err = stego.DecodeImage(carrier, alg)
	}
	if err != nil {
		c.JSON(statusForError(err), models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Extraction failed: %v", err),
		})
		return
	}

	h.finishDecode(c, payload, alg, key, "image")
}

func (h *StegoHandler) decodeAudio(c *gin.Context, data []byte, algName, key string) {
	carrier, _, err := h.audioDecoder.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to decode audio: %v", err),
		})
		return
	}

	var (
		payload []byte
		alg     stego.Algorithm
	)
	if algName == "" || algName == "auto" {
		payload, alg, err = stego.DetectAudio(carrier)
	} else {
		alg, err = stego.ParseAlgorithm(algName)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.StegoResponse{
				Success: false,
				Message: fmt.Sprintf("Unknown algorithm: %s", algName),
			})
			return
		}
		payload, err = stego.DecodeAudio(carrier, alg)
	}
	if err != nil {
		c.JSON(statusForError(err), models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Extraction failed: %v", err),
		})
		return
	}

	h.finishDecode(c, payload, alg, key, "audio")
}

func (h *StegoHandler) finishDecode(c *gin.Context, payload []byte, alg stego.Algorithm, key, kind string) {
	if key != "" {
		raw, err := base64.StdEncoding.DecodeString(string(payload))
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, models.StegoResponse{
				Success: false,
				Message: "Decryption failed: payload is not base64-wrapped ciphertext",
			})
			return
		}
		plain, err := crypto.NewPayloadCipher(key).Decrypt(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, models.StegoResponse{
				Success: false,
				Message: fmt.Sprintf("Decryption failed: %v", err),
			})
			return
		}
		payload = plain
	}

	h.journal.Record("decode", alg.String(), kind,
		fmt.Sprintf("%d bytes recovered", len(payload)))

	sum := sha256.Sum256(payload)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", "attachment; filename=recovered_payload.bin")
	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Length", strconv.Itoa(len(payload)))
	c.Header("X-Stego-Algorithm", alg.String())
	c.Header("X-Stego-Digest", hex.EncodeToString(sum[:]))

	c.Data(http.StatusOK, "application/octet-stream", payload)
}

// Capacity reports, for every algorithm of the carrier's family, how many
// payload bytes the uploaded carrier can hold.
func (h *StegoHandler) Capacity(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil { // 32MB limit
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Failed to parse form data",
		})
		return
	}

	carrierData, _, err := formFileBytes(c, "carrier")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Carrier file is required",
		})
		return
	}

	if _, err := img.DetectFormat(carrierData); err == nil {
		carrier, _, err := img.Decode(carrierData)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.StegoResponse{
				Success: false,
				Message: fmt.Sprintf("Failed to decode image: %v", err),
			})
			return
		}
		caps := make(map[string]int, len(stego.ImageAlgorithms()))
		for _, alg := range stego.ImageAlgorithms() {
			if n, err := stego.ImageCapacity(carrier, alg); err == nil {
				caps[alg.String()] = n
			}
		}
		c.JSON(http.StatusOK, models.CapacityResponse{
			Success:    true,
			Kind:       stego.KindImage.String(),
			Capacities: caps,
		})
		return
	}

	if _, err := h.audioDecoder.DetectFormat(carrierData); err == nil {
		carrier, _, err := h.audioDecoder.Decode(carrierData)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.StegoResponse{
				Success: false,
				Message: fmt.Sprintf("Failed to decode audio: %v", err),
			})
			return
		}
		caps := make(map[string]int, len(stego.AudioAlgorithms()))
		for _, alg := range stego.AudioAlgorithms() {
			if n, err := stego.AudioCapacity(carrier, alg); err == nil {
				caps[alg.String()] = n
			}
		}
		c.JSON(http.StatusOK, models.CapacityResponse{
			Success:    true,
			Kind:       stego.KindAudio.String(),
			Capacities: caps,
		})
		return
	}

	c.JSON(http.StatusBadRequest, models.StegoResponse{
		Success: false,
		Message: "Unsupported carrier format: expected PNG, BMP, WAV, MP3 or FLAC",
	})
}

// Algorithms lists every embedding algorithm with its carrier family.
func (h *StegoHandler) Algorithms(c *gin.Context) {
	c.JSON(http.StatusOK, models.AlgorithmsResponse{
		Success:    true,
		Algorithms: algorithmCatalog(),
	})
}

// HealthCheck reports service liveness and uptime.
func (h *StegoHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:        "healthy",
		UptimeSeconds: time.Since(h.started).Seconds(),
	})
}

// Activity returns the recent operation journal, newest first.
func (h *StegoHandler) Activity(c *gin.Context) {
	c.JSON(http.StatusOK, models.ActivityResponse{
		Success: true,
		Entries: h.journal.Entries(),
	})
}

var algorithmDescriptions = map[stego.Algorithm]string{
	stego.AlgorithmBitPlane:  "Least-significant-bit substitution across the RGB planes",
	stego.AlgorithmDCT:       "Parity of a quantized mid-frequency DCT coefficient, one bit per 8x8 block",
	stego.AlgorithmWavelet:   "Parity of an integer Haar detail coefficient, one bit per 8x8 block",
	stego.AlgorithmAudioLSB:  "Low bit of each 16-bit sample on the first channel",
	stego.AlgorithmAudioEcho: "Bit-dependent echo delay, one bit per 1024-sample segment",
}

func algorithmCatalog() []models.AlgorithmInfo {
	all := append(stego.ImageAlgorithms(), stego.AudioAlgorithms()...)
	infos := make([]models.AlgorithmInfo, 0, len(all))
	for _, alg := range all {
		infos = append(infos, models.AlgorithmInfo{
			Name:        alg.String(),
			Kind:        alg.Kind().String(),
			Description: algorithmDescriptions[alg],
		})
	}
	return infos
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, stego.ErrNoHiddenData):
		return http.StatusNotFound
	case errors.Is(err, stego.ErrCorruptPayload):
		return http.StatusUnprocessableEntity
	case errors.Is(err, stego.ErrCapacityExceeded),
		errors.Is(err, stego.ErrUnsupportedCombination),
		errors.Is(err, stego.ErrCarrierDecode):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func formFileBytes(c *gin.Context, field string) ([]byte, string, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

func requestPayload(c *gin.Context) ([]byte, error) {
	if file, _, err := c.Request.FormFile("payload"); err == nil {
		defer file.Close()
		return io.ReadAll(file)
	}
	if message, ok := c.GetPostForm("message"); ok {
		return []byte(message), nil
	}
	return nil, errors.New("provide a message field or a payload file")
}

func outputFilename(original, suffix, ext string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	if base == "" || base == "." {
		base = "carrier"
	}
	return fmt.Sprintf("%s%s.%s", base, suffix, ext)
}

func mimeForImage(format string) string {
	if format == img.FormatBMP {
		return "image/bmp"
	}
	return "image/png"
}
