// Package img adapts PNG and BMP containers to the carrier buffers the
// codecs work on.
package img

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/Shreyas-TP/Stegohub/stego"
)

// Container names understood by Decode and Encode.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

var (
	pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	bmpMagic = []byte{0x42, 0x4D}
)

// DetectFormat sniffs the container from the leading bytes.
func DetectFormat(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return FormatPNG, nil
	case bytes.HasPrefix(data, bmpMagic):
		return FormatBMP, nil
	}
	return "", fmt.Errorf("%w: unsupported image container", stego.ErrCarrierDecode)
}

// Decode parses a PNG or BMP file into a carrier and reports which container
// it came from.
func Decode(data []byte) (*stego.CarrierImage, string, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, "", err
	}

	var src image.Image
	switch format {
	case FormatPNG:
		src, err = png.Decode(bytes.NewReader(data))
	case FormatBMP:
		src, err = bmp.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", stego.ErrCarrierDecode, err)
	}

	// Straight-alpha pixels: premultiplying here would smear low bits on
	// translucent carriers.
	bounds := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	carrier := &stego.CarrierImage{Width: bounds.Dx(), Height: bounds.Dy(), Pix: nrgba.Pix}
	return carrier, format, nil
}

// Encode writes the carrier back into the named container.
func Encode(w io.Writer, c *stego.CarrierImage, format string) error {
	nrgba := &image.NRGBA{
		Pix:    c.Pix,
		Stride: c.Width * 4,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
	switch format {
	case FormatPNG:
		return png.Encode(w, nrgba)
	case FormatBMP:
		return bmp.Encode(w, nrgba)
	}
	return fmt.Errorf("unsupported image container %q", format)
}
