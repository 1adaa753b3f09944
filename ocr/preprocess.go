package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// minRecognitionWidth is the narrowest page image fed to the engine
// as-is; narrower inputs are upscaled to it first.
const minRecognitionWidth = 1200

// PrepareImage decodes image data and upscales it when the page is too
// narrow for reliable recognition. Upscaled pages are re-encoded as
// PNG; data already wide enough is returned unchanged.
func PrepareImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	scaled := Upscale(img, minRecognitionWidth)
	if scaled == img {
		return data, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Upscale scales img so its width is at least minWidth, preserving the
// aspect ratio. Images already wide enough are returned as-is.
func Upscale(img image.Image, minWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() >= minWidth || b.Dx() == 0 {
		return img
	}
	factor := float64(minWidth) / float64(b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, minWidth, int(float64(b.Dy())*factor)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
