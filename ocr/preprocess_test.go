package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestUpscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 300, 200))

	got := Upscale(img, 1200)
	b := got.Bounds()
	if b.Dx() != 1200 || b.Dy() != 800 {
		t.Errorf("scaled to %dx%d, want 1200x800", b.Dx(), b.Dy())
	}
}

func TestUpscaleWideEnough(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2000, 100))

	if got := Upscale(img, 1200); got != image.Image(img) {
		t.Error("wide image was rescaled")
	}
}

func TestPrepareImagePassthrough(t *testing.T) {
	data := encodePNG(t, 1500, 100)

	got, err := PrepareImage(data)
	if err != nil {
		t.Fatalf("PrepareImage: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("wide image data was re-encoded")
	}
}

func TestPrepareImageUpscales(t *testing.T) {
	data := encodePNG(t, 100, 50)

	got, err := PrepareImage(data)
	if err != nil {
		t.Fatalf("PrepareImage: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if img.Bounds().Dx() != minRecognitionWidth {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), minRecognitionWidth)
	}
}

func TestPrepareImageBadData(t *testing.T) {
	if _, err := PrepareImage([]byte("not an image")); err == nil {
		t.Error("expected error for undecodable data")
	}
}
