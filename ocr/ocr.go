//go:build ocr

// Package ocr recognizes page images and produces positioned line
// records for layout reconstruction.
//
// This package wraps the Tesseract OCR engine via gosseract. It
// requires Tesseract to be installed on the system. On macOS, install
// via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/text"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeText performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns only the recognized text, trimmed.
func (c *Client) RecognizeText(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	t, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(t), nil
}

// RecognizeLines performs OCR on image data and returns positioned
// line records plus the page dimensions, ready for the layout engine.
// Positions come from the engine's hOCR output.
func (c *Client) RecognizeLines(imageData []byte) ([]text.Line, geom.Page, error) {
	prepared, err := PrepareImage(imageData)
	if err != nil {
		return nil, geom.Page{}, fmt.Errorf("failed to prepare image: %w", err)
	}
	if err := c.client.SetImageFromBytes(prepared); err != nil {
		return nil, geom.Page{}, fmt.Errorf("failed to set image: %w", err)
	}
	hocr, err := c.client.HOCRText()
	if err != nil {
		return nil, geom.Page{}, fmt.Errorf("OCR failed: %w", err)
	}
	lines, page, err := ParseHOCR(strings.NewReader(hocr))
	if err != nil {
		return nil, geom.Page{}, fmt.Errorf("failed to parse OCR output: %w", err)
	}
	return lines, page, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
