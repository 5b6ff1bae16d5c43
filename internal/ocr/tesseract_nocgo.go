//go:build !cgo

package ocr

import "image"

// Tesseract is unavailable in builds without cgo.
type Tesseract struct{}

// NewTesseract always fails with ErrUnavailable.
func NewTesseract(tessdata string, languages ...string) (*Tesseract, error) {
	return nil, ErrUnavailable
}

// ReadCaption always fails with ErrUnavailable.
func (t *Tesseract) ReadCaption(img image.Image, r image.Rectangle) (string, error) {
	return "", ErrUnavailable
}

// Close is a no-op.
func (t *Tesseract) Close() error {
	return nil
}
