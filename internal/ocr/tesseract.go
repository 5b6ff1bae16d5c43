//go:build cgo

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Tesseract reads captions with a single reused Tesseract client.
//
// The client is expensive to initialize, so one instance serves a whole run.
// Tesseract is safe for concurrent use; calls to ReadCaption are serialized
// because the underlying TessBaseAPI holds one image at a time.
//
// # Example Usage
//
//	reader, err := ocr.NewTesseract("", "eng")
//	if err != nil {
//	    return err
//	}
//	defer reader.Close()
//	text, err := reader.ReadCaption(page, band)
type Tesseract struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseract creates a caption reader.
//
// Parameters:
//   - tessdata: Directory holding the *.traineddata files. Empty uses the
//     system installation (or the TESSDATA_PREFIX environment variable).
//   - languages: Tesseract language codes, "eng" when none are given.
//
// Returns:
//   - *Tesseract: A ready reader. Call Close when done.
//   - error: ErrMissingTessdata when tessdata is set but lacks a language;
//     otherwise any client configuration error.
func NewTesseract(tessdata string, languages ...string) (*Tesseract, error) {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	if tessdata != "" {
		if err := CheckTessdata(tessdata, languages...); err != nil {
			return nil, err
		}
	}

	client := gosseract.NewClient()
	if tessdata != "" {
		if err := client.SetTessdataPrefix(tessdata); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := client.SetLanguage(languages...); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	// Captions are short blocks of text.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	return &Tesseract{client: client}, nil
}

// ReadCaption runs OCR on a region of an image.
//
// Parameters:
//   - img: The full page image.
//   - r: The region to read, in img's coordinates. Normally a caption band
//     from imaging.CaptionBand.
//
// Returns:
//   - string: The recognized text with surrounding whitespace trimmed. An
//     empty region returns "" without running OCR.
//   - error: Encoding or OCR failures.
func (t *Tesseract) ReadCaption(img image.Image, r image.Rectangle) (string, error) {
	if r.Empty() {
		return "", nil
	}
	cropped := imaging.Crop(img, r)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return "", fmt.Errorf("failed to encode caption region: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Close releases the Tesseract client.
func (t *Tesseract) Close() error {
	return t.client.Close()
}
