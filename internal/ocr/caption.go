package ocr

import (
	"errors"
	"image"
	"strings"

	"github.com/pandadepot/product-crops/internal/catalog"
)

// ErrUnavailable is returned when the binary was built without OCR support.
var ErrUnavailable = errors.New("ocr: tesseract support not compiled in (build with cgo)")

// CaptionReader extracts the text inside r.
type CaptionReader interface {
	ReadCaption(img image.Image, r image.Rectangle) (string, error)
}

// MatchScore returns the share of the name's words that also appear in the
// caption, after both are slugified. A name without words scores 1.
func MatchScore(caption, name string) float64 {
	want := words(name)
	if len(want) == 0 {
		return 1
	}
	have := make(map[string]bool)
	for _, w := range words(caption) {
		have[w] = true
	}

	found := 0
	for _, w := range want {
		if have[w] {
			found++
		}
	}
	return float64(found) / float64(len(want))
}

func words(s string) []string {
	slug := catalog.Slugify(s)
	if slug == "" {
		return nil
	}
	return strings.Split(slug, "-")
}
