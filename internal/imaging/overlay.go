package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/lucasb-eyer/go-colorful"
)

// ShapeKind distinguishes the rectangles drawn on a calibration sheet.
type ShapeKind int

const (
	// ShapePhoto is the rectangle that is actually cropped.
	ShapePhoto ShapeKind = iota
	// ShapeCell is a whole grid cell, photo and caption.
	ShapeCell
)

// Shape is one rectangle on a calibration sheet. Slot is drawn as a label in
// the top-left corner; a negative Slot draws no label.
type Shape struct {
	Rect image.Rectangle
	Kind ShapeKind
	Slot int
}

// OverlayStyle controls how shapes are drawn.
type OverlayStyle struct {
	PhotoColor string // hex, e.g. "#ff0000"
	CellColor  string
	Thickness  int
	LabelScale int
}

// DefaultOverlayStyle draws photos in red and cells in blue.
var DefaultOverlayStyle = OverlayStyle{
	PhotoColor: "#e0201c",
	CellColor:  "#1c5fe0",
	Thickness:  3,
	LabelScale: 4,
}

// Overlay draws shapes on a copy of img. Cells are drawn first so photo
// rectangles stay visible where they share an edge.
//
// Parameters:
//   - img: The page image. It is not modified.
//   - shapes: Rectangles to outline. Parts outside the image are clipped.
//   - style: Colors, line thickness and label scale. Invalid colors fall back
//     to DefaultOverlayStyle's; thickness and scale are at least 1.
//
// Returns:
//   - *image.RGBA: The calibration sheet, with img's bounds.
func Overlay(img image.Image, shapes []Shape, style OverlayStyle) *image.RGBA {
	bounds := img.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	photoColor := parseColor(style.PhotoColor, color.RGBA{224, 32, 28, 255})
	cellColor := parseColor(style.CellColor, color.RGBA{28, 95, 224, 255})
	thickness := style.Thickness
	if thickness < 1 {
		thickness = 1
	}
	scale := style.LabelScale
	if scale < 1 {
		scale = 1
	}

	for _, kind := range []ShapeKind{ShapeCell, ShapePhoto} {
		for _, s := range shapes {
			if s.Kind != kind {
				continue
			}
			c := photoColor
			if kind == ShapeCell {
				c = cellColor
			}
			drawOutline(result, s.Rect, thickness, c)
			if s.Slot >= 0 && kind == ShapePhoto {
				drawLabel(result, s.Rect.Min.X+thickness+1, s.Rect.Min.Y+thickness+1, strconv.Itoa(s.Slot), scale,
					color.RGBA{255, 255, 255, 255}, c)
			}
		}
	}

	return result
}

// SaveOverlay writes a calibration sheet as PNG, replacing any existing file.
func SaveOverlay(img image.Image, path string) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save overlay %s: %w", path, err)
	}
	return nil
}

// parseColor parses "#rrggbb", returning fallback for anything else.
func parseColor(hex string, fallback color.RGBA) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func drawOutline(img *image.RGBA, r image.Rectangle, thickness int, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness),
		image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y),
		image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}

// glyphs is a 3x5 pixel font for slot numbers.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
}

// drawLabel draws text at (x, y) on a filled background, each font pixel
// drawn as a scale x scale block.
func drawLabel(img *image.RGBA, x, y int, text string, scale int, fg, bg color.RGBA) {
	bounds := img.Bounds()
	charWidth := 4 * scale
	labelWidth := len(text)*charWidth + scale
	labelHeight := 7 * scale

	bgRect := image.Rect(x-scale, y-scale, x+labelWidth, y+labelHeight-scale).Intersect(bounds)
	draw.Draw(img, bgRect, image.NewUniform(bg), image.Point{}, draw.Src)

	fgSrc := image.NewUniform(fg)
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				px, py := cx+col*scale, y+row*scale
				block := image.Rect(px, py, px+scale, py+scale).Intersect(bounds)
				draw.Draw(img, block, fgSrc, image.Point{}, draw.Src)
			}
		}
		cx += charWidth
	}
}
