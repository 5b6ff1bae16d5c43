package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/pandadepot/product-crops/internal/layout"
)

const (
	// DefaultGridPhotoRatio is the photo share of a cell when the caller
	// passes no ratio. Page configurations normally override it.
	DefaultGridPhotoRatio = 0.65

	// DefaultGridPadding is the inset applied to grid cells.
	DefaultGridPadding = 5

	// DefaultRegionPadding is the inset applied to manual rectangles.
	DefaultRegionPadding = 3
)

var (
	// ErrEmptyCrop is returned when a crop rectangle has no area after clamping,
	// typically because the configured rectangle lies outside the page.
	ErrEmptyCrop = errors.New("empty crop region")

	// ErrInvalidGrid is returned for grids with no rows or columns, or a
	// negative cell index.
	ErrInvalidGrid = errors.New("invalid grid")
)

// GridCell computes the photo rectangle of one cell in a grid laid over area.
//
// Cells are numbered from 0 in reading order: row = index / cols and
// col = index % cols. The left, top and right edges are inset by padding; the
// bottom edge sits at photoRatio of the cell height and is not padded, so the
// caption text under the photo is left out. Coordinates are truncated toward
// zero and then clamped into bounds.
//
// A photoRatio <= 0 selects DefaultGridPhotoRatio and a negative padding
// selects DefaultGridPadding. An index past rows*cols is not rejected; it maps
// below the area and is clamped like any other cell.
//
// Parameters:
//   - bounds: The page image bounds used for clamping.
//   - area: The content area the grid covers.
//   - rows, cols: Grid shape. Both must be positive.
//   - index: 0-based cell number in reading order.
//   - photoRatio: Share of the cell height that is photo (0.0 to 1.0).
//   - padding: Inset in pixels for the left, top and right edges.
//
// Returns:
//   - image.Rectangle: The clamped photo rectangle. It may be empty.
//   - error: ErrInvalidGrid for a non-positive shape or negative index.
func GridCell(bounds image.Rectangle, area layout.Rect, rows, cols, index int, photoRatio float64, padding int) (image.Rectangle, error) {
	if rows <= 0 || cols <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	if index < 0 {
		return image.Rectangle{}, fmt.Errorf("%w: cell index %d", ErrInvalidGrid, index)
	}
	if photoRatio <= 0 {
		photoRatio = DefaultGridPhotoRatio
	}
	if padding < 0 {
		padding = DefaultGridPadding
	}

	cellW := float64(area.Right-area.Left) / float64(cols)
	cellH := float64(area.Bottom-area.Top) / float64(rows)
	row := index / cols
	col := index % cols
	pad := float64(padding)

	x1 := int(float64(area.Left) + float64(col)*cellW + pad)
	y1 := int(float64(area.Top) + float64(row)*cellH + pad)
	x2 := int(float64(area.Left) + float64(col+1)*cellW - pad)
	y2 := int(float64(area.Top) + float64(row)*cellH + cellH*photoRatio)

	return clampRect(bounds, x1, y1, x2, y2), nil
}

// CaptionBand returns the part of a grid cell below its photo: from the photo
// bottom to the cell bottom, inset horizontally like the photo. It takes the
// same parameters as GridCell and fails in the same cases.
func CaptionBand(bounds image.Rectangle, area layout.Rect, rows, cols, index int, photoRatio float64, padding int) (image.Rectangle, error) {
	photo, err := GridCell(bounds, area, rows, cols, index, photoRatio, padding)
	if err != nil {
		return image.Rectangle{}, err
	}
	cellH := float64(area.Bottom-area.Top) / float64(rows)
	row := index / cols
	bottom := int(float64(area.Top) + float64(row+1)*cellH)
	return clampRect(bounds, photo.Min.X, photo.Max.Y, photo.Max.X, bottom), nil
}

// InsetRegion shrinks a manual rectangle by padding on every side and clamps
// it into bounds.
//
// Parameters:
//   - bounds: The page image bounds used for clamping.
//   - r: The configured rectangle.
//   - padding: Inset in pixels on every side.
//
// Returns:
//   - image.Rectangle: The clamped rectangle. A rectangle outside the page,
//     or narrower than twice the padding, comes back empty.
func InsetRegion(bounds image.Rectangle, r layout.Rect, padding int) image.Rectangle {
	return clampRect(bounds, r.Left+padding, r.Top+padding, r.Right-padding, r.Bottom-padding)
}

// clampRect clamps each coordinate into bounds. An inverted result collapses
// to zero width or height, so Min <= Max always holds.
func clampRect(bounds image.Rectangle, x1, y1, x2, y2 int) image.Rectangle {
	x1 = clamp(x1, bounds.Min.X, bounds.Max.X)
	x2 = clamp(x2, bounds.Min.X, bounds.Max.X)
	y1 = clamp(y1, bounds.Min.Y, bounds.Max.Y)
	y2 = clamp(y2, bounds.Min.Y, bounds.Max.Y)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return image.Rectangle{Min: image.Point{X: x1, Y: y1}, Max: image.Point{X: x2, Y: y2}}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Crop extracts r from img.
//
// Parameters:
//   - img: The source image. It is not modified.
//   - r: The region to copy, already clamped to img's bounds.
//
// Returns:
//   - *image.NRGBA: A new image whose bounds start at (0,0).
//   - error: ErrEmptyCrop when r has no area.
func Crop(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrEmptyCrop, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	}
	return imaging.Crop(img, r), nil
}

// SavePNG writes img to path as PNG, replacing any existing file.
//
// The directory must already exist. The encoder output is deterministic, so
// saving the same image twice writes the same bytes.
func SavePNG(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
