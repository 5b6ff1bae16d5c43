// Package imaging implements the pixel side of product cropping.
//
// It turns page configuration into crop rectangles, cuts and saves the crops,
// caches decoded page images, summarizes crop content and draws calibration
// sheets. All operations work with standard Go image.Image types; decoding and
// encoding go through github.com/disintegration/imaging, and the analysis and
// sheet output through github.com/anthonynsimon/bild.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Rectangles follow image.Rectangle: Min is inclusive, Max is exclusive
//
// Page configuration (layout.Rect) lists rectangles as top, left, bottom,
// right. GridCell, CaptionBand and InsetRegion convert to x/y order.
//
// # Crop Geometry
//
// Manual rectangles are inset by DefaultRegionPadding on every side. Grid
// cells divide the content area into equal float-sized cells, numbered in
// reading order; the photo is the upper photo-ratio share of the cell, inset
// by DefaultGridPadding on the left, top and right only. Computed coordinates
// are truncated toward zero.
//
// # Clamping
//
// Every computed rectangle is clamped into the page bounds, coordinate by
// coordinate, so 0 <= Min <= Max <= page size holds for any input. A rectangle
// that falls entirely outside the page collapses to zero area.
//
// # Error Handling
//
// Functions return errors for:
//   - Grids with no rows or columns, or a negative cell index (ErrInvalidGrid)
//   - Rectangles with no area after clamping (ErrEmptyCrop)
//   - File I/O and decoding errors while loading pages
//   - Encoding errors while saving crops or sheets
//
// Errors wrap their sentinel, so callers test them with errors.Is.
//
// # Thread Safety
//
// PageLoader is safe for concurrent use. All other functions are stateless and
// may be called concurrently; none of them modifies its input image.
//
// # Determinism
//
// SavePNG and SaveOverlay produce identical bytes for identical images, so
// re-running a batch over unchanged inputs rewrites identical files.
package imaging
