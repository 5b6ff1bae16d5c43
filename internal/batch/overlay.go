package batch

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pandadepot/product-crops/internal/imaging"
	"github.com/pandadepot/product-crops/internal/layout"
)

// OverlayPath returns the calibration sheet path for page n.
func OverlayPath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("page-%02d-overlay.png", n))
}

// RenderOverlays writes one calibration sheet per page whose image exists,
// showing every configured crop rectangle (and, on grid pages, the full cells)
// with its slot number. Pages are rendered by up to workers goroutines. It
// returns the number of sheets written; the first error stops the rest.
func (r *Runner) RenderOverlays(ctx context.Context, dir string, workers int) (int, error) {
	r.init()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create overlay directory: %w", err)
	}
	if workers < 1 {
		workers = 1
	}

	var written atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, n := range r.Table.Numbers() {
		page := r.Table[n]
		path := PagePath(r.ImagesDir, n)
		if _, err := os.Stat(path); err != nil {
			r.Logger.Warn("page image not found, skipping overlay", zap.Int("page", n), zap.String("path", path))
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := r.Loader.Load(path)
			if err != nil {
				return fmt.Errorf("page %d: %w", page.Number, err)
			}
			defer r.Loader.Evict(path)

			sheet := imaging.Overlay(img, pageShapes(img.Bounds(), page, r.Logger), imaging.DefaultOverlayStyle)
			if err := imaging.SaveOverlay(sheet, OverlayPath(dir, page.Number)); err != nil {
				return err
			}
			written.Add(1)
			return nil
		})
	}

	err := g.Wait()
	return int(written.Load()), err
}

// pageShapes lists the rectangles of every slot on a page, skipped slots
// included, so the sheet shows the whole layout.
func pageShapes(bounds image.Rectangle, page layout.Page, logger *zap.Logger) []imaging.Shape {
	var shapes []imaging.Shape
	switch page.Mode {
	case layout.ModeManual:
		for i, c := range page.Crops {
			shapes = append(shapes, imaging.Shape{
				Rect: imaging.InsetRegion(bounds, c.Rect, imaging.DefaultRegionPadding),
				Kind: imaging.ShapePhoto,
				Slot: i,
			})
		}
	case layout.ModeGrid:
		for i := range page.Products {
			cell, err := imaging.GridCell(bounds, page.Area, page.Rows, page.Cols, i, 1, 0)
			if err != nil {
				logger.Warn("grid cannot be drawn", zap.Int("page", page.Number), zap.Error(err))
				return nil
			}
			photo, _ := imaging.GridCell(bounds, page.Area, page.Rows, page.Cols, i, page.Ratio(), imaging.DefaultGridPadding)
			shapes = append(shapes,
				imaging.Shape{Rect: cell, Kind: imaging.ShapeCell, Slot: -1},
				imaging.Shape{Rect: photo, Kind: imaging.ShapePhoto, Slot: i},
			)
		}
	}
	return shapes
}
