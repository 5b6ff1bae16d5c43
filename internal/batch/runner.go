package batch

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/pandadepot/product-crops/internal/catalog"
	"github.com/pandadepot/product-crops/internal/imaging"
	"github.com/pandadepot/product-crops/internal/layout"
	"github.com/pandadepot/product-crops/internal/ocr"
)

// PagePath returns the image path for page n: dir/page-NN.png.
func PagePath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("page-%02d.png", n))
}

// Runner crops every configured product out of the page images.
type Runner struct {
	Catalog   *catalog.Catalog
	Table     layout.Table
	ImagesDir string
	OutputDir string

	// Loader defaults to a fresh PageLoader.
	Loader *imaging.PageLoader

	// Out receives the per-product [OK]/[FAIL] lines. Defaults to io.Discard.
	Out io.Writer

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// Captions enables caption checks on grid pages when set.
	Captions        ocr.CaptionReader
	MinCaptionScore float64
}

func (r *Runner) init() {
	if r.Loader == nil {
		r.Loader = imaging.NewPageLoader()
	}
	if r.Out == nil {
		r.Out = io.Discard
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
}

// item is one product slot on a page.
type item struct {
	slot int
	id   string
	// grid items print their slot index
	grid bool
}

// Run processes every page and returns the report. The returned error is
// non-nil only when the run could not proceed at all, or ctx was cancelled
// between pages; in the latter case the partial report is returned too.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	r.init()

	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	report := &Report{OutputDir: r.OutputDir}

	// Coverage depends only on the table.
	report.Missing = r.missing()

	for _, n := range r.Table.Numbers() {
		if err := ctx.Err(); err != nil {
			report.Interrupted = true
			return report, err
		}
		r.runPage(r.Table[n], report)
	}

	r.Logger.Info("batch finished",
		zap.Int("cropped", report.Cropped),
		zap.Int("failed", len(report.Failures)),
		zap.Int("uncovered", len(report.Missing)))

	return report, nil
}

func (r *Runner) runPage(page layout.Page, report *Report) {
	path := PagePath(r.ImagesDir, page.Number)
	log := r.Logger.With(zap.Int("page", page.Number), zap.String("path", path))

	if _, err := os.Stat(path); err != nil {
		log.Warn("page image not found, skipping page", zap.Error(err))
		return
	}

	items := pageItems(page)

	img, err := r.Loader.Load(path)
	if err != nil {
		log.Error("page image unreadable", zap.Error(err))
		for _, it := range items {
			r.fail(report, page.Number, it.id, err)
		}
		return
	}
	defer r.Loader.Evict(path)

	log.Debug("processing page", zap.String("mode", string(page.Mode)), zap.Int("products", len(items)))

	for _, it := range items {
		filename := r.Catalog.Filename(it.id)
		err := r.cropItem(img, page, it, filename, report)
		if err != nil {
			r.fail(report, page.Number, it.id, err)
			continue
		}
		report.Cropped++
		if it.grid {
			fmt.Fprintf(r.Out, "  [OK] p%02d [%d] -> %s\n", page.Number, it.slot, filename)
		} else {
			fmt.Fprintf(r.Out, "  [OK] p%02d -> %s\n", page.Number, filename)
		}
	}
}

func (r *Runner) fail(report *Report, page int, id string, err error) {
	report.Failures = append(report.Failures, Failure{ProductID: id, Page: page, Err: err})
	fmt.Fprintf(r.Out, "  [FAIL] p%02d %s: %v\n", page, id, err)
}

// pageItems lists the non-empty product slots of a page in slot order.
func pageItems(page layout.Page) []item {
	var items []item
	switch page.Mode {
	case layout.ModeManual:
		for i, c := range page.Crops {
			if c.ProductID != "" {
				items = append(items, item{slot: i, id: c.ProductID})
			}
		}
	case layout.ModeGrid:
		for i, id := range page.Products {
			if id != "" {
				items = append(items, item{slot: i, id: id, grid: true})
			}
		}
	}
	return items
}

// cropRect computes the crop rectangle for one slot.
func cropRect(bounds image.Rectangle, page layout.Page, slot int) (image.Rectangle, error) {
	switch page.Mode {
	case layout.ModeManual:
		return imaging.InsetRegion(bounds, page.Crops[slot].Rect, imaging.DefaultRegionPadding), nil
	case layout.ModeGrid:
		return imaging.GridCell(bounds, page.Area, page.Rows, page.Cols, slot, page.Ratio(), imaging.DefaultGridPadding)
	default:
		return image.Rectangle{}, fmt.Errorf("unknown page mode %q", page.Mode)
	}
}

// cropItem crops and saves one product. A panic anywhere in the item is
// turned into its error so the page carries on.
func (r *Runner) cropItem(img image.Image, page layout.Page, it item, filename string, report *Report) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	rect, err := cropRect(img.Bounds(), page, it.slot)
	if err != nil {
		return err
	}
	cropped, err := imaging.Crop(img, rect)
	if err != nil {
		return err
	}
	if err := imaging.SavePNG(cropped, filepath.Join(r.OutputDir, filename)); err != nil {
		return err
	}

	if stats := imaging.Inspect(cropped); stats.Blank() {
		r.Logger.Warn("crop looks blank",
			zap.String("product", it.id),
			zap.Int("page", page.Number),
			zap.String("mean_color", stats.MeanColor))
		report.Blank = append(report.Blank, it.id)
	}

	if it.grid && r.Captions != nil {
		r.checkCaption(img, page, it, report)
	}

	return nil
}

func (r *Runner) checkCaption(img image.Image, page layout.Page, it item, report *Report) {
	band, err := imaging.CaptionBand(img.Bounds(), page.Area, page.Rows, page.Cols, it.slot, page.Ratio(), imaging.DefaultGridPadding)
	if err != nil || band.Empty() {
		return
	}

	text, err := r.Captions.ReadCaption(img, band)
	if err != nil {
		r.Logger.Warn("caption unreadable", zap.String("product", it.id), zap.Error(err))
		return
	}

	score := ocr.MatchScore(text, r.Catalog.DisplayName(it.id))
	if score < r.MinCaptionScore {
		report.CaptionMismatches = append(report.CaptionMismatches, CaptionMismatch{
			ProductID: it.id,
			Page:      page.Number,
			Slot:      it.slot,
			Caption:   text,
			Score:     score,
		})
	}
}

// missing lists catalog products configured on no page, sorted by id.
func (r *Runner) missing() []MissingProduct {
	configured := r.Table.ConfiguredIDs()

	var ids []string
	for _, id := range r.Catalog.IDs() {
		if !configured[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]MissingProduct, 0, len(ids))
	for _, id := range ids {
		name, ok := r.Catalog.Name(id)
		if !ok {
			name = "?"
		}
		out = append(out, MissingProduct{ID: id, Name: name})
	}
	return out
}
