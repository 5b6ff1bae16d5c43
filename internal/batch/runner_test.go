package batch

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pandadepot/product-crops/internal/catalog"
	cropimg "github.com/pandadepot/product-crops/internal/imaging"
	"github.com/pandadepot/product-crops/internal/layout"
)

const pageW, pageH = 1241, 1754

// texturedPage returns a page-sized image with gradients in every channel,
// so no crop of it looks blank.
func texturedPage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pageW, pageH))
	for y := 0; y < pageH; y++ {
		for x := 0; x < pageW; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(x)
			img.Pix[i+1] = uint8(y)
			img.Pix[i+2] = uint8(x*3 + y)
			img.Pix[i+3] = 255
		}
	}
	return img
}

func solidPage(c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pageW, pageH))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func writePage(t *testing.T, dir string, n int, img image.Image) {
	t.Helper()
	f, err := os.Create(PagePath(dir, n))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func testCatalog(products ...catalog.Product) *catalog.Catalog {
	return catalog.New(catalog.Category{Name: "Test", Products: products})
}

func manualPage(n int, crops ...layout.ManualCrop) layout.Page {
	return layout.Page{Number: n, Mode: layout.ModeManual, Crops: crops}
}

func manualCrop(id string, top, left, bottom, right int) layout.ManualCrop {
	return layout.ManualCrop{ProductID: id, Rect: layout.Rect{Top: top, Left: left, Bottom: bottom, Right: right}}
}

func gridPage(n int, area layout.Rect, rows, cols int, ratio float64, products ...string) layout.Page {
	return layout.Page{Number: n, Mode: layout.ModeGrid, Area: area, Rows: rows, Cols: cols, PhotoRatio: ratio, Products: products}
}

func newRunner(t *testing.T, cat *catalog.Catalog, table layout.Table) (*Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Runner{
		Catalog:   cat,
		Table:     table,
		ImagesDir: t.TempDir(),
		OutputDir: filepath.Join(t.TempDir(), "products"),
		Out:       &out,
	}, &out
}

func TestRun_ManualEndToEnd(t *testing.T) {
	cat := testCatalog(catalog.Product{ID: "rice-001", Name: "Thai Jasmine Rice 50lb"})
	table := layout.Table{2: manualPage(2, manualCrop("rice-001", 780, 80, 1480, 1160))}
	r, out := newRunner(t, cat, table)
	writePage(t, r.ImagesDir, 2, texturedPage())

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Cropped)
	assert.Empty(t, report.Failures)
	assert.Empty(t, report.Blank)

	saved, err := imaging.Open(filepath.Join(r.OutputDir, "rice-001_thai-jasmine-rice-50lb.png"))
	require.NoError(t, err)
	assert.Equal(t, 1160-80-2*3, saved.Bounds().Dx())
	assert.Equal(t, 1480-780-2*3, saved.Bounds().Dy())

	assert.Equal(t, "  [OK] p02 -> rice-001_thai-jasmine-rice-50lb.png\n", out.String())
	assert.Equal(t, 0, r.Loader.Len(), "page should be evicted after processing")
}

func TestRun_GridEndToEnd(t *testing.T) {
	cat := testCatalog(
		catalog.Product{ID: "bag-001", Name: "Kraft Bag #1"},
		catalog.Product{ID: "bag-002", Name: "Kraft Bag #2"},
	)
	table := layout.Table{
		21: gridPage(21, layout.Rect{Top: 50, Left: 20, Bottom: 1100, Right: 1220}, 2, 3, 0.55,
			"bag-001", "", "", "", "bag-002", ""),
	}
	r, out := newRunner(t, cat, table)
	writePage(t, r.ImagesDir, 21, texturedPage())

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Cropped)

	want := "  [OK] p21 [0] -> bag-001_kraft-bag-1.png\n" +
		"  [OK] p21 [4] -> bag-002_kraft-bag-2.png\n"
	assert.Equal(t, want, out.String())

	// Slot 4 is row 1, column 1 of 400x525 cells; photo is 0.55 of the cell.
	saved, err := imaging.Open(filepath.Join(r.OutputDir, "bag-002_kraft-bag-2.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 390, 283), saved.Bounds())
}

func TestRun_MissingPageSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cat := testCatalog(catalog.Product{ID: "sauce-001", Name: "Duck Sauce"})
	table := layout.Table{3: manualPage(3, manualCrop("sauce-001", 580, 150, 1380, 1090))}
	r, out := newRunner(t, cat, table)
	r.Logger = zap.New(core)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Cropped)
	assert.Empty(t, report.Failures, "a missing page is not a failure")
	assert.Empty(t, report.Missing, "configured products are covered even when the page is absent")
	assert.Empty(t, out.String())

	warnings := logs.FilterMessage("page image not found, skipping page").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(3), warnings[0].ContextMap()["page"])
}

func TestRun_Coverage(t *testing.T) {
	cat := testCatalog(
		catalog.Product{ID: "A", Name: "Alpha"},
		catalog.Product{ID: "B", Name: "Beta"},
		catalog.Product{ID: "C", Name: "Gamma"},
	)
	table := layout.Table{
		5: manualPage(5, manualCrop("A", 0, 0, 100, 100)),
		6: gridPage(6, layout.Rect{Top: 0, Left: 0, Bottom: 100, Right: 100}, 1, 2, 0, "", "B"),
	}
	r, _ := newRunner(t, cat, table)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	want := []MissingProduct{{ID: "C", Name: "Gamma"}}
	if diff := cmp.Diff(want, report.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_CoverageSortedByID(t *testing.T) {
	cat := testCatalog(
		catalog.Product{ID: "cup-9", Name: "Nine"},
		catalog.Product{ID: "cup-100", Name: "Hundred"},
		catalog.Product{ID: "cup-10", Name: "Ten"},
	)
	r, _ := newRunner(t, cat, layout.Table{})

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, m := range report.Missing {
		ids = append(ids, m.ID)
	}
	// Plain byte order, not natural order.
	assert.Equal(t, []string{"cup-10", "cup-100", "cup-9"}, ids)
}

func TestRun_OutOfBoundsIsolated(t *testing.T) {
	cat := testCatalog(
		catalog.Product{ID: "off-001", Name: "Off Page"},
		catalog.Product{ID: "on-001", Name: "On Page"},
	)
	table := layout.Table{
		7: manualPage(7,
			manualCrop("off-001", 100, 1300, 200, 1400),
			manualCrop("on-001", 100, 100, 300, 300),
		),
	}
	r, out := newRunner(t, cat, table)
	writePage(t, r.ImagesDir, 7, texturedPage())

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Cropped)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "off-001", report.Failures[0].ProductID)
	assert.Equal(t, 7, report.Failures[0].Page)
	assert.True(t, errors.Is(report.Failures[0].Err, cropimg.ErrEmptyCrop))
	assert.Contains(t, out.String(), "  [FAIL] p07 off-001: empty crop region")
	assert.Contains(t, out.String(), "  [OK] p07 -> on-001_on-page.png")

	_, err = os.Stat(filepath.Join(r.OutputDir, "off-001_off-page.png"))
	assert.True(t, os.IsNotExist(err), "no file for a failed crop")
}

func TestRun_InvalidGridIsPerItem(t *testing.T) {
	cat := testCatalog(
		catalog.Product{ID: "x-1", Name: "X"},
		catalog.Product{ID: "x-2", Name: "Y"},
		catalog.Product{ID: "ok-1", Name: "Fine"},
	)
	table := layout.Table{
		8: gridPage(8, layout.Rect{Top: 0, Left: 0, Bottom: 500, Right: 500}, 0, 2, 0.5, "x-1", "x-2"),
		9: manualPage(9, manualCrop("ok-1", 10, 10, 200, 200)),
	}
	r, _ := newRunner(t, cat, table)
	writePage(t, r.ImagesDir, 8, texturedPage())
	writePage(t, r.ImagesDir, 9, texturedPage())

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"x-1", "x-2"}, report.FailedIDs())
	for _, f := range report.Failures {
		assert.ErrorIs(t, f.Err, cropimg.ErrInvalidGrid)
	}
	assert.Equal(t, 1, report.Cropped, "later pages still run")
}

func TestRun_UnreadablePage(t *testing.T) {
	cat := testCatalog(catalog.Product{ID: "p-1", Name: "P"}, catalog.Product{ID: "p-2", Name: "Q"})
	table := layout.Table{10: manualPage(10,
		manualCrop("p-1", 0, 0, 100, 100),
		manualCrop("", 0, 0, 100, 100),
		manualCrop("p-2", 0, 0, 100, 100),
	)}
	r, _ := newRunner(t, cat, table)
	require.NoError(t, os.WriteFile(PagePath(r.ImagesDir, 10), []byte("not a png"), 0644))

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2"}, report.FailedIDs())
}

func TestRun_UnknownProductUsesID(t *testing.T) {
	r, out := newRunner(t, testCatalog(), layout.Table{2: manualPage(2, manualCrop("ghost-001", 0, 0, 100, 100))})
	writePage(t, r.ImagesDir, 2, texturedPage())

	_, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(r.OutputDir, "ghost-001_ghost-001.png"))
	assert.Contains(t, out.String(), "ghost-001_ghost-001.png")
}

func TestRun_BlankCropFlagged(t *testing.T) {
	cat := testCatalog(catalog.Product{ID: "blank-1", Name: "Nothing Here"})
	r, _ := newRunner(t, cat, layout.Table{4: manualPage(4, manualCrop("blank-1", 100, 100, 400, 400))})
	writePage(t, r.ImagesDir, 4, solidPage(color.Gray{Y: 128}))

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Cropped, "blank crops are still written")
	assert.Equal(t, []string{"blank-1"}, report.Blank)
}

func TestRun_OutputDirUncreatable(t *testing.T) {
	r, _ := newRunner(t, testCatalog(), layout.Table{})
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	r.OutputDir = filepath.Join(blocker, "products")

	_, err := r.Run(context.Background())
	assert.Error(t, err)
}

func TestRun_Cancelled(t *testing.T) {
	cat := testCatalog(catalog.Product{ID: "a", Name: "A"}, catalog.Product{ID: "b", Name: "B"})
	r, _ := newRunner(t, cat, layout.Table{2: manualPage(2, manualCrop("a", 0, 0, 50, 50))})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Cropped)
	assert.True(t, report.Interrupted)
	assert.Equal(t, []MissingProduct{{ID: "b", Name: "B"}}, report.Missing,
		"coverage is reported even for a cut-short run")

	var summary bytes.Buffer
	require.NoError(t, report.WriteSummary(&summary))
	assert.Contains(t, summary.String(), "Run interrupted: later pages were not processed.\n")
	assert.Contains(t, summary.String(), "Products in catalog but NOT cropped (1):\n  - b: B\n")
}

func TestRun_Idempotent(t *testing.T) {
	cat := testCatalog(
		catalog.Product{ID: "rice-001", Name: "Thai Jasmine Rice 50lb"},
		catalog.Product{ID: "cup-001", Name: "Portion Cup 2oz"},
		catalog.Product{ID: "extra-1", Name: "Never Cropped"},
	)
	table := layout.Table{
		2:  manualPage(2, manualCrop("rice-001", 780, 80, 1480, 1160), manualCrop("bad-1", 0, 1300, 10, 1400)),
		23: gridPage(23, layout.Rect{Top: 200, Left: 20, Bottom: 1550, Right: 1220}, 3, 3, 0.5, "cup-001"),
	}
	r, _ := newRunner(t, cat, table)
	writePage(t, r.ImagesDir, 2, texturedPage())
	writePage(t, r.ImagesDir, 23, texturedPage())

	runOnce := func() (string, string, map[string][]byte) {
		var out, summary bytes.Buffer
		r.Out = &out
		report, err := r.Run(context.Background())
		require.NoError(t, err)
		require.NoError(t, report.WriteSummary(&summary))

		files := make(map[string][]byte)
		entries, err := os.ReadDir(r.OutputDir)
		require.NoError(t, err)
		for _, e := range entries {
			data, err := os.ReadFile(filepath.Join(r.OutputDir, e.Name()))
			require.NoError(t, err)
			files[e.Name()] = data
		}
		return out.String(), summary.String(), files
	}

	out1, sum1, files1 := runOnce()
	out2, sum2, files2 := runOnce()

	assert.Equal(t, out1, out2)
	assert.Equal(t, sum1, sum2)
	assert.Len(t, files1, 2)
	if !cmp.Equal(files1, files2) {
		t.Error("output files differ between runs")
	}
	assert.True(t, strings.Contains(sum1, "Failed: 1"))
}

type fakeCaptions struct {
	text  map[int]string
	calls []image.Rectangle
}

func (f *fakeCaptions) ReadCaption(img image.Image, r image.Rectangle) (string, error) {
	f.calls = append(f.calls, r)
	return f.text[len(f.calls)-1], nil
}

func TestRun_CaptionCheck(t *testing.T) {
	cat := testCatalog(
		catalog.Product{ID: "sauce-010", Name: "LKK Oyster Sauce"},
		catalog.Product{ID: "sauce-011", Name: "LKK Hoisin Sauce"},
		catalog.Product{ID: "manual-1", Name: "Manual Item"},
	)
	table := layout.Table{
		36: gridPage(36, layout.Rect{Top: 170, Left: 20, Bottom: 1520, Right: 1220}, 3, 2, 0.5, "sauce-010", "sauce-011"),
		37: manualPage(37, manualCrop("manual-1", 10, 10, 200, 200)),
	}
	r, _ := newRunner(t, cat, table)
	writePage(t, r.ImagesDir, 36, texturedPage())
	writePage(t, r.ImagesDir, 37, texturedPage())
	captions := &fakeCaptions{text: map[int]string{0: "LKK OYSTER SAUCE 5LB", 1: "LKK Chili Oil"}}
	r.Captions = captions
	r.MinCaptionScore = 0.5

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, captions.calls, 2, "manual crops are not caption-checked")
	// Caption band of slot 0: photo bottom (170+450*0.5) to cell bottom (620).
	assert.Equal(t, image.Rect(25, 395, 615, 620), captions.calls[0])

	require.Len(t, report.CaptionMismatches, 1)
	m := report.CaptionMismatches[0]
	assert.Equal(t, "sauce-011", m.ProductID)
	assert.Equal(t, 1, m.Slot)
	assert.InDelta(t, 1.0/3.0, m.Score, 1e-9)
}
