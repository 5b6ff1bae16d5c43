// Package layout holds the per-page crop configuration for the scanned catalog.
//
// A page is configured in one of two modes. Manual pages list explicit pixel
// rectangles, one per product. Grid pages describe a content area split into
// rows and columns; product slots are assigned to cells in reading order and
// only the upper "photo" share of each cell is cropped.
//
// The coordinates were tuned by hand against the real scans and are ground
// truth. Re-tune them against the page images (see the overlay command) rather
// than deriving them.
package layout

import (
	"sort"
)

// Rect is a rectangle in source-page pixels, listed top, left, bottom, right.
type Rect struct {
	Top    int `yaml:"top"`
	Left   int `yaml:"left"`
	Bottom int `yaml:"bottom"`
	Right  int `yaml:"right"`
}

// Mode selects how a page's crops are produced.
type Mode string

const (
	ModeManual Mode = "manual"
	ModeGrid   Mode = "grid"
)

// DefaultPhotoRatio applies to grid pages that do not set their own ratio.
const DefaultPhotoRatio = 0.60

// ManualCrop assigns one rectangle to a product. An empty ProductID marks a
// slot that is deliberately skipped.
type ManualCrop struct {
	ProductID string
	Rect
}

// Page is the configuration of one scanned page.
type Page struct {
	Number int
	Mode   Mode

	// Manual mode.
	Crops []ManualCrop

	// Grid mode. Products holds Rows*Cols slots in row-major order; empty
	// strings are skipped cells.
	Area       Rect
	Rows       int
	Cols       int
	PhotoRatio float64
	Products   []string
}

// Ratio returns the page's photo ratio, falling back to DefaultPhotoRatio.
func (p Page) Ratio() float64 {
	if p.PhotoRatio > 0 {
		return p.PhotoRatio
	}
	return DefaultPhotoRatio
}

// IDs returns the non-empty product ids configured on the page, in slot order.
func (p Page) IDs() []string {
	var ids []string
	switch p.Mode {
	case ModeManual:
		for _, c := range p.Crops {
			if c.ProductID != "" {
				ids = append(ids, c.ProductID)
			}
		}
	case ModeGrid:
		for _, id := range p.Products {
			if id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Table maps page numbers to their configuration.
type Table map[int]Page

// Numbers returns the configured page numbers in ascending order.
func (t Table) Numbers() []int {
	nums := make([]int, 0, len(t))
	for n := range t {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// ConfiguredIDs returns the union of every non-empty product id across all
// pages, whether or not the page image exists.
func (t Table) ConfiguredIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, p := range t {
		for _, id := range p.IDs() {
			ids[id] = true
		}
	}
	return ids
}

func manual(number int, crops ...ManualCrop) Page {
	return Page{Number: number, Mode: ModeManual, Crops: crops}
}

func crop(id string, top, left, bottom, right int) ManualCrop {
	return ManualCrop{ProductID: id, Rect: Rect{Top: top, Left: left, Bottom: bottom, Right: right}}
}

func grid(number int, area Rect, rows, cols int, ratio float64, products ...string) Page {
	return Page{
		Number:     number,
		Mode:       ModeGrid,
		Area:       area,
		Rows:       rows,
		Cols:       cols,
		PhotoRatio: ratio,
		Products:   products,
	}
}
