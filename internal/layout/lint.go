package layout

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
)

// Issue is a problem found in a page table. Issues are advisory: the cropper
// runs the table as configured regardless.
type Issue struct {
	Page      int
	ProductID string
	Message   string
}

func (i Issue) String() string {
	if i.ProductID == "" {
		return fmt.Sprintf("p%02d: %s", i.Page, i.Message)
	}
	return fmt.Sprintf("p%02d %s: %s", i.Page, i.ProductID, i.Message)
}

// Lint checks a table against itself and against the catalog's known ids.
// A nil known map skips the catalog check.
func Lint(t Table, known map[string]string) []Issue {
	var issues []Issue
	pagesByID := make(map[string][]int)

	for _, n := range t.Numbers() {
		p := t[n]
		if p.Mode == ModeGrid {
			issues = append(issues, lintGrid(p)...)
		}
		for _, id := range p.IDs() {
			pagesByID[id] = append(pagesByID[id], n)
			if known == nil {
				continue
			}
			if _, ok := known[id]; !ok {
				issues = append(issues, Issue{Page: n, ProductID: id, Message: "not in catalog"})
			}
		}
	}

	ids := make([]string, 0, len(pagesByID))
	for id, pages := range pagesByID {
		if len(pages) > 1 {
			ids = append(ids, id)
		}
	}
	sort.Sort(natural.StringSlice(ids))
	for _, id := range ids {
		pages := pagesByID[id]
		issues = append(issues, Issue{
			Page:      pages[0],
			ProductID: id,
			Message:   fmt.Sprintf("configured %d times (pages %v); later crops overwrite earlier ones", len(pages), pages),
		})
	}

	return issues
}

func lintGrid(p Page) []Issue {
	var issues []Issue
	if p.Rows <= 0 || p.Cols <= 0 {
		issues = append(issues, Issue{Page: p.Number, Message: fmt.Sprintf("invalid grid %dx%d", p.Rows, p.Cols)})
	} else if len(p.Products) != p.Rows*p.Cols {
		issues = append(issues, Issue{
			Page:    p.Number,
			Message: fmt.Sprintf("%d slots for a %dx%d grid (want %d)", len(p.Products), p.Rows, p.Cols, p.Rows*p.Cols),
		})
	}
	if p.PhotoRatio < 0 || p.PhotoRatio > 1 {
		issues = append(issues, Issue{Page: p.Number, Message: fmt.Sprintf("photo ratio %.2f outside (0,1]", p.PhotoRatio)})
	}
	if p.Area.Bottom <= p.Area.Top || p.Area.Right <= p.Area.Left {
		issues = append(issues, Issue{Page: p.Number, Message: "empty content area"})
	}
	return issues
}
