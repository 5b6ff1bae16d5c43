package batch

import (
	"fmt"
	"io"
	"strings"
)

// Failure records a product whose crop could not be produced.
type Failure struct {
	ProductID string
	Page      int
	Err       error
}

// MissingProduct is a catalog product that no page configures.
type MissingProduct struct {
	ID   string
	Name string
}

// CaptionMismatch is a grid crop whose caption did not read back as the
// product's name.
type CaptionMismatch struct {
	ProductID string
	Page      int
	Slot      int
	Caption   string
	Score     float64
}

// Report collects the outcome of a run.
type Report struct {
	OutputDir string
	Cropped   int
	Failures  []Failure
	Missing   []MissingProduct

	// Blank lists products whose crop looks like empty background.
	Blank []string

	CaptionMismatches []CaptionMismatch

	// Interrupted is set when the run was cancelled before the last page.
	Interrupted bool
}

var separator = strings.Repeat("=", 60)

// WriteSummary prints the end-of-run summary. The output depends only on the
// report contents, so identical runs print identical summaries.
func (r *Report) WriteSummary(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", separator)
	fmt.Fprintf(&b, "Done! Cropped %d product images to %s/\n", r.Cropped, strings.TrimSuffix(r.OutputDir, "/"))
	if r.Interrupted {
		b.WriteString("Run interrupted: later pages were not processed.\n")
	}
	if len(r.Failures) > 0 {
		fmt.Fprintf(&b, "Failed: %d\n", len(r.Failures))
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "  - %s: %v\n", f.ProductID, f.Err)
		}
	} else {
		b.WriteString("No failures!\n")
	}

	if len(r.Missing) > 0 {
		fmt.Fprintf(&b, "\nProducts in catalog but NOT cropped (%d):\n", len(r.Missing))
		for _, m := range r.Missing {
			fmt.Fprintf(&b, "  - %s: %s\n", m.ID, m.Name)
		}
	}

	if len(r.Blank) > 0 {
		fmt.Fprintf(&b, "\nPossibly blank crops, check coordinates (%d):\n", len(r.Blank))
		for _, id := range r.Blank {
			fmt.Fprintf(&b, "  - %s\n", id)
		}
	}

	if len(r.CaptionMismatches) > 0 {
		fmt.Fprintf(&b, "\nCaptions not matching the catalog name (%d):\n", len(r.CaptionMismatches))
		for _, m := range r.CaptionMismatches {
			fmt.Fprintf(&b, "  - %s (p%02d [%d]): read %q, score %.2f\n", m.ProductID, m.Page, m.Slot, m.Caption, m.Score)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FailedIDs returns the product ids of all failures, in run order.
func (r *Report) FailedIDs() []string {
	ids := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		ids = append(ids, f.ProductID)
	}
	return ids
}
