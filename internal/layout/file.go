package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileTable is the YAML shape of a page table override:
//
//	pages:
//	  2:
//	    mode: manual
//	    crops:
//	      - {id: rice-001, top: 780, left: 80, bottom: 1480, right: 1160}
//	  4:
//	    mode: grid
//	    area: {top: 120, left: 20, bottom: 1520, right: 1220}
//	    rows: 2
//	    cols: 3
//	    photo_ratio: 0.55
//	    products: [rice-002, rice-003, ~, rice-005, rice-006, rice-007]
type fileTable struct {
	Pages map[int]filePage `yaml:"pages"`
}

type filePage struct {
	Mode       Mode       `yaml:"mode"`
	Crops      []fileCrop `yaml:"crops"`
	Area       Rect       `yaml:"area"`
	Rows       int        `yaml:"rows"`
	Cols       int        `yaml:"cols"`
	PhotoRatio float64    `yaml:"photo_ratio"`
	Products   []*string  `yaml:"products"`
}

type fileCrop struct {
	ID   *string `yaml:"id"`
	Rect `yaml:",inline"`
}

// LoadFile reads a YAML page table. The result replaces the compiled-in table
// entirely; pages are not merged.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML page table.
func Parse(data []byte) (Table, error) {
	var ft fileTable
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	t := make(Table, len(ft.Pages))
	for n, fp := range ft.Pages {
		switch fp.Mode {
		case ModeManual:
			crops := make([]ManualCrop, 0, len(fp.Crops))
			for _, c := range fp.Crops {
				crops = append(crops, ManualCrop{ProductID: deref(c.ID), Rect: c.Rect})
			}
			t[n] = manual(n, crops...)
		case ModeGrid:
			products := make([]string, 0, len(fp.Products))
			for _, p := range fp.Products {
				products = append(products, deref(p))
			}
			t[n] = grid(n, fp.Area, fp.Rows, fp.Cols, fp.PhotoRatio, products...)
		default:
			return nil, fmt.Errorf("page %d: unknown mode %q", n, fp.Mode)
		}
	}
	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
