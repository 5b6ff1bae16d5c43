package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Product is one catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameZh      string   `json:"nameZh,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Description string   `json:"description,omitempty"`
	Size        string   `json:"size,omitempty"`
	Packing     string   `json:"packing,omitempty"`
	Brands      []string `json:"brands,omitempty"`
	Deals       []string `json:"deals,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// Category groups products under a display name.
type Category struct {
	Name     string    `json:"name"`
	NameZh   string    `json:"nameZh,omitempty"`
	Note     string    `json:"note,omitempty"`
	Products []Product `json:"products"`
}

// Catalog is the read-only product catalog for one run.
type Catalog struct {
	Categories []Category `json:"categories"`

	names map[string]string
}

// Load reads and decodes the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	c.index()
	return &c, nil
}

// New builds a catalog from categories already in memory.
func New(categories ...Category) *Catalog {
	c := &Catalog{Categories: categories}
	c.index()
	return c
}

func (c *Catalog) index() {
	c.names = make(map[string]string)
	for _, cat := range c.Categories {
		for _, p := range cat.Products {
			c.names[p.ID] = p.Name
		}
	}
}

// Names returns a copy of the id -> display name mapping.
// A duplicated id keeps the name of its last occurrence.
func (c *Catalog) Names() map[string]string {
	out := make(map[string]string, len(c.names))
	for id, name := range c.names {
		out[id] = name
	}
	return out
}

// Name looks up the display name for id.
func (c *Catalog) Name(id string) (string, bool) {
	name, ok := c.names[id]
	return name, ok
}

// DisplayName returns the product's name, or the id itself when the catalog
// does not know it.
func (c *Catalog) DisplayName(id string) string {
	if name, ok := c.names[id]; ok {
		return name
	}
	return id
}

// IDs returns every distinct product id in file order.
func (c *Catalog) IDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, cat := range c.Categories {
		for _, p := range cat.Products {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Len returns the number of distinct product ids.
func (c *Catalog) Len() int {
	return len(c.names)
}
