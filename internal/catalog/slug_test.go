package catalog

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation collapsed", "PANDA-36B Soup Bowl!!", "panda-36b-soup-bowl"},
		{"plain", "Thai Jasmine Rice 50lb", "thai-jasmine-rice-50lb"},
		{"leading and trailing", "  --Duck Sauce--  ", "duck-sauce"},
		{"inch marks", `12" Catering Tray + Lid`, "12-catering-tray-lid"},
		{"non ascii", "Crème Brûlée Cup", "cr-me-br-l-e-cup"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugify_MaxLength(t *testing.T) {
	inputs := []string{
		strings.Repeat("a", 200),
		strings.Repeat("word ", 40),
		strings.Repeat("é-x ", 50),
	}

	for _, in := range inputs {
		got := Slugify(in)
		if len(got) > MaxSlugLength {
			t.Errorf("slug length %d exceeds %d for %q", len(got), MaxSlugLength, in)
		}
	}

	if got := Slugify(strings.Repeat("b", 61)); got != strings.Repeat("b", 60) {
		t.Errorf("61 chars should be cut to 60, got %d", len(got))
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	name := "Tamper Evident Container 32oz (150/cs)"
	first := Slugify(name)
	for i := 0; i < 5; i++ {
		if got := Slugify(name); got != first {
			t.Fatalf("Slugify not deterministic: %q vs %q", got, first)
		}
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("rice-001", "Thai Jasmine Rice 50lb"); got != "rice-001_thai-jasmine-rice-50lb.png" {
		t.Errorf("Filename: got %q", got)
	}

	c := New(Category{Products: []Product{{ID: "soup-001", Name: "PANDA-36B Soup Bowl"}}})
	if got := c.Filename("soup-001"); got != "soup-001_panda-36b-soup-bowl.png" {
		t.Errorf("Catalog.Filename: got %q", got)
	}
	if got := c.Filename("ghost-001"); got != "ghost-001_ghost-001.png" {
		t.Errorf("Catalog.Filename for unknown id: got %q", got)
	}
}
