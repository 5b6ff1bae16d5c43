package catalog

import (
	"regexp"
	"strings"
)

// MaxSlugLength bounds the slug part of an output filename.
const MaxSlugLength = 60

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a display name into a filename-safe slug.
//
// The name is lower-cased, every run of characters outside [a-z0-9] becomes a
// single hyphen, leading and trailing hyphens are removed and the result is cut
// to MaxSlugLength bytes. The cut happens after trimming, so a slug cut inside a
// separator keeps its trailing hyphen.
func Slugify(name string) string {
	s := nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxSlugLength {
		s = s[:MaxSlugLength]
	}
	return s
}

// Filename returns the output filename for a product: "{id}_{slug}.png".
func Filename(id, name string) string {
	return id + "_" + Slugify(name) + ".png"
}

// Filename returns the output filename for id, falling back to the id as the
// name when the product is not in the catalog.
func (c *Catalog) Filename(id string) string {
	return Filename(id, c.DisplayName(id))
}
