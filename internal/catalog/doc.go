// Package catalog loads the product catalog and derives output filenames from it.
//
// The catalog is a JSON document of categories, each holding products. Only a
// product's ID and display name are consumed here; every other field is decoded
// so the structure round-trips, but nothing reads it.
//
// # Filenames
//
// Each cropped product photo is written as "{id}_{slug}.png", where the slug is
// produced by Slugify from the product's display name. When an ID is missing from
// the catalog the ID itself stands in for the name, so a filename can always be
// built.
package catalog
