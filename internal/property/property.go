// Package property holds the listing catalog. The site currently markets a
// single listing, so the catalog is a static in-code map; unknown slugs
// fall back to the default listing so embeds and share links never break.
package property

// Listing is the marketing data for a property page.
type Listing struct {
	Slug       string
	Title      string
	District   string
	City       string
	AreaM2     int
	Rooms      int
	PriceLabel string
	HeroImage  string
}

const defaultSlug = "bem-rakpart-26"

var listings = map[string]Listing{
	defaultSlug: {
		Slug:       defaultSlug,
		Title:      "Bem rakpart 26",
		District:   "District I",
		City:       "Budapest",
		AreaM2:     89,
		Rooms:      3,
		PriceLabel: "€500K",
		HeroImage:  "/images/hero.jpg",
	},
}

// Default returns the flagship listing.
func Default() Listing {
	return listings[defaultSlug]
}

// Get returns the listing for a slug, falling back to the default listing
// when the slug is unknown.
func Get(slug string) Listing {
	if l, ok := listings[slug]; ok {
		return l
	}
	return Default()
}
