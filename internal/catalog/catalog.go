package catalog

import (
	"sort"
	"time"
)

// Catalog is the immutable in-memory table of titles. It is built once by a
// loader and shared by reference afterward; nothing mutates it.
type Catalog struct {
	Titles   []Title
	Source   string // human-readable source description
	LoadedAt time.Time
	Skipped  int // rows dropped during load (malformed release_year)

	// Filter option domains, precomputed at construction.
	types     []string
	countries []string
	genres    []string
	ratings   []string
	minYear   int
	maxYear   int
}

// newCatalog wraps loaded titles and precomputes the filter option domains
// the sidebar needs: distinct types in first-seen order, sorted distinct
// country and genre tokens, sorted distinct ratings, and the year bounds.
func newCatalog(titles []Title, source string, skipped int) *Catalog {
	c := &Catalog{
		Titles:   titles,
		Source:   source,
		LoadedAt: time.Now(),
		Skipped:  skipped,
	}

	typeSeen := make(map[string]bool)
	countrySeen := make(map[string]bool)
	genreSeen := make(map[string]bool)
	ratingSeen := make(map[string]bool)

	for i, t := range titles {
		if t.Type != "" && !typeSeen[t.Type] {
			typeSeen[t.Type] = true
			c.types = append(c.types, t.Type)
		}
		for _, tok := range SplitList(t.Country) {
			if !countrySeen[tok] {
				countrySeen[tok] = true
				c.countries = append(c.countries, tok)
			}
		}
		for _, tok := range SplitList(t.ListedIn) {
			if !genreSeen[tok] {
				genreSeen[tok] = true
				c.genres = append(c.genres, tok)
			}
		}
		if t.Rating != "" && !ratingSeen[t.Rating] {
			ratingSeen[t.Rating] = true
			c.ratings = append(c.ratings, t.Rating)
		}
		if i == 0 || t.ReleaseYear < c.minYear {
			c.minYear = t.ReleaseYear
		}
		if i == 0 || t.ReleaseYear > c.maxYear {
			c.maxYear = t.ReleaseYear
		}
	}

	sort.Strings(c.countries)
	sort.Strings(c.genres)
	sort.Strings(c.ratings)

	return c
}

// Len returns the number of titles in the catalog.
func (c *Catalog) Len() int { return len(c.Titles) }

// Types returns the distinct type values in first-seen order.
func (c *Catalog) Types() []string { return c.types }

// Countries returns the sorted distinct country tokens.
func (c *Catalog) Countries() []string { return c.countries }

// Genres returns the sorted distinct genre tokens.
func (c *Catalog) Genres() []string { return c.genres }

// Ratings returns the sorted distinct rating values.
func (c *Catalog) Ratings() []string { return c.ratings }

// YearBounds returns the minimum and maximum release year. Both are zero
// for an empty catalog.
func (c *Catalog) YearBounds() (min, max int) { return c.minYear, c.maxYear }
