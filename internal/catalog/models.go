package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Title represents one catalog entry (a movie or a TV show).
type Title struct {
	Title       string
	Type        string
	Country     string // raw, possibly comma-separated list of countries
	ListedIn    string // raw, comma-separated genre tags
	Rating      string
	ReleaseYear int
	DateAdded   *time.Time
	Duration    string // raw text, e.g. "90 min" or "3 Seasons"

	// Derived once at load, read-only afterward. At most one is non-nil.
	DurationMinutes *int
	NumSeasons      *int
}

// RequiredColumns lists the columns every catalog source must provide.
var RequiredColumns = []string{
	"title", "type", "country", "date_added",
	"release_year", "rating", "duration", "listed_in",
}

var digitRun = regexp.MustCompile(`[0-9]+`)

// DeriveDuration extracts the minutes or seasons value from a raw duration
// string. The first contiguous digit run is the value; the unit is decided
// by substring match, "min" checked before "Season". A string carrying both
// tokens (not expected in valid data) therefore yields minutes only, which
// keeps the two derived fields mutually exclusive.
func DeriveDuration(raw string) (minutes, seasons *int) {
	if raw == "" {
		return nil, nil
	}
	digits := digitRun.FindString(raw)
	if digits == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil, nil
	}
	switch {
	case strings.Contains(raw, "min"):
		return &n, nil
	case strings.Contains(raw, "Season"):
		return nil, &n
	}
	return nil, nil
}

// dateAddedLayouts are the accepted forms of the date_added column.
// The CSV export uses the long form; database sources use ISO dates.
var dateAddedLayouts = []string{
	"January 2, 2006",
	"2006-01-02",
}

// ParseDateAdded parses a date_added value. Unparseable or empty input
// yields nil, never an error.
func ParseDateAdded(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateAddedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// SplitList splits a comma-separated field (country, listed_in) into
// trimmed, non-empty tokens.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// newTitle builds a Title from raw column values, deriving the duration
// fields and soft-parsing date_added.
func newTitle(name, kind, country, dateAdded, rating, duration, listedIn string, year int) Title {
	t := Title{
		Title:       strings.TrimSpace(name),
		Type:        strings.TrimSpace(kind),
		Country:     strings.TrimSpace(country),
		ListedIn:    strings.TrimSpace(listedIn),
		Rating:      strings.TrimSpace(rating),
		ReleaseYear: year,
		DateAdded:   ParseDateAdded(dateAdded),
		Duration:    strings.TrimSpace(duration),
	}
	t.DurationMinutes, t.NumSeasons = DeriveDuration(t.Duration)
	return t
}
