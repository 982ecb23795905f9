package explore

import (
	"sort"

	"github.com/wgonzales/catalogd/internal/catalog"
)

// YearCount is one point of the release-year time series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// TokenCount is a labeled occurrence count (country token, rating value).
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// CountByType counts titles per type. Counts always sum to len(rows).
func CountByType(rows []catalog.Title) map[string]int {
	counts := make(map[string]int)
	for _, t := range rows {
		counts[t.Type]++
	}
	return counts
}

// CountByYear counts titles per release year, sorted ascending by year.
func CountByYear(rows []catalog.Title) []YearCount {
	counts := make(map[int]int)
	for _, t := range rows {
		counts[t.ReleaseYear]++
	}

	out := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopCountries explodes each row's comma-separated country field and counts
// every token as one occurrence, so "United States, India" contributes one
// count to each. Returns at most k entries sorted by count descending, ties
// broken by first-seen order.
func TopCountries(rows []catalog.Title, k int) []TokenCount {
	counts := countTokens(rows, func(t catalog.Title) []string {
		return catalog.SplitList(t.Country)
	})
	if k > 0 && len(counts) > k {
		counts = counts[:k]
	}
	return counts
}

// RatingDistribution counts titles per rating, sorted by count descending
// with ties in first-seen order. Empty ratings are excluded.
func RatingDistribution(rows []catalog.Title) []TokenCount {
	return countTokens(rows, func(t catalog.Title) []string {
		if t.Rating == "" {
			return nil
		}
		return []string{t.Rating}
	})
}

// MovieDurations collects duration_minutes for Movie rows that have one.
// The result feeds the duration histogram and may be empty.
func MovieDurations(rows []catalog.Title) []int {
	var out []int
	for _, t := range rows {
		if t.Type == "Movie" && t.DurationMinutes != nil {
			out = append(out, *t.DurationMinutes)
		}
	}
	return out
}

// TVSeasonCounts counts TV Show rows per number of seasons.
func TVSeasonCounts(rows []catalog.Title) map[int]int {
	counts := make(map[int]int)
	for _, t := range rows {
		if t.Type == "TV Show" && t.NumSeasons != nil {
			counts[*t.NumSeasons]++
		}
	}
	return counts
}

// countTokens tallies tokens produced per row, preserving first-seen order,
// then sorts by count descending. sort.SliceStable keeps the first-seen
// order for equal counts.
func countTokens(rows []catalog.Title, tokens func(catalog.Title) []string) []TokenCount {
	counts := make(map[string]int)
	var order []string
	for _, t := range rows {
		for _, tok := range tokens(t) {
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	out := make([]TokenCount, 0, len(order))
	for _, tok := range order {
		out = append(out, TokenCount{Token: tok, Count: counts[tok]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
