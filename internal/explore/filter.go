package explore

import (
	"strings"

	"github.com/wgonzales/catalogd/internal/catalog"
)

// Filter returns the titles matching every active predicate in the
// selection. Pure and deterministic: the input slice is never mutated, and
// filtering an already-filtered result with the same selection returns the
// same set.
//
// type and rating are exact membership tests. country and genre are
// substring matches against the raw comma-separated field: a row passes when
// at least one selected token appears anywhere in it. A selected name that
// is a substring of another country's name therefore over-matches; this
// mirrors the reference dashboard and is kept deliberately (see DESIGN.md).
func Filter(rows []catalog.Title, sel Selection) []catalog.Title {
	typeSet := toSet(sel.Types)
	ratingSet := toSet(sel.Ratings)

	out := make([]catalog.Title, 0, len(rows))
	for _, t := range rows {
		if len(typeSet) > 0 && !typeSet[t.Type] {
			continue
		}
		if len(sel.Countries) > 0 && !containsAny(t.Country, sel.Countries) {
			continue
		}
		if len(sel.Genres) > 0 && !containsAny(t.ListedIn, sel.Genres) {
			continue
		}
		if len(ratingSet) > 0 && !ratingSet[t.Rating] {
			continue
		}
		if t.ReleaseYear < sel.YearFrom || t.ReleaseYear > sel.YearTo {
			continue
		}
		out = append(out, t)
	}
	return out
}

// containsAny reports whether any token is a substring of raw. Rows with an
// empty field never match an active filter.
func containsAny(raw string, tokens []string) bool {
	if raw == "" {
		return false
	}
	for _, tok := range tokens {
		if tok != "" && strings.Contains(raw, tok) {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
