package explore

// Selection is the filter state chosen in the dashboard sidebar. It is
// ephemeral: built per request, passed by value, never stored by the engine.
//
// An empty set on any multi-valued filter means "no constraint". The year
// range has no such bypass; it is always applied, so a degenerate range
// yields an empty result.
type Selection struct {
	Types     []string `json:"types,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Ratings   []string `json:"ratings,omitempty"`
	YearFrom  int      `json:"year_from"`
	YearTo    int      `json:"year_to"`
}

// IsEmpty reports whether no multi-valued filter is set.
func (s Selection) IsEmpty() bool {
	return len(s.Types) == 0 && len(s.Countries) == 0 &&
		len(s.Genres) == 0 && len(s.Ratings) == 0
}
