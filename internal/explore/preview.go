package explore

import (
	"strconv"

	"github.com/wgonzales/catalogd/internal/catalog"
)

// PreviewTable is the first-rows table shown above the charts.
type PreviewTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

var previewColumns = []string{"title", "type", "country", "release_year", "rating", "listed_in"}

// Preview returns the first n rows of the overview columns.
func Preview(rows []catalog.Title, n int) PreviewTable {
	if n > len(rows) {
		n = len(rows)
	}

	table := PreviewTable{
		Columns: previewColumns,
		Rows:    make([][]string, 0, n),
	}
	for _, t := range rows[:n] {
		table.Rows = append(table.Rows, []string{
			t.Title,
			t.Type,
			t.Country,
			strconv.Itoa(t.ReleaseYear),
			t.Rating,
			t.ListedIn,
		})
	}
	return table
}
