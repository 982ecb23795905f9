package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Source describes where the catalog is loaded from.
type Source struct {
	Kind string // "csv", "sqlite" or "postgres"
	Path string // file path for csv and sqlite sources
	DSN  string // connection URL for the postgres source
}

// Load reads the catalog from the configured source. A missing file,
// unreachable database or absent required column is a hard error; per-row
// derivation problems (unparseable duration or date_added) are recovered
// as nil fields.
func Load(src Source) (*Catalog, error) {
	switch src.Kind {
	case "", "csv":
		return loadCSV(src.Path)
	case "sqlite":
		return loadDB("sqlite", src.Path, "sqlite:"+src.Path)
	case "postgres":
		return loadDB("pgx", src.DSN, "postgres")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, src.Kind)
	}
}

// loadCSV reads a catalog CSV file. Column order is taken from the header;
// extra columns are ignored.
func loadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var titles []Title
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[cols["release_year"]]))
		if err != nil {
			skipped++
			continue
		}

		titles = append(titles, newTitle(
			row[cols["title"]],
			row[cols["type"]],
			row[cols["country"]],
			row[cols["date_added"]],
			row[cols["rating"]],
			row[cols["duration"]],
			row[cols["listed_in"]],
			year,
		))
	}

	if skipped > 0 {
		slog.Warn("Skipped catalog rows with malformed release_year", "count", skipped)
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCatalog, path)
	}

	return newCatalog(titles, "csv:"+path, skipped), nil
}

// mapColumns maps required column names to their header positions.
// Header names are normalized to lowercase snake case before matching.
func mapColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		index[key] = i
	}

	cols := make(map[string]int, len(RequiredColumns))
	var missing []string
	for _, name := range RequiredColumns {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[name] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return cols, nil
}
