package catalog

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// titlesQuery reads the raw columns; derivation happens in Go so that all
// sources produce identical derived fields.
const titlesQuery = `
	SELECT title, type, country, date_added, release_year, rating, duration, listed_in
	FROM titles
	ORDER BY id
`

// loadDB reads the catalog from a database created by catalog-import.
// driver is "sqlite" or "pgx"; dsn is the file path or connection URL.
func loadDB(driver, dsn, source string) (*Catalog, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach catalog database: %w", err)
	}

	rows, err := db.Query(titlesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query titles: %w", err)
	}
	defer rows.Close()

	var titles []Title
	for rows.Next() {
		var name, kind string
		var country, dateAdded, rating, duration, listedIn sql.NullString
		var year int

		if err := rows.Scan(&name, &kind, &country, &dateAdded, &year, &rating, &duration, &listedIn); err != nil {
			return nil, fmt.Errorf("failed to scan title: %w", err)
		}

		titles = append(titles, newTitle(
			name, kind,
			country.String, dateAdded.String, rating.String,
			duration.String, listedIn.String,
			year,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read titles: %w", err)
	}
	if len(titles) == 0 {
		return nil, ErrEmptyCatalog
	}

	return newCatalog(titles, source, 0), nil
}
