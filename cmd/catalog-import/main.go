package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/wgonzales/catalogd/internal/catalog"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS titles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	type TEXT NOT NULL,
	country TEXT,
	date_added TEXT,
	release_year INTEGER NOT NULL,
	rating TEXT,
	duration TEXT,
	listed_in TEXT
)`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS titles (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	type TEXT NOT NULL,
	country TEXT,
	date_added TEXT,
	release_year INTEGER NOT NULL,
	rating TEXT,
	duration TEXT,
	listed_in TEXT
)`

func main() {
	csvPath := flag.String("csv", "", "Path to catalog CSV file")
	sqlitePath := flag.String("sqlite-path", "", "Target SQLite database file")
	pgURL := flag.String("pg-url", "", "Target PostgreSQL connection URL")
	flag.Parse()

	if *csvPath == "" || (*sqlitePath == "" && *pgURL == "") {
		fmt.Fprintf(os.Stderr, "Usage: catalog-import --csv catalog.csv [--sqlite-path catalog.db | --pg-url postgres://...]\n")
		os.Exit(1)
	}

	// Load and validate the CSV through the same loader catalogd uses, so a
	// file that would fail at daemon startup fails here too.
	cat, err := catalog.Load(catalog.Source{Kind: "csv", Path: *csvPath})
	if err != nil {
		log.Fatalf("Failed to load CSV: %v", err)
	}
	log.Printf("Loaded %d titles from %s (%d rows skipped)", cat.Len(), *csvPath, cat.Skipped)

	driver, dsn, schema := "sqlite", *sqlitePath, sqliteSchema
	if *pgURL != "" {
		driver, dsn, schema = "pgx", *pgURL, postgresSchema
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Fatalf("Failed to open target database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping target database: %v", err)
	}
	log.Printf("Connected to %s target", driver)

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("Failed to create titles table: %v", err)
	}

	// Replace the table contents inside one transaction for idempotent re-runs
	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to start transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM titles"); err != nil {
		log.Fatalf("Failed to clear titles table: %v", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO titles (title, type, country, date_added, release_year, rating, duration, listed_in)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		log.Fatalf("Failed to prepare insert: %v", err)
	}
	defer stmt.Close()

	for _, t := range cat.Titles {
		var dateAdded sql.NullString
		if t.DateAdded != nil {
			dateAdded = sql.NullString{String: t.DateAdded.Format("2006-01-02"), Valid: true}
		}

		_, err := stmt.Exec(
			t.Title, t.Type,
			nullable(t.Country), dateAdded, t.ReleaseYear,
			nullable(t.Rating), nullable(t.Duration), nullable(t.ListedIn),
		)
		if err != nil {
			log.Fatalf("Failed to insert title %q: %v", t.Title, err)
		}
	}

	// Verify row count before committing
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM titles").Scan(&count); err != nil {
		log.Fatalf("Failed to count imported rows: %v", err)
	}
	if count != cat.Len() {
		log.Fatalf("Row count mismatch: CSV=%d, target=%d", cat.Len(), count)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit import: %v", err)
	}

	log.Printf("Imported %d titles", count)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
