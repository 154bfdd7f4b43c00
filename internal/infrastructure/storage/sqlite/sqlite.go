// Package sqlite backs the repositories with an embedded SQLite database,
// the default for single-machine use.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"passvault/internal/infrastructure/migration"
)

type Storage struct {
	db *sql.DB
}

// New opens (creating if needed) the database file and brings the schema
// up to date.
func New(databaseURI string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dsn(databaseURI))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	mg := migration.New("sqlite3", databaseURI, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Storage{db: db}, nil
}

// dsn enables foreign keys (cascade deletes depend on them) and WAL unless
// the URI already carries its own options.
func dsn(databaseURI string) string {
	if strings.Contains(databaseURI, "?") {
		return databaseURI
	}
	return databaseURI + "?_foreign_keys=on&_journal_mode=WAL"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}
