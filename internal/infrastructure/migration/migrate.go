// Package migration applies the embedded schema migrations for whichever
// database backend is configured.
package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	// Blank imports register the database drivers for migrations.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
)

//go:embed sql/postgres/*.sql sql/sqlite3/*.sql
var migrationFS embed.FS

// Migrator is the slice of migrate.Migrate we actually use.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// Engine builds a Migrator from a source driver and a database URL; tests
// substitute their own to keep the database out of the loop.
type Engine func(src source.Driver, databaseURL string) (Migrator, error)

// DefaultEngine is the real implementation.
func DefaultEngine(src source.Driver, databaseURL string) (Migrator, error) {
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

type Migration struct {
	driver string
	uri    string
	engine Engine
}

// New prepares migrations for the given driver ("postgres" or "sqlite3").
func New(driver, databaseURI string, engine Engine) *Migration {
	return &Migration{
		driver: driver,
		uri:    databaseURI,
		engine: engine,
	}
}

// Up applies all pending migrations; an already-current schema is not an
// error.
func (mg *Migration) Up() (err error) {
	src, err := iofs.New(migrationFS, "sql/"+mg.driver)
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	m, err := mg.engine(src, mg.databaseURL())
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}

// databaseURL turns the configured URI into the URL form migrate expects.
// Postgres URIs already carry their scheme; sqlite paths need one.
func (mg *Migration) databaseURL() string {
	if mg.driver == "sqlite3" {
		return "sqlite3://" + mg.uri
	}
	return mg.uri
}
