package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"cadastro/db"
)

// NewMigrator builds a migrate instance over an open pool, reading the
// migrations embedded for the dialect. Closing the migrator closes db.
func NewMigrator(sqlDB *sql.DB, dialect Dialect) (*migrate.Migrate, error) {
	var (
		driver migratedb.Driver
		err    error
	)

	fs, dir := db.SQLiteMigrations, db.SQLiteMigrationsDir

	switch dialect {
	case Postgres:
		fs, dir = db.PostgresMigrations, db.PostgresMigrationsDir
		driver, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	default:
		driver, err = sqlitemigrate.WithInstance(sqlDB, &sqlitemigrate.Config{})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(fs, dir)

	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(dialect), driver)

	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	m.Log = migrateLogger{}

	return m, nil
}

// RunMigrations applies every pending migration. The migrator is not closed:
// closing it closes the shared pool.
func RunMigrations(sqlDB *sql.DB, dialect Dialect) error {
	m, err := NewMigrator(sqlDB, dialect)

	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	slog.Info("Database migrated", "dialect", dialect, "version", version)

	return nil
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...))
}

func (migrateLogger) Verbose() bool { return false }
