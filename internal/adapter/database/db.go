package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case SQLite, "sqlite3", "":
		return SQLite, nil
	case Postgres, "postgresql", "pgx":
		return Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", name)
	}
}

// DB is the connection pool shared by every repository, with a statement
// builder already set to the dialect's placeholder format.
type DB struct {
	*sql.DB
	QueryBuilder squirrel.StatementBuilderType
	Dialect      Dialect
}

func New(db *sql.DB, dialect Dialect) *DB {
	format := squirrel.PlaceholderFormat(squirrel.Question)

	if dialect == Postgres {
		format = squirrel.Dollar
	}

	return &DB{
		DB:           db,
		QueryBuilder: squirrel.StatementBuilder.PlaceholderFormat(format),
		Dialect:      dialect,
	}
}

func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}
