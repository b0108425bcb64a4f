package sqlite

import (
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"

	"cadastro/internal/adapter/database"
)

const MemoryPath = ":memory:"

type Config struct {
	Path        string
	ServiceName string
	LogQueries  bool
	AutoMigrate bool
}

// Open opens the SQLite file at cfg.Path with tracing, optional query
// logging and, when enabled, runs pending migrations.
func Open(cfg Config) (*database.DB, error) {
	if cfg.Path == "" {
		cfg.Path = "banco.db"
	}

	dsn := DSN(cfg.Path)

	sqlDB, err := otelsql.Open("sqlite3", dsn,
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName(cfg.ServiceName),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if cfg.LogQueries {
		logger := zerolog.New(os.Stdout).With().Timestamp().Str("component", "sql").Logger()
		logged := sqldblogger.OpenDriver(dsn, sqlDB.Driver(), zerologadapter.New(logger),
			sqldblogger.WithMinimumLevel(sqldblogger.LevelDebug),
			sqldblogger.WithSQLQueryAsMessage(true),
		)

		sqlDB.Close()
		sqlDB = logged
	}

	if cfg.Path == MemoryPath {
		// each connection to :memory: is a separate database
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := database.RunMigrations(sqlDB, database.SQLite); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	return database.New(sqlDB, database.SQLite), nil
}

// DSN appends the connection pragmas to path unless it already has a query.
func DSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}

	if path == MemoryPath {
		return path + "?_foreign_keys=on"
	}

	return path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
}
