package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"

	"cadastro/internal/adapter/database"
)

type Config struct {
	URL         string
	ServiceName string
	LogQueries  bool
	AutoMigrate bool
}

// Open connects to Postgres through the pgx stdlib driver.
func Open(cfg Config) (*database.DB, error) {
	if cfg.URL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	sqlDB, err := otelsql.Open("pgx", cfg.URL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(cfg.ServiceName),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	if cfg.LogQueries {
		logger := zerolog.New(os.Stdout).With().Timestamp().Str("component", "sql").Logger()
		logged := sqldblogger.OpenDriver(cfg.URL, sqlDB.Driver(), zerologadapter.New(logger),
			sqldblogger.WithMinimumLevel(sqldblogger.LevelDebug),
			sqldblogger.WithSQLQueryAsMessage(true),
		)

		sqlDB.Close()
		sqlDB = logged
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping postgres database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := database.RunMigrations(sqlDB, database.Postgres); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	return database.New(sqlDB, database.Postgres), nil
}
