package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"cadastro/internal/adapter/database"
	server "cadastro/internal/adapter/http"
	"cadastro/pkg/config"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()

	if err != nil {
		fatalf("invalid configuration: %v", err)
	}

	cfg.AutoMigrate = false

	db, err := server.OpenDatabase(cfg)

	if err != nil {
		fatalf("failed to open database: %v", err)
	}

	m, err := database.NewMigrator(db.DB, db.Dialect)

	if err != nil {
		db.Close()
		fatalf("migration init failed: %v", err)
	}

	defer m.Close()

	if err := run(m, args); err != nil {
		m.Close()
		fatalf("%v", err)
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up failed: %w", err)
		}

		slog.Info("migrations: up completed")
	case "down":
		steps := 1

		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])

			if err != nil || n < 1 {
				return fmt.Errorf("down: invalid steps argument %q", args[1])
			}

			steps = n
		}

		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down failed: %w", err)
		}

		slog.Info("migrations: down completed", "steps", steps)
	case "version":
		v, dirty, err := m.Version()

		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("version failed: %w", err)
		}

		fmt.Printf("version: %d  dirty: %v\n", v, dirty)
	case "force":
		if len(args) < 2 {
			return errors.New("force: version argument required")
		}

		v, err := strconv.Atoi(args[1])

		if err != nil {
			return fmt.Errorf("force: invalid version %q", args[1])
		}

		if err := m.Force(v); err != nil {
			return fmt.Errorf("force failed: %w", err)
		}

		slog.Info("migrations: forced", "version", v)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Roll back N migrations (default: 1)
  version      Print current migration version
  force V      Set version V without running migrations

The database is selected with DATABASE_DRIVER, DATABASE_PATH and DATABASE_URL.`)
}

func fatalf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
