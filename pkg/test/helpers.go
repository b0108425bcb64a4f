package test

import (
	"context"
	"log"
	"testing"

	"cadastro/internal/adapter/database"
	"cadastro/internal/adapter/database/sqlite"
)

var tables = []string{"users", "filmes"}

// InitTestDB opens a private in-memory SQLite database with every migration applied.
func InitTestDB() *database.DB {
	db, err := sqlite.Open(sqlite.Config{
		Path:        sqlite.MemoryPath,
		ServiceName: "cadastro-test",
		AutoMigrate: true,
	})

	if err != nil {
		log.Fatal(err)
	}

	return db
}

func CleanDB(t *testing.T, db *database.DB) {
	t.Helper()

	for _, table := range tables {
		if _, err := db.ExecContext(context.Background(), "DELETE FROM "+table); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

func CloseDB(t *testing.T, db *database.DB) {
	t.Helper()

	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		t.Errorf("Failed to close database: %v", err)
	}
}
