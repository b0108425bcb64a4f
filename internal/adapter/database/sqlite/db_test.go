package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastro/internal/adapter/database"
	"cadastro/internal/adapter/database/sqlite"
)

func TestDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqlite.DSN(sqlite.MemoryPath))
	assert.Equal(t, "banco.db?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", sqlite.DSN("banco.db"))
	assert.Equal(t, "file:x.db?mode=ro", sqlite.DSN("file:x.db?mode=ro"))
}

func TestOpen_RunsMigrations(t *testing.T) {
	db, err := sqlite.Open(sqlite.Config{Path: sqlite.MemoryPath, AutoMigrate: true})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, database.SQLite, db.Dialect)
	assert.NoError(t, db.Ping(context.Background()))

	for _, table := range []string{"users", "filmes", "schema_migrations"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)

		assert.NoError(t, err)
		assert.Equal(t, 1, count, table)
	}
}

func TestOpen_FileDatabase(t *testing.T) {
	path := t.TempDir() + "/banco.db"

	db, err := sqlite.Open(sqlite.Config{Path: path, AutoMigrate: true})
	require.NoError(t, err)
	db.Close()

	// reopening an up-to-date file is a no-op migration
	db, err = sqlite.Open(sqlite.Config{Path: path, AutoMigrate: true})
	require.NoError(t, err)
	defer db.Close()

	var version int
	err = db.QueryRow("SELECT version FROM schema_migrations").Scan(&version)

	assert.NoError(t, err)
	assert.Equal(t, 2, version)
}
