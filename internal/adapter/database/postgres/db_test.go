package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastro/internal/adapter/database"
	"cadastro/internal/adapter/database/postgres"
)

func TestOpen_MissingURL(t *testing.T) {
	_, err := postgres.Open(postgres.Config{})

	assert.EqualError(t, err, "DATABASE_URL is not set")
}

func TestOpen_Integration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")

	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := postgres.Open(postgres.Config{URL: url, AutoMigrate: true})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, database.Postgres, db.Dialect)
	assert.NoError(t, db.Ping(context.Background()))
}
