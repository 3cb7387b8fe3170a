package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlitePath(t *testing.T) {
	assert.Equal(t, "./data/studyforge.db", sqlitePath("./data/studyforge.db?_pragma=journal_mode(WAL)"))
	assert.Equal(t, "/tmp/x.db", sqlitePath("file:/tmp/x.db"))
	assert.Equal(t, "plain.db", sqlitePath("plain.db"))
}

func TestMigrationsUpAndDown(t *testing.T) {
	database, err := Init("sqlite", filepath.Join(t.TempDir(), "sub", "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, RunMigrations(database.DB, "sqlite"))

	version, err := MigrationVersion(database.DB, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = database.Exec(`INSERT INTO store_blobs (namespace, payload, updated_at) VALUES ('k', '{}', CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	require.NoError(t, MigrateDown(database.DB, "sqlite"))

	version, err = MigrationVersion(database.DB, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	_, err = database.Exec(`SELECT COUNT(*) FROM store_blobs`)
	assert.Error(t, err)
}

func TestGetDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", getDialect("sqlite"))
	assert.Equal(t, "postgres", getDialect("pgx"))
	assert.Equal(t, "mysql", getDialect("mysql"))
}
