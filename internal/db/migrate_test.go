package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"bookings", "editing_tasks", "delivery_records", "app_settings", "backup_snapshots"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration list must be a no-op.
	require.NoError(t, Migrate(database))
}

func TestOpenDB_SeedsDefaultSettings(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var company string
	var backup int
	require.NoError(t, database.QueryRow(
		`SELECT company_name, enable_cloud_backup FROM app_settings WHERE id = 'default'`).
		Scan(&company, &backup))
	assert.Equal(t, "Khan's Creations", company)
	assert.Equal(t, 0, backup)
}
