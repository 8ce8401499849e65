package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0002_payroll.sql": {Data: []byte("SELECT 1")},
		"m/0001_init.sql":    {Data: []byte("SELECT 1")},
		"m/README.md":        {Data: []byte("notes")},
		"m/0010_offers.sql":  {Data: []byte("SELECT 1")},
		"m/nested/0003.sql":  {Data: []byte("SELECT 1")},
	}

	files, err := MigrationVersions(fsys, "m")
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql", "0002_payroll.sql", "0010_offers.sql"}, files)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := MigrationVersions(migrationFiles, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "0001_init.sql", files[0])
}
