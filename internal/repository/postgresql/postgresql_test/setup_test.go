package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

var tables = []string{
	"offer_letters",
	"offer_letter_templates",
	"leave_requests",
	"leave_balances",
	"payrolls",
	"salaries",
	"employee_code_sequences",
	"employees",
	"designations",
	"departments",
}

// openTestDB connects to TEST_DATABASE_URL, applies migrations and empties
// every table except leave_types. Tests are skipped when it is not set.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, database.Migrate(ctx, db))
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
	return db
}
