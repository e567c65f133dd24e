package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL.
// Tests are skipped when the variable is unset so the suite stays
// runnable without infrastructure.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)

	t.Cleanup(db.Close)
	return db
}

// truncate clears the given tables between tests.
func truncate(t *testing.T, db *database.DB, tables ...string) {
	t.Helper()

	ctx := context.Background()
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

// seedEmployee inserts a directory row and returns its ID.
func seedEmployee(t *testing.T, db *database.DB, fullName, email string, isAdmin bool) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO employees (
			id, full_name, email, is_admin,
			basic_salary, allowances, deductions,
			joined_at, created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, 1200000, 240000, 120000, NOW(), NOW(), NOW())
		RETURNING id
	`, fullName, email, isAdmin).Scan(&id)
	require.NoError(t, err)
	return id
}
