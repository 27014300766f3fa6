//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

var (
	sharedOnce sync.Once
	sharedDB   *sql.DB
	sharedErr  error
)

// GetTestDBWithT returns the shared, migrated test database.
// The first call resolves the database URL, starting a container if needed,
// and applies all migrations. Failures are fatal for the calling test.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	sharedOnce.Do(func() {
		sharedDB, sharedErr = openTestDB(context.Background())
	})
	if sharedErr != nil {
		t.Fatalf("Failed to set up test database: %v", sharedErr)
	}

	return sharedDB
}

func openTestDB(ctx context.Context) (*sql.DB, error) {
	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		var err error
		if dbURL, err = startPostgresContainer(ctx); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	db.SetMaxOpenConns(10)

	pingCtx, cancel := context.WithTimeout(ctx, TestTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.Migrate(ctx, db, postgres.MigrateUp, nil); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
