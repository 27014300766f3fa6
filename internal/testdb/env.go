//go:build integration

package testdb

import "os"

// GetTestDatabaseURL returns the database URL for tests.
// It checks DATABASE_URL and TASKBOARD_TEST_DB_URL in that order,
// returning the first non-empty value or "" when neither is set.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("TASKBOARD_TEST_DB_URL")
}
