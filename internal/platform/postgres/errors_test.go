package postgres_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
)

// newPgError builds a PostgreSQL error with the given SQLSTATE code.
func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		SchemaName:     "public",
		TableName:      "tasks",
		ColumnName:     "title",
		ConstraintName: "tasks_title_check",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, postgres.MapError(nil))

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no rows", err: sql.ErrNoRows, expected: store.ErrNotFound},
		{name: "unique violation", err: newPgError("23505"), expected: store.ErrDuplicate},
		{name: "check violation", err: newPgError("23514"), expected: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), expected: store.ErrInvalidEntity},
		{name: "value too long", err: newPgError("22001"), expected: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := postgres.MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.expected)
			assert.ErrorIs(t, mapped, tt.err, "original error must stay in the chain")
		})
	}

	t.Run("unmapped errors pass through", func(t *testing.T) {
		generic := errors.New("connection reset")
		assert.Same(t, generic, postgres.MapError(generic))

		other := newPgError("40001")
		assert.Equal(t, error(other), postgres.MapError(other))
	})
}
