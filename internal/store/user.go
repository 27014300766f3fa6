package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// UserStore defines the interface for user persistence.
// It follows the same contract as TaskStore.
type UserStore interface {
	// List returns every user currently stored. The result is never nil.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create assigns a fresh ID, stores the user and returns it.
	Create(ctx context.Context, params domain.UserParams) (*domain.User, error)

	// Update merges patch into the stored user and returns the result.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)

	// Delete removes the user with the given ID and reports whether one existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
