package memory

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// UserStore keeps users in process memory.
type UserStore struct {
	users *table[domain.User]
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty UserStore whose first user gets ID 1.
func NewUserStore() *UserStore {
	return &UserStore{users: newTable[domain.User]()}
}

// List implements store.UserStore.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	return s.users.list(), nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := s.users.get(id)
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, params domain.UserParams) (*domain.User, error) {
	user := s.users.insert(func(id int64) domain.User {
		return domain.NewUser(id, params)
	})
	return &user, nil
}

// Update implements store.UserStore.
func (s *UserStore) Update(
	ctx context.Context,
	id int64,
	patch domain.UserPatch,
) (*domain.User, error) {
	user, ok := s.users.update(id, func(current domain.User) domain.User {
		return current.Apply(patch)
	})
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// Delete implements store.UserStore.
func (s *UserStore) Delete(ctx context.Context, id int64) (bool, error) {
	return s.users.remove(id), nil
}

// Reset removes every user and restarts ID assignment at 1.
func (s *UserStore) Reset() {
	s.users.reset()
}
