package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	ListFn    func(ctx context.Context) ([]domain.User, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	CreateFn  func(ctx context.Context, params domain.UserParams) (*domain.User, error)
	UpdateFn  func(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	DeleteFn  func(ctx context.Context, id int64) (bool, error)

	Backing *memory.UserStore
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a mock backed by an empty in-memory store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Backing: memory.NewUserStore()}
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Backing.List(ctx)
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Backing.GetByID(ctx, id)
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, params domain.UserParams) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, params)
	}
	return m.Backing.Create(ctx, params)
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(
	ctx context.Context,
	id int64,
	patch domain.UserPatch,
) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return m.Backing.Update(ctx, id, patch)
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Backing.Delete(ctx, id)
}
