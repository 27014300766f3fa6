package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	ListFn    func(ctx context.Context) ([]domain.Task, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	CreateFn  func(ctx context.Context, params domain.TaskParams) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, id int64) (bool, error)

	// Backing serves any method whose function field is nil.
	Backing *memory.TaskStore
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a mock backed by an empty in-memory store.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{Backing: memory.NewTaskStore()}
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Backing.List(ctx)
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Backing.GetByID(ctx, id)
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, params domain.TaskParams) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, params)
	}
	return m.Backing.Create(ctx, params)
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(
	ctx context.Context,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return m.Backing.Update(ctx, id, patch)
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Backing.Delete(ctx, id)
}
