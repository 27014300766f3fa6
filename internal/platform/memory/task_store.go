package memory

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskStore keeps tasks in process memory.
type TaskStore struct {
	tasks *table[domain.Task]
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore whose first task gets ID 1.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: newTable[domain.Task]()}
}

// List implements store.TaskStore. Tasks are returned in insertion order.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.list(), nil
}

// GetByID implements store.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, ok := s.tasks.get(id)
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// Create implements store.TaskStore.
func (s *TaskStore) Create(ctx context.Context, params domain.TaskParams) (*domain.Task, error) {
	task := s.tasks.insert(func(id int64) domain.Task {
		return domain.NewTask(id, params)
	})
	return &task, nil
}

// Update implements store.TaskStore.
func (s *TaskStore) Update(
	ctx context.Context,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	task, ok := s.tasks.update(id, func(current domain.Task) domain.Task {
		return current.Apply(patch)
	})
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// Delete implements store.TaskStore.
func (s *TaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	return s.tasks.remove(id), nil
}

// Reset removes every task and restarts ID assignment at 1.
func (s *TaskStore) Reset() {
	s.tasks.reset()
}
