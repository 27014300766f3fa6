package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// List returns every task currently stored. The result is never nil.
	// In-memory stores return tasks in insertion order; database-backed
	// stores return them in primary key order.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create assigns a fresh ID, stores the task and returns it.
	// Params are expected to be validated by the caller.
	Create(ctx context.Context, params domain.TaskParams) (*domain.Task, error)

	// Update merges patch into the stored task and returns the result.
	// Attributes absent from the patch keep their value and the ID never
	// changes. The merge is atomic: no reader observes a partial update.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes the task with the given ID. It reports true if a task
	// was removed and false if none existed; a missing task is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
