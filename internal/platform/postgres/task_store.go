package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

const taskColumns = "id, title, description, completed"

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor invariant, a store without a database is a wiring bug
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// List implements store.TaskStore.List.
// Tasks are returned in primary key order.
func (s *PostgresTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, "SELECT "+taskColumns+" FROM tasks ORDER BY id")
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list tasks: %w", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close task rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Completed); err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list tasks: %w", MapError(err))
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	task, err := scanTask(s.db.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, fmt.Errorf("failed to get task: %w", MapError(err))
	}

	return task, nil
}

// Create implements store.TaskStore.Create.
// The database assigns the ID; new tasks start out not completed.
func (s *PostgresTaskStore) Create(
	ctx context.Context,
	params domain.TaskParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := scanTask(s.db.QueryRowContext(ctx, `
		INSERT INTO tasks (title, description, completed)
		VALUES ($1, $2, false)
		RETURNING `+taskColumns,
		params.Title,
		params.Description,
	))
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create task: %w", MapError(err))
	}

	log.Info("task created successfully", slog.Int64("task_id", task.ID))
	return task, nil
}

// Update implements store.TaskStore.Update.
// The row is locked, merged with patch and written back in one transaction.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Nothing to write; report the current row
	if patch.IsEmpty() {
		log.Debug("empty patch, skipping write", slog.Int64("task_id", id))
		return s.GetByID(ctx, id)
	}

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		current, err := scanTask(tx.QueryRowContext(ctx,
			"SELECT "+taskColumns+" FROM tasks WHERE id = $1 FOR UPDATE", id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrTaskNotFound
			}
			return MapError(err)
		}

		merged := current.Apply(patch)
		updated, err = scanTask(tx.QueryRowContext(ctx, `
			UPDATE tasks
			SET title = $1, description = $2, completed = $3
			WHERE id = $4
			RETURNING `+taskColumns,
			merged.Title,
			merged.Description,
			merged.Completed,
			id,
		))
		return MapError(err)
	})
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found for update", slog.Int64("task_id", id))
			return nil, err
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, store.NewStoreError("task", "update", "transaction failed", err)
	}

	log.Info("task updated successfully", slog.Int64("task_id", id))
	return updated, nil
}

// Delete implements store.TaskStore.Delete.
// It reports whether a row was removed; a missing task is not an error.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return false, fmt.Errorf("failed to delete task: %w", MapError(err))
	}

	deleted, err := rowsDeleted(result)
	if err != nil {
		log.Error("failed to read rows affected",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return false, err
	}

	log.Debug("task delete finished",
		slog.Int64("task_id", id),
		slog.Bool("deleted", deleted))
	return deleted, nil
}

func scanTask(row *sql.Row) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Completed); err != nil {
		return nil, err
	}
	return &task, nil
}
