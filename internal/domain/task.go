package domain

// Task is a single to-do item. ID is assigned by the store that owns the
// task and never changes afterwards.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
}

// TaskParams carries the caller-supplied fields of a new task.
// New tasks always start out not completed.
type TaskParams struct {
	Title       string
	Description string
}

// TaskPatch is a partial update of a task. Only attributes holding a value
// are applied; the ID is not part of a patch and cannot be changed.
type TaskPatch struct {
	Title       Optional[string]
	Description Optional[string]
	Completed   Optional[bool]
}

// NewTask builds the task a store persists for params under the given ID.
func NewTask(id int64, params TaskParams) Task {
	return Task{
		ID:          id,
		Title:       params.Title,
		Description: params.Description,
		Completed:   false,
	}
}

// Apply returns a copy of t with every present attribute of patch
// overwritten. Attributes absent from the patch keep their current value.
func (t Task) Apply(patch TaskPatch) Task {
	t.Title = patch.Title.OrElse(t.Title)
	t.Description = patch.Description.OrElse(t.Description)
	t.Completed = patch.Completed.OrElse(t.Completed)
	return t
}

// IsEmpty reports whether the patch would leave a task unchanged.
func (p TaskPatch) IsEmpty() bool {
	return !p.Title.IsPresent() && !p.Description.IsPresent() && !p.Completed.IsPresent()
}
