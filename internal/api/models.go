package api

import "github.com/phrazzld/taskboard-api/internal/domain"

// CreateTaskRequest is the body of POST /tasks.
// Title must be present and non-null; a blank title fails validation.
type CreateTaskRequest struct {
	Title       *string `json:"title" validate:"required,notblank"`
	Description string `json:"description"`
}

// UpdateTaskRequest is the body of PUT /tasks/{id}. Every field is optional;
// absent and null fields leave the stored value unchanged.
type UpdateTaskRequest struct {
	Title       domain.Optional[string] `json:"title"`
	Description domain.Optional[string] `json:"description"`
	Completed   domain.Optional[bool]   `json:"completed"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// CreateUserRequest is the body of POST /users.
// Name is validated before Email, so a body with both blank reports Name.
type CreateUserRequest struct {
	Name  *string `json:"name" validate:"required,notblank"`
	Email *string `json:"email" validate:"required,notblank"`
}

// UpdateUserRequest is the body of PUT /users/{id}.
type UpdateUserRequest struct {
	Name  domain.Optional[string] `json:"name"`
	Email domain.Optional[string] `json:"email"`
}

// UserResponse is the JSON representation of a user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (req CreateTaskRequest) toParams() domain.TaskParams {
	return domain.TaskParams{Title: *req.Title, Description: req.Description}
}

func (req UpdateTaskRequest) toPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
}

func (req CreateUserRequest) toParams() domain.UserParams {
	return domain.UserParams{Name: *req.Name, Email: *req.Email}
}

func (req UpdateUserRequest) toPatch() domain.UserPatch {
	return domain.UserPatch{Name: req.Name, Email: req.Email}
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}

// tasksToResponse never returns nil so an empty list encodes as [].
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToResponse(&tasks[i]))
	}
	return out
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	return out
}
