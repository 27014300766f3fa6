package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_EmptyStore(t *testing.T) {
	rr := doRequest(t, newMemoryRouter(), http.MethodGet, "/tasks", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestCreateTask(t *testing.T) {
	router := newMemoryRouter()

	rr := doRequest(t, router, http.MethodPost, "/tasks",
		`{"title":"Test Task","description":"A test"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t,
		`{"id":1,"title":"Test Task","description":"A test","completed":false}`,
		rr.Body.String())

	t.Run("description defaults to empty", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/tasks", `{"title":"No description"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		task := decodeBody[api.TaskResponse](t, rr)
		assert.Equal(t, int64(2), task.ID)
		assert.Equal(t, "", task.Description)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/tasks",
			`{"id":500,"title":"Extra","completed":true,"priority":"high"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		task := decodeBody[api.TaskResponse](t, rr)
		assert.Equal(t, int64(3), task.ID, "client-supplied id is ignored")
		assert.False(t, task.Completed, "new tasks start out not completed")
	})
}

func TestCreateTask_Validation(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "missing title",
			body:            `{"description":"no title"}`,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Malformed request body",
		},
		{
			name:            "empty object",
			body:            `{}`,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Malformed request body",
		},
		{
			name:            "null title",
			body:            `{"title":null}`,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Malformed request body",
		},
		{
			name:            "second JSON value after body",
			body:            `{"title":"a"} {"title":"b"}`,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Malformed request body",
		},
		{
			name:            "empty title",
			body:            `{"title":""}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Title is required",
		},
		{
			name:            "whitespace title",
			body:            `{"title":"  \t "}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Title is required",
		},
		{
			name:            "malformed JSON",
			body:            `{"title":`,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Malformed request body",
		},
		{
			name:            "wrong field type",
			body:            `{"title":42}`,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Malformed request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, newMemoryRouter(), http.MethodPost, "/tasks", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedMessage, errorMessage(t, rr))
		})
	}
}

func TestGetTask(t *testing.T) {
	router := newMemoryRouter()
	created := doRequest(t, router, http.MethodPost, "/tasks", `{"title":"Buy milk","description":"2L"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	rr := doRequest(t, router, http.MethodGet, "/tasks/1", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, created.Body.String(), rr.Body.String(), "create then get round trips")

	tests := []struct {
		name            string
		path            string
		expectedStatus  int
		expectedMessage string
	}{
		{name: "not found", path: "/tasks/999", expectedStatus: http.StatusNotFound, expectedMessage: "Task not found"},
		{name: "non-numeric id", path: "/tasks/abc", expectedStatus: http.StatusBadRequest, expectedMessage: "Invalid ID"},
		{name: "fractional id", path: "/tasks/1.5", expectedStatus: http.StatusBadRequest, expectedMessage: "Invalid ID"},
		{name: "out of range id", path: "/tasks/99999999999", expectedStatus: http.StatusBadRequest, expectedMessage: "Invalid ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedMessage, errorMessage(t, rr))
		})
	}
}

func TestUpdateTask(t *testing.T) {
	setup := func(t *testing.T) (*memory.TaskStore, func(method, path, body string) (int, string)) {
		tasks := memory.NewTaskStore()
		_, err := tasks.Create(context.Background(), domain.TaskParams{Title: "Original", Description: "keep me"})
		require.NoError(t, err)
		router := newTestRouter(tasks, memory.NewUserStore())
		return tasks, func(method, path, body string) (int, string) {
			rr := doRequest(t, router, method, path, body)
			return rr.Code, rr.Body.String()
		}
	}

	t.Run("partial update", func(t *testing.T) {
		_, do := setup(t)
		code, body := do(http.MethodPut, "/tasks/1", `{"title":"Updated","completed":true}`)
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"id":1,"title":"Updated","description":"keep me","completed":true}`, body)
	})

	t.Run("empty body changes nothing", func(t *testing.T) {
		_, do := setup(t)
		code, body := do(http.MethodPut, "/tasks/1", `{}`)
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"id":1,"title":"Original","description":"keep me","completed":false}`, body)
	})

	t.Run("null fields are treated as absent", func(t *testing.T) {
		_, do := setup(t)
		code, body := do(http.MethodPut, "/tasks/1", `{"title":null,"description":null,"completed":true}`)
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"id":1,"title":"Original","description":"keep me","completed":true}`, body)
	})

	t.Run("id in body cannot change the id", func(t *testing.T) {
		tasks, do := setup(t)
		code, body := do(http.MethodPut, "/tasks/1", `{"id":77,"title":"Renamed"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"id":1,"title":"Renamed","description":"keep me","completed":false}`, body)

		_, err := tasks.GetByID(context.Background(), 77)
		assert.Error(t, err)
	})

	t.Run("blank title is accepted on update", func(t *testing.T) {
		_, do := setup(t)
		code, body := do(http.MethodPut, "/tasks/1", `{"title":""}`)
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"id":1,"title":"","description":"keep me","completed":false}`, body)
	})

	t.Run("missing task", func(t *testing.T) {
		_, do := setup(t)
		code, body := do(http.MethodPut, "/tasks/2", `{"title":"x"}`)
		assert.Equal(t, http.StatusNotFound, code)
		assert.JSONEq(t, `{"message":"Task not found"}`, body)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, do := setup(t)
		code, body := do(http.MethodPut, "/tasks/one", `{"title":"x"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.JSONEq(t, `{"message":"Invalid ID"}`, body)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, do := setup(t)
		code, body := do(http.MethodPut, "/tasks/1", `{"completed":"yes"}`)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.JSONEq(t, `{"message":"Malformed request body"}`, body)
	})
}

func TestDeleteTask(t *testing.T) {
	router := newMemoryRouter()
	require.Equal(t, http.StatusCreated,
		doRequest(t, router, http.MethodPost, "/tasks", `{"title":"Doomed"}`).Code)

	rr := doRequest(t, router, http.MethodDelete, "/tasks/1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = doRequest(t, router, http.MethodDelete, "/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Task not found", errorMessage(t, rr))

	rr = doRequest(t, router, http.MethodGet, "/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, router, http.MethodDelete, "/tasks/999", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Task not found"}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodDelete, "/tasks/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid ID", errorMessage(t, rr))
}

func TestTaskIDsAreNeverReused(t *testing.T) {
	router := newMemoryRouter()

	for i := 1; i <= 3; i++ {
		rr := doRequest(t, router, http.MethodPost, "/tasks", fmt.Sprintf(`{"title":"task %d"}`, i))
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, int64(i), decodeBody[api.TaskResponse](t, rr).ID)
	}

	require.Equal(t, http.StatusNoContent, doRequest(t, router, http.MethodDelete, "/tasks/3", "").Code)

	rr := doRequest(t, router, http.MethodPost, "/tasks", `{"title":"task 4"}`)
	assert.Equal(t, int64(4), decodeBody[api.TaskResponse](t, rr).ID)

	list := decodeBody[[]api.TaskResponse](t, doRequest(t, router, http.MethodGet, "/tasks", ""))
	ids := make([]int64, 0, len(list))
	for _, task := range list {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []int64{1, 2, 4}, ids)
}

func TestTaskHandler_StoreFailure(t *testing.T) {
	failure := errors.New("dial tcp 10.0.0.12:5432: connection refused")

	tasks := mocks.NewMockTaskStore()
	tasks.ListFn = func(ctx context.Context) ([]domain.Task, error) {
		return nil, failure
	}
	tasks.CreateFn = func(ctx context.Context, params domain.TaskParams) (*domain.Task, error) {
		return nil, fmt.Errorf("failed to create task: %w", failure)
	}
	tasks.DeleteFn = func(ctx context.Context, id int64) (bool, error) {
		return false, failure
	}
	router := newTestRouter(tasks, mocks.NewMockUserStore())

	for _, req := range []struct{ method, path, body string }{
		{http.MethodGet, "/tasks", ""},
		{http.MethodPost, "/tasks", `{"title":"x"}`},
		{http.MethodDelete, "/tasks/1", ""},
	} {
		t.Run(req.method, func(t *testing.T) {
			rr := doRequest(t, router, req.method, req.path, req.body)

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, `{"message":"Internal server error"}`, rr.Body.String())
			assert.NotContains(t, rr.Body.String(), "10.0.0.12", "internal details must not leak")
		})
	}
}

func TestResponsesCarryTraceID(t *testing.T) {
	router := newMemoryRouter()

	ok := doRequest(t, router, http.MethodGet, "/tasks", "")
	failed := doRequest(t, router, http.MethodGet, "/tasks/abc", "")

	assert.NotEmpty(t, ok.Header().Get(shared.TraceIDHeader))
	assert.NotEmpty(t, failed.Header().Get(shared.TraceIDHeader))
	assert.NotEqual(t, ok.Header().Get(shared.TraceIDHeader), failed.Header().Get(shared.TraceIDHeader))
}
