package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// Client-facing error messages.
const (
	msgInvalidID       = "Invalid ID"
	msgTaskNotFound    = "Task not found"
	msgUserNotFound    = "User not found"
	msgNotFound        = "Resource not found"
	msgInvalidEntity   = "Invalid entity data"
	msgMalformedBody   = "Malformed request body"
	msgInternalFailure = "Internal server error"
)

// MalformedInputError reports a request body that could not be decoded
// into the expected shape.
type MalformedInputError struct {
	Err error
}

// NewMalformedInputError wraps a decoding error.
func NewMalformedInputError(err error) *MalformedInputError {
	return &MalformedInputError{Err: err}
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var malformed *MalformedInputError

	switch {
	case domain.IsValidationError(err):
		return http.StatusBadRequest

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Undecodable bodies are reported as server errors, matching the
	// behavior clients already depend on.
	case errors.As(err, &malformed):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgInternalFailure
	}

	var validationErr *domain.ValidationError
	var malformed *MalformedInputError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message

	case errors.Is(err, store.ErrTaskNotFound):
		return msgTaskNotFound

	case errors.Is(err, store.ErrUserNotFound):
		return msgUserNotFound

	case errors.Is(err, store.ErrNotFound):
		return msgNotFound

	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidEntity

	case errors.As(err, &malformed):
		return msgMalformedBody

	default:
		return msgInternalFailure
	}
}

// HandleAPIError maps err to a status code and writes the error response.
// An empty message selects the safe message for err; the full error is only
// ever logged.
// A 500 never carries the failure's own text, only a fixed generic message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), message, err)
}

// translateValidationError turns a validator error into a MalformedInputError
// when any field is missing, otherwise into a domain.ValidationError for the
// first failed field such as "Title is required".
// Any other error is returned unchanged.
func translateValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	// A missing or null field means the body does not have the request's
	// shape at all, which outranks any blank field before it.
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return NewMalformedInputError(fmt.Errorf("field %s is missing or null", fe.Field()))
		}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "notblank":
		return domain.NewValidationError(fe.Field(), fe.Field()+" is required", domain.ErrRequiredField)
	default:
		return domain.NewValidationError(fe.Field(), fe.Field()+" is invalid", domain.ErrValidation)
	}
}
