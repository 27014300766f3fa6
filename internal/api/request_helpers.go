package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// getPathID extracts a resource ID from the URL path parameters.
// IDs are base-10 integers within the range of a PostgreSQL serial column;
// anything else is reported as a validation error with message "Invalid ID".
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)

	id, err := strconv.ParseInt(pathParam, 10, 32)
	if err != nil {
		return 0, domain.NewValidationError(paramName, msgInvalidID, domain.ErrInvalidID)
	}

	return id, nil
}

// decodeAndValidate decodes the JSON body into req and, when validateBody is
// set, validates it. Decoding failures become MalformedInputError and field
// failures become domain.ValidationError.
func decodeAndValidate(r *http.Request, req interface{}, validateBody bool) error {
	if err := shared.DecodeJSON(r, req); err != nil {
		return NewMalformedInputError(err)
	}
	if !validateBody {
		return nil
	}
	if err := shared.ValidateRequest(req); err != nil {
		return translateValidationError(err)
	}
	return nil
}
