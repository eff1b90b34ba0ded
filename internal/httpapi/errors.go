package httpapi

import (
	"encoding/json"
	"net/http"

	"macrolib/internal/domain"
	"macrolib/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusForError maps domain error conditions to HTTP status codes.
func statusForError(err error) int {
	var he HTTPError
	switch {
	case asHTTPError(err, &he):
		return he.StatusCode()
	case domain.IsInvalidArgument(err):
		return http.StatusBadRequest
	case domain.IsUnregisteredModel(err), domain.IsUnregisteredModelEvent(err), domain.IsModelNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func asHTTPError(err error, target *HTTPError) bool {
	he, ok := err.(HTTPError)
	if ok {
		*target = he
	}
	return ok
}

// writeError maps err to a status and writes the JSON error payload.
func writeError(w http.ResponseWriter, err error) {
	writeJSONError(w, statusForError(err), err.Error())
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
