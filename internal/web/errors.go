package web

// errors.go maps domain errors onto HTTP responses. Technical detail is
// logged server-side with the request id; the client sees the envelope only.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/syncbridge/syncbridge/internal/core"
	"github.com/syncbridge/syncbridge/internal/logging"
)

// envelope is the uniform JSON response body for the API.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// respond writes a success envelope.
func respond(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Message: message, Data: data}); err != nil {
		// Headers are already sent; nothing to do but log.
		slog.Error("json encode error", "error", err)
	}
}

// respondError logs err and writes the matching error envelope.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusForError(err)

	logger := logging.FromContext(r.Context())
	logger.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Message: message})
}

// statusForError maps a domain error to an HTTP status and client message.
// Validation, unknown-model, and invalid-state failures carry their message
// through verbatim; anything unclassified is reported as a server error
// without internal detail.
func statusForError(err error) (int, string) {
	var (
		validationErr   *core.ValidationError
		unknownModelErr *core.UnknownModelError
		invalidStateErr *core.InvalidStateError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &unknownModelErr):
		return http.StatusBadRequest, unknownModelErr.Error()
	case errors.As(err, &invalidStateErr):
		return http.StatusConflict, invalidStateErr.Error()
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
