package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/syncbridge/syncbridge/internal/core"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &core.ValidationError{Field: "email", Message: "is required"}, http.StatusBadRequest},
		{"unknown model", &core.UnknownModelError{Model: "widgets"}, http.StatusBadRequest},
		{"invalid state", &core.InvalidStateError{Op: "retry", Status: core.StatusSuccessful}, http.StatusConflict},
		{"not found", core.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("find sync history 7: %w", core.ErrNotFound), http.StatusNotFound},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := statusForError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("statusForError(%v) = %d, want %d", tt.err, status, tt.wantStatus)
			}
		})
	}
}

func TestStatusForError_InternalDetailHidden(t *testing.T) {
	_, message := statusForError(errors.New("pq: connection refused"))
	if message != "internal server error" {
		t.Errorf("message = %q, internal detail must not leak", message)
	}
}
