package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/controlcar/backend/internal/auth"
	"github.com/controlcar/backend/internal/domain"
	"github.com/controlcar/backend/internal/repo"
)

// errorResponse is the JSON error envelope for all non-2xx responses.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a service error to its HTTP status and writes the JSON
// envelope. Unrecognized errors become an opaque 500 — internals never leak
// to the client, only to the log.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: "resource not found"},
		})
	case errors.Is(err, repo.ErrDuplicateEmail):
		respondJSON(w, http.StatusConflict, errorResponse{
			Error: errorDetail{Code: "conflict", Message: repo.ErrDuplicateEmail.Error()},
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{
			Error: errorDetail{Code: "unauthorized", Message: auth.ErrInvalidCredentials.Error()},
		})
	default:
		slog.Error("internal error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// writeValidationError writes a 422 for a request rejected before reaching
// the service layer (e.g. malformed body or URL parameter).
func writeValidationError(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.RecordService.RegisterFuelLoad: validation error: odometer may
// not regress..." → "odometer may not regress...".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
