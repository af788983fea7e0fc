package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/panda-project/panda/internal/api/middleware"
	"github.com/panda-project/panda/internal/api/response"
	"github.com/panda-project/panda/internal/api/validation"
	"github.com/panda-project/panda/internal/command"
	"github.com/panda-project/panda/internal/domain"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. On failure it writes the
// INVALID_JSON response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		requestID := middleware.GetRequestID(r.Context())
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return false
	}
	return true
}

// validate runs every field check of cmd up front so the client sees all
// failures at once.
func validate(w http.ResponseWriter, r *http.Request, cmd command.Validator) bool {
	if err := cmd.Validate(); err != nil {
		writeError(w, r, err, "validate request")
		return false
	}
	return true
}

// writeError maps a use-case error onto the response envelope. Anything
// outside the domain taxonomy is logged and reported as INTERNAL_ERROR.
func writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	requestID := middleware.GetRequestID(r.Context())

	if fieldErrors, ok := validation.FromError(err); ok {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTeamComposition):
		response.Err(w, http.StatusUnprocessableEntity, "INVALID_TEAM_COMPOSITION", err.Error(), requestID)
	case errors.Is(err, domain.ErrAlreadyExists):
		response.Err(w, http.StatusConflict, "ALREADY_EXISTS", err.Error(), requestID)
	case errors.Is(err, domain.ErrNotFound):
		response.Err(w, http.StatusNotFound, "NOT_FOUND", err.Error(), requestID)
	case errors.Is(err, domain.ErrDanglingReference):
		response.Err(w, http.StatusConflict, "DANGLING_REFERENCE", err.Error(), requestID)
	default:
		slog.Error("failed to "+action, "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to "+action, requestID)
	}
}
