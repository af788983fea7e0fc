// Package response writes the JSON envelope every endpoint answers with:
// {"data": ..., "error": ..., "meta": {"requestId", "timestamp"}}.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Meta holds metadata for every API response.
type Meta struct {
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
}

// Error represents a structured API error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Envelope is the standard API response wrapper. Exactly one of Data and
// Error is set.
type Envelope struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
	Meta  Meta   `json:"meta"`
}

// NewMeta stamps a response. An empty requestID gets a fresh UUID.
func NewMeta(requestID string) Meta {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return Meta{
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// JSON writes a JSON response with the given status code and envelope.
func JSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success writes a successful JSON response.
func Success(w http.ResponseWriter, status int, data any, requestID string) {
	JSON(w, status, Envelope{Data: data, Meta: NewMeta(requestID)})
}

// NoContent writes a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Err writes an error JSON response.
func Err(w http.ResponseWriter, status int, code, message, requestID string) {
	ErrWithDetails(w, status, code, message, nil, requestID)
}

// ErrWithDetails writes an error JSON response with additional details,
// such as the field failures of a VALIDATION_ERROR.
func ErrWithDetails(w http.ResponseWriter, status int, code, message string, details any, requestID string) {
	JSON(w, status, Envelope{
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: NewMeta(requestID),
	})
}
