package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/panda-project/panda/internal/api/middleware"
	"github.com/panda-project/panda/internal/api/response"
)

// Resetter replaces the whole document with the seed.
type Resetter interface {
	Exec(ctx context.Context) error
}

// ResetHandler handles POST /reset.
type ResetHandler struct {
	scenario Resetter
}

// NewResetHandler creates a new ResetHandler.
func NewResetHandler(scenario Resetter) *ResetHandler {
	return &ResetHandler{scenario: scenario}
}

func (h *ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.scenario.Exec(r.Context()); err != nil {
		writeError(w, r, err, "reset document")
		return
	}

	slog.Info("document reset", "requestId", middleware.GetRequestID(r.Context()))
	response.NoContent(w)
}
