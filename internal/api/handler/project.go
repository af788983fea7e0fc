package handler

import (
	"context"
	"net/http"

	"github.com/panda-project/panda/internal/api/middleware"
	"github.com/panda-project/panda/internal/api/response"
	"github.com/panda-project/panda/internal/query"
)

// ProjectQuery projects the product, the project and the team.
type ProjectQuery interface {
	Exec(ctx context.Context) (*query.ProjectOverview, error)
}

// ProjectHandler handles GET /project.
type ProjectHandler struct {
	query ProjectQuery
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(q ProjectQuery) *ProjectHandler {
	return &ProjectHandler{query: q}
}

func (h *ProjectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	overview, err := h.query.Exec(r.Context())
	if err != nil {
		writeError(w, r, err, "get project")
		return
	}

	response.Success(w, http.StatusOK, overview, requestID)
}
