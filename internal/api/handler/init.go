package handler

import (
	"context"
	"net/http"

	"github.com/panda-project/panda/internal/api/middleware"
	"github.com/panda-project/panda/internal/api/response"
	"github.com/panda-project/panda/internal/command"
	"github.com/panda-project/panda/internal/query"
	"github.com/panda-project/panda/internal/usecase"
)

// InitRunner creates the product and the project.
type InitRunner interface {
	Exec(ctx context.Context, cmd usecase.InitCommand) (*usecase.InitResult, error)
}

type initRequest struct {
	ProductName string `json:"productName"`
	ProjectName string `json:"projectName"`
}

type initResponse struct {
	Product query.NamedDTO `json:"product"`
	Project query.NamedDTO `json:"project"`
}

// InitHandler handles POST /init.
type InitHandler struct {
	scenario InitRunner
}

// NewInitHandler creates a new InitHandler.
func NewInitHandler(scenario InitRunner) *InitHandler {
	return &InitHandler{scenario: scenario}
}

func (h *InitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req initRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cmd := command.Init[command.Web]{ProductName: req.ProductName, ProjectName: req.ProjectName}
	if !validate(w, r, cmd) {
		return
	}

	result, err := h.scenario.Exec(r.Context(), cmd)
	if err != nil {
		writeError(w, r, err, "initialize")
		return
	}

	response.Success(w, http.StatusCreated, initResponse{
		Product: query.NamedDTO{ID: result.Product.ID.Int(), Name: result.Product.Name.String()},
		Project: query.NamedDTO{ID: result.Project.ID.Int(), Name: result.Project.Name.String()},
	}, requestID)
}
