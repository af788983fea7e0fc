package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/panda-project/panda/internal/api/middleware"
	"github.com/panda-project/panda/internal/api/response"
	"github.com/panda-project/panda/internal/command"
	"github.com/panda-project/panda/internal/query"
	"github.com/panda-project/panda/internal/scrumteam"
)

// ScrumTeamService is the write side of the /team endpoints.
type ScrumTeamService interface {
	Create(ctx context.Context, cmd scrumteam.CreateCommand) (*scrumteam.ScrumTeam, error)
	Edit(ctx context.Context, cmd scrumteam.EditCommand) (*scrumteam.ScrumTeam, error)
	Disband(ctx context.Context, cmd scrumteam.DisbandCommand) error
}

// ScrumTeamQuery is the read side of the /team endpoints.
type ScrumTeamQuery interface {
	Exec(ctx context.Context) (*query.ScrumTeamView, error)
}

// scrumTeamRequest carries ids as decimal strings, as the CLI does.
type scrumTeamRequest struct {
	ProductOwnerID string   `json:"productOwnerId"`
	ScrumMasterID  string   `json:"scrumMasterId"`
	DeveloperIDs   []string `json:"developerIds"`
}

func (req scrumTeamRequest) roles() command.Roles[command.Web] {
	return command.Roles[command.Web]{
		ProductOwner: req.ProductOwnerID,
		ScrumMaster:  req.ScrumMasterID,
		Developers:   req.DeveloperIDs,
	}
}

// ScrumTeamHandler handles the /team endpoints.
type ScrumTeamHandler struct {
	service ScrumTeamService
	query   ScrumTeamQuery
}

// NewScrumTeamHandler creates a new ScrumTeamHandler.
func NewScrumTeamHandler(service ScrumTeamService, q ScrumTeamQuery) *ScrumTeamHandler {
	return &ScrumTeamHandler{service: service, query: q}
}

// Create handles POST /team.
func (h *ScrumTeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req scrumTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cmd := command.CreateScrumTeam[command.Web]{Roles: req.roles()}
	if !validate(w, r, cmd) {
		return
	}

	team, err := h.service.Create(r.Context(), cmd)
	if err != nil {
		writeError(w, r, err, "create scrum team")
		return
	}

	response.Success(w, http.StatusCreated, query.ScrumTeamView{ScrumTeam: query.NewScrumTeamDTO(team)}, requestID)
}

// Get handles GET /team.
func (h *ScrumTeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	view, err := h.query.Exec(r.Context())
	if err != nil {
		writeError(w, r, err, "get scrum team")
		return
	}

	response.Success(w, http.StatusOK, view, requestID)
}

// Update handles PUT /team. The command carries no id: it edits the one
// existing team.
func (h *ScrumTeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req scrumTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cmd := command.EditScrumTeam[command.Web]{Roles: req.roles()}
	if !validate(w, r, cmd) {
		return
	}

	team, err := h.service.Edit(r.Context(), cmd)
	if err != nil {
		writeError(w, r, err, "edit scrum team")
		return
	}

	response.Success(w, http.StatusOK, query.ScrumTeamView{ScrumTeam: query.NewScrumTeamDTO(team)}, requestID)
}

// Delete handles DELETE /team/{id}.
func (h *ScrumTeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cmd := command.DisbandScrumTeam[command.Web]{ID: chi.URLParam(r, "id")}
	if !validate(w, r, cmd) {
		return
	}

	if err := h.service.Disband(r.Context(), cmd); err != nil {
		writeError(w, r, err, "disband scrum team")
		return
	}

	response.NoContent(w)
}
