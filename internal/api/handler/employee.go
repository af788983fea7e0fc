package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/panda-project/panda/internal/api/middleware"
	"github.com/panda-project/panda/internal/api/response"
	"github.com/panda-project/panda/internal/command"
	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/query"
)

// EmployeeService is the write side of the employee endpoints.
type EmployeeService interface {
	Create(ctx context.Context, cmd employee.CreateCommand) (*employee.Employee, error)
	Edit(ctx context.Context, cmd employee.EditCommand) (*employee.Employee, error)
	Remove(ctx context.Context, cmd employee.RemoveCommand) error
}

// EmployeeQuery is the read side of the employee endpoints.
type EmployeeQuery interface {
	Exec(ctx context.Context) (*query.EmployeeList, error)
	FindByID(ctx context.Context, id employee.ID) (*query.EmployeeDTO, error)
}

type employeeRequest struct {
	FamilyName string `json:"familyName"`
	FirstName  string `json:"firstName"`
}

type employeeEnvelope struct {
	Employee query.EmployeeDTO `json:"employee"`
}

// EmployeeHandler handles the /employees endpoints.
type EmployeeHandler struct {
	service EmployeeService
	query   EmployeeQuery
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service EmployeeService, q EmployeeQuery) *EmployeeHandler {
	return &EmployeeHandler{service: service, query: q}
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req employeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cmd := command.CreateEmployee[command.Web]{FamilyName: req.FamilyName, FirstName: req.FirstName}
	if !validate(w, r, cmd) {
		return
	}

	e, err := h.service.Create(r.Context(), cmd)
	if err != nil {
		writeError(w, r, err, "create employee")
		return
	}

	response.Success(w, http.StatusCreated, employeeEnvelope{Employee: query.NewEmployeeDTO(e)}, requestID)
}

// List handles GET /employees.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	list, err := h.query.Exec(r.Context())
	if err != nil {
		writeError(w, r, err, "list employees")
		return
	}

	response.Success(w, http.StatusOK, list, requestID)
}

// GetByID handles GET /employees/{id}.
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := employee.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "get employee")
		return
	}

	dto, err := h.query.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "get employee")
		return
	}

	response.Success(w, http.StatusOK, employeeEnvelope{Employee: *dto}, requestID)
}

// Update handles PUT /employees/{id}.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req employeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cmd := command.EditEmployee[command.Web]{
		ID:         chi.URLParam(r, "id"),
		FamilyName: req.FamilyName,
		FirstName:  req.FirstName,
	}
	if !validate(w, r, cmd) {
		return
	}

	e, err := h.service.Edit(r.Context(), cmd)
	if err != nil {
		writeError(w, r, err, "edit employee")
		return
	}

	response.Success(w, http.StatusOK, employeeEnvelope{Employee: query.NewEmployeeDTO(e)}, requestID)
}

// Delete handles DELETE /employees/{id}.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cmd := command.RemoveEmployee[command.Web]{ID: chi.URLParam(r, "id")}
	if !validate(w, r, cmd) {
		return
	}

	if err := h.service.Remove(r.Context(), cmd); err != nil {
		writeError(w, r, err, "remove employee")
		return
	}

	response.NoContent(w)
}
