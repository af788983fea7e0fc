package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panda-project/panda/internal/api/handler"
	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/query"
)

func TestEmployeeCreate_Success(t *testing.T) {
	t.Parallel()

	svc := &mockEmployeeService{
		createFn: func(_ context.Context, cmd employee.CreateCommand) (*employee.Employee, error) {
			name, err := cmd.EmployeeName()
			require.NoError(t, err)
			return sampleEmployee(t, 5, name.FamilyName(), name.FirstName()), nil
		},
	}
	h := handler.NewEmployeeHandler(svc, &mockEmployeeQuery{})

	body := mustJSON(t, map[string]string{"familyName": "渡辺", "firstName": "誠"})
	req, w := makeChiRequest(http.MethodPost, "/employees", body, nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := parseEnvelope(t, w)
	assert.Nil(t, env["error"])
	data := env["data"].(map[string]interface{})
	emp := data["employee"].(map[string]interface{})
	assert.Equal(t, float64(5), emp["id"])
	assert.Equal(t, "渡辺 誠", emp["name"])
}

func TestEmployeeCreate_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := handler.NewEmployeeHandler(&mockEmployeeService{}, &mockEmployeeQuery{})
	req, w := makeChiRequest(http.MethodPost, "/employees", []byte(`{"familyName":`), nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_JSON", errorCode(t, w))
}

func TestEmployeeCreate_ValidationError_MissingFields(t *testing.T) {
	t.Parallel()

	h := handler.NewEmployeeHandler(&mockEmployeeService{}, &mockEmployeeQuery{})
	req, w := makeChiRequest(http.MethodPost, "/employees", []byte(`{}`), nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	details := errObj["details"].([]interface{})
	require.Len(t, details, 2)
	assert.Equal(t, "familyName", details[0].(map[string]interface{})["field"])
	assert.Equal(t, "firstName", details[1].(map[string]interface{})["field"])
}

func TestEmployeeList(t *testing.T) {
	t.Parallel()

	q := &mockEmployeeQuery{
		execFn: func(_ context.Context) (*query.EmployeeList, error) {
			return &query.EmployeeList{Employees: []query.EmployeeDTO{{ID: 1, Name: "渡辺 誠"}, {ID: 2, Name: "井上 亮太"}}}, nil
		},
	}
	h := handler.NewEmployeeHandler(&mockEmployeeService{}, q)
	req, w := makeChiRequest(http.MethodGet, "/employees", nil, nil)

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["employees"], 2)
}

func TestEmployeeGetByID(t *testing.T) {
	t.Parallel()

	q := &mockEmployeeQuery{
		findByIDFn: func(_ context.Context, id employee.ID) (*query.EmployeeDTO, error) {
			if id.Int() != 3 {
				return nil, fmt.Errorf("employee %d: %w", id.Int(), domain.ErrNotFound)
			}
			return &query.EmployeeDTO{ID: 3, Name: "丸山 茜"}, nil
		},
	}
	h := handler.NewEmployeeHandler(&mockEmployeeService{}, q)

	tests := []struct {
		name   string
		id     string
		status int
		code   string
	}{
		{"found", "3", http.StatusOK, ""},
		{"unknown id", "4", http.StatusNotFound, "NOT_FOUND"},
		{"not a number", "abc", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"zero", "0", http.StatusBadRequest, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, w := makeChiRequest(http.MethodGet, "/employees/"+tt.id, nil, map[string]string{"id": tt.id})

			h.GetByID(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, errorCode(t, w))
			}
		})
	}
}

func TestEmployeeUpdate_Success(t *testing.T) {
	t.Parallel()

	svc := &mockEmployeeService{
		editFn: func(_ context.Context, cmd employee.EditCommand) (*employee.Employee, error) {
			id, err := cmd.EmployeeID()
			require.NoError(t, err)
			name, err := cmd.EmployeeName()
			require.NoError(t, err)
			return sampleEmployee(t, id.Int(), name.FamilyName(), name.FirstName()), nil
		},
	}
	h := handler.NewEmployeeHandler(svc, &mockEmployeeQuery{})

	body := mustJSON(t, map[string]string{"familyName": "Takeuchi", "firstName": "Taichi"})
	req, w := makeChiRequest(http.MethodPut, "/employees/4", body, map[string]string{"id": "4"})

	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	emp := parseEnvelope(t, w)["data"].(map[string]interface{})["employee"].(map[string]interface{})
	assert.Equal(t, float64(4), emp["id"])
	assert.Equal(t, "Takeuchi Taichi", emp["name"])
}

func TestEmployeeUpdate_ReportsIDAndNameTogether(t *testing.T) {
	t.Parallel()

	h := handler.NewEmployeeHandler(&mockEmployeeService{}, &mockEmployeeQuery{})
	body := mustJSON(t, map[string]string{"familyName": "", "firstName": "Taichi"})
	req, w := makeChiRequest(http.MethodPut, "/employees/x", body, map[string]string{"id": "x"})

	h.Update(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	details := parseEnvelope(t, w)["error"].(map[string]interface{})["details"].([]interface{})
	assert.Len(t, details, 2)
}

func TestEmployeeUpdate_NotFound(t *testing.T) {
	t.Parallel()

	svc := &mockEmployeeService{
		editFn: func(_ context.Context, _ employee.EditCommand) (*employee.Employee, error) {
			return nil, fmt.Errorf("employee 9: %w", domain.ErrNotFound)
		},
	}
	h := handler.NewEmployeeHandler(svc, &mockEmployeeQuery{})
	body := mustJSON(t, map[string]string{"familyName": "A", "firstName": "B"})
	req, w := makeChiRequest(http.MethodPut, "/employees/9", body, map[string]string{"id": "9"})

	h.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestEmployeeDelete(t *testing.T) {
	t.Parallel()

	var removed int
	svc := &mockEmployeeService{
		removeFn: func(_ context.Context, cmd employee.RemoveCommand) error {
			id, err := cmd.EmployeeID()
			require.NoError(t, err)
			removed = id.Int()
			return nil
		},
	}
	h := handler.NewEmployeeHandler(svc, &mockEmployeeQuery{})
	req, w := makeChiRequest(http.MethodDelete, "/employees/2", nil, map[string]string{"id": "2"})

	h.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 2, removed)
}

func TestEmployeeDelete_StorageFailure(t *testing.T) {
	t.Parallel()

	svc := &mockEmployeeService{
		removeFn: func(_ context.Context, _ employee.RemoveCommand) error {
			return fmt.Errorf("writing document: disk full")
		},
	}
	h := handler.NewEmployeeHandler(svc, &mockEmployeeQuery{})
	req, w := makeChiRequest(http.MethodDelete, "/employees/2", nil, map[string]string{"id": "2"})

	h.Delete(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INTERNAL_ERROR", errObj["code"])
	assert.Equal(t, "Failed to remove employee", errObj["message"])
}
