package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/query"
	"github.com/panda-project/panda/internal/scrumteam"
	"github.com/panda-project/panda/internal/usecase"
)

func makeChiRequest(method, path string, body []byte, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req, w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := parseEnvelope(t, w)
	errObj, ok := env["error"].(map[string]interface{})
	require.True(t, ok, "response has no error object: %s", w.Body.String())
	return errObj["code"].(string)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func sampleEmployee(t *testing.T, id int, family, first string) *employee.Employee {
	t.Helper()
	eid, err := employee.NewID(id)
	require.NoError(t, err)
	name, err := employee.NewName(family, first)
	require.NoError(t, err)
	return &employee.Employee{ID: eid, Name: name}
}

// --- Mock Init ---

type mockInit struct {
	execFn func(ctx context.Context, cmd usecase.InitCommand) (*usecase.InitResult, error)
}

func (m *mockInit) Exec(ctx context.Context, cmd usecase.InitCommand) (*usecase.InitResult, error) {
	return m.execFn(ctx, cmd)
}

// --- Mock Employee Service ---

type mockEmployeeService struct {
	createFn func(ctx context.Context, cmd employee.CreateCommand) (*employee.Employee, error)
	editFn   func(ctx context.Context, cmd employee.EditCommand) (*employee.Employee, error)
	removeFn func(ctx context.Context, cmd employee.RemoveCommand) error
}

func (m *mockEmployeeService) Create(ctx context.Context, cmd employee.CreateCommand) (*employee.Employee, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockEmployeeService) Edit(ctx context.Context, cmd employee.EditCommand) (*employee.Employee, error) {
	return m.editFn(ctx, cmd)
}

func (m *mockEmployeeService) Remove(ctx context.Context, cmd employee.RemoveCommand) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, cmd)
	}
	return nil
}

// --- Mock Employee Query ---

type mockEmployeeQuery struct {
	execFn     func(ctx context.Context) (*query.EmployeeList, error)
	findByIDFn func(ctx context.Context, id employee.ID) (*query.EmployeeDTO, error)
}

func (m *mockEmployeeQuery) Exec(ctx context.Context) (*query.EmployeeList, error) {
	return m.execFn(ctx)
}

func (m *mockEmployeeQuery) FindByID(ctx context.Context, id employee.ID) (*query.EmployeeDTO, error) {
	return m.findByIDFn(ctx, id)
}

// --- Mock Scrum Team Service ---

type mockTeamService struct {
	createFn  func(ctx context.Context, cmd scrumteam.CreateCommand) (*scrumteam.ScrumTeam, error)
	editFn    func(ctx context.Context, cmd scrumteam.EditCommand) (*scrumteam.ScrumTeam, error)
	disbandFn func(ctx context.Context, cmd scrumteam.DisbandCommand) error
}

func (m *mockTeamService) Create(ctx context.Context, cmd scrumteam.CreateCommand) (*scrumteam.ScrumTeam, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockTeamService) Edit(ctx context.Context, cmd scrumteam.EditCommand) (*scrumteam.ScrumTeam, error) {
	return m.editFn(ctx, cmd)
}

func (m *mockTeamService) Disband(ctx context.Context, cmd scrumteam.DisbandCommand) error {
	if m.disbandFn != nil {
		return m.disbandFn(ctx, cmd)
	}
	return nil
}

// --- Mock Scrum Team Query ---

type mockTeamQuery struct {
	execFn func(ctx context.Context) (*query.ScrumTeamView, error)
}

func (m *mockTeamQuery) Exec(ctx context.Context) (*query.ScrumTeamView, error) {
	return m.execFn(ctx)
}
