package usecase_test

import (
	"context"

	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/product"
	"github.com/panda-project/panda/internal/project"
	"github.com/panda-project/panda/internal/scrumteam"
)

// --- Mock Product Repository ---

type mockProductRepo struct {
	saved    []*product.Product
	exists   bool
	existErr error
	saveErr  error
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, 0, len(m.saved))
	for _, p := range m.saved {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) Save(_ context.Context, p *product.Product) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	id, _ := product.NewID(len(m.saved) + 1)
	p.ID = id
	m.saved = append(m.saved, p)
	m.exists = true
	return nil
}

func (m *mockProductRepo) ExistsWithoutID(_ context.Context) (bool, error) {
	return m.exists, m.existErr
}

// --- Mock Project Repository ---

type mockProjectRepo struct {
	saved  []*project.Project
	exists bool
}

func (m *mockProjectRepo) FindAll(_ context.Context) ([]project.Project, error) {
	return nil, nil
}

func (m *mockProjectRepo) Save(_ context.Context, p *project.Project) error {
	id, _ := project.NewID(len(m.saved) + 1)
	p.ID = id
	m.saved = append(m.saved, p)
	m.exists = true
	return nil
}

func (m *mockProjectRepo) ExistsWithoutID(_ context.Context) (bool, error) {
	return m.exists, nil
}

// --- Mock Employee Repository ---

type mockEmployeeRepo struct {
	findByIDFn func(ctx context.Context, id employee.ID) (*employee.Employee, error)
	saveFn     func(ctx context.Context, e *employee.Employee) error
	removeFn   func(ctx context.Context, id employee.ID) error
}

func (m *mockEmployeeRepo) FindAll(_ context.Context) ([]employee.Employee, error) {
	return []employee.Employee{}, nil
}

func (m *mockEmployeeRepo) FindByID(ctx context.Context, id employee.ID) (*employee.Employee, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockEmployeeRepo) Save(ctx context.Context, e *employee.Employee) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, e)
	}
	return nil
}

func (m *mockEmployeeRepo) Remove(ctx context.Context, id employee.ID) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, id)
	}
	return nil
}

// --- Mock Scrum Team Repository ---

type mockTeamRepo struct {
	ids       []scrumteam.ID
	saveFn    func(ctx context.Context, t *scrumteam.ScrumTeam) error
	removeFn  func(ctx context.Context, id scrumteam.ID) error
	findIDErr error
}

func (m *mockTeamRepo) FindAll(_ context.Context) ([]scrumteam.ScrumTeam, error) {
	return nil, nil
}

func (m *mockTeamRepo) FindByID(_ context.Context, _ scrumteam.ID) (*scrumteam.ScrumTeam, error) {
	return nil, nil
}

func (m *mockTeamRepo) FindIDs(_ context.Context) ([]scrumteam.ID, error) {
	return m.ids, m.findIDErr
}

func (m *mockTeamRepo) Save(ctx context.Context, t *scrumteam.ScrumTeam) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, t)
	}
	if t.ID.IsNull() {
		t.ID, _ = scrumteam.NewID(len(m.ids) + 1)
	}
	m.ids = append(m.ids, t.ID)
	return nil
}

func (m *mockTeamRepo) Remove(ctx context.Context, id scrumteam.ID) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, id)
	}
	return nil
}

func (m *mockTeamRepo) ExistsWithoutID(_ context.Context) (bool, error) {
	return len(m.ids) > 0, nil
}
