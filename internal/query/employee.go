// Package query holds the read-only projections served to clients. Query
// services read repositories directly and never go through commands.
package query

import (
	"context"
	"fmt"

	"github.com/panda-project/panda/internal/employee"
)

// EmployeeDTO is one entry of the employee list.
type EmployeeDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EmployeeList is the employee list projection.
type EmployeeList struct {
	Employees []EmployeeDTO `json:"employees"`
}

// EmployeeListQueryService lists employees with their full names.
type EmployeeListQueryService struct {
	employees employee.Repository
}

// NewEmployeeListQueryService creates a new EmployeeListQueryService.
func NewEmployeeListQueryService(employees employee.Repository) *EmployeeListQueryService {
	return &EmployeeListQueryService{employees: employees}
}

// Exec lists every employee in storage order.
func (s *EmployeeListQueryService) Exec(ctx context.Context) (*EmployeeList, error) {
	all, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}

	out := &EmployeeList{Employees: make([]EmployeeDTO, 0, len(all))}
	for _, e := range all {
		out.Employees = append(out.Employees, NewEmployeeDTO(&e))
	}
	return out, nil
}

// FindByID returns a single employee or domain.ErrNotFound.
func (s *EmployeeListQueryService) FindByID(ctx context.Context, id employee.ID) (*EmployeeDTO, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := NewEmployeeDTO(e)
	return &dto, nil
}

// NewEmployeeDTO projects an employee.
func NewEmployeeDTO(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{ID: e.ID.Int(), Name: e.Name.FullName()}
}
