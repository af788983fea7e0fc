package usecase

import (
	"context"
	"fmt"

	"github.com/panda-project/panda/internal/employee"
)

// EmployeeUseCase manages the employee pool.
type EmployeeUseCase struct {
	employees employee.Repository
}

// NewEmployeeUseCase creates a new EmployeeUseCase.
func NewEmployeeUseCase(employees employee.Repository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees}
}

// Create inserts a new employee and returns it with its assigned id.
func (u *EmployeeUseCase) Create(ctx context.Context, cmd employee.CreateCommand) (*employee.Employee, error) {
	name, err := cmd.EmployeeName()
	if err != nil {
		return nil, err
	}

	e := employee.New(name)
	if err := u.employees.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("saving employee: %w", err)
	}
	return e, nil
}

// Edit renames an existing employee.
func (u *EmployeeUseCase) Edit(ctx context.Context, cmd employee.EditCommand) (*employee.Employee, error) {
	id, err := cmd.EmployeeID()
	if err != nil {
		return nil, err
	}
	name, err := cmd.EmployeeName()
	if err != nil {
		return nil, err
	}

	e, err := u.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Rename(name)
	if err := u.employees.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("saving employee: %w", err)
	}
	return e, nil
}

// Remove deletes an employee. Role assignments referencing the employee are
// not touched; the team then reports a dangling reference until it is edited
// or disbanded.
func (u *EmployeeUseCase) Remove(ctx context.Context, cmd employee.RemoveCommand) error {
	id, err := cmd.EmployeeID()
	if err != nil {
		return err
	}
	return u.employees.Remove(ctx, id)
}
