package employee

import "context"

// Repository provides persistence for employees.
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id ID) (*Employee, error)
	// Save inserts an employee with a null id, assigning the next id, and
	// updates it otherwise.
	Save(ctx context.Context, e *Employee) error
	Remove(ctx context.Context, id ID) error
}
