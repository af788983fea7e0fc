package project

import "context"

// Repository provides persistence for the project.
type Repository interface {
	FindAll(ctx context.Context) ([]Project, error)
	Save(ctx context.Context, p *Project) error
	// ExistsWithoutID reports whether any project record exists at all.
	ExistsWithoutID(ctx context.Context) (bool, error)
}

// CreateCommand carries the input of project creation.
type CreateCommand interface {
	ProjectName() (Name, error)
}
