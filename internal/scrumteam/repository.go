package scrumteam

import "context"

// Repository provides persistence for scrum teams.
type Repository interface {
	// FindAll returns every team with member names hydrated.
	FindAll(ctx context.Context) ([]ScrumTeam, error)
	FindByID(ctx context.Context, id ID) (*ScrumTeam, error)
	// FindIDs lists team ids without joining role rows, so it succeeds even
	// when a team references a removed employee.
	FindIDs(ctx context.Context) ([]ID, error)
	// Save upserts the team and replaces all of its role rows.
	Save(ctx context.Context, t *ScrumTeam) error
	// Remove deletes the team and all of its role rows.
	Remove(ctx context.Context, id ID) error
	ExistsWithoutID(ctx context.Context) (bool, error)
}
