package project

import (
	"context"
	"fmt"
	"slices"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/store"
)

// DocumentRepository implements Repository over the projects collection.
type DocumentRepository struct {
	db *store.DB
}

var _ Repository = (*DocumentRepository)(nil)

// NewRepository creates a Repository backed by the given document store.
func NewRepository(db *store.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) FindAll(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := r.db.View(ctx, func(doc *store.Document) error {
		projects = make([]Project, 0, len(doc.Projects))
		for _, rec := range doc.Projects {
			id, err := NewID(rec.ID)
			if err != nil {
				return fmt.Errorf("project record %d: %w", rec.ID, err)
			}
			name, err := NewName(rec.Name)
			if err != nil {
				return fmt.Errorf("project record %d: %w", rec.ID, err)
			}
			projects = append(projects, Project{ID: id, Name: name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Save inserts a project with a null id and updates it otherwise.
func (r *DocumentRepository) Save(ctx context.Context, p *Project) error {
	var assigned ID
	err := r.db.Update(ctx, func(doc *store.Document) error {
		if p.ID.IsNull() {
			assigned = ID{value: store.NextID(doc.Projects, func(rec store.ProjectRecord) int { return rec.ID })}
			doc.Projects = append(doc.Projects, store.ProjectRecord{ID: assigned.Int(), Name: p.Name.String()})
			return nil
		}

		i := slices.IndexFunc(doc.Projects, func(rec store.ProjectRecord) bool { return rec.ID == p.ID.Int() })
		if i < 0 {
			return fmt.Errorf("project %d: %w", p.ID.Int(), domain.ErrNotFound)
		}
		doc.Projects[i].Name = p.Name.String()
		assigned = p.ID
		return nil
	})
	if err != nil {
		return err
	}
	p.ID = assigned
	return nil
}

func (r *DocumentRepository) ExistsWithoutID(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.View(ctx, func(doc *store.Document) error {
		exists = len(doc.Projects) > 0
		return nil
	})
	return exists, err
}
