package employee

import (
	"context"
	"fmt"
	"slices"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/store"
)

// DocumentRepository implements Repository over the employees collection.
type DocumentRepository struct {
	db *store.DB
}

var _ Repository = (*DocumentRepository)(nil)

// NewRepository creates a Repository backed by the given document store.
func NewRepository(db *store.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// FindAll returns every employee in insertion order.
func (r *DocumentRepository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.View(ctx, func(doc *store.Document) error {
		employees = make([]Employee, 0, len(doc.Employees))
		for _, rec := range doc.Employees {
			e, err := FromRecord(rec)
			if err != nil {
				return err
			}
			employees = append(employees, *e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByID returns the employee or domain.ErrNotFound.
func (r *DocumentRepository) FindByID(ctx context.Context, id ID) (*Employee, error) {
	var found *Employee
	err := r.db.View(ctx, func(doc *store.Document) error {
		i := indexOf(doc.Employees, id.Int())
		if i < 0 {
			return fmt.Errorf("employee %d: %w", id.Int(), domain.ErrNotFound)
		}
		e, err := FromRecord(doc.Employees[i])
		if err != nil {
			return err
		}
		found = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Save inserts or updates the employee. On insert e.ID is set.
func (r *DocumentRepository) Save(ctx context.Context, e *Employee) error {
	var assigned ID
	err := r.db.Update(ctx, func(doc *store.Document) error {
		if e.ID.IsNull() {
			next := store.NextID(doc.Employees, func(rec store.EmployeeRecord) int { return rec.ID })
			assigned = ID{value: next}
			doc.Employees = append(doc.Employees, toRecord(assigned, e.Name))
			return nil
		}

		i := indexOf(doc.Employees, e.ID.Int())
		if i < 0 {
			return fmt.Errorf("employee %d: %w", e.ID.Int(), domain.ErrNotFound)
		}
		doc.Employees[i] = toRecord(e.ID, e.Name)
		assigned = e.ID
		return nil
	})
	if err != nil {
		return err
	}
	e.ID = assigned
	return nil
}

// Remove deletes the employee record only. Role assignments that reference it
// are left in place.
func (r *DocumentRepository) Remove(ctx context.Context, id ID) error {
	return r.db.Update(ctx, func(doc *store.Document) error {
		i := indexOf(doc.Employees, id.Int())
		if i < 0 {
			return fmt.Errorf("employee %d: %w", id.Int(), domain.ErrNotFound)
		}
		doc.Employees = slices.Delete(doc.Employees, i, i+1)
		return nil
	})
}

func indexOf(rows []store.EmployeeRecord, id int) int {
	return slices.IndexFunc(rows, func(rec store.EmployeeRecord) bool { return rec.ID == id })
}

func toRecord(id ID, name Name) store.EmployeeRecord {
	return store.EmployeeRecord{
		ID:         id.Int(),
		FamilyName: name.FamilyName(),
		FirstName:  name.FirstName(),
	}
}

// FromRecord hydrates an employee from its stored row. Other aggregates use
// it when joining on employee_id.
func FromRecord(rec store.EmployeeRecord) (*Employee, error) {
	id, err := NewID(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("employee record %d: %w", rec.ID, err)
	}
	name, err := NewName(rec.FamilyName, rec.FirstName)
	if err != nil {
		return nil, fmt.Errorf("employee record %d: %w", rec.ID, err)
	}
	return &Employee{ID: id, Name: name}, nil
}

