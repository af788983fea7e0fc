package scrumteam

import (
	"context"
	"fmt"
	"slices"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/store"
)

// DocumentRepository maps the ScrumTeam aggregate onto four flat
// collections: scrumTeams, productOwners, scrumMasters and developers. Every
// write happens inside one store.DB.Update so the collections change
// together or not at all.
type DocumentRepository struct {
	db *store.DB
}

var _ Repository = (*DocumentRepository)(nil)

// NewRepository creates a Repository backed by the given document store.
func NewRepository(db *store.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// FindAll joins scrumTeams with its role collections and the employees
// collection. A role row pointing at a missing employee fails the whole read
// with domain.ErrDanglingReference.
func (r *DocumentRepository) FindAll(ctx context.Context) ([]ScrumTeam, error) {
	var teams []ScrumTeam
	err := r.db.View(ctx, func(doc *store.Document) error {
		employees := doc.EmployeeIndex()
		teams = make([]ScrumTeam, 0, len(doc.ScrumTeams))
		for _, rec := range doc.ScrumTeams {
			t, err := hydrate(doc, employees, rec.ID)
			if err != nil {
				return err
			}
			teams = append(teams, *t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// FindByID returns the hydrated team or domain.ErrNotFound.
func (r *DocumentRepository) FindByID(ctx context.Context, id ID) (*ScrumTeam, error) {
	var found *ScrumTeam
	err := r.db.View(ctx, func(doc *store.Document) error {
		if !hasTeam(doc, id.Int()) {
			return fmt.Errorf("scrum team %d: %w", id.Int(), domain.ErrNotFound)
		}
		t, err := hydrate(doc, doc.EmployeeIndex(), id.Int())
		if err != nil {
			return err
		}
		found = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FindIDs lists team ids without hydrating role assignments.
func (r *DocumentRepository) FindIDs(ctx context.Context) ([]ID, error) {
	var ids []ID
	err := r.db.View(ctx, func(doc *store.Document) error {
		ids = make([]ID, 0, len(doc.ScrumTeams))
		for _, rec := range doc.ScrumTeams {
			id, err := NewID(rec.ID)
			if err != nil {
				return fmt.Errorf("scrum team record %d: %w", rec.ID, err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Save upserts the scrumTeams row, clears every role row of the team and
// inserts the current assignment. A null id is replaced by the next id.
// Referenced employees must exist.
func (r *DocumentRepository) Save(ctx context.Context, t *ScrumTeam) error {
	if t.IsDisbanded() {
		return fmt.Errorf("scrum team %d is disbanded: %w", t.ID.Int(), domain.ErrNotFound)
	}

	var (
		assigned ID
		names    map[int]employee.Name
	)
	err := r.db.Update(ctx, func(doc *store.Document) error {
		employees := doc.EmployeeIndex()
		names = make(map[int]employee.Name, len(employees))
		for _, id := range t.EmployeeIDs() {
			rec, ok := employees[id.Int()]
			if !ok {
				return fmt.Errorf("%w: employee %d does not exist", domain.ErrDanglingReference, id.Int())
			}
			e, err := employee.FromRecord(rec)
			if err != nil {
				return err
			}
			names[id.Int()] = e.Name
		}

		assigned = t.ID
		if assigned.IsNull() {
			assigned = ID{value: store.NextID(doc.ScrumTeams, func(rec store.ScrumTeamRecord) int { return rec.ID })}
		}
		teamID := assigned.Int()
		if !hasTeam(doc, teamID) {
			doc.ScrumTeams = append(doc.ScrumTeams, store.ScrumTeamRecord{ID: teamID})
		}

		doc.ProductOwners = store.DeleteMembersOf(doc.ProductOwners, teamID)
		doc.ScrumMasters = store.DeleteMembersOf(doc.ScrumMasters, teamID)
		doc.Developers = store.DeleteMembersOf(doc.Developers, teamID)

		doc.ProductOwners = append(doc.ProductOwners, memberRecord(teamID, t.ProductOwner))
		doc.ScrumMasters = append(doc.ScrumMasters, memberRecord(teamID, t.ScrumMaster))
		for _, d := range t.Developers {
			doc.Developers = append(doc.Developers, memberRecord(teamID, d))
		}
		return nil
	})
	if err != nil {
		return err
	}

	t.ID = assigned
	t.ProductOwner.Name = names[t.ProductOwner.EmployeeID.Int()]
	t.ScrumMaster.Name = names[t.ScrumMaster.EmployeeID.Int()]
	for i := range t.Developers {
		t.Developers[i].Name = names[t.Developers[i].EmployeeID.Int()]
	}
	return nil
}

// Remove deletes the scrumTeams row and every role row of the team. Rows of
// other teams are untouched.
func (r *DocumentRepository) Remove(ctx context.Context, id ID) error {
	return r.db.Update(ctx, func(doc *store.Document) error {
		teamID := id.Int()
		if !hasTeam(doc, teamID) {
			return fmt.Errorf("scrum team %d: %w", teamID, domain.ErrNotFound)
		}

		doc.ScrumTeams = slices.DeleteFunc(doc.ScrumTeams, func(rec store.ScrumTeamRecord) bool {
			return rec.ID == teamID
		})
		doc.ProductOwners = store.DeleteMembersOf(doc.ProductOwners, teamID)
		doc.ScrumMasters = store.DeleteMembersOf(doc.ScrumMasters, teamID)
		doc.Developers = store.DeleteMembersOf(doc.Developers, teamID)
		return nil
	})
}

// ExistsWithoutID reports whether any team has been saved.
func (r *DocumentRepository) ExistsWithoutID(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.View(ctx, func(doc *store.Document) error {
		exists = len(doc.ScrumTeams) > 0
		return nil
	})
	return exists, err
}

func hasTeam(doc *store.Document, teamID int) bool {
	return slices.ContainsFunc(doc.ScrumTeams, func(rec store.ScrumTeamRecord) bool {
		return rec.ID == teamID
	})
}

func memberRecord(teamID int, m Member) store.MemberRecord {
	return store.MemberRecord{ScrumTeamID: teamID, EmployeeID: m.EmployeeID.Int()}
}

func hydrate(doc *store.Document, employees map[int]store.EmployeeRecord, teamID int) (*ScrumTeam, error) {
	id, err := NewID(teamID)
	if err != nil {
		return nil, fmt.Errorf("scrum team record %d: %w", teamID, err)
	}

	owners := store.MembersOf(doc.ProductOwners, teamID)
	masters := store.MembersOf(doc.ScrumMasters, teamID)
	if len(owners) != 1 || len(masters) != 1 {
		return nil, fmt.Errorf("scrum team %d has %d product owner and %d scrum master rows: %w",
			teamID, len(owners), len(masters), domain.ErrInvalidTeamComposition)
	}

	t := &ScrumTeam{ID: id}
	if t.ProductOwner, err = hydrateMember(employees, owners[0]); err != nil {
		return nil, err
	}
	if t.ScrumMaster, err = hydrateMember(employees, masters[0]); err != nil {
		return nil, err
	}
	devRows := store.MembersOf(doc.Developers, teamID)
	t.Developers = make([]Member, 0, len(devRows))
	for _, row := range devRows {
		m, err := hydrateMember(employees, row)
		if err != nil {
			return nil, err
		}
		t.Developers = append(t.Developers, m)
	}
	return t, nil
}

func hydrateMember(employees map[int]store.EmployeeRecord, row store.MemberRecord) (Member, error) {
	rec, ok := employees[row.EmployeeID]
	if !ok {
		return Member{}, fmt.Errorf("scrum team %d references employee %d: %w",
			row.ScrumTeamID, row.EmployeeID, domain.ErrDanglingReference)
	}
	e, err := employee.FromRecord(rec)
	if err != nil {
		return Member{}, err
	}
	return Member{EmployeeID: e.ID, Name: e.Name}, nil
}
