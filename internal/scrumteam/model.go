// Package scrumteam holds the ScrumTeam aggregate and its normalized
// persistence.
//
// A team is one product owner, one scrum master and zero to ten developers,
// all drawn from the employee pool. The product owner and the scrum master
// may also hold a developer role.
package scrumteam

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/employee"
)

// MaxDevelopers is the largest number of developers a team may have.
const MaxDevelopers = 10

// ID identifies a scrum team. The zero value is the null id.
type ID struct {
	value int
}

// NullID returns the id of a not-yet-persisted team.
func NullID() ID { return ID{} }

// NewID validates v as a persisted team id.
func NewID(v int) (ID, error) {
	if v <= 0 {
		return ID{}, domain.NewValidationError("id", "must be a positive integer")
	}
	return ID{value: v}, nil
}

// ParseID parses a decimal team id from raw input.
func ParseID(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ID{}, domain.NewValidationError("id", "is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return ID{}, domain.NewValidationError("id", "must be a positive integer")
	}
	return NewID(v)
}

func (id ID) IsNull() bool { return id.value == 0 }
func (id ID) Int() int     { return id.value }

// Member is one role assignment. Name is only set on teams loaded from a
// repository.
type Member struct {
	EmployeeID employee.ID
	Name       employee.Name
}

// ScrumTeam is the aggregate root owning the role assignments.
type ScrumTeam struct {
	ID           ID
	ProductOwner Member
	ScrumMaster  Member
	Developers   []Member

	disbanded bool
}

// New builds an unsaved team, checking its composition.
func New(productOwner, scrumMaster employee.ID, developers []employee.ID) (*ScrumTeam, error) {
	t := &ScrumTeam{ID: NullID()}
	if err := t.assign(productOwner, scrumMaster, developers); err != nil {
		return nil, err
	}
	return t, nil
}

// Ref returns a handle to a persisted team by identity alone, without its
// role assignments. It is enough to disband the team.
func Ref(id ID) *ScrumTeam {
	return &ScrumTeam{ID: id}
}

// Edit replaces the whole role assignment. On failure the team is unchanged.
func (t *ScrumTeam) Edit(productOwner, scrumMaster employee.ID, developers []employee.ID) error {
	if t.disbanded {
		return fmt.Errorf("scrum team %d is disbanded: %w", t.ID.Int(), domain.ErrNotFound)
	}
	return t.assign(productOwner, scrumMaster, developers)
}

// Disband marks the team for removal. Only persisted teams can be disbanded.
func (t *ScrumTeam) Disband() error {
	if t.ID.IsNull() {
		return fmt.Errorf("scrum team has not been saved: %w", domain.ErrNotFound)
	}
	if t.disbanded {
		return fmt.Errorf("scrum team %d is already disbanded: %w", t.ID.Int(), domain.ErrNotFound)
	}
	t.disbanded = true
	return nil
}

// IsDisbanded reports whether Disband has been called.
func (t *ScrumTeam) IsDisbanded() bool { return t.disbanded }

// IsDeveloper reports whether the employee holds a developer role.
func (t *ScrumTeam) IsDeveloper(id employee.ID) bool {
	for _, d := range t.Developers {
		if d.EmployeeID == id {
			return true
		}
	}
	return false
}

// EmployeeIDs lists every referenced employee, product owner and scrum
// master first. An employee holding two roles appears twice.
func (t *ScrumTeam) EmployeeIDs() []employee.ID {
	ids := make([]employee.ID, 0, len(t.Developers)+2)
	ids = append(ids, t.ProductOwner.EmployeeID, t.ScrumMaster.EmployeeID)
	for _, d := range t.Developers {
		ids = append(ids, d.EmployeeID)
	}
	return ids
}

func (t *ScrumTeam) assign(productOwner, scrumMaster employee.ID, developers []employee.ID) error {
	if err := checkComposition(productOwner, scrumMaster, developers); err != nil {
		return err
	}

	devs := make([]Member, 0, len(developers))
	for _, id := range developers {
		devs = append(devs, Member{EmployeeID: id})
	}
	t.ProductOwner = Member{EmployeeID: productOwner}
	t.ScrumMaster = Member{EmployeeID: scrumMaster}
	t.Developers = devs
	return nil
}

func checkComposition(productOwner, scrumMaster employee.ID, developers []employee.ID) error {
	if productOwner.IsNull() {
		return fmt.Errorf("%w: product owner is required", domain.ErrInvalidTeamComposition)
	}
	if scrumMaster.IsNull() {
		return fmt.Errorf("%w: scrum master is required", domain.ErrInvalidTeamComposition)
	}
	if productOwner == scrumMaster {
		return fmt.Errorf("%w: product owner and scrum master must be different employees", domain.ErrInvalidTeamComposition)
	}
	if len(developers) > MaxDevelopers {
		return fmt.Errorf("%w: at most %d developers, got %d", domain.ErrInvalidTeamComposition, MaxDevelopers, len(developers))
	}

	seen := make(map[employee.ID]struct{}, len(developers))
	for _, id := range developers {
		if id.IsNull() {
			return fmt.Errorf("%w: developer id is required", domain.ErrInvalidTeamComposition)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: employee %d is listed twice as developer", domain.ErrInvalidTeamComposition, id.Int())
		}
		seen[id] = struct{}{}
	}
	return nil
}
