package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/product"
	"github.com/panda-project/panda/internal/project"
	"github.com/panda-project/panda/internal/scrumteam"
	"github.com/panda-project/panda/internal/store"
)

// ErrInvalidSeed wraps every problem found in a seed.
var ErrInvalidSeed = errors.New("invalid seed")

// Validate checks a seed before it replaces the document. Records must pass
// the same value-object and composition rules the repositories read them
// back with, and every role row must resolve.
func Validate(doc *store.Document) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	employees := make(map[int]bool, len(doc.Employees))
	for _, e := range doc.Employees {
		if e.ID <= 0 {
			add("employee id %d must be positive", e.ID)
		}
		if employees[e.ID] {
			add("employee id %d is duplicated", e.ID)
		}
		employees[e.ID] = true
		if _, err := employee.NewName(e.FamilyName, e.FirstName); err != nil {
			add("employee %d: %v", e.ID, err)
		}
	}
	if len(doc.Products) > 1 {
		add("at most one product, got %d", len(doc.Products))
	}
	for _, p := range doc.Products {
		if p.ID <= 0 {
			add("product id %d must be positive", p.ID)
		}
		if _, err := product.NewName(p.Name); err != nil {
			add("product %d: %v", p.ID, err)
		}
	}
	if len(doc.Projects) > 1 {
		add("at most one project, got %d", len(doc.Projects))
	}
	for _, p := range doc.Projects {
		if p.ID <= 0 {
			add("project id %d must be positive", p.ID)
		}
		if _, err := project.NewName(p.Name); err != nil {
			add("project %d: %v", p.ID, err)
		}
	}

	teams := make(map[int]bool, len(doc.ScrumTeams))
	for _, t := range doc.ScrumTeams {
		if t.ID <= 0 || teams[t.ID] {
			add("scrum team id %d is invalid or duplicated", t.ID)
		}
		teams[t.ID] = true
	}

	for _, c := range []struct {
		role string
		rows []store.MemberRecord
	}{
		{"product owner", doc.ProductOwners},
		{"scrum master", doc.ScrumMasters},
		{"developer", doc.Developers},
	} {
		for _, r := range c.rows {
			if !teams[r.ScrumTeamID] {
				add("%s row references unknown scrum team %d", c.role, r.ScrumTeamID)
			}
			if !employees[r.EmployeeID] {
				add("%s row references unknown employee %d", c.role, r.EmployeeID)
			}
		}
	}

	for _, t := range doc.ScrumTeams {
		pos := store.MembersOf(doc.ProductOwners, t.ID)
		sms := store.MembersOf(doc.ScrumMasters, t.ID)
		if len(pos) != 1 {
			add("scrum team %d needs exactly one product owner, got %d", t.ID, len(pos))
		}
		if len(sms) != 1 {
			add("scrum team %d needs exactly one scrum master, got %d", t.ID, len(sms))
		}
		if len(pos) != 1 || len(sms) != 1 {
			continue
		}
		if err := checkTeam(pos[0], sms[0], store.MembersOf(doc.Developers, t.ID)); err != nil {
			add("scrum team %d: %v", t.ID, err)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSeed, strings.Join(problems, "; "))
	}
	return nil
}

// checkTeam runs the aggregate's composition rules over the role rows of one
// team.
func checkTeam(po, sm store.MemberRecord, devs []store.MemberRecord) error {
	poID, err := employee.NewID(po.EmployeeID)
	if err != nil {
		return err
	}
	smID, err := employee.NewID(sm.EmployeeID)
	if err != nil {
		return err
	}
	devIDs := make([]employee.ID, 0, len(devs))
	for _, d := range devs {
		id, err := employee.NewID(d.EmployeeID)
		if err != nil {
			return err
		}
		devIDs = append(devIDs, id)
	}
	_, err = scrumteam.New(poID, smID, devIDs)
	return err
}
