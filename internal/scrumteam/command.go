package scrumteam

import "github.com/panda-project/panda/internal/employee"

// CreateCommand carries the role assignment of a new team.
type CreateCommand interface {
	ProductOwnerID() (employee.ID, error)
	ScrumMasterID() (employee.ID, error)
	DeveloperIDs() ([]employee.ID, error)
}

// EditCommand carries the replacement role assignment of the existing team.
type EditCommand interface {
	ProductOwnerID() (employee.ID, error)
	ScrumMasterID() (employee.ID, error)
	DeveloperIDs() ([]employee.ID, error)
}

// DisbandCommand carries the id of the team to disband.
type DisbandCommand interface {
	ScrumTeamID() (ID, error)
}
