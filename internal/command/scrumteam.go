package command

import (
	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/scrumteam"
)

var (
	_ scrumteam.CreateCommand  = CreateScrumTeam[Web]{}
	_ scrumteam.EditCommand    = EditScrumTeam[Web]{}
	_ scrumteam.DisbandCommand = DisbandScrumTeam[Web]{}
)

// Roles is the raw role assignment shared by team creation and edit. Ids are
// decimal strings as they arrive from flags or JSON.
type Roles[S Source] struct {
	ProductOwner string
	ScrumMaster  string
	Developers   []string
}

func (r Roles[S]) ProductOwnerID() (employee.ID, error) {
	id, err := employee.ParseID(r.ProductOwner)
	return id, rename[S](err, "productOwnerId")
}

func (r Roles[S]) ScrumMasterID() (employee.ID, error) {
	id, err := employee.ParseID(r.ScrumMaster)
	return id, rename[S](err, "scrumMasterId")
}

// DeveloperIDs parses every developer id. The developer count is checked by
// the aggregate, not here.
func (r Roles[S]) DeveloperIDs() ([]employee.ID, error) {
	ids := make([]employee.ID, 0, len(r.Developers))
	var checks []error
	for _, raw := range r.Developers {
		id, err := employee.ParseID(raw)
		if err != nil {
			checks = append(checks, rename[S](err, "developerIds"))
			continue
		}
		ids = append(ids, id)
	}
	if err := collect(checks...); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r Roles[S]) Validate() error {
	_, poErr := r.ProductOwnerID()
	_, smErr := r.ScrumMasterID()
	_, devErr := r.DeveloperIDs()
	return collect(poErr, smErr, devErr)
}

// CreateScrumTeam implements scrumteam.CreateCommand.
type CreateScrumTeam[S Source] struct {
	Roles[S]
}

// EditScrumTeam implements scrumteam.EditCommand.
type EditScrumTeam[S Source] struct {
	Roles[S]
}

// DisbandScrumTeam implements scrumteam.DisbandCommand.
type DisbandScrumTeam[S Source] struct {
	ID string
}

func (c DisbandScrumTeam[S]) ScrumTeamID() (scrumteam.ID, error) {
	id, err := scrumteam.ParseID(c.ID)
	return id, rename[S](err, "id")
}

func (c DisbandScrumTeam[S]) Validate() error {
	_, err := c.ScrumTeamID()
	return err
}
