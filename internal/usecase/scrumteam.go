package usecase

import (
	"context"
	"fmt"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/scrumteam"
)

// roleSource is what team creation and edit both read from their command.
type roleSource interface {
	ProductOwnerID() (employee.ID, error)
	ScrumMasterID() (employee.ID, error)
	DeveloperIDs() ([]employee.ID, error)
}

// ScrumTeamUseCase creates, edits and disbands the scrum team.
type ScrumTeamUseCase struct {
	teams scrumteam.Repository
}

// NewScrumTeamUseCase creates a new ScrumTeamUseCase.
func NewScrumTeamUseCase(teams scrumteam.Repository) *ScrumTeamUseCase {
	return &ScrumTeamUseCase{teams: teams}
}

// Create forms the team. Only one team may exist.
func (u *ScrumTeamUseCase) Create(ctx context.Context, cmd scrumteam.CreateCommand) (*scrumteam.ScrumTeam, error) {
	po, sm, devs, err := readRoles(cmd)
	if err != nil {
		return nil, err
	}

	exists, err := u.teams.ExistsWithoutID(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking scrum team: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("scrum team: %w", domain.ErrAlreadyExists)
	}

	team, err := scrumteam.New(po, sm, devs)
	if err != nil {
		return nil, err
	}
	if err := u.teams.Save(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// Edit replaces the role assignment of the existing team. A team whose
// stored members cannot be hydrated can still be edited, since edit
// overwrites every role row.
func (u *ScrumTeamUseCase) Edit(ctx context.Context, cmd scrumteam.EditCommand) (*scrumteam.ScrumTeam, error) {
	po, sm, devs, err := readRoles(cmd)
	if err != nil {
		return nil, err
	}

	teamID, err := u.currentID(ctx)
	if err != nil {
		return nil, err
	}

	team := scrumteam.Ref(teamID)
	if err := team.Edit(po, sm, devs); err != nil {
		return nil, err
	}
	if err := u.teams.Save(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// Disband removes the team and all of its role assignments.
func (u *ScrumTeamUseCase) Disband(ctx context.Context, cmd scrumteam.DisbandCommand) error {
	id, err := cmd.ScrumTeamID()
	if err != nil {
		return err
	}

	team := scrumteam.Ref(id)
	if err := team.Disband(); err != nil {
		return err
	}
	return u.teams.Remove(ctx, team.ID)
}

// currentID returns the id of the one team without hydrating it.
func (u *ScrumTeamUseCase) currentID(ctx context.Context) (scrumteam.ID, error) {
	ids, err := u.teams.FindIDs(ctx)
	if err != nil {
		return scrumteam.ID{}, fmt.Errorf("listing scrum teams: %w", err)
	}
	if len(ids) == 0 {
		return scrumteam.ID{}, fmt.Errorf("scrum team: %w", domain.ErrNotFound)
	}
	return ids[0], nil
}

func readRoles(cmd roleSource) (employee.ID, employee.ID, []employee.ID, error) {
	var verrs domain.ValidationErrors
	po, poErr := cmd.ProductOwnerID()
	sm, smErr := cmd.ScrumMasterID()
	devs, devErr := cmd.DeveloperIDs()
	for _, err := range []error{poErr, smErr, devErr} {
		if !verrs.Collect(err) {
			return employee.ID{}, employee.ID{}, nil, err
		}
	}
	if err := verrs.Err(); err != nil {
		return employee.ID{}, employee.ID{}, nil, err
	}
	return po, sm, devs, nil
}
