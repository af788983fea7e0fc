package query

import (
	"context"
	"fmt"

	"github.com/panda-project/panda/internal/scrumteam"
)

// LeaderDTO is the product owner or scrum master of a team. IsDeveloper is
// derived from the developer list.
type LeaderDTO struct {
	EmployeeID  int    `json:"employeeId"`
	Name        string `json:"name"`
	IsDeveloper bool   `json:"isDeveloper"`
}

// DeveloperDTO is one developer of a team.
type DeveloperDTO struct {
	EmployeeID int    `json:"employeeId"`
	Name       string `json:"name"`
}

// ScrumTeamDTO is the read projection of the aggregate.
type ScrumTeamDTO struct {
	ID           int            `json:"id"`
	ProductOwner LeaderDTO      `json:"productOwner"`
	ScrumMaster  LeaderDTO      `json:"scrumMaster"`
	Developers   []DeveloperDTO `json:"developers"`
}

// ScrumTeamView wraps the team; ScrumTeam is nil when no team exists.
type ScrumTeamView struct {
	ScrumTeam *ScrumTeamDTO `json:"scrumTeam"`
}

// ScrumTeamQueryService projects the single scrum team.
type ScrumTeamQueryService struct {
	teams scrumteam.Repository
}

// NewScrumTeamQueryService creates a new ScrumTeamQueryService.
func NewScrumTeamQueryService(teams scrumteam.Repository) *ScrumTeamQueryService {
	return &ScrumTeamQueryService{teams: teams}
}

// Exec fails with domain.ErrDanglingReference when a role points at a
// removed employee.
func (s *ScrumTeamQueryService) Exec(ctx context.Context) (*ScrumTeamView, error) {
	team, err := currentTeam(ctx, s.teams)
	if err != nil {
		return nil, err
	}
	return &ScrumTeamView{ScrumTeam: team}, nil
}

func currentTeam(ctx context.Context, teams scrumteam.Repository) (*ScrumTeamDTO, error) {
	all, err := teams.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scrum team: %w", err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return NewScrumTeamDTO(&all[0]), nil
}

// NewScrumTeamDTO projects a hydrated team.
func NewScrumTeamDTO(t *scrumteam.ScrumTeam) *ScrumTeamDTO {
	dto := &ScrumTeamDTO{
		ID:           t.ID.Int(),
		ProductOwner: toLeaderDTO(t, t.ProductOwner),
		ScrumMaster:  toLeaderDTO(t, t.ScrumMaster),
		Developers:   make([]DeveloperDTO, 0, len(t.Developers)),
	}
	for _, d := range t.Developers {
		dto.Developers = append(dto.Developers, DeveloperDTO{
			EmployeeID: d.EmployeeID.Int(),
			Name:       d.Name.FullName(),
		})
	}
	return dto
}

func toLeaderDTO(t *scrumteam.ScrumTeam, m scrumteam.Member) LeaderDTO {
	return LeaderDTO{
		EmployeeID:  m.EmployeeID.Int(),
		Name:        m.Name.FullName(),
		IsDeveloper: t.IsDeveloper(m.EmployeeID),
	}
}
