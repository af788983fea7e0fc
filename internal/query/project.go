package query

import (
	"context"
	"fmt"

	"github.com/panda-project/panda/internal/product"
	"github.com/panda-project/panda/internal/project"
	"github.com/panda-project/panda/internal/scrumteam"
)

// NamedDTO is the product or the project.
type NamedDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProjectOverview is everything created by init plus the team.
type ProjectOverview struct {
	Product   *NamedDTO     `json:"product"`
	Project   *NamedDTO     `json:"project"`
	ScrumTeam *ScrumTeamDTO `json:"scrumTeam"`
}

// ProjectListQueryService projects the product, the project and the team.
type ProjectListQueryService struct {
	products product.Repository
	projects project.Repository
	teams    scrumteam.Repository
}

// NewProjectListQueryService creates a new ProjectListQueryService.
func NewProjectListQueryService(products product.Repository, projects project.Repository, teams scrumteam.Repository) *ProjectListQueryService {
	return &ProjectListQueryService{products: products, projects: projects, teams: teams}
}

// Exec returns the overview. Members not created yet are nil.
func (s *ProjectListQueryService) Exec(ctx context.Context) (*ProjectOverview, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading product: %w", err)
	}
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	team, err := currentTeam(ctx, s.teams)
	if err != nil {
		return nil, err
	}

	out := &ProjectOverview{ScrumTeam: team}
	if len(products) > 0 {
		out.Product = &NamedDTO{ID: products[0].ID.Int(), Name: products[0].Name.String()}
	}
	if len(projects) > 0 {
		out.Project = &NamedDTO{ID: projects[0].ID.Int(), Name: projects[0].Name.String()}
	}
	return out, nil
}
