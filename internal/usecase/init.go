package usecase

import (
	"context"
	"fmt"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/product"
	"github.com/panda-project/panda/internal/project"
)

// InitCommand carries the input of system initialization.
type InitCommand interface {
	CreateProductCommand() product.CreateCommand
	CreateProjectCommand() project.CreateCommand
}

// InitResult is what InitScenario created.
type InitResult struct {
	Product *product.Product
	Project *project.Project
}

// InitScenario creates the product and then the project.
type InitScenario struct {
	products *ProductUseCase
	projects *ProjectUseCase
}

// NewInitScenario creates a new InitScenario.
func NewInitScenario(products *ProductUseCase, projects *ProjectUseCase) *InitScenario {
	return &InitScenario{products: products, projects: projects}
}

// Exec runs the initialization. Both names are validated and both existence
// checks run before anything is written.
func (s *InitScenario) Exec(ctx context.Context, cmd InitCommand) (*InitResult, error) {
	productCmd := cmd.CreateProductCommand()
	projectCmd := cmd.CreateProjectCommand()

	var verrs domain.ValidationErrors
	_, productErr := productCmd.ProductName()
	_, projectErr := projectCmd.ProjectName()
	for _, err := range []error{productErr, projectErr} {
		if !verrs.Collect(err) {
			return nil, err
		}
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	productExists, err := s.products.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if productExists {
		return nil, fmt.Errorf("product: %w", domain.ErrAlreadyExists)
	}
	projectExists, err := s.projects.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if projectExists {
		return nil, fmt.Errorf("project: %w", domain.ErrAlreadyExists)
	}

	p, err := s.products.Create(ctx, productCmd)
	if err != nil {
		return nil, err
	}
	j, err := s.projects.Create(ctx, projectCmd)
	if err != nil {
		return nil, err
	}
	return &InitResult{Product: p, Project: j}, nil
}
