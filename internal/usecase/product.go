// Package usecase orchestrates repositories and commands. Every use case
// receives its repositories through its constructor.
package usecase

import (
	"context"
	"fmt"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/product"
	"github.com/panda-project/panda/internal/project"
)

// ProductUseCase creates the single product.
type ProductUseCase struct {
	products product.Repository
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(products product.Repository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create stores a new product. It fails with domain.ErrAlreadyExists when a
// product is already present.
func (u *ProductUseCase) Create(ctx context.Context, cmd product.CreateCommand) (*product.Product, error) {
	name, err := cmd.ProductName()
	if err != nil {
		return nil, err
	}

	exists, err := u.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("product: %w", domain.ErrAlreadyExists)
	}

	p := product.New(name)
	if err := u.products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving product: %w", err)
	}
	return p, nil
}

// Exists reports whether the product has been created.
func (u *ProductUseCase) Exists(ctx context.Context) (bool, error) {
	exists, err := u.products.ExistsWithoutID(ctx)
	if err != nil {
		return false, fmt.Errorf("checking product: %w", err)
	}
	return exists, nil
}

// ProjectUseCase creates the single project.
type ProjectUseCase struct {
	projects project.Repository
}

// NewProjectUseCase creates a new ProjectUseCase.
func NewProjectUseCase(projects project.Repository) *ProjectUseCase {
	return &ProjectUseCase{projects: projects}
}

// Create stores a new project, failing with domain.ErrAlreadyExists when one
// is already present.
func (u *ProjectUseCase) Create(ctx context.Context, cmd project.CreateCommand) (*project.Project, error) {
	name, err := cmd.ProjectName()
	if err != nil {
		return nil, err
	}

	exists, err := u.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("project: %w", domain.ErrAlreadyExists)
	}

	p := project.New(name)
	if err := u.projects.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving project: %w", err)
	}
	return p, nil
}

// Exists reports whether the project has been created.
func (u *ProjectUseCase) Exists(ctx context.Context) (bool, error) {
	exists, err := u.projects.ExistsWithoutID(ctx)
	if err != nil {
		return false, fmt.Errorf("checking project: %w", err)
	}
	return exists, nil
}
