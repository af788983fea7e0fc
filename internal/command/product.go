package command

import (
	"github.com/panda-project/panda/internal/product"
	"github.com/panda-project/panda/internal/project"
)

// CreateProduct implements product.CreateCommand.
type CreateProduct[S Source] struct {
	Name string
}

var (
	_ product.CreateCommand = CreateProduct[Web]{}
	_ project.CreateCommand = CreateProject[Web]{}
)

func (c CreateProduct[S]) ProductName() (product.Name, error) {
	name, err := product.NewName(c.Name)
	return name, rename[S](err, "productName")
}

func (c CreateProduct[S]) Validate() error {
	_, err := c.ProductName()
	return err
}

// CreateProject implements project.CreateCommand.
type CreateProject[S Source] struct {
	Name string
}

func (c CreateProject[S]) ProjectName() (project.Name, error) {
	name, err := project.NewName(c.Name)
	return name, rename[S](err, "projectName")
}

func (c CreateProject[S]) Validate() error {
	_, err := c.ProjectName()
	return err
}

// Init implements usecase.InitCommand by handing out the product and project
// sub-commands.
type Init[S Source] struct {
	ProductName string
	ProjectName string
}

func (c Init[S]) CreateProductCommand() product.CreateCommand {
	return CreateProduct[S]{Name: c.ProductName}
}

func (c Init[S]) CreateProjectCommand() project.CreateCommand {
	return CreateProject[S]{Name: c.ProjectName}
}

func (c Init[S]) Validate() error {
	return collect(
		CreateProduct[S]{Name: c.ProductName}.Validate(),
		CreateProject[S]{Name: c.ProjectName}.Validate(),
	)
}
