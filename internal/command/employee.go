package command

import "github.com/panda-project/panda/internal/employee"

var (
	_ employee.CreateCommand = CreateEmployee[Web]{}
	_ employee.EditCommand   = EditEmployee[Web]{}
	_ employee.RemoveCommand = RemoveEmployee[Web]{}
)

// CreateEmployee implements employee.CreateCommand.
type CreateEmployee[S Source] struct {
	FamilyName string
	FirstName  string
}

func (c CreateEmployee[S]) EmployeeName() (employee.Name, error) {
	name, err := employee.NewName(c.FamilyName, c.FirstName)
	return name, rename[S](err, "")
}

func (c CreateEmployee[S]) Validate() error {
	_, err := c.EmployeeName()
	return err
}

// EditEmployee implements employee.EditCommand. ID is the raw decimal id.
type EditEmployee[S Source] struct {
	ID         string
	FamilyName string
	FirstName  string
}

func (c EditEmployee[S]) EmployeeID() (employee.ID, error) {
	id, err := employee.ParseID(c.ID)
	return id, rename[S](err, "id")
}

func (c EditEmployee[S]) EmployeeName() (employee.Name, error) {
	name, err := employee.NewName(c.FamilyName, c.FirstName)
	return name, rename[S](err, "")
}

func (c EditEmployee[S]) Validate() error {
	_, idErr := c.EmployeeID()
	_, nameErr := c.EmployeeName()
	return collect(idErr, nameErr)
}

// RemoveEmployee implements employee.RemoveCommand.
type RemoveEmployee[S Source] struct {
	ID string
}

func (c RemoveEmployee[S]) EmployeeID() (employee.ID, error) {
	id, err := employee.ParseID(c.ID)
	return id, rename[S](err, "id")
}

func (c RemoveEmployee[S]) Validate() error {
	_, err := c.EmployeeID()
	return err
}
