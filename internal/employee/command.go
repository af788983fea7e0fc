package employee

// CreateCommand carries the input of employee creation.
type CreateCommand interface {
	EmployeeName() (Name, error)
}

// EditCommand carries the input of an employee rename.
type EditCommand interface {
	EmployeeID() (ID, error)
	EmployeeName() (Name, error)
}

// RemoveCommand carries the id of the employee to remove.
type RemoveCommand interface {
	EmployeeID() (ID, error)
}
