// Package employee holds the Employee entity, its value objects and its
// repository.
package employee

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/panda-project/panda/internal/domain"
)

const maxNameLength = 50

// ID identifies an employee. The zero value is the null id of a record that
// has not been persisted yet.
type ID struct {
	value int
}

// NullID returns the id of a not-yet-persisted employee.
func NullID() ID { return ID{} }

// NewID validates v as a persisted employee id.
func NewID(v int) (ID, error) {
	if v <= 0 {
		return ID{}, domain.NewValidationError("id", "must be a positive integer")
	}
	return ID{value: v}, nil
}

// ParseID parses a decimal employee id from raw input.
func ParseID(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ID{}, domain.NewValidationError("id", "is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return ID{}, domain.NewValidationError("id", "must be a positive integer")
	}
	return NewID(v)
}

// IsNull reports whether the id belongs to an unsaved employee.
func (id ID) IsNull() bool { return id.value == 0 }

// Int returns the underlying integer.
func (id ID) Int() int { return id.value }

func (id ID) String() string { return strconv.Itoa(id.value) }

// Name is an employee's family and first name.
type Name struct {
	familyName string
	firstName  string
}

// NewName trims and validates both parts of a name.
func NewName(familyName, firstName string) (Name, error) {
	var errs domain.ValidationErrors
	familyName = strings.TrimSpace(familyName)
	firstName = strings.TrimSpace(firstName)

	if familyName == "" {
		errs = append(errs, domain.NewValidationError("familyName", "is required"))
	} else if utf8.RuneCountInString(familyName) > maxNameLength {
		errs = append(errs, domain.NewValidationError("familyName", "must be at most 50 characters"))
	}
	if firstName == "" {
		errs = append(errs, domain.NewValidationError("firstName", "is required"))
	} else if utf8.RuneCountInString(firstName) > maxNameLength {
		errs = append(errs, domain.NewValidationError("firstName", "must be at most 50 characters"))
	}
	if err := errs.Err(); err != nil {
		return Name{}, err
	}
	return Name{familyName: familyName, firstName: firstName}, nil
}

func (n Name) FamilyName() string { return n.familyName }
func (n Name) FirstName() string  { return n.firstName }

// FullName is the family name followed by the first name.
func (n Name) FullName() string {
	return n.familyName + " " + n.firstName
}

// Employee is a member of the roster.
type Employee struct {
	ID   ID
	Name Name
}

// New returns an unsaved employee.
func New(name Name) *Employee {
	return &Employee{ID: NullID(), Name: name}
}

// Rename replaces the employee's name.
func (e *Employee) Rename(name Name) {
	e.Name = name
}
