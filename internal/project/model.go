// Package project holds the Project entity. As with the product, exactly one
// project is created at initialization and never edited or removed.
package project

import (
	"regexp"

	"github.com/panda-project/panda/internal/domain"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,30}$`)

// ID identifies a project. The zero value is the null id.
type ID struct {
	value int
}

// NullID returns the id of a not-yet-persisted project.
func NullID() ID { return ID{} }

// NewID validates v as a persisted project id.
func NewID(v int) (ID, error) {
	if v <= 0 {
		return ID{}, domain.NewValidationError("id", "must be a positive integer")
	}
	return ID{value: v}, nil
}

func (id ID) IsNull() bool { return id.value == 0 }
func (id ID) Int() int     { return id.value }

// Name is a project name: 1-30 ASCII letters, digits, '_' or '-'.
type Name struct {
	value string
}

// NewName validates a project name.
func NewName(v string) (Name, error) {
	if v == "" {
		return Name{}, domain.NewValidationError("projectName", "is required")
	}
	if !namePattern.MatchString(v) {
		return Name{}, domain.NewValidationError("projectName", "must be 1-30 characters of letters, digits, '_' or '-'")
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// Project is the project the scrum team works on.
type Project struct {
	ID   ID
	Name Name
}

// New returns an unsaved project.
func New(name Name) *Project {
	return &Project{ID: NullID(), Name: name}
}
