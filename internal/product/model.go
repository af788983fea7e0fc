// Package product holds the Product entity. A single product is created at
// initialization and lives for the lifetime of the system.
package product

import (
	"regexp"

	"github.com/panda-project/panda/internal/domain"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,30}$`)

// ID identifies a product. The zero value is the null id.
type ID struct {
	value int
}

// NullID returns the id of a not-yet-persisted product.
func NullID() ID { return ID{} }

// NewID validates v as a persisted product id.
func NewID(v int) (ID, error) {
	if v <= 0 {
		return ID{}, domain.NewValidationError("id", "must be a positive integer")
	}
	return ID{value: v}, nil
}

func (id ID) IsNull() bool { return id.value == 0 }
func (id ID) Int() int     { return id.value }

// Name is a product name: 1-30 ASCII letters, digits, '_' or '-'.
type Name struct {
	value string
}

// NewName validates a product name.
func NewName(v string) (Name, error) {
	if v == "" {
		return Name{}, domain.NewValidationError("productName", "is required")
	}
	if !namePattern.MatchString(v) {
		return Name{}, domain.NewValidationError("productName", "must be 1-30 characters of letters, digits, '_' or '-'")
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// Product is the product the project delivers.
type Product struct {
	ID   ID
	Name Name
}

// New returns an unsaved product.
func New(name Name) *Product {
	return &Product{ID: NullID(), Name: name}
}
