package product

import "context"

// Repository provides persistence for the product.
type Repository interface {
	FindAll(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, p *Product) error
	// ExistsWithoutID reports whether any product record exists at all.
	ExistsWithoutID(ctx context.Context) (bool, error)
}

// CreateCommand carries the input of product creation.
type CreateCommand interface {
	ProductName() (Name, error)
}
