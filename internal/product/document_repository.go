package product

import (
	"context"
	"fmt"
	"slices"

	"github.com/panda-project/panda/internal/domain"
	"github.com/panda-project/panda/internal/store"
)

// DocumentRepository implements Repository over the products collection.
type DocumentRepository struct {
	db *store.DB
}

var _ Repository = (*DocumentRepository)(nil)

// NewRepository creates a Repository backed by the given document store.
func NewRepository(db *store.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) FindAll(ctx context.Context) ([]Product, error) {
	var products []Product
	err := r.db.View(ctx, func(doc *store.Document) error {
		products = make([]Product, 0, len(doc.Products))
		for _, rec := range doc.Products {
			id, err := NewID(rec.ID)
			if err != nil {
				return fmt.Errorf("product record %d: %w", rec.ID, err)
			}
			name, err := NewName(rec.Name)
			if err != nil {
				return fmt.Errorf("product record %d: %w", rec.ID, err)
			}
			products = append(products, Product{ID: id, Name: name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Save inserts a product with a null id and updates it otherwise.
func (r *DocumentRepository) Save(ctx context.Context, p *Product) error {
	var assigned ID
	err := r.db.Update(ctx, func(doc *store.Document) error {
		if p.ID.IsNull() {
			assigned = ID{value: store.NextID(doc.Products, func(rec store.ProductRecord) int { return rec.ID })}
			doc.Products = append(doc.Products, store.ProductRecord{ID: assigned.Int(), Name: p.Name.String()})
			return nil
		}

		i := slices.IndexFunc(doc.Products, func(rec store.ProductRecord) bool { return rec.ID == p.ID.Int() })
		if i < 0 {
			return fmt.Errorf("product %d: %w", p.ID.Int(), domain.ErrNotFound)
		}
		doc.Products[i].Name = p.Name.String()
		assigned = p.ID
		return nil
	})
	if err != nil {
		return err
	}
	p.ID = assigned
	return nil
}

func (r *DocumentRepository) ExistsWithoutID(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.View(ctx, func(doc *store.Document) error {
		exists = len(doc.Products) > 0
		return nil
	})
	return exists, err
}
