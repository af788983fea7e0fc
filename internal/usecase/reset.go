package usecase

import (
	"context"
	"fmt"

	"github.com/panda-project/panda/internal/store"
)

// Resetter replaces the whole document in one write.
type Resetter interface {
	Reset(ctx context.Context, doc *store.Document) error
}

// SeedLoader produces the document a reset writes.
type SeedLoader func() (*store.Document, error)

// ResetScenario wipes the document and writes the seed.
type ResetScenario struct {
	db   Resetter
	load SeedLoader
}

// NewResetScenario creates a new ResetScenario.
func NewResetScenario(db Resetter, load SeedLoader) *ResetScenario {
	return &ResetScenario{db: db, load: load}
}

// Exec loads the seed and replaces the whole document with it in one write.
func (s *ResetScenario) Exec(ctx context.Context) error {
	doc, err := s.load()
	if err != nil {
		return fmt.Errorf("loading seed: %w", err)
	}
	if err := s.db.Reset(ctx, doc); err != nil {
		return fmt.Errorf("resetting document: %w", err)
	}
	return nil
}
