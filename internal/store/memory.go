package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps the document in process memory. It copies on every
// Load and Save so callers never share slices with it.
type MemoryBackend struct {
	mu  sync.Mutex
	doc *Document
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{doc: NewDocument()}
}

func (m *MemoryBackend) Load(_ context.Context) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc.Clone(), nil
}

func (m *MemoryBackend) Save(_ context.Context, doc *Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = doc.Clone()
	return nil
}

func (m *MemoryBackend) Close() error { return nil }
