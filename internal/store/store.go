package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrClosed is returned by operations on a DB after Close.
var ErrClosed = errors.New("store is closed")

// Backend is the durable side of the document: load it, replace it.
type Backend interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
	Close() error
}

// DB is the process-wide document handle. Read refreshes the in-memory
// document from the backend and Write persists it. Repositories use View and
// Update, which serialize on a single mutex so one read-mutate-write cycle is
// never interleaved with another inside this process.
type DB struct {
	backend Backend

	mu     sync.Mutex
	data   *Document
	dirty  bool
	closed bool
}

// Open loads the document once and returns a ready DB.
func Open(ctx context.Context, backend Backend) (*DB, error) {
	db := &DB{backend: backend}
	if err := db.Read(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Read refreshes the in-memory document from durable storage.
func (db *DB) Read(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.readLocked(ctx)
}

// Write persists the in-memory document to durable storage. A failed Write
// leaves the document pending until the next Write, Read or Close.
func (db *DB) Write(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return ErrClosed
	}
	if err := db.backend.Save(ctx, db.data); err != nil {
		db.dirty = true
		return fmt.Errorf("writing document: %w", err)
	}
	db.dirty = false
	return nil
}

// Data returns a copy of the current in-memory document.
func (db *DB) Data() *Document {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.data == nil {
		return NewDocument()
	}
	return db.data.Clone()
}

// View loads the latest document and hands a copy to fn. Changes fn makes
// are discarded.
func (db *DB) View(ctx context.Context, fn func(doc *Document) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if err := db.readLocked(ctx); err != nil {
		return err
	}
	return fn(db.data.Clone())
}

// Update loads the latest document, lets fn mutate a copy and writes the copy
// back in one Save. If fn or the save fails nothing is published, so partial
// mutations are never visible.
func (db *DB) Update(ctx context.Context, fn func(doc *Document) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if err := db.readLocked(ctx); err != nil {
		return err
	}

	next := db.data.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := db.backend.Save(ctx, next); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	db.data = next
	db.dirty = false
	return nil
}

// Reset replaces the whole document in a single write.
func (db *DB) Reset(ctx context.Context, doc *Document) error {
	return db.Update(ctx, func(d *Document) error {
		*d = *doc.Clone()
		return nil
	})
}

// Close flushes a document left pending by a failed Write and releases the
// backend. A clean document is not saved again, so state written by other
// handles since the last read is kept.
func (db *DB) Close(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil
	}
	db.closed = true

	var flushErr error
	if db.dirty && db.data != nil {
		if err := db.backend.Save(ctx, db.data); err != nil {
			flushErr = fmt.Errorf("flushing document: %w", err)
		}
	}
	return errors.Join(flushErr, db.backend.Close())
}

func (db *DB) readLocked(ctx context.Context) error {
	if db.closed {
		return ErrClosed
	}
	doc, err := db.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	doc.normalize()
	db.data = doc
	db.dirty = false
	return nil
}
