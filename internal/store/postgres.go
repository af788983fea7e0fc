package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS documents (
		name       TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// PostgresBackend stores the document as a single jsonb row keyed by name.
// Postgres only provides durability here; joins still happen in memory.
type PostgresBackend struct {
	pool *pgxpool.Pool
	name string
}

// NewPostgresBackend connects to databaseURL and makes sure the documents
// table exists.
func NewPostgresBackend(ctx context.Context, databaseURL, name string) (*PostgresBackend, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := pool.Exec(ctx, createDocumentsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating documents table: %w", err)
	}
	return &PostgresBackend{pool: pool, name: name}, nil
}

// Load returns the stored document, or an empty one if the row is missing.
func (p *PostgresBackend) Load(ctx context.Context) (*Document, error) {
	query := `SELECT body FROM documents WHERE name = $1`

	var raw []byte
	err := p.pool.QueryRow(ctx, query, p.name).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("querying document: %w", err)
	}

	doc := NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	doc.normalize()
	return doc, nil
}

// Save upserts the document row.
func (p *PostgresBackend) Save(ctx context.Context, doc *Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	query := `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`

	if _, err := p.pool.Exec(ctx, query, p.name, raw); err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (p *PostgresBackend) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresBackend) Close() error {
	p.pool.Close()
	return nil
}
