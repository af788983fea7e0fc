package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend persists the document as an indented JSON file.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend for the JSON file at path. The file is
// created on the first Save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the file. A missing file yields an empty document.
func (f *FileBackend) Load(_ context.Context) (*Document, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	doc := NewDocument()
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.path, err)
	}
	doc.normalize()
	return doc, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target, so a crash leaves either the old or the new document.
func (f *FileBackend) Save(_ context.Context, doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	return nil
}

func (f *FileBackend) Close() error { return nil }
