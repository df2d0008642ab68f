package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend persists each record as a JSON file in a data directory.
// Writes go through a temp file plus rename so a crash mid-write never
// leaves a truncated record behind.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Load(_ context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading record %s: %w", key, err)
	}
	return blob, nil
}

func (b *FileBackend) Save(_ context.Context, key string, blob []byte) error {
	tmp := b.path(key) + ".tmp"
	if err := os.WriteFile(tmp, blob, 0644); err != nil {
		return fmt.Errorf("writing record %s: %w", key, err)
	}
	if err := os.Rename(tmp, b.path(key)); err != nil {
		return fmt.Errorf("committing record %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Close() error {
	return nil
}
