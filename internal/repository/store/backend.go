// Package store implements the persisted resume document store: an
// in-memory state container with synchronous write-through to a pluggable
// persistence backend.
package store

import "context"

// Record keys for the two independently persisted JSON blobs.
const (
	ResumeRecord = "resume-storage"
	ThemeRecord  = "theme-storage"
)

// Backend persists opaque JSON blobs under fixed record keys. Load returns
// (nil, nil) when no record exists yet.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Close() error
}
