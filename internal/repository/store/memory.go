package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps records in process memory. Used by tests and as the
// explicit non-durable driver.
type MemoryBackend struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	blob, ok := b.records[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (b *MemoryBackend) Save(_ context.Context, key string, blob []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	b.records[key] = stored
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
