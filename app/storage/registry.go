// Package storage holds the refresh-token registry: one currently-valid
// refresh token string per user id. Overwriting the stored value is the
// revocation mechanism, so Get and Set are plain independent operations.
package storage

import (
	"context"
	"sync"
)

type TokenRegistry interface {
	// Get returns the stored value for key, or "" when none exists.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryRegistry is a map-backed TokenRegistry, used in tests and when no
// Redis instance is configured.
type MemoryRegistry struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{values: make(map[string]string)}
}

func (r *MemoryRegistry) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[key], nil
}

func (r *MemoryRegistry) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
