package kv

import (
	"context"
)

// Repository describes the key/value operations of a storage scope.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Removing an absent key succeeds.
	Delete(ctx context.Context, key string) error

	// List returns every key/value pair in the scope.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key in the scope.
	Clear(ctx context.Context) error
}

// Store is a Repository that can run a read-modify-write atomically.
type Store interface {
	Repository

	// Atomically runs fn against a Repository whose reads and writes are
	// isolated from other Atomically calls. Writes made by fn are discarded
	// if fn returns an error.
	Atomically(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
