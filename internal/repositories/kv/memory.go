package kv

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps values in process memory. It backs the ephemeral session
// scope and stands in for the durable store in tests.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memoryView(s.data).Get(ctx, key)
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memoryView(s.data).Set(ctx, key, value)
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memoryView(s.data).Delete(ctx, key)
}

func (s *MemoryStore) List(ctx context.Context) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memoryView(s.data).List(ctx)
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.data)
	return nil
}

// Atomically holds the store lock for the whole of fn and restores the
// previous contents when fn fails.
func (s *MemoryStore) Atomically(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := maps.Clone(s.data)
	if err := fn(ctx, memoryView(s.data)); err != nil {
		clear(s.data)
		maps.Copy(s.data, snapshot)
		return err
	}
	return nil
}

// memoryView operates on a map without locking; the owner holds the lock.
type memoryView map[string][]byte

func (m memoryView) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, v...), nil
}

func (m memoryView) Set(_ context.Context, key string, value []byte) error {
	m[key] = append([]byte{}, value...)
	return nil
}

func (m memoryView) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func (m memoryView) List(_ context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(m))
	for k, v := range m {
		out[k] = append([]byte{}, v...)
	}
	return out, nil
}

func (m memoryView) Clear(_ context.Context) error {
	clear(m)
	return nil
}
