package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeClock returns start, then advances by step on every call.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: epoch, step: step}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var errDisk = errors.New("disk I/O error")

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error)     { return nil, errDisk }
func (brokenStore) Set(context.Context, string, []byte) error       { return errDisk }
func (brokenStore) Delete(context.Context, string) error            { return errDisk }
func (brokenStore) List(context.Context) (map[string][]byte, error) { return nil, errDisk }
func (brokenStore) Clear(context.Context) error                     { return errDisk }
func (s brokenStore) Atomically(ctx context.Context, fn func(context.Context, kv.Repository) error) error {
	return fn(ctx, s)
}

func corruptStore(t *testing.T, key string) *kv.MemoryStore {
	t.Helper()
	s := kv.NewMemoryStore()
	require.NoError(t, s.Set(context.Background(), key, []byte(`{not json`)))
	return s
}
