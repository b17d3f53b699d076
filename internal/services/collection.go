package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
)

const (
	keyUsers         = "back2me_users"
	keySession       = "back2me_session"
	keyPosts         = "back2me_posts"
	keyConversations = "back2me_conversations"
	keyProfilePrefix = "back2me_profile_pic_"
)

// getJSON decodes the document stored under key into v. It reports false
// when the key is absent, leaving v untouched.
func getJSON(ctx context.Context, r kv.Repository, key string, v any) (bool, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w: %w", key, common.ErrorStorageUnavailable, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode %s: %w: %w", key, common.ErrorStorageUnavailable, err)
	}
	return true, nil
}

func putJSON(ctx context.Context, r kv.Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w: %w", key, common.ErrorStorageUnavailable, err)
	}
	return nil
}

// loadList reads a JSON array. An absent key or a JSON null yields an empty,
// non-nil slice.
func loadList[T any](ctx context.Context, r kv.Repository, key string) ([]T, error) {
	var items []T
	if _, err := getJSON(ctx, r, key, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// updateList runs fn over the collection stored at key inside one
// transaction and writes back what fn returns.
func updateList[T any](ctx context.Context, s kv.Store, key string, fn func(items []T) ([]T, error)) error {
	return s.Atomically(ctx, func(ctx context.Context, r kv.Repository) error {
		items, err := loadList[T](ctx, r, key)
		if err != nil {
			return err
		}
		next, err := fn(items)
		if err != nil {
			return err
		}
		return putJSON(ctx, r, key, next)
	})
}

// seedList writes seed under key unless the key already holds a value.
func seedList[T any](ctx context.Context, s kv.Store, key string, seed func() []T) (bool, error) {
	seeded := false
	err := s.Atomically(ctx, func(ctx context.Context, r kv.Repository) error {
		raw, err := r.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("read %s: %w: %w", key, common.ErrorStorageUnavailable, err)
		}
		if raw != nil {
			return nil
		}
		seeded = true
		return putJSON(ctx, r, key, seed())
	})
	return seeded, err
}
