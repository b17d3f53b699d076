// Package kv is the key/value persistence layer behind every Back2Me store.
//
// # Overview
//
// Repository exposes the get/set surface of browser key-value storage:
// values are opaque byte slices (JSON documents in practice) addressed by
// string keys such as "back2me_users" or "back2me_posts". Store adds
// Atomically, which runs a read-modify-write as one unit so that two
// writers cannot lose each other's update.
//
// # Implementations
//
//   - SQLiteRepository / NewSQLiteStore: durable, default (modernc.org/sqlite)
//   - PostgresRepository / NewPostgresStore: durable, shared (pgx stdlib)
//   - MemoryStore: ephemeral, process lifetime; also the test fake
//
// Both SQL repositories work over a dbx.DBTX, so the same code serves plain
// reads and transactional updates.
//
// # Contract
//
// Get returns (nil, nil) for an absent key. Delete of an absent key is not an
// error. Values passed to Set and returned by Get are never shared with the
// store's internal state.
//
// Typical Usage
//
//	store := kv.NewSQLiteStore(db)
//	err := store.Atomically(ctx, func(ctx context.Context, r kv.Repository) error {
//	    raw, err := r.Get(ctx, "back2me_posts")
//	    ...
//	    return r.Set(ctx, "back2me_posts", next)
//	})
package kv
