package kv

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/back2me/internal/dbx"
)

// storageLockID keys the PostgreSQL advisory lock that serializes writers.
const storageLockID = 0x6232_6d65 // "b2me"

// SQLStore is a Store over a *sql.DB. Plain calls go straight to the
// database; Atomically wraps fn in a transaction.
type SQLStore struct {
	Repository
	db      *sql.DB
	newRepo func(dbx.DBTX) Repository
	lock    func(ctx context.Context, tx dbx.DBTX) error
}

// NewSQLiteStore returns a Store over a SQLite database. The caller should
// limit the pool to one connection so transactions serialize instead of
// failing with SQLITE_BUSY.
func NewSQLiteStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		Repository: NewSQLiteRepository(db),
		db:         db,
		newRepo:    func(tx dbx.DBTX) Repository { return NewSQLiteRepository(tx) },
	}
}

// NewPostgresStore returns a Store over PostgreSQL. Atomically takes a
// transaction-scoped advisory lock before running fn.
func NewPostgresStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		Repository: NewPostgresRepository(db),
		db:         db,
		newRepo:    func(tx dbx.DBTX) Repository { return NewPostgresRepository(tx) },
		lock: func(ctx context.Context, tx dbx.DBTX) error {
			_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, storageLockID)
			return err
		},
	}
}

func (s *SQLStore) Atomically(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if s.lock != nil {
			if err := s.lock(ctx, tx); err != nil {
				return err
			}
		}
		return fn(ctx, s.newRepo(tx))
	})
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
