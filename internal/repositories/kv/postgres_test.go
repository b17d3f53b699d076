package kv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func TestPostgres_Get(t *testing.T) {
	repo, mock, _ := newPostgresWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT\s+value\s+FROM\s+storage\s+WHERE\s+key\s*=\s*\$1$`).
		WithArgs("back2me_posts").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	v, err := repo.Get(context.Background(), "back2me_posts")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetAbsent(t *testing.T) {
	repo, mock, _ := newPostgresWithMock(t)

	mock.ExpectQuery(`SELECT value FROM storage`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	v, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestPostgres_GetDBError(t *testing.T) {
	repo, mock, _ := newPostgresWithMock(t)

	mock.ExpectQuery(`SELECT value FROM storage`).
		WithArgs("k").
		WillReturnError(errors.New("db down"))

	_, err := repo.Get(context.Background(), "k")
	require.ErrorContains(t, err, "db error: get k: db down")
}

func TestPostgres_SetUpserts(t *testing.T) {
	repo, mock, _ := newPostgresWithMock(t)

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+storage\s*\(key,\s*value\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(key\)\s*DO\s+UPDATE`).
		WithArgs("k", []byte("v")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteClearList(t *testing.T) {
	repo, mock, _ := newPostgresWithMock(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM storage WHERE key = \$1`).WithArgs("k").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE FROM storage$`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(`SELECT key, value FROM storage`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("a", []byte("1")).
			AddRow("b", []byte("2")))

	require.NoError(t, repo.Delete(ctx, "k"))
	require.NoError(t, repo.Clear(ctx))
	m, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, m)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AtomicallyTakesAdvisoryLock(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(storageLockID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT value FROM storage`).
		WithArgs("back2me_users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))
	mock.ExpectExec(`INSERT INTO storage`).
		WithArgs("back2me_users", []byte(`[1]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := NewPostgresStore(db)
	err = s.Atomically(context.Background(), func(ctx context.Context, r Repository) error {
		if _, err := r.Get(ctx, "back2me_users"); err != nil {
			return err
		}
		return r.Set(ctx, "back2me_users", []byte(`[1]`))
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LockFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`pg_advisory_xact_lock`).WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	called := false
	err = NewPostgresStore(db).Atomically(context.Background(), func(context.Context, Repository) error {
		called = true
		return nil
	})
	require.ErrorContains(t, err, "lock timeout")
	require.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}
