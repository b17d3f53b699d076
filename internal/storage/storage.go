// Package storage opens the durable key/value store selected by a DSN and
// brings its schema up to date.
//
// A DSN starting with postgres:// or postgresql:// selects PostgreSQL through
// the pgx stdlib driver; anything else is treated as a SQLite file path (or
// ":memory:") for modernc.org/sqlite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/back2me/internal/filex"
	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
	"github.com/dmitrijs2005/back2me/internal/storage/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "pgx"
)

// DriverFor picks the database/sql driver for dsn.
func DriverFor(dsn string) Driver {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for driver to db.
func RunMigrations(ctx context.Context, db *sql.DB, driver Driver) error {
	var (
		fsys    fs.FS
		dialect string
		dir     string
	)
	switch driver {
	case DriverSQLite:
		fsys, dialect, dir = migrations.SQLite, "sqlite3", "sqlite"
	case DriverPostgres:
		fsys, dialect, dir = migrations.Postgres, "postgres", "postgres"
	default:
		return fmt.Errorf("unsupported driver %q", driver)
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Open connects to dsn, runs migrations and returns the durable Store.
func Open(ctx context.Context, dsn string) (*kv.SQLStore, error) {
	driver := DriverFor(dsn)

	if driver == DriverSQLite && isSQLiteFile(dsn) {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("failed to prepare database directory: %w", err)
		}
	}

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == DriverSQLite {
		// SQLite allows a single writer; one connection makes transactions queue.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	if driver == DriverPostgres {
		return kv.NewPostgresStore(db), nil
	}
	return kv.NewSQLiteStore(db), nil
}

// isSQLiteFile reports whether dsn names a plain file rather than an
// in-memory database or a file: URI.
func isSQLiteFile(dsn string) bool {
	return dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}
