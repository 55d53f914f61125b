package db

import (
	"context"
	"database/sql"
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DB wraps the process-wide connection to the clinic database file.
type DB struct {
	*sql.DB
}

// Open opens (creating if needed) the SQLite file at path. WAL is enabled
// for crash safety and foreign_keys so declared cascades actually fire.
// The pool is capped at one connection: one process, one writer.
func Open(ctx context.Context, path string) (*DB, error) {
	dsn := "file:" + path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)"

	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(1)

	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return &DB{DB: sqldb}, nil
}

func (d *DB) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func ReadyCheck(d *DB) func(context.Context) error {
	return func(ctx context.Context) error {
		if d == nil || d.DB == nil {
			return errors.New("db not configured")
		}
		return d.PingContext(ctx)
	}
}

// IsConstraint reports whether err is a constraint violation from the
// storage engine (uniqueness, foreign key, not-null).
func IsConstraint(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// IsNotFound reports whether err is a no-rows result from a single-record
// lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
