package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dentadesk/dentadesk/libs/db"
)

// Schema migrations, applied in order exactly once each. The current
// version lives in SQLite's user_version pragma (0 on a fresh file).
// Statements use IF NOT EXISTS so a step that crashed mid-apply can be
// re-run without corrupting state; the version counter keeps each step
// from running twice on the normal path. Never reorder or edit a shipped
// step; append a new one.
var migrations = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS patients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			dni TEXT UNIQUE,
			phone TEXT,
			email TEXT,
			address TEXT,
			birth_date TEXT,
			medical_notes TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS treatments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			default_price INTEGER NOT NULL
		)`,
	},
	{
		`CREATE TABLE IF NOT EXISTS appointments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			patient_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			status TEXT DEFAULT 'pending',
			notes TEXT,
			FOREIGN KEY(patient_id) REFERENCES patients(id) ON DELETE CASCADE
		)`,
	},
	{
		`CREATE TABLE IF NOT EXISTS clinical_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			patient_id INTEGER NOT NULL,
			date TEXT DEFAULT CURRENT_TIMESTAMP,
			treatment_id INTEGER,
			description TEXT NOT NULL,
			cost INTEGER NOT NULL,
			FOREIGN KEY(patient_id) REFERENCES patients(id),
			FOREIGN KEY(treatment_id) REFERENCES treatments(id)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			patient_id INTEGER NOT NULL,
			amount INTEGER NOT NULL,
			date TEXT DEFAULT CURRENT_TIMESTAMP,
			method TEXT DEFAULT 'cash',
			notes TEXT,
			FOREIGN KEY(patient_id) REFERENCES patients(id)
		)`,
	},
}

// Migrate brings the database file up to the current schema version. Each
// pending step runs in its own transaction that also advances user_version,
// so a failed step leaves the version untouched. Any error aborts startup.
func Migrate(ctx context.Context, d *db.DB, logger *slog.Logger) error {
	var version int
	if err := d.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than this build supports (%d)", version, len(migrations))
	}

	for i := version; i < len(migrations); i++ {
		tx, err := d.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		stepErr := func() error {
			for _, stmt := range migrations[i] {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			// PRAGMA takes no bind parameters; the value is a loop index.
			_, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1))
			return err
		}()
		if stepErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %d: %w", i+1, stepErr)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", i+1, err)
		}
		logger.Info("schema migration applied", "version", i+1)
	}
	return nil
}
