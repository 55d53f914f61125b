package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/dentadesk/dentadesk/internal/model"
	"github.com/dentadesk/dentadesk/libs/db"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dental.db")
	d, err := db.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	if err := Migrate(context.Background(), d, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return d
}

func mustCreatePatient(t *testing.T, d *db.DB, p model.Patient) int64 {
	t.Helper()
	res, err := NewPatientRepository(d).Create(context.Background(), p)
	if err != nil {
		t.Fatalf("create patient %q %q: %v", p.FirstName, p.LastName, err)
	}
	return res.LastInsertID
}
