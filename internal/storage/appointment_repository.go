package storage

import (
	"context"

	"github.com/dentadesk/dentadesk/internal/model"
	"github.com/dentadesk/dentadesk/libs/db"
)

type AppointmentRepository struct {
	db *db.DB
}

func NewAppointmentRepository(d *db.DB) *AppointmentRepository {
	return &AppointmentRepository{db: d}
}

// ListByDateRange returns agenda entries with date in [startDate, endDate]
// (inclusive, "YYYY-MM-DD"), earliest first, each joined with the owning
// patient's display name.
func (r *AppointmentRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]model.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.patient_id, a.date, a.time, a.status, COALESCE(a.notes, ''),
			p.first_name || ' ' || p.last_name AS patient_name
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		WHERE a.date BETWEEN ? AND ?
		ORDER BY a.date ASC, a.time ASC
	`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.Date, &a.Time, &a.Status, &a.Notes, &a.PatientName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, a model.Appointment) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (patient_id, date, time, status, notes)
		VALUES (?, ?, ?, ?, ?)
	`, a.PatientID, a.Date, a.Time, a.Status, a.Notes)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}

// UpdateStatus changes only the status column; every other field of the row
// is left as written.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status string) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE appointments SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int64) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}
