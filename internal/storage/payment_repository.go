package storage

import (
	"context"

	"github.com/dentadesk/dentadesk/internal/model"
	"github.com/dentadesk/dentadesk/libs/db"
)

type PaymentRepository struct {
	db *db.DB
}

func NewPaymentRepository(d *db.DB) *PaymentRepository {
	return &PaymentRepository{db: d}
}

func (r *PaymentRepository) ListByPatient(ctx context.Context, patientID int64) ([]model.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, patient_id, amount, COALESCE(date, ''), COALESCE(method, ''), COALESCE(notes, '')
		FROM payments
		WHERE patient_id = ?
		ORDER BY date DESC
	`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.PatientID, &p.Amount, &p.Date, &p.Method, &p.Notes); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p model.Payment) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (patient_id, amount, method, notes, date)
		VALUES (?, ?, ?, ?, datetime('now', 'localtime'))
	`, p.PatientID, p.Amount, p.Method, p.Notes)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}
