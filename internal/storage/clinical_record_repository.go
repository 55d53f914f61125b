package storage

import (
	"context"

	"github.com/dentadesk/dentadesk/internal/model"
	"github.com/dentadesk/dentadesk/libs/db"
)

type ClinicalRecordRepository struct {
	db *db.DB
}

func NewClinicalRecordRepository(d *db.DB) *ClinicalRecordRepository {
	return &ClinicalRecordRepository{db: d}
}

// ListByPatient returns one patient's clinical history, most recent entry
// first. The id tiebreak keeps entries written in the same second stable.
func (r *ClinicalRecordRepository) ListByPatient(ctx context.Context, patientID int64) ([]model.ClinicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, patient_id, COALESCE(date, ''), description, cost, treatment_id
		FROM clinical_records
		WHERE patient_id = ?
		ORDER BY date DESC, id DESC
	`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ClinicalRecord
	for rows.Next() {
		var rec model.ClinicalRecord
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.Date, &rec.Description, &rec.Cost, &rec.TreatmentID); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// Create stamps the entry with local wall-clock time; the clinic reads its
// history in local time, not UTC.
func (r *ClinicalRecordRepository) Create(ctx context.Context, rec model.ClinicalRecord) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO clinical_records (patient_id, description, cost, treatment_id, date)
		VALUES (?, ?, ?, ?, datetime('now', 'localtime'))
	`, rec.PatientID, rec.Description, rec.Cost, rec.TreatmentID)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}

func (r *ClinicalRecordRepository) Delete(ctx context.Context, id int64) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clinical_records WHERE id = ?`, id)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}
