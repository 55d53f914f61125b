package storage

import (
	"context"
	"strings"

	"github.com/dentadesk/dentadesk/internal/model"
	"github.com/dentadesk/dentadesk/libs/db"
)

type PatientRepository struct {
	db *db.DB
}

func NewPatientRepository(d *db.DB) *PatientRepository {
	return &PatientRepository{db: d}
}

const patientColumns = `id, first_name, last_name, COALESCE(dni, ''), COALESCE(phone, ''),
	COALESCE(email, ''), COALESCE(address, ''), COALESCE(birth_date, ''),
	COALESCE(medical_notes, ''), COALESCE(created_at, '')`

func scanPatient(row interface{ Scan(...any) error }) (model.Patient, error) {
	var p model.Patient
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.DNI,
		&p.Phone,
		&p.Email,
		&p.Address,
		&p.BirthDate,
		&p.MedicalNotes,
		&p.CreatedAt,
	)
	if err != nil {
		return model.Patient{}, err
	}
	p.Name = p.FirstName + " " + p.LastName
	return p, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		ORDER BY last_name ASC, first_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id int64) (model.Patient, error) {
	return scanPatient(r.db.QueryRowContext(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE id = ?
	`, id))
}

func (r *PatientRepository) GetByDNI(ctx context.Context, dni string) (model.Patient, error) {
	return scanPatient(r.db.QueryRowContext(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE dni = ?
	`, dni))
}

// Create inserts a patient and lets the store assign the id. A blank DNI is
// stored as NULL so two patients without one never collide on the unique
// index.
func (r *PatientRepository) Create(ctx context.Context, p model.Patient) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO patients (first_name, last_name, dni, phone, email, address, birth_date, medical_notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.FirstName, p.LastName, normalizeDNI(p.DNI), p.Phone, p.Email, p.Address, p.BirthDate, p.MedicalNotes)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}

// Update overwrites every mutable field of the patient row.
func (r *PatientRepository) Update(ctx context.Context, p model.Patient) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE patients SET
			first_name = ?,
			last_name = ?,
			dni = ?,
			phone = ?,
			email = ?,
			address = ?,
			birth_date = ?,
			medical_notes = ?
		WHERE id = ?
	`, p.FirstName, p.LastName, normalizeDNI(p.DNI), p.Phone, p.Email, p.Address, p.BirthDate, p.MedicalNotes, p.ID)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}

// Delete removes the patient row. Appointments cascade by foreign key;
// clinical records and payments do not, so a patient with history is
// rejected by the store.
func (r *PatientRepository) Delete(ctx context.Context, id int64) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = ?`, id)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}

func normalizeDNI(dni string) any {
	dni = strings.TrimSpace(dni)
	if dni == "" {
		return nil
	}
	return dni
}
