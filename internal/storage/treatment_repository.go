package storage

import (
	"context"

	"github.com/dentadesk/dentadesk/internal/model"
	"github.com/dentadesk/dentadesk/libs/db"
)

type TreatmentRepository struct {
	db *db.DB
}

func NewTreatmentRepository(d *db.DB) *TreatmentRepository {
	return &TreatmentRepository{db: d}
}

func (r *TreatmentRepository) List(ctx context.Context) ([]model.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, default_price
		FROM treatments
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Treatment
	for rows.Next() {
		var t model.Treatment
		if err := rows.Scan(&t.ID, &t.Name, &t.DefaultPrice); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *TreatmentRepository) Create(ctx context.Context, t model.Treatment) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO treatments (name, default_price)
		VALUES (?, ?)
	`, t.Name, t.DefaultPrice)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}

func (r *TreatmentRepository) Update(ctx context.Context, t model.Treatment) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE treatments SET name = ?, default_price = ? WHERE id = ?
	`, t.Name, t.DefaultPrice, t.ID)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}

func (r *TreatmentRepository) Delete(ctx context.Context, id int64) (model.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM treatments WHERE id = ?`, id)
	if err != nil {
		return model.WriteResult{}, err
	}
	return writeResult(res)
}
