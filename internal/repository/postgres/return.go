package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"

	"github.com/lib/pq"
)

type returnRepository struct {
	db DBTX
}

func (r *returnRepository) Create(ctx context.Context, ret *domain.Return) error {
	query := `INSERT INTO returns (rental_id, damages, damages_cost, days_late, late_fee, inspection_notes, returned_at, inspected_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ret.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		ret.RentalID, pq.Array(ret.Damages), ret.DamagesCost, ret.DaysLate, ret.LateFee,
		ret.InspectionNotes, ret.ReturnedAt, ret.InspectedBy, ret.CreatedOn).Scan(&ret.ID)
}

func (r *returnRepository) GetByRentalID(ctx context.Context, rentalID int64) (*domain.Return, error) {
	ret := &domain.Return{}
	query := `SELECT id, rental_id, damages, damages_cost, days_late, late_fee, inspection_notes, returned_at, inspected_by, created_on
	          FROM returns WHERE rental_id = $1`
	err := r.db.QueryRowContext(ctx, query, rentalID).Scan(
		&ret.ID, &ret.RentalID, pq.Array(&ret.Damages), &ret.DamagesCost, &ret.DaysLate, &ret.LateFee,
		&ret.InspectionNotes, &ret.ReturnedAt, &ret.InspectedBy, &ret.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "return", ID: rentalID}
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}
