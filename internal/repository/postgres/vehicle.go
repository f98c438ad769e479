package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"

	"github.com/lib/pq"
)

type vehicleRepository struct {
	db DBTX
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (name, category, features, price_per_day, status, image_url, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	v.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, v.Name, v.Category, pq.Array(v.Features), v.PricePerDay, v.Status, v.ImageURL, v.CreatedOn).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, name, category, features, price_per_day, status, image_url, created_on FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Name, &v.Category, pq.Array(&v.Features), &v.PricePerDay, &v.Status, &v.ImageURL, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "vehicle", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, name, category, features, price_per_day, status, image_url, created_on FROM vehicles ORDER BY id`
	return r.queryVehicles(ctx, query)
}

func (r *vehicleRepository) ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	query := `SELECT id, name, category, features, price_per_day, status, image_url, created_on FROM vehicles WHERE status = $1 ORDER BY id`
	return r.queryVehicles(ctx, query, status)
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Entity: "vehicle", ID: id}
	}
	return nil
}

func (r *vehicleRepository) Reserve(ctx context.Context, id int64) error {
	// Conditional on the current status so concurrent reservation attempts
	// cannot both claim the vehicle; the loser sees zero rows.
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET status = $2 WHERE id = $1 AND status = $3`,
		id, domain.VehicleStatusReserved, domain.VehicleStatusAvailable)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		v, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return &domain.VehicleUnavailableError{VehicleID: id, Status: v.Status}
	}
	return nil
}

func (r *vehicleRepository) queryVehicles(ctx context.Context, query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, pq.Array(&v.Features), &v.PricePerDay, &v.Status, &v.ImageURL, &v.CreatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
