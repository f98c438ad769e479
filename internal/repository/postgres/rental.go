package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
)

type rentalRepository struct {
	db DBTX
}

const rentalColumns = `id, reservation_id, customer_name, customer_email, customer_phone, license_number,
	vehicle_id, vehicle_name, rental_days, pickup_date, return_date, price_per_day, total_cost, status, picked_up_at, picked_up_by`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (reservation_id, customer_name, customer_email, customer_phone, license_number,
	            vehicle_id, vehicle_name, rental_days, pickup_date, return_date, price_per_day, total_cost, status, picked_up_at, picked_up_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rt.ReservationID, rt.CustomerName, rt.CustomerEmail, rt.CustomerPhone, rt.LicenseNumber,
		rt.VehicleID, rt.VehicleName, rt.RentalDays, rt.PickupDate, rt.ReturnDate,
		rt.PricePerDay, rt.TotalCost, rt.Status, rt.PickedUpAt, rt.PickedUpBy).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.ReservationID, &rt.CustomerName, &rt.CustomerEmail, &rt.CustomerPhone, &rt.LicenseNumber,
		&rt.VehicleID, &rt.VehicleName, &rt.RentalDays, &rt.PickupDate, &rt.ReturnDate,
		&rt.PricePerDay, &rt.TotalCost, &rt.Status, &rt.PickedUpAt, &rt.PickedUpBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "rental", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 ORDER BY picked_up_at, id`
	return r.queryRentals(ctx, query, status)
}

func (r *rentalRepository) ListByEmailAndStatus(ctx context.Context, email string, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_email = $1 AND status = $2 ORDER BY picked_up_at, id`
	return r.queryRentals(ctx, query, email, status)
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND return_date < $2 ORDER BY return_date, id`
	return r.queryRentals(ctx, query, domain.RentalStatusActive, asOf)
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.RentalStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rentals SET status = $3 WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.InvalidStateError{Entity: "rental", ID: id, State: "not " + string(from), Op: "moved to " + string(to)}
	}
	return nil
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.ReservationID, &rt.CustomerName, &rt.CustomerEmail, &rt.CustomerPhone, &rt.LicenseNumber,
			&rt.VehicleID, &rt.VehicleName, &rt.RentalDays, &rt.PickupDate, &rt.ReturnDate,
			&rt.PricePerDay, &rt.TotalCost, &rt.Status, &rt.PickedUpAt, &rt.PickedUpBy); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
