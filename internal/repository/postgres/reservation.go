package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
)

type reservationRepository struct {
	db DBTX
}

const reservationColumns = `id, confirmation_code, customer_name, customer_email, customer_phone, license_number,
	vehicle_id, vehicle_name, rental_days, pickup_date, return_date, price_per_day, total_cost, status, created_on`

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (confirmation_code, customer_name, customer_email, customer_phone, license_number,
	            vehicle_id, vehicle_name, rental_days, pickup_date, return_date, price_per_day, total_cost, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	res.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		res.ConfirmationCode, res.CustomerName, res.CustomerEmail, res.CustomerPhone, res.LicenseNumber,
		res.VehicleID, res.VehicleName, res.RentalDays, res.PickupDate, res.ReturnDate,
		res.PricePerDay, res.TotalCost, res.Status, res.CreatedOn).Scan(&res.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.ConfirmationCode, &res.CustomerName, &res.CustomerEmail, &res.CustomerPhone, &res.LicenseNumber,
		&res.VehicleID, &res.VehicleName, &res.RentalDays, &res.PickupDate, &res.ReturnDate,
		&res.PricePerDay, &res.TotalCost, &res.Status, &res.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "reservation", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = $1 ORDER BY created_on, id`
	return r.queryReservations(ctx, query, status)
}

func (r *reservationRepository) ListByEmailAndStatus(ctx context.Context, email string, status domain.ReservationStatus) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE customer_email = $1 AND status = $2 ORDER BY created_on, id`
	return r.queryReservations(ctx, query, email, status)
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reservations SET status = $3 WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.InvalidStateError{Entity: "reservation", ID: id, State: "not " + string(from), Op: "moved to " + string(to)}
	}
	return nil
}

func (r *reservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID, &res.ConfirmationCode, &res.CustomerName, &res.CustomerEmail, &res.CustomerPhone, &res.LicenseNumber,
			&res.VehicleID, &res.VehicleName, &res.RentalDays, &res.PickupDate, &res.ReturnDate,
			&res.PricePerDay, &res.TotalCost, &res.Status, &res.CreatedOn); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
