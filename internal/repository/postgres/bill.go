package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
)

type billRepository struct {
	db DBTX
}

const billColumns = `id, return_id, rental_id, customer_name, customer_email, vehicle_name,
	base_cost, damages_cost, days_late, late_fee, final_amount, paid, paid_at, transaction_ref, processed_by, created_on`

func (r *billRepository) Create(ctx context.Context, b *domain.Bill) error {
	query := `INSERT INTO bills (return_id, rental_id, customer_name, customer_email, vehicle_name,
	            base_cost, damages_cost, days_late, late_fee, final_amount, paid, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	b.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		b.ReturnID, b.RentalID, b.CustomerName, b.CustomerEmail, b.VehicleName,
		b.BaseCost, b.DamagesCost, b.DaysLate, b.LateFee, b.FinalAmount, b.Paid, b.CreatedOn).Scan(&b.ID)
}

func (r *billRepository) GetByID(ctx context.Context, id int64) (*domain.Bill, error) {
	b := &domain.Bill{}
	var transactionRef sql.NullString
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.ReturnID, &b.RentalID, &b.CustomerName, &b.CustomerEmail, &b.VehicleName,
		&b.BaseCost, &b.DamagesCost, &b.DaysLate, &b.LateFee, &b.FinalAmount,
		&b.Paid, &b.PaidAt, &transactionRef, &b.ProcessedBy, &b.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "bill", ID: id}
	}
	if err != nil {
		return nil, err
	}
	b.TransactionRef = transactionRef.String
	return b, nil
}

func (r *billRepository) ListUnpaid(ctx context.Context) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE paid = false ORDER BY created_on, id`
	return r.queryBills(ctx, query)
}

func (r *billRepository) ListUnpaidByEmail(ctx context.Context, email string) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE customer_email = $1 AND paid = false ORDER BY created_on, id`
	return r.queryBills(ctx, query, email)
}

func (r *billRepository) MarkPaid(ctx context.Context, id int64, paidAt time.Time, transactionRef string, processedBy int64) error {
	// The paid = false guard makes payment idempotence hold even under
	// concurrent attempts; the loser sees zero rows.
	query := `UPDATE bills SET paid = true, paid_at = $2, transaction_ref = $3, processed_by = $4 WHERE id = $1 AND paid = false`
	res, err := r.db.ExecContext(ctx, query, id, paidAt, transactionRef, processedBy)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.InvalidStateError{Entity: "bill", ID: id, State: "paid", Op: "paid again"}
	}
	return nil
}

func (r *billRepository) queryBills(ctx context.Context, query string, args ...any) ([]domain.Bill, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		var b domain.Bill
		var transactionRef sql.NullString
		if err := rows.Scan(
			&b.ID, &b.ReturnID, &b.RentalID, &b.CustomerName, &b.CustomerEmail, &b.VehicleName,
			&b.BaseCost, &b.DamagesCost, &b.DaysLate, &b.LateFee, &b.FinalAmount,
			&b.Paid, &b.PaidAt, &transactionRef, &b.ProcessedBy, &b.CreatedOn); err != nil {
			return nil, err
		}
		b.TransactionRef = transactionRef.String
		bills = append(bills, b)
	}
	return bills, rows.Err()
}
