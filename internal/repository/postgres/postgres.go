package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx, so every
// repository works identically inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db           *sql.DB // nil on a transaction-bound store
	vehicles     *vehicleRepository
	reservations *reservationRepository
	rentals      *rentalRepository
	returns      *returnRepository
	bills        *billRepository
	staff        *staffRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q DBTX) *Store {
	return &Store{
		db:           db,
		vehicles:     &vehicleRepository{db: q},
		reservations: &reservationRepository{db: q},
		rentals:      &rentalRepository{db: q},
		returns:      &returnRepository{db: q},
		bills:        &billRepository{db: q},
		staff:        &staffRepository{db: q},
	}
}

func (s *Store) Vehicles() repository.VehicleRepository         { return s.vehicles }
func (s *Store) Reservations() repository.ReservationRepository { return s.reservations }
func (s *Store) Rentals() repository.RentalRepository           { return s.rentals }
func (s *Store) Returns() repository.ReturnRepository           { return s.returns }
func (s *Store) Bills() repository.BillRepository               { return s.bills }
func (s *Store) Staff() repository.StaffRepository              { return s.staff }

// ExecTx runs fn against a transaction-bound store. Nesting ExecTx is not
// supported.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	if s.db == nil {
		return fmt.Errorf("nested transaction")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(newStore(nil, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
