package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error)
	// UpdateStatus overwrites the status unconditionally; transition
	// validation is the lifecycle engine's job.
	UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
	// Reserve moves an available vehicle to reserved. A vehicle in any other
	// state fails with a VehicleUnavailableError, so of two concurrent
	// reservation attempts only one can win.
	Reserve(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
	ListByEmailAndStatus(ctx context.Context, email string, status domain.ReservationStatus) ([]domain.Reservation, error)
	// UpdateStatus is a compare-and-set: it only moves from -> to, so a
	// concurrent double-pickup loses with an InvalidStateError.
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error
}

type RentalRepository interface {
	Create(ctx context.Context, rt *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	ListByEmailAndStatus(ctx context.Context, email string, status domain.RentalStatus) ([]domain.Rental, error)
	// ListOverdue returns active rentals whose return date is before asOf
	// (yyyy-mm-dd).
	ListOverdue(ctx context.Context, asOf string) ([]domain.Rental, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.RentalStatus) error
}

type ReturnRepository interface {
	Create(ctx context.Context, ret *domain.Return) error
	GetByRentalID(ctx context.Context, rentalID int64) (*domain.Return, error)
}

type BillRepository interface {
	Create(ctx context.Context, b *domain.Bill) error
	GetByID(ctx context.Context, id int64) (*domain.Bill, error)
	ListUnpaid(ctx context.Context) ([]domain.Bill, error)
	ListUnpaidByEmail(ctx context.Context, email string) ([]domain.Bill, error)
	// MarkPaid flips paid false -> true exactly once; a bill already paid
	// fails with an InvalidStateError.
	MarkPaid(ctx context.Context, id int64, paidAt time.Time, transactionRef string, processedBy int64) error
}

type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	GetByEmployeeCode(ctx context.Context, code string) (*domain.Staff, error)
}

// Store aggregates the repositories over one backing database. ExecTx runs fn
// against transaction-bound repositories: every mutation fn performs commits
// together or not at all.
type Store interface {
	Vehicles() VehicleRepository
	Reservations() ReservationRepository
	Rentals() RentalRepository
	Returns() ReturnRepository
	Bills() BillRepository
	Staff() StaffRepository
	ExecTx(ctx context.Context, fn func(Store) error) error
}
