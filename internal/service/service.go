package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/fees"
)

// CustomerInfo is the identity block a customer submits with a reservation.
type CustomerInfo struct {
	Name          string
	Email         string
	Phone         string
	LicenseNumber string
}

// CustomerActivity is the read-only projection returned by the customer
// lookup: every sequence preserves creation order.
type CustomerActivity struct {
	PendingReservations []domain.Reservation `json:"pending_reservations"`
	ActiveRentals       []domain.Rental      `json:"active_rentals"`
	UnpaidBills         []domain.Bill        `json:"unpaid_bills"`
}

type FleetService interface {
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// RentalService drives the lifecycle state machine:
// pending reservation -> active rental -> returned -> billed -> paid.
// No transition skips a state and none reverses. staffID identifies the
// employee performing the staff-only operations.
type RentalService interface {
	CreateReservation(ctx context.Context, info CustomerInfo, vehicleID int64, rentalDays int, pickupDate string) (*domain.Reservation, error)
	ProcessPickup(ctx context.Context, staffID, reservationID int64) (*domain.Rental, error)
	CompleteReturn(ctx context.Context, staffID, rentalID int64, damageFlags []fees.DamageFlag, notes string, returnedAt time.Time) (*domain.Return, *domain.Bill, error)
	ProcessPayment(ctx context.Context, staffID, billID int64) (*domain.Bill, error)

	ListPendingReservations(ctx context.Context) ([]domain.Reservation, error)
	ListActiveRentals(ctx context.Context) ([]domain.Rental, error)
	ListUnpaidBills(ctx context.Context) ([]domain.Bill, error)
}

type CustomerService interface {
	FindByEmail(ctx context.Context, email string) (*CustomerActivity, error)
}

type AuthService interface {
	Login(ctx context.Context, employeeCode, password string) (string, *domain.Staff, error)
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, res *domain.Reservation) error
	SendPickupReceipt(ctx context.Context, rt *domain.Rental) error
	SendBillNotice(ctx context.Context, bill *domain.Bill) error
	SendPaymentReceipt(ctx context.Context, bill *domain.Bill) error
	SendOverdueReminder(ctx context.Context, rt *domain.Rental) error
	SendUnpaidBillReminder(ctx context.Context, bill *domain.Bill) error
}
