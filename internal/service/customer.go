package service

import (
	"context"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerService struct {
	store repository.Store
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{store: store}
}

// FindByEmail collects a customer's open records. An email with no records
// yields empty sequences, not an error.
func (s *customerService) FindByEmail(ctx context.Context, email string) (*CustomerActivity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &domain.InvalidInputError{Field: "email", Reason: "must not be blank"}
	}

	reservations, err := s.store.Reservations().ListByEmailAndStatus(ctx, email, domain.ReservationStatusPending)
	if err != nil {
		return nil, err
	}
	rentals, err := s.store.Rentals().ListByEmailAndStatus(ctx, email, domain.RentalStatusActive)
	if err != nil {
		return nil, err
	}
	bills, err := s.store.Bills().ListUnpaidByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &CustomerActivity{
		PendingReservations: reservations,
		ActiveRentals:       rentals,
		UnpaidBills:         bills,
	}, nil
}
