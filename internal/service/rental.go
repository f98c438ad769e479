package service

import (
	"context"
	"strings"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/fees"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type rentalService struct {
	store    repository.Store
	emailSvc EmailService
	// newCode issues opaque reference codes (confirmation codes, payment
	// transaction refs). Injected so the engine stays deterministic under
	// test.
	newCode func() string
}

func NewRentalService(store repository.Store, emailSvc EmailService, newCode func() string) RentalService {
	return &rentalService{
		store:    store,
		emailSvc: emailSvc,
		newCode:  newCode,
	}
}

func (s *rentalService) CreateReservation(ctx context.Context, info CustomerInfo, vehicleID int64, rentalDays int, pickupDate string) (*domain.Reservation, error) {
	if strings.TrimSpace(info.Name) == "" {
		return nil, &domain.InvalidInputError{Field: "customer_name", Reason: "must not be blank"}
	}
	if strings.TrimSpace(info.Email) == "" {
		return nil, &domain.InvalidInputError{Field: "customer_email", Reason: "must not be blank"}
	}
	if rentalDays <= 0 {
		return nil, &domain.InvalidInputError{Field: "rental_days", Reason: "must be a positive number of days"}
	}
	pickup, err := time.ParseInLocation(dateLayout, pickupDate, time.UTC)
	if err != nil {
		return nil, &domain.InvalidInputError{Field: "pickup_date", Reason: "must be a yyyy-mm-dd date"}
	}

	vehicle, err := s.store.Vehicles().GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, &domain.VehicleUnavailableError{VehicleID: vehicle.ID, Status: vehicle.Status}
	}

	totalCost, err := fees.QuoteTotal(vehicle.PricePerDay, rentalDays)
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ConfirmationCode: s.newCode(),
		CustomerName:     info.Name,
		CustomerEmail:    info.Email,
		CustomerPhone:    info.Phone,
		LicenseNumber:    info.LicenseNumber,
		VehicleID:        vehicle.ID,
		VehicleName:      vehicle.Name,
		RentalDays:       rentalDays,
		PickupDate:       pickup.Format(dateLayout),
		ReturnDate:       pickup.AddDate(0, 0, rentalDays).Format(dateLayout),
		PricePerDay:      vehicle.PricePerDay,
		TotalCost:        totalCost,
		Status:           domain.ReservationStatusPending,
	}

	// Reserve is conditional on the vehicle still being available, so a
	// concurrent reservation that read the same snapshot loses here.
	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		return tx.Vehicles().Reserve(ctx, vehicle.ID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendReservationConfirmation(ctx, res); err != nil {
		logger.Warn("Failed to send reservation confirmation", "reservation_id", res.ID, "error", err)
	}
	logger.Info("Reservation created", "reservation_id", res.ID, "vehicle_id", vehicle.ID, "total_cost", res.TotalCost)
	return res, nil
}

func (s *rentalService) ProcessPickup(ctx context.Context, staffID, reservationID int64) (*domain.Rental, error) {
	staff, err := s.store.Staff().GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	res, err := s.store.Reservations().GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusPending {
		return nil, &domain.InvalidStateError{Entity: "reservation", ID: res.ID, State: string(res.Status), Op: "picked up"}
	}

	rt := &domain.Rental{
		ReservationID: res.ID,
		CustomerName:  res.CustomerName,
		CustomerEmail: res.CustomerEmail,
		CustomerPhone: res.CustomerPhone,
		LicenseNumber: res.LicenseNumber,
		VehicleID:     res.VehicleID,
		VehicleName:   res.VehicleName,
		RentalDays:    res.RentalDays,
		PickupDate:    res.PickupDate,
		ReturnDate:    res.ReturnDate,
		PricePerDay:   res.PricePerDay,
		TotalCost:     res.TotalCost,
		Status:        domain.RentalStatusActive,
		PickedUpAt:    time.Now().UTC(),
		PickedUpBy:    staff.ID,
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Rentals().Create(ctx, rt); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, res.ID, domain.ReservationStatusPending, domain.ReservationStatusCompleted); err != nil {
			return err
		}
		return tx.Vehicles().UpdateStatus(ctx, res.VehicleID, domain.VehicleStatusRented)
	})
	if err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendPickupReceipt(ctx, rt); err != nil {
		logger.Warn("Failed to send pickup receipt", "rental_id", rt.ID, "error", err)
	}
	logger.Info("Pickup processed", "rental_id", rt.ID, "reservation_id", res.ID, "staff_id", staff.ID)
	return rt, nil
}

func (s *rentalService) CompleteReturn(ctx context.Context, staffID, rentalID int64, damageFlags []fees.DamageFlag, notes string, returnedAt time.Time) (*domain.Return, *domain.Bill, error) {
	staff, err := s.store.Staff().GetByID(ctx, staffID)
	if err != nil {
		return nil, nil, err
	}

	rt, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, nil, err
	}
	if rt.Status != domain.RentalStatusActive {
		return nil, nil, &domain.InvalidStateError{Entity: "rental", ID: rt.ID, State: string(rt.Status), Op: "returned"}
	}

	damagesCost, damageLines, err := fees.DamageCost(damageFlags)
	if err != nil {
		return nil, nil, err
	}
	lateFee, daysLate, err := fees.LateFee(rt.ReturnDate, returnedAt, rt.PricePerDay)
	if err != nil {
		return nil, nil, err
	}

	ret := &domain.Return{
		RentalID:        rt.ID,
		Damages:         damageLines,
		DamagesCost:     damagesCost,
		DaysLate:        daysLate,
		LateFee:         lateFee,
		InspectionNotes: notes,
		ReturnedAt:      returnedAt.UTC(),
		InspectedBy:     staff.ID,
	}
	bill := &domain.Bill{
		RentalID:      rt.ID,
		CustomerName:  rt.CustomerName,
		CustomerEmail: rt.CustomerEmail,
		VehicleName:   rt.VehicleName,
		BaseCost:      rt.TotalCost,
		DamagesCost:   damagesCost,
		DaysLate:      daysLate,
		LateFee:       lateFee,
		FinalAmount:   fees.FinalBill(rt.TotalCost, damagesCost, lateFee),
		Paid:          false,
	}

	// Return record, bill, rental status and vehicle status commit together
	// or not at all.
	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Returns().Create(ctx, ret); err != nil {
			return err
		}
		bill.ReturnID = ret.ID
		if err := tx.Bills().Create(ctx, bill); err != nil {
			return err
		}
		if err := tx.Rentals().UpdateStatus(ctx, rt.ID, domain.RentalStatusActive, domain.RentalStatusReturned); err != nil {
			return err
		}
		return tx.Vehicles().UpdateStatus(ctx, rt.VehicleID, domain.VehicleStatusAvailable)
	})
	if err != nil {
		return nil, nil, err
	}

	if err := s.emailSvc.SendBillNotice(ctx, bill); err != nil {
		logger.Warn("Failed to send bill notice", "bill_id", bill.ID, "error", err)
	}
	logger.Info("Return completed", "rental_id", rt.ID, "bill_id", bill.ID, "final_amount", bill.FinalAmount, "days_late", daysLate, "staff_id", staff.ID)
	return ret, bill, nil
}

func (s *rentalService) ProcessPayment(ctx context.Context, staffID, billID int64) (*domain.Bill, error) {
	staff, err := s.store.Staff().GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	bill, err := s.store.Bills().GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.Paid {
		return nil, &domain.InvalidStateError{Entity: "bill", ID: bill.ID, State: "paid", Op: "paid again"}
	}

	paidAt := time.Now().UTC()
	ref := s.newCode()
	if err := s.store.Bills().MarkPaid(ctx, bill.ID, paidAt, ref, staff.ID); err != nil {
		return nil, err
	}
	bill.Paid = true
	bill.PaidAt = &paidAt
	bill.TransactionRef = ref
	bill.ProcessedBy = &staff.ID

	if err := s.emailSvc.SendPaymentReceipt(ctx, bill); err != nil {
		logger.Warn("Failed to send payment receipt", "bill_id", bill.ID, "error", err)
	}
	logger.Info("Payment processed", "bill_id", bill.ID, "amount", bill.FinalAmount, "staff_id", staff.ID)
	return bill, nil
}

func (s *rentalService) ListPendingReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.store.Reservations().ListByStatus(ctx, domain.ReservationStatusPending)
}

func (s *rentalService) ListActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.store.Rentals().ListByStatus(ctx, domain.RentalStatusActive)
}

func (s *rentalService) ListUnpaidBills(ctx context.Context) ([]domain.Bill, error) {
	return s.store.Bills().ListUnpaid(ctx)
}
