package service_test

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockVehicleRepo) Reserve(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByEmailAndStatus(ctx context.Context, email string, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, email, status)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByEmailAndStatus(ctx context.Context, email string, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, email, status)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context, asOf string) ([]domain.Rental, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.RentalStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// MockReturnRepo
type MockReturnRepo struct {
	mock.Mock
}

func (m *MockReturnRepo) Create(ctx context.Context, ret *domain.Return) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}
func (m *MockReturnRepo) GetByRentalID(ctx context.Context, rentalID int64) (*domain.Return, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Return), args.Error(1)
}

// MockBillRepo
type MockBillRepo struct {
	mock.Mock
}

func (m *MockBillRepo) Create(ctx context.Context, b *domain.Bill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBillRepo) GetByID(ctx context.Context, id int64) (*domain.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillRepo) ListUnpaid(ctx context.Context) ([]domain.Bill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Bill), args.Error(1)
}
func (m *MockBillRepo) ListUnpaidByEmail(ctx context.Context, email string) ([]domain.Bill, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Bill), args.Error(1)
}
func (m *MockBillRepo) MarkPaid(ctx context.Context, id int64, paidAt time.Time, transactionRef string, processedBy int64) error {
	args := m.Called(ctx, id, paidAt, transactionRef, processedBy)
	return args.Error(0)
}

// MockStaffRepo
type MockStaffRepo struct {
	mock.Mock
}

func (m *MockStaffRepo) Create(ctx context.Context, s *domain.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}
func (m *MockStaffRepo) GetByEmployeeCode(ctx context.Context, code string) (*domain.Staff, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

// MockStore wires the repo mocks behind the Store interface. ExecTx simply
// runs fn against the same mocks, so expectations set on them cover both
// direct and transactional calls.
type MockStore struct {
	VehicleRepo     *MockVehicleRepo
	ReservationRepo *MockReservationRepo
	RentalRepo      *MockRentalRepo
	ReturnRepo      *MockReturnRepo
	BillRepo        *MockBillRepo
	StaffRepo       *MockStaffRepo
}

func NewMockStore() *MockStore {
	return &MockStore{
		VehicleRepo:     new(MockVehicleRepo),
		ReservationRepo: new(MockReservationRepo),
		RentalRepo:      new(MockRentalRepo),
		ReturnRepo:      new(MockReturnRepo),
		BillRepo:        new(MockBillRepo),
		StaffRepo:       new(MockStaffRepo),
	}
}

func (m *MockStore) Vehicles() repository.VehicleRepository         { return m.VehicleRepo }
func (m *MockStore) Reservations() repository.ReservationRepository { return m.ReservationRepo }
func (m *MockStore) Rentals() repository.RentalRepository           { return m.RentalRepo }
func (m *MockStore) Returns() repository.ReturnRepository           { return m.ReturnRepo }
func (m *MockStore) Bills() repository.BillRepository               { return m.BillRepo }
func (m *MockStore) Staff() repository.StaffRepository              { return m.StaffRepo }
func (m *MockStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(m)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationConfirmation(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReceipt(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockEmailService) SendBillNotice(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueReminder(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockEmailService) SendUnpaidBillReminder(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
