package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/fees"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFleetService struct {
	mock.Mock
}

func (m *mockFleetService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *mockFleetService) ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *mockFleetService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

type mockRentalService struct {
	mock.Mock
}

func (m *mockRentalService) CreateReservation(ctx context.Context, info service.CustomerInfo, vehicleID int64, rentalDays int, pickupDate string) (*domain.Reservation, error) {
	args := m.Called(ctx, info, vehicleID, rentalDays, pickupDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *mockRentalService) ProcessPickup(ctx context.Context, staffID, reservationID int64) (*domain.Rental, error) {
	args := m.Called(ctx, staffID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *mockRentalService) CompleteReturn(ctx context.Context, staffID, rentalID int64, damageFlags []fees.DamageFlag, notes string, returnedAt time.Time) (*domain.Return, *domain.Bill, error) {
	args := m.Called(ctx, staffID, rentalID, damageFlags, notes, returnedAt)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Return), args.Get(1).(*domain.Bill), args.Error(2)
}
func (m *mockRentalService) ProcessPayment(ctx context.Context, staffID, billID int64) (*domain.Bill, error) {
	args := m.Called(ctx, staffID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *mockRentalService) ListPendingReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *mockRentalService) ListActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *mockRentalService) ListUnpaidBills(ctx context.Context) ([]domain.Bill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Bill), args.Error(1)
}

type mockCustomerService struct {
	mock.Mock
}

func (m *mockCustomerService) FindByEmail(ctx context.Context, email string) (*service.CustomerActivity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CustomerActivity), args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, employeeCode, password string) (string, *domain.Staff, error) {
	args := m.Called(ctx, employeeCode, password)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Staff), args.Error(2)
}

// Wire shapes of the handler responses.
type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type loginBody struct {
	Token string        `json:"token"`
	Staff *domain.Staff `json:"staff"`
}

type returnBody struct {
	Return *domain.Return `json:"return"`
	Bill   *domain.Bill   `json:"bill"`
}

type routerFixture struct {
	fleetSvc    *mockFleetService
	rentalSvc   *mockRentalService
	customerSvc *mockCustomerService
	authSvc     *mockAuthService
	tokens      security.TokenManager
	router      http.Handler
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		fleetSvc:    new(mockFleetService),
		rentalSvc:   new(mockRentalService),
		customerSvc: new(mockCustomerService),
		authSvc:     new(mockAuthService),
		tokens:      security.NewTokenManager("test-secret-key-at-least-32-chars-long", 60),
	}
	f.router = httpapi.NewRouter(httpapi.RouterDeps{
		FleetSvc:    f.fleetSvc,
		RentalSvc:   f.rentalSvc,
		CustomerSvc: f.customerSvc,
		AuthSvc:     f.authSvc,
		Tokens:      f.tokens,
	})
	return f
}

func (f *routerFixture) staffToken(t *testing.T, staffID int64) string {
	t.Helper()
	token, err := f.tokens.GenerateAccessToken(staffID, "EMP001")
	require.NoError(t, err)
	return token
}

func TestListAvailableVehicles(t *testing.T) {
	f := newRouterFixture()
	f.fleetSvc.On("ListAvailableVehicles", mock.Anything).
		Return([]domain.Vehicle{{ID: 1, Name: "Toyota Camry", Status: domain.VehicleStatusAvailable}}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/available", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var vehicles []domain.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicles))
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Toyota Camry", vehicles[0].Name)
}

func TestCreateReservation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newRouterFixture()
		info := service.CustomerInfo{Name: "John Smith", Email: "john@example.com", Phone: "555-0100", LicenseNumber: "D1234567"}
		f.rentalSvc.On("CreateReservation", mock.Anything, info, int64(1), 3, "2024-01-07").
			Return(&domain.Reservation{ID: 11, ConfirmationCode: "CODE-123", TotalCost: 148.50}, nil)

		body := `{"customer_name":"John Smith","customer_email":"john@example.com","customer_phone":"555-0100","license_number":"D1234567","vehicle_id":1,"rental_days":3,"pickup_date":"2024-01-07"}`
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var res domain.Reservation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "CODE-123", res.ConfirmationCode)
	})

	t.Run("Vehicle Unavailable Maps To Conflict", func(t *testing.T) {
		f := newRouterFixture()
		f.rentalSvc.On("CreateReservation", mock.Anything, mock.Anything, int64(1), 3, "2024-01-07").
			Return(nil, &domain.VehicleUnavailableError{VehicleID: 1, Status: domain.VehicleStatusRented})

		body := `{"customer_name":"John Smith","customer_email":"john@example.com","vehicle_id":1,"rental_days":3,"pickup_date":"2024-01-07"}`
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		var resp errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "vehicle_unavailable", resp.Kind)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		f := newRouterFixture()

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.rentalSvc.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStaffRoutesRequireToken(t *testing.T) {
	f := newRouterFixture()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations/pending", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/pending", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProcessPickup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newRouterFixture()
		f.rentalSvc.On("ProcessPickup", mock.Anything, int64(7), int64(11)).
			Return(&domain.Rental{ID: 21, Status: domain.RentalStatusActive}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/11/pickup", nil)
		req.Header.Set("Authorization", "Bearer "+f.staffToken(t, 7))
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		f.rentalSvc.AssertExpectations(t)
	})

	t.Run("Already Picked Up Maps To Conflict", func(t *testing.T) {
		f := newRouterFixture()
		f.rentalSvc.On("ProcessPickup", mock.Anything, int64(7), int64(11)).
			Return(nil, &domain.InvalidStateError{Entity: "reservation", ID: int64(11), State: "completed", Op: "picked up"})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/11/pickup", nil)
		req.Header.Set("Authorization", "Bearer "+f.staffToken(t, 7))
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var resp errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_state", resp.Kind)
	})
}

func TestCompleteReturn(t *testing.T) {
	f := newRouterFixture()
	returnedAt := time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC)
	f.rentalSvc.On("CompleteReturn", mock.Anything, int64(7), int64(21),
		[]fees.DamageFlag{fees.DamageScratch}, "small dent", returnedAt).
		Return(&domain.Return{ID: 31, DaysLate: 1, LateFee: 70}, &domain.Bill{ID: 41, FinalAmount: 478.00}, nil)

	body := `{"damage_flags":["scratch"],"notes":"small dent","returned_at":"2024-01-11T09:00:00Z"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/21/return", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+f.staffToken(t, 7))
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp returnBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(31), resp.Return.ID)
	assert.Equal(t, 478.00, resp.Bill.FinalAmount)
}

func TestProcessPayment(t *testing.T) {
	f := newRouterFixture()
	paidAt := time.Now().UTC()
	f.rentalSvc.On("ProcessPayment", mock.Anything, int64(7), int64(41)).
		Return(&domain.Bill{ID: 41, Paid: true, PaidAt: &paidAt, TransactionRef: "TXN-1"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills/41/payment", nil)
	req.Header.Set("Authorization", "Bearer "+f.staffToken(t, 7))
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var bill domain.Bill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bill))
	assert.True(t, bill.Paid)
	assert.Equal(t, "TXN-1", bill.TransactionRef)
}

func TestCustomerActivity(t *testing.T) {
	f := newRouterFixture()
	f.customerSvc.On("FindByEmail", mock.Anything, "john@example.com").
		Return(&service.CustomerActivity{
			PendingReservations: []domain.Reservation{{ID: 11}},
			ActiveRentals:       []domain.Rental{},
			UnpaidBills:         []domain.Bill{},
		}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers/activity?email=john%40example.com", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var activity service.CustomerActivity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activity))
	assert.Len(t, activity.PendingReservations, 1)
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newRouterFixture()
		f.authSvc.On("Login", mock.Anything, "EMP001", "admin123").
			Return("token-abc", &domain.Staff{ID: 7, EmployeeCode: "EMP001"}, nil)

		body := `{"employee_code":"EMP001","password":"admin123"}`
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp loginBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "token-abc", resp.Token)
	})

	t.Run("Bad Credentials", func(t *testing.T) {
		f := newRouterFixture()
		f.authSvc.On("Login", mock.Anything, "EMP001", "wrong").
			Return("", nil, service.ErrInvalidCredentials)

		body := `{"employee_code":"EMP001","password":"wrong"}`
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
