// Package http exposes the rental lifecycle over a JSON REST API.
package http

import (
	"net/http"

	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// RouterDeps carries everything the router needs to assemble handlers.
type RouterDeps struct {
	FleetSvc    service.FleetService
	RentalSvc   service.RentalService
	CustomerSvc service.CustomerService
	AuthSvc     service.AuthService
	Tokens      security.TokenManager
}

// NewRouter wires all routes under /api/v1. Customer-facing routes are
// public; everything operating the staff desk sits behind AuthMiddleware.
func NewRouter(deps RouterDeps) *mux.Router {
	vehicleHandler := NewVehicleHandler(deps.FleetSvc)
	reservationHandler := NewReservationHandler(deps.RentalSvc)
	rentalHandler := NewRentalHandler(deps.RentalSvc)
	billHandler := NewBillHandler(deps.RentalSvc)
	customerHandler := NewCustomerHandler(deps.CustomerSvc)
	authHandler := NewAuthHandler(deps.AuthSvc)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public customer surface.
	api.HandleFunc("/vehicles", vehicleHandler.ListVehicles).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/available", vehicleHandler.ListAvailableVehicles).Methods(http.MethodGet)
	api.HandleFunc("/reservations", reservationHandler.CreateReservation).Methods(http.MethodPost)
	api.HandleFunc("/customers/activity", customerHandler.GetActivity).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Staff desk.
	staff := api.PathPrefix("").Subrouter()
	staff.Use(AuthMiddleware(deps.Tokens))
	staff.HandleFunc("/reservations/pending", reservationHandler.ListPendingReservations).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{id}/pickup", reservationHandler.ProcessPickup).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/active", rentalHandler.ListActiveRentals).Methods(http.MethodGet)
	staff.HandleFunc("/rentals/{id}/return", rentalHandler.CompleteReturn).Methods(http.MethodPost)
	staff.HandleFunc("/bills/unpaid", billHandler.ListUnpaidBills).Methods(http.MethodGet)
	staff.HandleFunc("/bills/{id}/payment", billHandler.ProcessPayment).Methods(http.MethodPost)

	return r
}
