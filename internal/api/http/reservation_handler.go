package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReservationHandler struct {
	rentalSvc service.RentalService
}

func NewReservationHandler(rentalSvc service.RentalService) *ReservationHandler {
	return &ReservationHandler{rentalSvc: rentalSvc}
}

type createReservationRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	LicenseNumber string `json:"license_number"`
	VehicleID     int64  `json:"vehicle_id"`
	RentalDays    int    `json:"rental_days"`
	PickupDate    string `json:"pickup_date"`
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, &domain.InvalidInputError{Field: "body", Reason: "malformed JSON"})
		return
	}

	info := service.CustomerInfo{
		Name:          req.CustomerName,
		Email:         req.CustomerEmail,
		Phone:         req.CustomerPhone,
		LicenseNumber: req.LicenseNumber,
	}
	res, err := h.rentalSvc.CreateReservation(r.Context(), info, req.VehicleID, req.RentalDays, req.PickupDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) ListPendingReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.rentalSvc.ListPendingReservations(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) ProcessPickup(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, &domain.InvalidInputError{Field: "id", Reason: "must be an integer"})
		return
	}

	rental, err := h.rentalSvc.ProcessPickup(r.Context(), staffIDFromContext(r.Context()), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}
