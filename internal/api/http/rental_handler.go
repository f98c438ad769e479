package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/fees"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type completeReturnRequest struct {
	DamageFlags []string `json:"damage_flags"`
	Notes       string   `json:"notes"`
	// ReturnedAt is the inspection timestamp in RFC 3339; the current time
	// is used when omitted.
	ReturnedAt string `json:"returned_at,omitempty"`
}

type completeReturnResponse struct {
	Return *domain.Return `json:"return"`
	Bill   *domain.Bill   `json:"bill"`
}

func (h *RentalHandler) ListActiveRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListActiveRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) CompleteReturn(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, &domain.InvalidInputError{Field: "id", Reason: "must be an integer"})
		return
	}

	var req completeReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, &domain.InvalidInputError{Field: "body", Reason: "malformed JSON"})
		return
	}

	returnedAt := time.Now().UTC()
	if req.ReturnedAt != "" {
		returnedAt, err = time.Parse(time.RFC3339, req.ReturnedAt)
		if err != nil {
			respondError(w, &domain.InvalidInputError{Field: "returned_at", Reason: "must be RFC 3339"})
			return
		}
		returnedAt = returnedAt.UTC()
	}

	flags := make([]fees.DamageFlag, 0, len(req.DamageFlags))
	for _, f := range req.DamageFlags {
		flags = append(flags, fees.DamageFlag(f))
	}

	ret, bill, err := h.rentalSvc.CompleteReturn(r.Context(), staffIDFromContext(r.Context()), id, flags, req.Notes, returnedAt)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, completeReturnResponse{Return: ret, Bill: bill})
}
