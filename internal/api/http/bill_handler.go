package http

import (
	"net/http"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type BillHandler struct {
	rentalSvc service.RentalService
}

func NewBillHandler(rentalSvc service.RentalService) *BillHandler {
	return &BillHandler{rentalSvc: rentalSvc}
}

func (h *BillHandler) ListUnpaidBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.rentalSvc.ListUnpaidBills(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bills)
}

func (h *BillHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, &domain.InvalidInputError{Field: "id", Reason: "must be an integer"})
		return
	}

	bill, err := h.rentalSvc.ProcessPayment(r.Context(), staffIDFromContext(r.Context()), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bill)
}
