package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
}

func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

func (h *CustomerHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.customerSvc.FindByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, activity)
}
