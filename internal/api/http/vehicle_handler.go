package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

type VehicleHandler struct {
	fleetSvc service.FleetService
}

func NewVehicleHandler(fleetSvc service.FleetService) *VehicleHandler {
	return &VehicleHandler{fleetSvc: fleetSvc}
}

func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.fleetSvc.ListVehicles(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) ListAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.fleetSvc.ListAvailableVehicles(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}
