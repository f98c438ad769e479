package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// respondError maps engine error kinds onto HTTP statuses. Every failure is
// surfaced to the caller; nothing is swallowed.
func respondError(w http.ResponseWriter, err error) {
	var (
		notFound    *domain.NotFoundError
		invalidSt   *domain.InvalidStateError
		invalidIn   *domain.InvalidInputError
		unavailable *domain.VehicleUnavailableError
	)
	switch {
	case errors.As(err, &notFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Kind: "not_found"})
	case errors.As(err, &invalidSt):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Kind: "invalid_state"})
	case errors.As(err, &invalidIn):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "invalid_input"})
	case errors.As(err, &unavailable):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Kind: "vehicle_unavailable"})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Kind: "unauthorized"})
	default:
		logger.Error("Internal error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Kind: "internal"})
	}
}
