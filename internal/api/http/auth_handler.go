package http

import (
	"encoding/json"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	Staff *domain.Staff `json:"staff"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, &domain.InvalidInputError{Field: "body", Reason: "malformed JSON"})
		return
	}

	token, staff, err := h.authSvc.Login(r.Context(), req.EmployeeCode, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{Token: token, Staff: staff})
}
