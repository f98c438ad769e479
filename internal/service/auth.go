package service

import (
	"context"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials deliberately does not distinguish an unknown employee
// code from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type authService struct {
	staffRepo repository.StaffRepository
	tokens    security.TokenManager
}

func NewAuthService(staffRepo repository.StaffRepository, tokens security.TokenManager) AuthService {
	return &authService{
		staffRepo: staffRepo,
		tokens:    tokens,
	}
}

func (s *authService) Login(ctx context.Context, employeeCode, password string) (string, *domain.Staff, error) {
	staff, err := s.staffRepo.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(staff.ID, staff.EmployeeCode)
	if err != nil {
		return "", nil, err
	}
	return token, staff, nil
}
