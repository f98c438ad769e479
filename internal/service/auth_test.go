package service_test

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret-key-at-least-32-chars-long"

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	staff := &domain.Staff{
		ID:           7,
		EmployeeCode: "EMP001",
		Name:         "Front Desk Admin",
		PasswordHash: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		staffRepo := new(MockStaffRepo)
		svc := service.NewAuthService(staffRepo, tokens)

		staffRepo.On("GetByEmployeeCode", ctx, "EMP001").Return(staff, nil)

		token, got, err := svc.Login(ctx, "EMP001", "admin123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, staff, got)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.StaffID)
		assert.Equal(t, "EMP001", claims.EmployeeCode)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		staffRepo := new(MockStaffRepo)
		svc := service.NewAuthService(staffRepo, tokens)

		staffRepo.On("GetByEmployeeCode", ctx, "EMP001").Return(staff, nil)

		token, got, err := svc.Login(ctx, "EMP001", "wrong")
		assert.Empty(t, token)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown Employee Code", func(t *testing.T) {
		staffRepo := new(MockStaffRepo)
		svc := service.NewAuthService(staffRepo, tokens)

		staffRepo.On("GetByEmployeeCode", ctx, "EMP999").
			Return(nil, &domain.NotFoundError{Entity: "staff", ID: "EMP999"})

		token, got, err := svc.Login(ctx, "EMP999", "admin123")
		assert.Empty(t, token)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
