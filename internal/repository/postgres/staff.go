package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
)

type staffRepository struct {
	db DBTX
}

func (r *staffRepository) Create(ctx context.Context, s *domain.Staff) error {
	query := `INSERT INTO staff (employee_code, name, email, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	s.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, s.EmployeeCode, s.Name, s.Email, s.PasswordHash, s.CreatedOn).Scan(&s.ID)
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	return r.get(ctx, `SELECT id, employee_code, name, email, password_hash, created_on FROM staff WHERE id = $1`, id)
}

func (r *staffRepository) GetByEmployeeCode(ctx context.Context, code string) (*domain.Staff, error) {
	return r.get(ctx, `SELECT id, employee_code, name, email, password_hash, created_on FROM staff WHERE employee_code = $1`, code)
}

func (r *staffRepository) get(ctx context.Context, query string, key any) (*domain.Staff, error) {
	s := &domain.Staff{}
	err := r.db.QueryRowContext(ctx, query, key).Scan(&s.ID, &s.EmployeeCode, &s.Name, &s.Email, &s.PasswordHash, &s.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "staff", ID: key}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
