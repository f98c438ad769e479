package domain

import "time"

// Staff is an office employee authorized to process pickups, returns and
// payments.
type Staff struct {
	ID           int64     `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}
