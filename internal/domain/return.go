package domain

import "time"

// Return is the inspection record written when a rental comes back. It is
// immutable once created; the dependent bill is created in the same
// transaction.
type Return struct {
	ID       int64 `json:"id"`
	RentalID int64 `json:"rental_id"`
	// Damages holds one "label: $amount" line per flagged finding, in the
	// fixed catalog order.
	Damages         []string  `json:"damages"`
	DamagesCost     float64   `json:"damages_cost"`
	DaysLate        int       `json:"days_late"`
	LateFee         float64   `json:"late_fee"`
	InspectionNotes string    `json:"inspection_notes"`
	ReturnedAt      time.Time `json:"returned_at"`
	InspectedBy     int64     `json:"inspected_by"`
	CreatedOn       time.Time `json:"created_on"`
}
