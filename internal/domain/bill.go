package domain

import "time"

// Bill is created 1:1 with each return. FinalAmount = base cost + damages +
// late fee. Paid is monotone: it flips false -> true exactly once, recording
// PaidAt, a transaction reference and the processing staff member.
type Bill struct {
	ID             int64      `json:"id"`
	ReturnID       int64      `json:"return_id"`
	RentalID       int64      `json:"rental_id"`
	CustomerName   string     `json:"customer_name"`
	CustomerEmail  string     `json:"customer_email"`
	VehicleName    string     `json:"vehicle_name"`
	BaseCost       float64    `json:"base_cost"`
	DamagesCost    float64    `json:"damages_cost"`
	DaysLate       int        `json:"days_late"`
	LateFee        float64    `json:"late_fee"`
	FinalAmount    float64    `json:"final_amount"`
	Paid           bool       `json:"paid"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	TransactionRef string     `json:"transaction_ref,omitempty"`
	ProcessedBy    *int64     `json:"processed_by,omitempty"`
	CreatedOn      time.Time  `json:"created_on"`
}
