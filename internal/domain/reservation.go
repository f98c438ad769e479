package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusCompleted ReservationStatus = "completed"
)

type Reservation struct {
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmation_code"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone"`
	LicenseNumber    string `json:"license_number"`
	VehicleID        int64  `json:"vehicle_id"`
	VehicleName      string `json:"vehicle_name"`
	RentalDays       int    `json:"rental_days"`
	PickupDate       string `json:"pickup_date"` // yyyy-mm-dd
	ReturnDate       string `json:"return_date"` // pickup_date + rental_days
	// Price snapshot — captured from the vehicle at reservation time. All
	// downstream cost calculations use this snapshot, not the live rate.
	PricePerDay float64           `json:"price_per_day"`
	TotalCost   float64           `json:"total_cost"`
	Status      ReservationStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
}
