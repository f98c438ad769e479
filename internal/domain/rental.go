package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "active"
	RentalStatusReturned RentalStatus = "returned"
)

// Rental is created from a pending reservation when the customer picks the
// vehicle up at the office. It carries the reservation's customer and price
// snapshot fields under its own id.
type Rental struct {
	ID            int64        `json:"id"`
	ReservationID int64        `json:"reservation_id"`
	CustomerName  string       `json:"customer_name"`
	CustomerEmail string       `json:"customer_email"`
	CustomerPhone string       `json:"customer_phone"`
	LicenseNumber string       `json:"license_number"`
	VehicleID     int64        `json:"vehicle_id"`
	VehicleName   string       `json:"vehicle_name"`
	RentalDays    int          `json:"rental_days"`
	PickupDate    string       `json:"pickup_date"`
	ReturnDate    string       `json:"return_date"`
	PricePerDay   float64      `json:"price_per_day"`
	TotalCost     float64      `json:"total_cost"`
	Status        RentalStatus `json:"status"`
	PickedUpAt    time.Time    `json:"picked_up_at"`
	PickedUpBy    int64        `json:"picked_up_by"`
}
