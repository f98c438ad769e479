package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusReserved  VehicleStatus = "reserved"
	VehicleStatusRented    VehicleStatus = "rented"
)

// Vehicle is one physical car in the fleet. Vehicles are never deleted; the
// lifecycle engine mutates Status in place as reservations and rentals move
// through their states.
type Vehicle struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Features    []string      `json:"features"`
	PricePerDay float64       `json:"price_per_day"`
	Status      VehicleStatus `json:"status"`
	ImageURL    string        `json:"image_url,omitempty"`
	CreatedOn   time.Time     `json:"created_on"`
}
