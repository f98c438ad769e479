package domain

import "fmt"

// NotFoundError indicates a referenced entity id does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// InvalidStateError indicates the entity exists but is not in the lifecycle
// state the operation requires (e.g. picking up a completed reservation).
type InvalidStateError struct {
	Entity string
	ID     any
	State  string
	Op     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %v is %s and cannot be %s", e.Entity, e.ID, e.State, e.Op)
}

// InvalidInputError indicates a caller-supplied value that fails validation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// VehicleUnavailableError indicates a reservation attempt against a vehicle
// that is not in the available state.
type VehicleUnavailableError struct {
	VehicleID int64
	Status    VehicleStatus
}

func (e *VehicleUnavailableError) Error() string {
	return fmt.Sprintf("vehicle %d is %s and cannot be reserved", e.VehicleID, e.Status)
}
