package enum

// ReservationStatus represents the lifecycle state of a stay
type ReservationStatus string

const (
	ReservationStatusReserved   ReservationStatus = "reserved"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

// IsValid reports whether the value is a known reservation status
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusReserved, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the reservation still owns its room
func (s ReservationStatus) IsActive() bool {
	return s == ReservationStatusReserved || s == ReservationStatusCheckedIn
}

// IsTerminal reports whether the reservation can no longer change state
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCheckedOut || s == ReservationStatusCancelled
}
