package enum

// RoomStatus represents the availability of a room
type RoomStatus string

const (
	RoomStatusFree        RoomStatus = "free"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// IsValid reports whether the value is a known room status
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusFree, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
