package enum

// Venue identifies where an order was consumed
type Venue string

const (
	VenueRoomService Venue = "room_service"
	VenueRestaurant  Venue = "restaurant"
	VenueBar         Venue = "bar"
)

// IsValid reports whether the value is a known venue
func (v Venue) IsValid() bool {
	switch v {
	case VenueRoomService, VenueRestaurant, VenueBar:
		return true
	}
	return false
}
