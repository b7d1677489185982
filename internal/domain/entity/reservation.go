package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Reservation represents a stay. It owns exactly one room for its active
// lifetime and is never physically deleted; the status carries the lifecycle.
type Reservation struct {
	ID            uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ClientID      uuid.UUID              `gorm:"type:uuid;not null;index" json:"client_id"`
	RoomID        uuid.UUID              `gorm:"type:uuid;not null;index" json:"room_id"`
	ArrivalDate   time.Time              `gorm:"type:date;not null" json:"arrival_date"`
	DepartureDate time.Time              `gorm:"type:date;not null" json:"departure_date"`
	Adults        int                    `gorm:"not null;default:1" json:"adults"`
	Children      int                    `gorm:"not null;default:0" json:"children"`
	EstimatedStay float64                `gorm:"column:estimated_stay_price;not null;default:0" json:"estimated_stay_price"`
	Status        enum.ReservationStatus `gorm:"size:20;not null;default:'reserved';index" json:"status"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	DeletedAt     gorm.DeletedAt         `gorm:"index" json:"-"`

	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Room   Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// BeforeCreate generates a UUID before creating a new reservation
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Reservation model
func (Reservation) TableName() string {
	return "reservations"
}

// Nights returns the billable night count against the given departure date.
// Nights are calendar dates slept over, not elapsed 24-hour blocks: arriving
// late and leaving early the day after is still one night. Floored at one
// night even for same-day stays.
func (r *Reservation) Nights(departure time.Time) int {
	arrival := truncateToDate(r.ArrivalDate)
	depart := truncateToDate(departure.In(r.ArrivalDate.Location()))

	nights := int(depart.Sub(arrival).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
