package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"gorm.io/gorm"
)

// RoomType groups rooms sharing a nightly rate
type RoomType struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:100;unique;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	NightlyRate float64        `gorm:"not null;default:0" json:"nightly_rate"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Rooms []Room `gorm:"foreignKey:RoomTypeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new room type
func (rt *RoomType) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RoomType model
func (RoomType) TableName() string {
	return "room_types"
}

// Room represents a physical room. Status is mutated only by reservation
// lifecycle transitions and by maintenance reports.
type Room struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Number     string          `gorm:"size:50;unique;not null" json:"number"`
	RoomTypeID uuid.UUID       `gorm:"type:uuid;not null;index" json:"room_type_id"`
	Status     enum.RoomStatus `gorm:"size:20;not null;default:'free'" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}

// BeforeCreate generates a UUID before creating a new room
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Room model
func (Room) TableName() string {
	return "rooms"
}
