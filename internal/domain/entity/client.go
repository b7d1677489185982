package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a hotel guest record
type Client struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	LastName   string         `gorm:"size:255;not null" json:"last_name"`
	FirstName  string         `gorm:"size:255" json:"first_name,omitempty"`
	Phone      *string        `gorm:"size:50" json:"phone,omitempty"`
	Email      *string        `gorm:"size:255" json:"email,omitempty"`
	NationalID *string        `gorm:"size:100" json:"national_id,omitempty"`
	Address    *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Reservations []Reservation `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// FullName returns the display name for invoices and listings
func (c *Client) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.LastName + " " + c.FirstName
}
