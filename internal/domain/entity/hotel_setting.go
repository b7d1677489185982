package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HotelSetting is the singleton property configuration: identity printed on
// invoices plus the tax rates read by the billing engine on every recompute.
// VAT rates are decimals in [0,1]; services are taxed at the accommodation
// rate by convention (no separate configured rate).
type HotelSetting struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name                string         `gorm:"size:255;not null" json:"name"`
	Address             string         `gorm:"type:text" json:"address,omitempty"`
	Phone               string         `gorm:"size:50" json:"phone,omitempty"`
	Email               string         `gorm:"size:255" json:"email,omitempty"`
	TaxID               string         `gorm:"size:100" json:"tax_id,omitempty"`
	AccommodationVAT    float64        `gorm:"not null;default:0.10" json:"accommodation_vat"`
	RestaurantVAT       float64        `gorm:"not null;default:0.18" json:"restaurant_vat"`
	TourismTaxPerPerson float64        `gorm:"not null;default:0" json:"tourism_tax_per_person"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating the settings row
func (h *HotelSetting) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the HotelSetting model
func (HotelSetting) TableName() string {
	return "hotel_settings"
}
