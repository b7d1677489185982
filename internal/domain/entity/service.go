package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ServiceOffering is a catalog entry for ancillary services (laundry, spa,
// airport shuttle...). Like products, its price is only a default: requests
// capture the price at creation time.
type ServiceOffering struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Price       float64        `gorm:"not null;default:0" json:"price"`
	Active      bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service offering
func (so *ServiceOffering) BeforeCreate(tx *gorm.DB) error {
	if so.ID == uuid.Nil {
		so.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ServiceOffering model
func (ServiceOffering) TableName() string {
	return "service_offerings"
}

// ServiceRequest is an ad-hoc billable service against a reservation. Status
// tracks operational follow-up only; all non-deleted requests are billable.
type ServiceRequest struct {
	ID            uuid.UUID                 `gorm:"type:uuid;primary_key" json:"id"`
	ReservationID uuid.UUID                 `gorm:"type:uuid;not null;index" json:"reservation_id"`
	ServiceID     uuid.UUID                 `gorm:"type:uuid;not null;index" json:"service_id"`
	Quantity      int                       `gorm:"not null" json:"quantity"`
	UnitPrice     float64                   `gorm:"not null" json:"unit_price"`
	Status        enum.ServiceRequestStatus `gorm:"size:20;not null;default:'requested'" json:"status"`
	RequestedAt   time.Time                 `gorm:"not null" json:"requested_at"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
	DeletedAt     gorm.DeletedAt            `gorm:"index" json:"-"`

	Reservation Reservation     `gorm:"foreignKey:ReservationID" json:"-"`
	Service     ServiceOffering `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

// BeforeCreate generates a UUID and stamps the request time
func (sr *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if sr.ID == uuid.Nil {
		sr.ID = uuid.New()
	}
	if sr.RequestedAt.IsZero() {
		sr.RequestedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the ServiceRequest model
func (ServiceRequest) TableName() string {
	return "service_requests"
}

// Total returns the billable amount of the request
func (sr *ServiceRequest) Total() float64 {
	return float64(sr.Quantity) * sr.UnitPrice
}
