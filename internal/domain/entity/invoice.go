package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice aggregates every charge of a stay. Totals are owned by the billing
// engine's recompute; AmountPaid is owned by the payment ledger. At most one
// live invoice exists per reservation.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ReservationID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"reservation_id"`
	Status        enum.InvoiceStatus `gorm:"size:20;not null;default:'draft'" json:"status"`
	TotalHT       float64            `gorm:"not null;default:0" json:"total_ht"`
	TotalTax      float64            `gorm:"not null;default:0" json:"total_tax"`
	TotalTTC      float64            `gorm:"not null;default:0" json:"total_ttc"`
	AmountPaid    float64            `gorm:"not null;default:0" json:"amount_paid"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	Reservation Reservation   `gorm:"foreignKey:ReservationID" json:"-"`
	Lines       []InvoiceLine `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
	Payments    []Payment     `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// Balance returns the amount still due
func (i *Invoice) Balance() float64 {
	return i.TotalTTC - i.AmountPaid
}

// InvoiceLine is a derived projection of the charge sources. The billing
// engine deletes and regenerates the full set on every recompute; lines are
// never hand-edited and their ids are not referenced externally.
type InvoiceLine struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description      string     `gorm:"size:255;not null" json:"description"`
	Quantity         int        `gorm:"not null" json:"quantity"`
	UnitPriceHT      float64    `gorm:"not null" json:"unit_price_ht"`
	AmountHT         float64    `gorm:"not null" json:"amount_ht"`
	AmountTax        float64    `gorm:"not null" json:"amount_tax"`
	AmountTTC        float64    `gorm:"not null" json:"amount_ttc"`
	OrderID          *uuid.UUID `gorm:"type:uuid" json:"order_id,omitempty"`
	ServiceRequestID *uuid.UUID `gorm:"type:uuid" json:"service_request_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice line
func (l *InvoiceLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceLine model
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}
