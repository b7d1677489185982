package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order groups consumption items for one reservation at one venue. The UI only
// ever creates orders through find-or-create, which keeps at most one open
// order per (reservation, venue) pair.
type Order struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ReservationID uuid.UUID        `gorm:"type:uuid;not null;index" json:"reservation_id"`
	Venue         enum.Venue       `gorm:"size:20;not null;index" json:"venue"`
	EnteredByID   *uuid.UUID       `gorm:"type:uuid;index" json:"entered_by_id,omitempty"`
	Status        enum.OrderStatus `gorm:"size:20;not null;default:'placed'" json:"status"`
	OrderedAt     time.Time        `gorm:"not null" json:"ordered_at"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	Reservation Reservation `gorm:"foreignKey:ReservationID" json:"-"`
	EnteredBy   *User       `gorm:"foreignKey:EnteredByID" json:"entered_by,omitempty"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID and stamps the order time
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.OrderedAt.IsZero() {
		o.OrderedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one consumed product line. UnitPrice is captured when the item
// is added and is immutable afterwards: later catalog price edits must not
// change historical invoices.
type OrderItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice float64        `gorm:"not null" json:"unit_price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// Total returns the line amount
func (oi *OrderItem) Total() float64 {
	return float64(oi.Quantity) * oi.UnitPrice
}
