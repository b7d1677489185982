package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetOpenByReservationAndVenue returns the order new items append to: the
	// newest non-terminal order for the pair, or nil when none exists.
	GetOpenByReservationAndVenue(ctx context.Context, reservationID uuid.UUID, venue enum.Venue) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Status        *enum.OrderStatus
	Venue         *enum.Venue
	ReservationID *uuid.UUID
}

// OrderItemRepository defines the interface for order line data operations
type OrderItemRepository interface {
	Create(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error)
	Update(ctx context.Context, item *entity.OrderItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
