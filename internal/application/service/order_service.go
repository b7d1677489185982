package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
)

// OrderService handles restaurant, bar and room-service orders
type OrderService struct {
	orderRepo       repository.OrderRepository
	orderItemRepo   repository.OrderItemRepository
	productRepo     repository.ProductRepository
	reservationRepo repository.ReservationRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	reservationRepo repository.ReservationRepository,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		orderItemRepo:   orderItemRepo,
		productRepo:     productRepo,
		reservationRepo: reservationRepo,
	}
}

// GetOrCreateOpenOrder returns the open order for the reservation and venue,
// creating one when none exists. Only checked-in guests can order.
func (s *OrderService) GetOrCreateOpenOrder(ctx context.Context, reservationID uuid.UUID, venue enum.Venue, enteredByID *uuid.UUID) (*entity.Order, error) {
	if !venue.IsValid() {
		return nil, apperror.NewValidationError("unknown venue")
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}
	if reservation.Status != enum.ReservationStatusCheckedIn {
		return nil, apperror.NewStateConflictError("place order", string(reservation.Status))
	}

	order, err := s.orderRepo.GetOpenByReservationAndVenue(ctx, reservationID, venue)
	if err != nil {
		return nil, err
	}
	if order != nil {
		return order, nil
	}

	order = &entity.Order{
		ReservationID: reservationID,
		Venue:         venue,
		EnteredByID:   enteredByID,
		Status:        enum.OrderStatusPlaced,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// AddItem appends a product line to an order, capturing the catalog price at
// this moment. Later price edits never reach existing lines.
func (s *OrderService) AddItem(ctx context.Context, orderID, productID uuid.UUID, quantity int) (*entity.OrderItem, error) {
	if quantity < 1 {
		return nil, apperror.NewValidationError("quantity must be positive")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled || order.Status == enum.OrderStatusDelivered {
		return nil, apperror.NewStateConflictError("add item", string(order.Status))
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if !product.Available {
		return nil, apperror.NewBadRequestError("Product is not available")
	}

	item := &entity.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	}
	if err := s.orderItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes a line from a still-open order
func (s *OrderService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.orderItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Order item")
	}

	order, err := s.orderRepo.GetByID(ctx, item.OrderID)
	if err != nil {
		return err
	}
	if order != nil && (order.Status == enum.OrderStatusCancelled || order.Status == enum.OrderStatusDelivered) {
		return apperror.NewStateConflictError("remove item", string(order.Status))
	}

	return s.orderItemRepo.Delete(ctx, itemID)
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListByReservation lists all orders of a stay with their items
func (s *OrderService) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]entity.Order, error) {
	return s.orderRepo.ListByReservation(ctx, reservationID)
}

// UpdateStatus moves an order through the kitchen flow. Cancelled orders keep
// their lines for the record but drop out of billing.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) error {
	if !status.IsValid() {
		return apperror.NewValidationError("unknown order status")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return apperror.NewStateConflictError("update order status", string(order.Status))
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}
