package service

import (
	"context"
	"testing"

	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/infrastructure/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
		repository.NewProductRepository(db),
		repository.NewReservationRepository(db),
	)
}

func TestGetOrCreateOpenOrderReusesOpenOrder(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newOrderService(db)

	first, err := svc.GetOrCreateOpenOrder(context.Background(), stay.Reservation.ID, enum.VenueBar, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPlaced, first.Status)

	second, err := svc.GetOrCreateOpenOrder(context.Background(), stay.Reservation.ID, enum.VenueBar, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// A different venue gets its own tab.
	restaurant, err := svc.GetOrCreateOpenOrder(context.Background(), stay.Reservation.ID, enum.VenueRestaurant, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, restaurant.ID)
}

func TestGetOrCreateOpenOrderRequiresCheckedIn(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusReserved)
	svc := newOrderService(db)

	_, err := svc.GetOrCreateOpenOrder(context.Background(), stay.Reservation.ID, enum.VenueRestaurant, nil)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}

func TestAddItemCapturesCatalogPrice(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newOrderService(db)

	product := &entity.Product{Name: "Brakina", Category: "drink", Price: 800, Available: true}
	require.NoError(t, db.Create(product).Error)

	order, err := svc.GetOrCreateOpenOrder(context.Background(), stay.Reservation.ID, enum.VenueBar, nil)
	require.NoError(t, err)

	item, err := svc.AddItem(context.Background(), order.ID, product.ID, 3)
	require.NoError(t, err)
	assert.InDelta(t, 800, item.UnitPrice, 0.001)
	assert.InDelta(t, 2400, item.Total(), 0.001)

	// A later price change never reaches an existing line.
	require.NoError(t, db.Model(product).Update("price", 1000).Error)
	var stored entity.OrderItem
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.InDelta(t, 800, stored.UnitPrice, 0.001)
}

func TestAddItemRefusedOnClosedOrder(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newOrderService(db)

	product := &entity.Product{Name: "Espresso", Price: 500, Available: true}
	require.NoError(t, db.Create(product).Error)

	order, err := svc.GetOrCreateOpenOrder(context.Background(), stay.Reservation.ID, enum.VenueRestaurant, nil)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, enum.OrderStatusDelivered))

	_, err = svc.AddItem(context.Background(), order.ID, product.ID, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}

func TestAddItemRefusesUnavailableProduct(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newOrderService(db)

	product := &entity.Product{Name: "Out of stock", Price: 500, Available: false}
	require.NoError(t, db.Create(product).Error)

	order, err := svc.GetOrCreateOpenOrder(context.Background(), stay.Reservation.ID, enum.VenueRestaurant, nil)
	require.NoError(t, err)

	_, err = svc.AddItem(context.Background(), order.ID, product.ID, 1)
	require.Error(t, err)
}

func TestRemoveItemFromOpenOrder(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newOrderService(db)

	product := &entity.Product{Name: "Salade", Price: 1500, Available: true}
	require.NoError(t, db.Create(product).Error)

	order, err := svc.GetOrCreateOpenOrder(context.Background(), stay.Reservation.ID, enum.VenueRestaurant, nil)
	require.NoError(t, err)
	item, err := svc.AddItem(context.Background(), order.ID, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(context.Background(), item.ID))

	fetched, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Items)
}

func TestUpdateStatusCancelledIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newOrderService(db)

	order, err := svc.GetOrCreateOpenOrder(context.Background(), stay.Reservation.ID, enum.VenueRoomService, nil)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, enum.OrderStatusCancelled))

	err = svc.UpdateStatus(context.Background(), order.ID, enum.OrderStatusPlaced)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}
