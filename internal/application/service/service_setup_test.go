package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated in-memory database migrated for all entities.
// The connection pool is pinned to one connection so the shared-cache memory
// database survives for the whole test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.RoomType{},
		&entity.Room{},
		&entity.Client{},
		&entity.User{},
		&entity.Reservation{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.ServiceOffering{},
		&entity.ServiceRequest{},
		&entity.Invoice{},
		&entity.InvoiceLine{},
		&entity.Payment{},
		&entity.HotelSetting{},
		&entity.AuditLog{},
		&entity.Issue{},
		&entity.IdempotencyKey{},
	))

	require.NoError(t, db.Create(&entity.HotelSetting{
		Name:                "Test Hotel",
		AccommodationVAT:    0.10,
		RestaurantVAT:       0.18,
		TourismTaxPerPerson: 250,
	}).Error)

	return db
}

// stayFixture is a booked room with its guest, ready for billing scenarios.
type stayFixture struct {
	RoomType    *entity.RoomType
	Room        *entity.Room
	Client      *entity.Client
	Reservation *entity.Reservation
}

// createStay books a 2-night stay at 10,000/night for 2 adults. Status and
// dates can be adjusted by the caller before the scenario runs.
func createStay(t *testing.T, db *gorm.DB, status enum.ReservationStatus) *stayFixture {
	t.Helper()

	roomType := &entity.RoomType{Name: "Standard", NightlyRate: 10000}
	require.NoError(t, db.Create(roomType).Error)

	room := &entity.Room{Number: "101", RoomTypeID: roomType.ID, Status: enum.RoomStatusOccupied}
	require.NoError(t, db.Create(room).Error)

	client := &entity.Client{LastName: "Ouedraogo", FirstName: "Awa"}
	require.NoError(t, db.Create(client).Error)

	arrival := time.Now().AddDate(0, 0, -2)
	reservation := &entity.Reservation{
		ClientID:      client.ID,
		RoomID:        room.ID,
		ArrivalDate:   arrival,
		DepartureDate: arrival.AddDate(0, 0, 2),
		Adults:        2,
		Status:        status,
	}
	require.NoError(t, db.Create(reservation).Error)

	return &stayFixture{RoomType: roomType, Room: room, Client: client, Reservation: reservation}
}

// addOrder places a delivered restaurant order with a single line.
func addOrder(t *testing.T, db *gorm.DB, reservationID uuid.UUID, status enum.OrderStatus, unitPrice float64, quantity int) *entity.Order {
	t.Helper()

	product := &entity.Product{Name: "Plat du jour", Price: unitPrice, Available: true}
	require.NoError(t, db.Create(product).Error)

	order := &entity.Order{
		ReservationID: reservationID,
		Venue:         enum.VenueRestaurant,
		Status:        status,
	}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&entity.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}).Error)

	return order
}

// addServiceRequest books an ancillary service with a captured price.
func addServiceRequest(t *testing.T, db *gorm.DB, reservationID uuid.UUID, price float64, quantity int) *entity.ServiceRequest {
	t.Helper()

	offering := &entity.ServiceOffering{Name: "Laundry", Price: price, Active: true}
	require.NoError(t, db.Create(offering).Error)

	request := &entity.ServiceRequest{
		ReservationID: reservationID,
		ServiceID:     offering.ID,
		Quantity:      quantity,
		UnitPrice:     price,
		Status:        enum.ServiceRequestStatusRequested,
	}
	require.NoError(t, db.Create(request).Error)

	return request
}
