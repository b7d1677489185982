package service

import (
	"context"
	"testing"
	"time"

	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/infrastructure/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newReservationService(db *gorm.DB) *ReservationService {
	logger := zap.NewNop()
	return NewReservationService(
		db,
		repository.NewReservationRepository(db),
		repository.NewRoomRepository(db),
		repository.NewClientRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewSettingsRepository(db),
		newBillingService(db),
		NewAuditService(repository.NewAuditRepository(db), logger),
		nil,
		logger,
	)
}

func TestCreateReservationOccupiesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newReservationService(db)

	roomType := &entity.RoomType{Name: "Suite", NightlyRate: 25000}
	require.NoError(t, db.Create(roomType).Error)
	room := &entity.Room{Number: "201", RoomTypeID: roomType.ID, Status: enum.RoomStatusFree}
	require.NoError(t, db.Create(room).Error)
	client := &entity.Client{LastName: "Sawadogo"}
	require.NoError(t, db.Create(client).Error)

	arrival := time.Now().Add(24 * time.Hour)
	reservation, err := svc.Create(context.Background(), &CreateReservationInput{
		ClientID:      client.ID,
		RoomID:        room.ID,
		ArrivalDate:   arrival,
		DepartureDate: arrival.Add(72 * time.Hour),
		Adults:        2,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.ReservationStatusReserved, reservation.Status)
	assert.InDelta(t, 75000, reservation.EstimatedStay, 0.001) // 3 nights x 25,000

	var updated entity.Room
	require.NoError(t, db.First(&updated, "id = ?", room.ID).Error)
	assert.Equal(t, enum.RoomStatusOccupied, updated.Status)

	// The room left the free pool, so a second booking is refused outright.
	_, err = svc.Create(context.Background(), &CreateReservationInput{
		ClientID:      client.ID,
		RoomID:        room.ID,
		ArrivalDate:   arrival.Add(96 * time.Hour),
		DepartureDate: arrival.Add(120 * time.Hour),
		Adults:        1,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}

func TestCreateReservationRejectsInvertedDates(t *testing.T) {
	db := setupTestDB(t)
	svc := newReservationService(db)

	now := time.Now()
	_, err := svc.Create(context.Background(), &CreateReservationInput{
		ArrivalDate:   now.Add(48 * time.Hour),
		DepartureDate: now.Add(24 * time.Hour),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCheckConflictHalfOpenWindows(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusReserved)
	svc := newReservationService(db)

	existing := stay.Reservation

	// Overlapping window collides.
	conflict, err := svc.CheckConflict(context.Background(), stay.Room.ID,
		existing.ArrivalDate.Add(12*time.Hour), existing.DepartureDate.Add(12*time.Hour), nil)
	require.NoError(t, err)
	assert.True(t, conflict)

	// Back-to-back stays share a boundary instant without colliding.
	conflict, err = svc.CheckConflict(context.Background(), stay.Room.ID,
		existing.DepartureDate, existing.DepartureDate.Add(48*time.Hour), nil)
	require.NoError(t, err)
	assert.False(t, conflict)

	// A reservation never conflicts with itself.
	conflict, err = svc.CheckConflict(context.Background(), stay.Room.ID,
		existing.ArrivalDate, existing.DepartureDate, &existing.ID)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestCheckInOnlyFromReserved(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusReserved)
	svc := newReservationService(db)

	reservation, err := svc.CheckIn(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ReservationStatusCheckedIn, reservation.Status)

	_, err = svc.CheckIn(context.Background(), stay.Reservation.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}

func TestCancelFreesRoom(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusReserved)
	svc := newReservationService(db)

	require.NoError(t, svc.Cancel(context.Background(), stay.Reservation.ID))

	var reservation entity.Reservation
	require.NoError(t, db.First(&reservation, "id = ?", stay.Reservation.ID).Error)
	assert.Equal(t, enum.ReservationStatusCancelled, reservation.Status)

	var room entity.Room
	require.NoError(t, db.First(&room, "id = ?", stay.Room.ID).Error)
	assert.Equal(t, enum.RoomStatusFree, room.Status)

	// A cancelled stay cannot be cancelled twice.
	err := svc.Cancel(context.Background(), stay.Reservation.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}

func TestCheckoutBlockedUntilSettled(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newReservationService(db)
	payments := NewPaymentService(db, repository.NewPaymentRepository(db), repository.NewInvoiceRepository(db))

	statement, err := svc.billing.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	require.InDelta(t, 23000, statement.TotalTTC, 0.001)

	_, err = payments.Record(context.Background(), &RecordPaymentInput{
		InvoiceID: statement.Invoice.ID,
		Amount:    20000,
		Method:    "cash",
	})
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), stay.Reservation.ID, nil)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.KindPaymentIncomplete, appErr.Kind)
	assert.InDelta(t, 3000, appErr.Shortfall, 0.001)

	// The refused checkout must not have moved anything.
	var reservation entity.Reservation
	require.NoError(t, db.First(&reservation, "id = ?", stay.Reservation.ID).Error)
	assert.Equal(t, enum.ReservationStatusCheckedIn, reservation.Status)

	_, err = payments.Record(context.Background(), &RecordPaymentInput{
		InvoiceID: statement.Invoice.ID,
		Amount:    3000,
		Method:    "card",
	})
	require.NoError(t, err)

	settled, err := svc.Checkout(context.Background(), stay.Reservation.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, settled.Invoice.Status)

	require.NoError(t, db.First(&reservation, "id = ?", stay.Reservation.ID).Error)
	assert.Equal(t, enum.ReservationStatusCheckedOut, reservation.Status)
	assert.WithinDuration(t, time.Now(), reservation.DepartureDate, 5*time.Second)

	var room entity.Room
	require.NoError(t, db.First(&room, "id = ?", stay.Room.ID).Error)
	assert.Equal(t, enum.RoomStatusFree, room.Status)
}

func TestCheckoutRequiresCheckedIn(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusReserved)
	svc := newReservationService(db)

	_, err := svc.Checkout(context.Background(), stay.Reservation.ID, nil)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}
