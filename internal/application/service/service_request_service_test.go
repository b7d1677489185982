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

func newServiceRequestService(db *gorm.DB) *ServiceRequestService {
	return NewServiceRequestService(
		repository.NewServiceRequestRepository(db),
		repository.NewServiceOfferingRepository(db),
		repository.NewReservationRepository(db),
	)
}

func TestServiceRequestCapturesPrice(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newServiceRequestService(db)

	offering := &entity.ServiceOffering{Name: "Airport shuttle", Price: 7500, Active: true}
	require.NoError(t, db.Create(offering).Error)

	request, err := svc.Create(context.Background(), stay.Reservation.ID, offering.ID, 2)
	require.NoError(t, err)
	assert.InDelta(t, 7500, request.UnitPrice, 0.001)
	assert.InDelta(t, 15000, request.Total(), 0.001)
	assert.Equal(t, enum.ServiceRequestStatusRequested, request.Status)

	require.NoError(t, db.Model(offering).Update("price", 9000).Error)
	var stored entity.ServiceRequest
	require.NoError(t, db.First(&stored, "id = ?", request.ID).Error)
	assert.InDelta(t, 7500, stored.UnitPrice, 0.001)
}

func TestServiceRequestRequiresCheckedIn(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusReserved)
	svc := newServiceRequestService(db)

	offering := &entity.ServiceOffering{Name: "Spa", Price: 5000, Active: true}
	require.NoError(t, db.Create(offering).Error)

	_, err := svc.Create(context.Background(), stay.Reservation.ID, offering.ID, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}

func TestServiceRequestDeleteDropsItFromBilling(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newServiceRequestService(db)
	billing := newBillingService(db)

	offering := &entity.ServiceOffering{Name: "Laundry", Price: 2000, Active: true}
	require.NoError(t, db.Create(offering).Error)

	request, err := svc.Create(context.Background(), stay.Reservation.ID, offering.ID, 1)
	require.NoError(t, err)

	statement, err := billing.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	require.InDelta(t, 2000, statement.ServicesHT, 0.001)

	require.NoError(t, svc.Delete(context.Background(), request.ID))

	statement, err = billing.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0, statement.ServicesHT, 0.001)
}

func TestServiceRequestStatusDoesNotAffectBilling(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newServiceRequestService(db)
	billing := newBillingService(db)

	offering := &entity.ServiceOffering{Name: "Room cleaning", Price: 3000, Active: true}
	require.NoError(t, db.Create(offering).Error)

	request, err := svc.Create(context.Background(), stay.Reservation.ID, offering.ID, 1)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), request.ID, enum.ServiceRequestStatusDone))

	statement, err := billing.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3000, statement.ServicesHT, 0.001)
}
