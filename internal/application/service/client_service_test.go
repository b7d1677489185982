package service

import (
	"context"
	"testing"

	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/infrastructure/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateRequiresLastName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(repository.NewClientRepository(db))

	_, err := svc.Create(context.Background(), &ClientInput{FirstName: "Issa"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestClientDeleteGuardedByActiveStay(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := NewClientService(repository.NewClientRepository(db))

	err := svc.Delete(context.Background(), stay.Client.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	// Once the stay is over the guest record can go.
	require.NoError(t, db.Model(stay.Reservation).Update("status", enum.ReservationStatusCheckedOut).Error)
	require.NoError(t, svc.Delete(context.Background(), stay.Client.ID))

	_, err = svc.Get(context.Background(), stay.Client.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestClientUpdatePatchesFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(repository.NewClientRepository(db))

	created, err := svc.Create(context.Background(), &ClientInput{LastName: "Zongo", FirstName: "Karim"})
	require.NoError(t, err)

	phone := "+226 70 00 00 00"
	updated, err := svc.Update(context.Background(), created.ID, &ClientInput{
		LastName:  "Zongo",
		FirstName: "Karim",
		Phone:     &phone,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	assert.Equal(t, "Zongo Karim", updated.FullName())
}
