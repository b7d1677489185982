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

func TestSettingsSaveValidatesRates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))

	_, err := svc.Save(context.Background(), &SettingsInput{
		Name:                "",
		AccommodationVAT:    1.5,
		RestaurantVAT:       0.18,
		TourismTaxPerPerson: -10,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Len(t, appErr.Errors, 3)
}

func TestSettingsRateChangeAppliesOnNextRefresh(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	settings := NewSettingsService(repository.NewSettingsRepository(db))
	billing := newBillingService(db)

	statement, err := billing.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	require.InDelta(t, 2000, statement.AccommodationTax, 0.001)

	_, err = settings.Save(context.Background(), &SettingsInput{
		Name:                "Test Hotel",
		AccommodationVAT:    0.20,
		RestaurantVAT:       0.18,
		TourismTaxPerPerson: 250,
	})
	require.NoError(t, err)

	statement, err = billing.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4000, statement.AccommodationTax, 0.001)
	assert.InDelta(t, 0.20, statement.AccommodationVAT, 0.001)
}
