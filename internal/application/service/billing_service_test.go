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

func newBillingService(db *gorm.DB) *BillingService {
	return NewBillingService(
		db,
		repository.NewReservationRepository(db),
		repository.NewOrderRepository(db),
		repository.NewServiceRequestRepository(db),
		repository.NewInvoiceRepository(db),
		repository.NewSettingsRepository(db),
	)
}

func countLines(t *testing.T, db *gorm.DB, invoiceID interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entity.InvoiceLine{}).Where("invoice_id = ?", invoiceID).Count(&n).Error)
	return n
}

func TestBillingRefreshAccommodationOnly(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newBillingService(db)

	statement, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)

	// Arrived two calendar dates ago at 10,000/night: 2 nights.
	assert.Equal(t, 2, statement.Nights)
	assert.InDelta(t, 10000, statement.NightlyRate, 0.001)
	assert.InDelta(t, 20000, statement.AccommodationHT, 0.001)
	assert.InDelta(t, 2000, statement.AccommodationTax, 0.001)
	assert.InDelta(t, 0, statement.ConsumptionHT, 0.001)
	assert.InDelta(t, 0, statement.ServicesHT, 0.001)
	// 2 adults x 2 nights x 250
	assert.InDelta(t, 1000, statement.TourismTax, 0.001)
	assert.InDelta(t, 23000, statement.TotalTTC, 0.001)
	assert.InDelta(t, 23000, statement.Balance, 0.001)

	assert.Equal(t, enum.InvoiceStatusDraft, statement.Invoice.Status)
	assert.EqualValues(t, 2, countLines(t, db, statement.Invoice.ID)) // accommodation + tourism tax
}

func TestBillingRefreshFullStatement(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	addOrder(t, db, stay.Reservation.ID, enum.OrderStatusDelivered, 1500, 2)
	addServiceRequest(t, db, stay.Reservation.ID, 2000, 1)
	svc := newBillingService(db)

	statement, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)

	assert.InDelta(t, 3000, statement.ConsumptionHT, 0.001)
	assert.InDelta(t, 540, statement.ConsumptionTax, 0.001) // restaurant VAT 18%
	assert.InDelta(t, 2000, statement.ServicesHT, 0.001)
	assert.InDelta(t, 200, statement.ServicesTax, 0.001) // taxed at the accommodation rate
	assert.InDelta(t, 25000, statement.TotalHT, 0.001)
	assert.InDelta(t, 2740, statement.TotalTax, 0.001)
	assert.InDelta(t, 28740, statement.TotalTTC, 0.001)

	var lines []entity.InvoiceLine
	require.NoError(t, db.Where("invoice_id = ?", statement.Invoice.ID).Order("description").Find(&lines).Error)
	require.Len(t, lines, 4)

	byDescription := map[string]entity.InvoiceLine{}
	for _, line := range lines {
		byDescription[line.Description] = line
	}
	assert.Equal(t, 2, byDescription["Accommodation"].Quantity)
	assert.InDelta(t, 3000, byDescription["Restaurant and bar"].AmountHT, 0.001)
	laundry, ok := byDescription["Laundry"]
	require.True(t, ok)
	assert.NotNil(t, laundry.ServiceRequestID)
	assert.InDelta(t, 1000, byDescription["Tourism tax"].AmountTTC, 0.001)
}

func TestBillingRefreshSkipsCancelledOrders(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	addOrder(t, db, stay.Reservation.ID, enum.OrderStatusCancelled, 5000, 1)
	svc := newBillingService(db)

	statement, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)

	assert.InDelta(t, 0, statement.ConsumptionHT, 0.001)
	assert.InDelta(t, 23000, statement.TotalTTC, 0.001)
}

func TestBillingRefreshIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	addOrder(t, db, stay.Reservation.ID, enum.OrderStatusDelivered, 1500, 2)
	svc := newBillingService(db)

	first, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	second, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Invoice.ID, second.Invoice.ID)
	assert.InDelta(t, 26540, first.TotalTTC, 0.001) // 23,000 + 3,000 consumption + 540 VAT
	assert.InDelta(t, first.TotalTTC, second.TotalTTC, 0.001)
	// Lines are regenerated, not appended.
	assert.EqualValues(t, 3, countLines(t, db, second.Invoice.ID))
}

func TestBillingRefreshPreservesAmountPaid(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newBillingService(db)

	statement, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)

	payments := NewPaymentService(db, repository.NewPaymentRepository(db), repository.NewInvoiceRepository(db))
	_, err = payments.Record(context.Background(), &RecordPaymentInput{
		InvoiceID: statement.Invoice.ID,
		Amount:    5000,
		Method:    "cash",
	})
	require.NoError(t, err)

	statement, err = svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5000, statement.AmountPaid, 0.001)
	assert.InDelta(t, 18000, statement.Balance, 0.001)
}

func TestBillingRefreshLeavesPaidInvoiceUntouched(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newBillingService(db)

	statement, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.Invoice{}).
		Where("id = ?", statement.Invoice.ID).
		Update("status", enum.InvoiceStatusPaid).Error)

	// Late charges must not reopen a settled invoice.
	addOrder(t, db, stay.Reservation.ID, enum.OrderStatusDelivered, 9999, 1)

	refreshed, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, refreshed.Invoice.Status)
	assert.InDelta(t, 23000, refreshed.Invoice.TotalTTC, 0.001)
	assert.EqualValues(t, 2, countLines(t, db, refreshed.Invoice.ID))
}

func TestBillingRefreshFailsWhenRoomIsGone(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newBillingService(db)

	// A sync pull can apply a remote room deletion under an active stay.
	// Billing must fail instead of pricing the accommodation at zero.
	require.NoError(t, db.Delete(&entity.Room{}, "id = ?", stay.Room.ID).Error)

	_, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	var count int64
	require.NoError(t, db.Model(&entity.Invoice{}).
		Where("reservation_id = ?", stay.Reservation.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count) // no zero-rate draft was persisted
}

func TestFrozenStatementBreakdownMatchesStoredTotals(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	svc := newBillingService(db)

	statement, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.Invoice{}).
		Where("id = ?", statement.Invoice.ID).
		Update("status", enum.InvoiceStatusPaid).Error)

	// A late charge after settlement must not leak into the breakdown.
	addOrder(t, db, stay.Reservation.ID, enum.OrderStatusDelivered, 9999, 1)

	frozen, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, frozen.Nights)
	assert.InDelta(t, 10000, frozen.NightlyRate, 0.001)
	assert.InDelta(t, 20000, frozen.AccommodationHT, 0.001)
	assert.InDelta(t, 0, frozen.ConsumptionHT, 0.001)
	assert.InDelta(t, 1000, frozen.TourismTax, 0.001)

	sum := frozen.AccommodationHT + frozen.ConsumptionHT + frozen.ServicesHT +
		frozen.AccommodationTax + frozen.ConsumptionTax + frozen.ServicesTax +
		frozen.TourismTax
	assert.InDelta(t, frozen.TotalTTC, sum, 0.001)
	assert.InDelta(t, 23000, frozen.TotalTTC, 0.001)
}

func TestBillingRefreshRejectsCancelledReservation(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusCancelled)
	svc := newBillingService(db)

	_, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}

func TestBillingRefreshUsesPlannedDepartureBeforeCheckIn(t *testing.T) {
	db := setupTestDB(t)
	stay := createStay(t, db, enum.ReservationStatusReserved)
	svc := newBillingService(db)

	statement, err := svc.Refresh(context.Background(), stay.Reservation.ID)
	require.NoError(t, err)

	// Two calendar dates between arrival and planned departure: 2 nights.
	assert.Equal(t, 2, statement.Nights)
	assert.InDelta(t, 20000, statement.AccommodationHT, 0.001)
}
