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

func newPaymentService(db *gorm.DB) *PaymentService {
	return NewPaymentService(db, repository.NewPaymentRepository(db), repository.NewInvoiceRepository(db))
}

func createDraftInvoice(t *testing.T, db *gorm.DB, total float64) *entity.Invoice {
	t.Helper()
	stay := createStay(t, db, enum.ReservationStatusCheckedIn)
	invoice := &entity.Invoice{
		ReservationID: stay.Reservation.ID,
		Status:        enum.InvoiceStatusDraft,
		TotalTTC:      total,
	}
	require.NoError(t, db.Create(invoice).Error)
	return invoice
}

func TestRecordPaymentBumpsPaidTotal(t *testing.T) {
	db := setupTestDB(t)
	invoice := createDraftInvoice(t, db, 23000)
	svc := newPaymentService(db)

	payment, err := svc.Record(context.Background(), &RecordPaymentInput{
		InvoiceID: invoice.ID,
		Amount:    15000,
		Method:    "cash",
	})
	require.NoError(t, err)
	assert.False(t, payment.PaidAt.IsZero())

	_, err = svc.Record(context.Background(), &RecordPaymentInput{
		InvoiceID: invoice.ID,
		Amount:    5000,
		Method:    "mobile_money",
	})
	require.NoError(t, err)

	var stored entity.Invoice
	require.NoError(t, db.First(&stored, "id = ?", invoice.ID).Error)
	assert.InDelta(t, 20000, stored.AmountPaid, 0.001)
	assert.InDelta(t, 3000, stored.Balance(), 0.001)
}

func TestRecordPaymentValidation(t *testing.T) {
	db := setupTestDB(t)
	invoice := createDraftInvoice(t, db, 23000)
	svc := newPaymentService(db)

	_, err := svc.Record(context.Background(), &RecordPaymentInput{
		InvoiceID: invoice.ID,
		Amount:    -100,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Len(t, appErr.Errors, 2) // amount and method both flagged
}

func TestRecordPaymentOnPaidInvoiceRefused(t *testing.T) {
	db := setupTestDB(t)
	invoice := createDraftInvoice(t, db, 23000)
	require.NoError(t, db.Model(invoice).Update("status", enum.InvoiceStatusPaid).Error)
	svc := newPaymentService(db)

	_, err := svc.Record(context.Background(), &RecordPaymentInput{
		InvoiceID: invoice.ID,
		Amount:    1000,
		Method:    "cash",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}

func TestVoidPaymentRestoresBalance(t *testing.T) {
	db := setupTestDB(t)
	invoice := createDraftInvoice(t, db, 23000)
	svc := newPaymentService(db)

	payment, err := svc.Record(context.Background(), &RecordPaymentInput{
		InvoiceID: invoice.ID,
		Amount:    10000,
		Method:    "cash",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), payment.ID))

	var stored entity.Invoice
	require.NoError(t, db.First(&stored, "id = ?", invoice.ID).Error)
	assert.InDelta(t, 0, stored.AmountPaid, 0.001)

	// Soft delete keeps the row for the record.
	var count int64
	require.NoError(t, db.Unscoped().Model(&entity.Payment{}).Where("id = ?", payment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	remaining, err := svc.ListByInvoice(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestVoidPaymentOnPaidInvoiceRefused(t *testing.T) {
	db := setupTestDB(t)
	invoice := createDraftInvoice(t, db, 23000)
	svc := newPaymentService(db)

	payment, err := svc.Record(context.Background(), &RecordPaymentInput{
		InvoiceID: invoice.ID,
		Amount:    23000,
		Method:    "card",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(invoice).Update("status", enum.InvoiceStatusPaid).Error)

	err = svc.Delete(context.Background(), payment.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStateConflict))
}
