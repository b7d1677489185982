package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"gorm.io/gorm"
)

// PaymentService owns the append-only payment ledger. The invoice's
// AmountPaid only ever moves together with a ledger row, inside one
// transaction.
type PaymentService struct {
	db          *gorm.DB
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(db *gorm.DB, paymentRepo repository.PaymentRepository, invoiceRepo repository.InvoiceRepository) *PaymentService {
	return &PaymentService{db: db, paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	InvoiceID uuid.UUID
	Amount    float64
	Method    string
	PaidAt    *time.Time
}

// Record adds a payment and bumps the invoice's paid total atomically
func (s *PaymentService) Record(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	var fieldErrs []apperror.FieldError
	if input.Amount <= 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "amount", Message: "amount must be positive"})
	}
	if input.Method == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "method", Message: "payment method is required"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewFieldValidationError(fieldErrs)
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.Status == enum.InvoiceStatusPaid {
		return nil, apperror.NewStateConflictError("record payment", string(invoice.Status))
	}

	payment := &entity.Payment{
		InvoiceID: input.InvoiceID,
		Amount:    input.Amount,
		Method:    input.Method,
	}
	if input.PaidAt != nil {
		payment.PaidAt = *input.PaidAt
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Invoice{}).
			Where("id = ?", input.InvoiceID).
			Update("amount_paid", gorm.Expr("amount_paid + ?", input.Amount)).Error
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete voids a payment: the ledger row is soft-deleted and the invoice's
// paid total drops by the same amount, in one transaction. The row stays
// recoverable for the audit trail.
func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, payment.InvoiceID)
	if err != nil {
		return err
	}
	if invoice != nil && invoice.Status == enum.InvoiceStatusPaid {
		return apperror.NewStateConflictError("void payment", string(invoice.Status))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Payment{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Invoice{}).
			Where("id = ?", payment.InvoiceID).
			Update("amount_paid", gorm.Expr("amount_paid - ?", payment.Amount)).Error
	})
}

// ListByInvoice returns a stay's payments, newest first
func (s *PaymentService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}

// List returns the cash journal with filtering
func (s *PaymentService) List(ctx context.Context, params *repository.PaymentFilterParams) ([]entity.Payment, int64, error) {
	return s.paymentRepo.List(ctx, params)
}
