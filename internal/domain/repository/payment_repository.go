package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/pkg/pagination"
)

// PaymentRepository defines the interface for payment ledger operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error)
	List(ctx context.Context, params *PaymentFilterParams) ([]entity.Payment, int64, error)
	// SumSince totals non-deleted payments with paid_at >= since.
	SumSince(ctx context.Context, since time.Time) (float64, error)
}

// PaymentFilterParams contains filtering parameters for payment queries
type PaymentFilterParams struct {
	Pagination *pagination.PaginationParams
	InvoiceID  *uuid.UUID
	Method     string
	StartDate  *time.Time
	EndDate    *time.Time
}
