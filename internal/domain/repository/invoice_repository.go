package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*entity.Invoice, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination    *pagination.PaginationParams
	Status        *enum.InvoiceStatus
	ReservationID *uuid.UUID
}

// InvoiceLineRepository defines the interface for invoice line data operations
type InvoiceLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.InvoiceLine) error
	GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceLine, error)
	DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error
}
