package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/pkg/pagination"
)

// AuditRepository defines the interface for audit trail operations
type AuditRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, params *AuditFilterParams) ([]entity.AuditLog, int64, error)
}

// AuditFilterParams contains filtering parameters for audit log queries
type AuditFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Action     string
	StartDate  *time.Time
	EndDate    *time.Time
}
