package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/pagination"
	"go.uber.org/zap"
)

// AuditService records who did what. Logging must never break the operation
// being logged, so Log swallows persistence errors.
type AuditService struct {
	auditRepo repository.AuditRepository
	logger    *zap.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{auditRepo: auditRepo, logger: logger}
}

// Log writes an audit entry. Failures are warned and dropped.
func (s *AuditService) Log(ctx context.Context, userID *uuid.UUID, action, details string) {
	entry := &entity.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Warn("audit log write failed",
			zap.String("action", action),
			zap.Error(err))
	}
}

// Recent returns the latest audit entries for the admin screen
func (s *AuditService) Recent(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	if limit < 1 {
		limit = 50
	}
	logs, _, err := s.auditRepo.List(ctx, &repository.AuditFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: limit},
	})
	return logs, err
}

// List returns audit entries with filtering
func (s *AuditService) List(ctx context.Context, params *repository.AuditFilterParams) ([]entity.AuditLog, int64, error) {
	return s.auditRepo.List(ctx, params)
}
