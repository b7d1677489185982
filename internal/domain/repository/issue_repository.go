package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
)

// IssueRepository defines the interface for maintenance issue operations
type IssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Issue, error)
	Update(ctx context.Context, issue *entity.Issue) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *IssueFilterParams) ([]entity.Issue, error)
	CountOpen(ctx context.Context) (int64, error)
}

// IssueFilterParams contains filtering parameters for issue queries
type IssueFilterParams struct {
	Status *enum.IssueStatus
	RoomID *uuid.UUID
}
