package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
)

// ServiceOfferingRepository defines the interface for service catalog operations
type ServiceOfferingRepository interface {
	Create(ctx context.Context, offering *entity.ServiceOffering) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOffering, error)
	Update(ctx context.Context, offering *entity.ServiceOffering) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.ServiceOffering, error)
}

// ServiceRequestRepository defines the interface for service request operations
type ServiceRequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error)
	Update(ctx context.Context, request *entity.ServiceRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ServiceRequestStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]entity.ServiceRequest, error)
}
