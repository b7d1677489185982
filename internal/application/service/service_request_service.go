package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
)

// ServiceRequestService handles ad-hoc billable services against a stay.
// Unlike orders, every non-deleted request is billable whatever its status;
// the status only tracks operational follow-up.
type ServiceRequestService struct {
	requestRepo     repository.ServiceRequestRepository
	offeringRepo    repository.ServiceOfferingRepository
	reservationRepo repository.ReservationRepository
}

// NewServiceRequestService creates a new service request service
func NewServiceRequestService(
	requestRepo repository.ServiceRequestRepository,
	offeringRepo repository.ServiceOfferingRepository,
	reservationRepo repository.ReservationRepository,
) *ServiceRequestService {
	return &ServiceRequestService{
		requestRepo:     requestRepo,
		offeringRepo:    offeringRepo,
		reservationRepo: reservationRepo,
	}
}

// Create books a service against a checked-in stay, capturing the catalog
// price at request time.
func (s *ServiceRequestService) Create(ctx context.Context, reservationID, serviceID uuid.UUID, quantity int) (*entity.ServiceRequest, error) {
	if quantity < 1 {
		return nil, apperror.NewValidationError("quantity must be positive")
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}
	if reservation.Status != enum.ReservationStatusCheckedIn {
		return nil, apperror.NewStateConflictError("request service", string(reservation.Status))
	}

	offering, err := s.offeringRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	if !offering.Active {
		return nil, apperror.NewBadRequestError("Service is not active")
	}

	request := &entity.ServiceRequest{
		ReservationID: reservationID,
		ServiceID:     serviceID,
		Quantity:      quantity,
		UnitPrice:     offering.Price,
		Status:        enum.ServiceRequestStatusRequested,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return s.requestRepo.GetByID(ctx, request.ID)
}

// UpdateStatus tracks fulfilment progress; billing is unaffected
func (s *ServiceRequestService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ServiceRequestStatus) error {
	if !status.IsValid() {
		return apperror.NewValidationError("unknown request status")
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request == nil {
		return apperror.NewNotFoundError("Service request")
	}

	return s.requestRepo.UpdateStatus(ctx, id, status)
}

// Delete removes a request from the bill (soft delete)
func (s *ServiceRequestService) Delete(ctx context.Context, id uuid.UUID) error {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request == nil {
		return apperror.NewNotFoundError("Service request")
	}

	return s.requestRepo.Delete(ctx, id)
}

// ListByReservation lists all service requests of a stay
func (s *ServiceRequestService) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]entity.ServiceRequest, error) {
	return s.requestRepo.ListByReservation(ctx, reservationID)
}
