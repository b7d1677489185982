package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
)

// ServiceOfferingService handles the ancillary service catalog
type ServiceOfferingService struct {
	offeringRepo repository.ServiceOfferingRepository
}

// NewServiceOfferingService creates a new service offering service
func NewServiceOfferingService(offeringRepo repository.ServiceOfferingRepository) *ServiceOfferingService {
	return &ServiceOfferingService{offeringRepo: offeringRepo}
}

// ServiceOfferingInput represents the create/update offering input
type ServiceOfferingInput struct {
	Name        string
	Description string
	Price       float64
	Active      bool
}

func (in *ServiceOfferingInput) validate() error {
	var fieldErrs []apperror.FieldError
	if in.Name == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if in.Price < 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "price", Message: "price cannot be negative"})
	}
	if len(fieldErrs) > 0 {
		return apperror.NewFieldValidationError(fieldErrs)
	}
	return nil
}

// Create adds a service to the catalog
func (s *ServiceOfferingService) Create(ctx context.Context, input *ServiceOfferingInput) (*entity.ServiceOffering, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	offering := &entity.ServiceOffering{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Active:      input.Active,
	}
	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

// Get retrieves a catalog entry by ID
func (s *ServiceOfferingService) Get(ctx context.Context, id uuid.UUID) (*entity.ServiceOffering, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return offering, nil
}

// Update changes a catalog entry. Existing requests keep their captured price.
func (s *ServiceOfferingService) Update(ctx context.Context, id uuid.UUID, input *ServiceOfferingInput) (*entity.ServiceOffering, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	offering.Name = input.Name
	offering.Description = input.Description
	offering.Price = input.Price
	offering.Active = input.Active

	if err := s.offeringRepo.Update(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

// Delete removes a catalog entry
func (s *ServiceOfferingService) Delete(ctx context.Context, id uuid.UUID) error {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if offering == nil {
		return apperror.NewNotFoundError("Service")
	}
	return s.offeringRepo.Delete(ctx, id)
}

// List returns the catalog, optionally active entries only
func (s *ServiceOfferingService) List(ctx context.Context, activeOnly bool) ([]entity.ServiceOffering, error) {
	return s.offeringRepo.List(ctx, activeOnly)
}
