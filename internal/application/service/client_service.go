package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"github.com/kabore/hotelier-api/pkg/pagination"
)

// ClientService handles the guest registry
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// ClientInput represents the create/update client input
type ClientInput struct {
	LastName   string
	FirstName  string
	Phone      *string
	Email      *string
	NationalID *string
	Address    *string
}

// Create registers a new guest
func (s *ClientService) Create(ctx context.Context, input *ClientInput) (*entity.Client, error) {
	if input.LastName == "" {
		return nil, apperror.NewValidationError("last name is required")
	}

	client := &entity.Client{
		LastName:   input.LastName,
		FirstName:  input.FirstName,
		Phone:      input.Phone,
		Email:      input.Email,
		NationalID: input.NationalID,
		Address:    input.Address,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Get retrieves a guest by ID
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// Update changes a guest's details
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, input *ClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	if input.LastName == "" {
		return nil, apperror.NewValidationError("last name is required")
	}

	client.LastName = input.LastName
	client.FirstName = input.FirstName
	client.Phone = input.Phone
	client.Email = input.Email
	client.NationalID = input.NationalID
	client.Address = input.Address

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a guest unless they still hold an active reservation
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}

	count, err := s.clientRepo.CountActiveReservations(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewConflictError("Client has active reservations")
	}

	return s.clientRepo.Delete(ctx, id)
}

// List searches guests with pagination
func (s *ClientService) List(ctx context.Context, params *repository.ClientFilterParams) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}
