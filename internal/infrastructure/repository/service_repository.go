package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	domainRepo "github.com/kabore/hotelier-api/internal/domain/repository"
	"gorm.io/gorm"
)

type serviceOfferingRepository struct {
	db *gorm.DB
}

// NewServiceOfferingRepository creates a new service offering repository
func NewServiceOfferingRepository(db *gorm.DB) domainRepo.ServiceOfferingRepository {
	return &serviceOfferingRepository{db: db}
}

func (r *serviceOfferingRepository) Create(ctx context.Context, offering *entity.ServiceOffering) error {
	return r.db.WithContext(ctx).Create(offering).Error
}

func (r *serviceOfferingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOffering, error) {
	var offering entity.ServiceOffering
	err := r.db.WithContext(ctx).First(&offering, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &offering, err
}

func (r *serviceOfferingRepository) Update(ctx context.Context, offering *entity.ServiceOffering) error {
	return r.db.WithContext(ctx).Save(offering).Error
}

func (r *serviceOfferingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ServiceOffering{}, "id = ?", id).Error
}

func (r *serviceOfferingRepository) List(ctx context.Context, activeOnly bool) ([]entity.ServiceOffering, error) {
	var offerings []entity.ServiceOffering

	query := r.db.WithContext(ctx).Model(&entity.ServiceOffering{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	err := query.Order("name ASC").Find(&offerings).Error
	return offerings, err
}

type serviceRequestRepository struct {
	db *gorm.DB
}

// NewServiceRequestRepository creates a new service request repository
func NewServiceRequestRepository(db *gorm.DB) domainRepo.ServiceRequestRepository {
	return &serviceRequestRepository{db: db}
}

func (r *serviceRequestRepository) Create(ctx context.Context, request *entity.ServiceRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error) {
	var request entity.ServiceRequest
	err := r.db.WithContext(ctx).Preload("Service").First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &request, err
}

func (r *serviceRequestRepository) Update(ctx context.Context, request *entity.ServiceRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *serviceRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ServiceRequestStatus) error {
	return r.db.WithContext(ctx).Model(&entity.ServiceRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *serviceRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ServiceRequest{}, "id = ?", id).Error
}

func (r *serviceRequestRepository) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Preload("Service").
		Order("requested_at ASC").
		Find(&requests).Error
	return requests, err
}
