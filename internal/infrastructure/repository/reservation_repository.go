package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	domainRepo "github.com/kabore/hotelier-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) domainRepo.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := r.db.WithContext(ctx).First(&reservation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reservation, err
}

func (r *reservationRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Room").
		Preload("Room.RoomType").
		First(&reservation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reservation, err
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Reservation{}, "id = ?", id).Error
}

func (r *reservationRepository) List(ctx context.Context, params *domainRepo.ReservationFilterParams) ([]entity.Reservation, int64, error) {
	var reservations []entity.Reservation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Reservation{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}
	if params.RoomID != nil {
		query = query.Where("room_id = ?", *params.RoomID)
	}
	if params.StartDate != nil {
		query = query.Where("arrival_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("arrival_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Client").
		Preload("Room").
		Order("arrival_date DESC").
		Find(&reservations).Error

	return reservations, total, err
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReservationStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *reservationRepository) HasConflict(ctx context.Context, roomID uuid.UUID, arrival, departure time.Time, excludeID *uuid.UUID) (bool, error) {
	var count int64

	query := r.db.WithContext(ctx).Model(&entity.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []enum.ReservationStatus{enum.ReservationStatusReserved, enum.ReservationStatusCheckedIn}).
		Where("arrival_date < ? AND departure_date > ?", departure, arrival)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}

func (r *reservationRepository) CountArrivals(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	err := r.db.WithContext(ctx).Model(&entity.Reservation{}).
		Where("arrival_date >= ? AND arrival_date < ?", start, end).
		Where("status IN ?", []enum.ReservationStatus{enum.ReservationStatusReserved, enum.ReservationStatusCheckedIn}).
		Count(&count).Error
	return count, err
}

func (r *reservationRepository) CountDepartures(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	err := r.db.WithContext(ctx).Model(&entity.Reservation{}).
		Where("departure_date >= ? AND departure_date < ?", start, end).
		Where("status = ?", enum.ReservationStatusCheckedIn).
		Count(&count).Error
	return count, err
}
