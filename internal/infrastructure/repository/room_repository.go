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

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) domainRepo.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).Preload("RoomType").First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) GetByNumber(ctx context.Context, number string) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).Preload("RoomType").First(&room, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Room{}, "id = ?", id).Error
}

func (r *roomRepository) List(ctx context.Context, params *domainRepo.RoomFilterParams) ([]entity.Room, error) {
	var rooms []entity.Room

	query := r.db.WithContext(ctx).Model(&entity.Room{}).Preload("RoomType")
	if params != nil {
		if params.Status != nil {
			query = query.Where("status = ?", *params.Status)
		}
		if params.RoomTypeID != nil {
			query = query.Where("room_type_id = ?", *params.RoomTypeID)
		}
	}

	err := query.Order("number ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) ListAvailable(ctx context.Context, arrival, departure time.Time) ([]entity.Room, error) {
	var rooms []entity.Room

	// Half-open [arrival, departure): a room freed on the departure day can
	// host a stay starting that same day.
	sub := r.db.Model(&entity.Reservation{}).
		Select("room_id").
		Where("status IN ?", []enum.ReservationStatus{enum.ReservationStatusReserved, enum.ReservationStatusCheckedIn}).
		Where("arrival_date < ? AND departure_date > ?", departure, arrival)

	err := r.db.WithContext(ctx).Model(&entity.Room{}).
		Preload("RoomType").
		Where("status <> ?", enum.RoomStatusMaintenance).
		Where("id NOT IN (?)", sub).
		Order("number ASC").
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *roomRepository) CountByStatus(ctx context.Context) (map[enum.RoomStatus]int64, error) {
	type row struct {
		Status enum.RoomStatus
		Count  int64
	}
	var rows []row

	err := r.db.WithContext(ctx).Model(&entity.Room{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.RoomStatus]int64, len(rows))
	for _, rr := range rows {
		counts[rr.Status] = rr.Count
	}
	return counts, nil
}

type roomTypeRepository struct {
	db *gorm.DB
}

// NewRoomTypeRepository creates a new room type repository
func NewRoomTypeRepository(db *gorm.DB) domainRepo.RoomTypeRepository {
	return &roomTypeRepository{db: db}
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	return r.db.WithContext(ctx).Create(roomType).Error
}

func (r *roomTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	var roomType entity.RoomType
	err := r.db.WithContext(ctx).First(&roomType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &roomType, err
}

func (r *roomTypeRepository) GetByName(ctx context.Context, name string) (*entity.RoomType, error) {
	var roomType entity.RoomType
	err := r.db.WithContext(ctx).First(&roomType, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &roomType, err
}

func (r *roomTypeRepository) Update(ctx context.Context, roomType *entity.RoomType) error {
	return r.db.WithContext(ctx).Save(roomType).Error
}

func (r *roomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.RoomType{}, "id = ?", id).Error
}

func (r *roomTypeRepository) List(ctx context.Context) ([]entity.RoomType, error) {
	var roomTypes []entity.RoomType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&roomTypes).Error
	return roomTypes, err
}

func (r *roomTypeRepository) CountRooms(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Room{}).
		Where("room_type_id = ?", id).
		Count(&count).Error
	return count, err
}
