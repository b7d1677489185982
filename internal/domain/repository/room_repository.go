package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
)

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	GetByNumber(ctx context.Context, number string) (*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *RoomFilterParams) ([]entity.Room, error)
	// ListAvailable returns rooms with no overlapping active reservation for
	// the half-open window [arrival, departure) and status != maintenance.
	ListAvailable(ctx context.Context, arrival, departure time.Time) ([]entity.Room, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus) error
	CountByStatus(ctx context.Context) (map[enum.RoomStatus]int64, error)
}

// RoomFilterParams contains filtering parameters for room queries
type RoomFilterParams struct {
	Status     *enum.RoomStatus
	RoomTypeID *uuid.UUID
}

// RoomTypeRepository defines the interface for room type data operations
type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	GetByName(ctx context.Context, name string) (*entity.RoomType, error)
	Update(ctx context.Context, roomType *entity.RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.RoomType, error)
	// CountRooms returns how many rooms reference the type, used to guard deletion.
	CountRooms(ctx context.Context, id uuid.UUID) (int64, error)
}
