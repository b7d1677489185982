package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/pkg/pagination"
)

// ReservationRepository defines the interface for reservation data operations
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	Update(ctx context.Context, reservation *entity.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ReservationFilterParams) ([]entity.Reservation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReservationStatus) error
	// HasConflict reports whether another reservation in {reserved, checked_in}
	// holds the room over a window overlapping [arrival, departure). The
	// half-open comparison lets a stay begin the day another ends.
	HasConflict(ctx context.Context, roomID uuid.UUID, arrival, departure time.Time, excludeID *uuid.UUID) (bool, error)
	// CountArrivals returns reservations with arrival on the given day.
	CountArrivals(ctx context.Context, day time.Time) (int64, error)
	// CountDepartures returns checked-in reservations departing on the given day.
	CountDepartures(ctx context.Context, day time.Time) (int64, error)
}

// ReservationFilterParams contains filtering parameters for reservation queries
type ReservationFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.ReservationStatus
	ClientID   *uuid.UUID
	RoomID     *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
