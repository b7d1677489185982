package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
)

// RoomService handles the room and room-type registries
type RoomService struct {
	roomRepo     repository.RoomRepository
	roomTypeRepo repository.RoomTypeRepository
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repository.RoomRepository, roomTypeRepo repository.RoomTypeRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo, roomTypeRepo: roomTypeRepo}
}

// CreateRoomInput represents the create room input
type CreateRoomInput struct {
	Number     string
	RoomTypeID uuid.UUID
}

// CreateRoom registers a new room
func (s *RoomService) CreateRoom(ctx context.Context, input *CreateRoomInput) (*entity.Room, error) {
	if input.Number == "" {
		return nil, apperror.NewValidationError("room number is required")
	}

	existing, err := s.roomRepo.GetByNumber(ctx, input.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Room number already exists")
	}

	roomType, err := s.roomTypeRepo.GetByID(ctx, input.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, apperror.NewNotFoundError("Room type")
	}

	room := &entity.Room{
		Number:     input.Number,
		RoomTypeID: input.RoomTypeID,
		Status:     enum.RoomStatusFree,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return s.roomRepo.GetByID(ctx, room.ID)
}

// GetRoom retrieves a room by ID
func (s *RoomService) GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}
	return room, nil
}

// ListRooms lists rooms with filtering
func (s *RoomService) ListRooms(ctx context.Context, params *repository.RoomFilterParams) ([]entity.Room, error) {
	return s.roomRepo.List(ctx, params)
}

// AvailableBetween returns rooms bookable over the window
func (s *RoomService) AvailableBetween(ctx context.Context, arrival, departure time.Time) ([]entity.Room, error) {
	if !arrival.Before(departure) {
		return nil, apperror.NewValidationError("departure must be after arrival")
	}
	return s.roomRepo.ListAvailable(ctx, arrival, departure)
}

// SetStatus flips a room between free and maintenance. Occupied rooms are
// owned by their reservation and cannot be toggled by hand.
func (s *RoomService) SetStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus) error {
	if !status.IsValid() || status == enum.RoomStatusOccupied {
		return apperror.NewValidationError("status must be free or maintenance")
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if room == nil {
		return apperror.NewNotFoundError("Room")
	}
	if room.Status == enum.RoomStatusOccupied {
		return apperror.NewStateConflictError("set room status", string(room.Status))
	}

	return s.roomRepo.UpdateStatus(ctx, id, status)
}

// DeleteRoom removes a room from the registry
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if room == nil {
		return apperror.NewNotFoundError("Room")
	}
	if room.Status == enum.RoomStatusOccupied {
		return apperror.NewStateConflictError("delete room", string(room.Status))
	}

	return s.roomRepo.Delete(ctx, id)
}

// CreateRoomTypeInput represents the create room type input
type CreateRoomTypeInput struct {
	Name        string
	Description string
	NightlyRate float64
}

// CreateRoomType adds a new room category
func (s *RoomService) CreateRoomType(ctx context.Context, input *CreateRoomTypeInput) (*entity.RoomType, error) {
	var fieldErrs []apperror.FieldError
	if input.Name == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.NightlyRate < 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "nightly_rate", Message: "nightly rate cannot be negative"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewFieldValidationError(fieldErrs)
	}

	existing, err := s.roomTypeRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Room type already exists")
	}

	roomType := &entity.RoomType{
		Name:        input.Name,
		Description: input.Description,
		NightlyRate: input.NightlyRate,
	}
	if err := s.roomTypeRepo.Create(ctx, roomType); err != nil {
		return nil, err
	}
	return roomType, nil
}

// UpdateRoomType changes a room category. Rate changes affect future
// recomputes of open invoices, never settled ones.
func (s *RoomService) UpdateRoomType(ctx context.Context, id uuid.UUID, input *CreateRoomTypeInput) (*entity.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, apperror.NewNotFoundError("Room type")
	}
	if input.NightlyRate < 0 {
		return nil, apperror.NewValidationError("nightly rate cannot be negative")
	}

	if input.Name != "" {
		roomType.Name = input.Name
	}
	roomType.Description = input.Description
	roomType.NightlyRate = input.NightlyRate

	if err := s.roomTypeRepo.Update(ctx, roomType); err != nil {
		return nil, err
	}
	return roomType, nil
}

// ListRoomTypes lists all room categories
func (s *RoomService) ListRoomTypes(ctx context.Context) ([]entity.RoomType, error) {
	return s.roomTypeRepo.List(ctx)
}

// DeleteRoomType removes an unused room category
func (s *RoomService) DeleteRoomType(ctx context.Context, id uuid.UUID) error {
	roomType, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if roomType == nil {
		return apperror.NewNotFoundError("Room type")
	}

	count, err := s.roomTypeRepo.CountRooms(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewConflictError("Room type is still in use")
	}

	return s.roomTypeRepo.Delete(ctx, id)
}
