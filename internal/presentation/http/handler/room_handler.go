package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/application/service"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/internal/presentation/http/dto/response"
)

// RoomHandler handles room and room-type HTTP requests
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// Create registers a room
func (h *RoomHandler) Create(c *gin.Context) {
	var req struct {
		Number     string    `json:"number" binding:"required"`
		RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), &service.CreateRoomInput{
		Number:     req.Number,
		RoomTypeID: req.RoomTypeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Room created successfully", room)
}

// Get retrieves a room
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room retrieved successfully", room)
}

// List lists rooms with filtering
func (h *RoomHandler) List(c *gin.Context) {
	params := &repository.RoomFilterParams{}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.RoomStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Unknown room status")
			return
		}
		params.Status = &status
	}
	if typeIDStr := c.Query("room_type_id"); typeIDStr != "" {
		if typeID, err := uuid.Parse(typeIDStr); err == nil {
			params.RoomTypeID = &typeID
		}
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Rooms retrieved successfully", rooms)
}

// SetStatus flips a room between free and maintenance
func (h *RoomHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	var req struct {
		Status enum.RoomStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.roomService.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room status updated successfully", nil)
}

// Delete removes a room
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateRoomType adds a room category
func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		NightlyRate float64 `json:"nightly_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	roomType, err := h.roomService.CreateRoomType(c.Request.Context(), &service.CreateRoomTypeInput{
		Name:        req.Name,
		Description: req.Description,
		NightlyRate: req.NightlyRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Room type created successfully", roomType)
}

// UpdateRoomType changes a room category
func (h *RoomHandler) UpdateRoomType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room type ID")
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		NightlyRate float64 `json:"nightly_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	roomType, err := h.roomService.UpdateRoomType(c.Request.Context(), id, &service.CreateRoomTypeInput{
		Name:        req.Name,
		Description: req.Description,
		NightlyRate: req.NightlyRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room type updated successfully", roomType)
}

// ListRoomTypes lists all room categories
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.roomService.ListRoomTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room types retrieved successfully", roomTypes)
}

// DeleteRoomType removes an unused room category
func (h *RoomHandler) DeleteRoomType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room type ID")
		return
	}

	if err := h.roomService.DeleteRoomType(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
