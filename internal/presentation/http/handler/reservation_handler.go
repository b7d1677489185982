package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/application/service"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/internal/presentation/http/dto/response"
	"github.com/kabore/hotelier-api/pkg/pagination"
)

const dateLayout = "2006-01-02"

// ReservationHandler handles reservation lifecycle HTTP requests
type ReservationHandler struct {
	reservationService *service.ReservationService
	billingService     *service.BillingService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *service.ReservationService, billingService *service.BillingService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService, billingService: billingService}
}

// Create books a room for a guest
func (h *ReservationHandler) Create(c *gin.Context) {
	var req struct {
		ClientID      uuid.UUID `json:"client_id" binding:"required"`
		RoomID        uuid.UUID `json:"room_id" binding:"required"`
		ArrivalDate   string    `json:"arrival_date" binding:"required"`
		DepartureDate string    `json:"departure_date" binding:"required"`
		Adults        int       `json:"adults"`
		Children      int       `json:"children"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	arrival, err := time.Parse(dateLayout, req.ArrivalDate)
	if err != nil {
		response.BadRequest(c, "arrival_date must be YYYY-MM-DD")
		return
	}
	departure, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		response.BadRequest(c, "departure_date must be YYYY-MM-DD")
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), &service.CreateReservationInput{
		ClientID:      req.ClientID,
		RoomID:        req.RoomID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Adults:        req.Adults,
		Children:      req.Children,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Reservation created successfully", reservation)
}

// Get retrieves a reservation
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	reservation, err := h.reservationService.GetReservation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reservation retrieved successfully", reservation)
}

// List lists reservations with filtering
func (h *ReservationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &repository.ReservationFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.ReservationStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Unknown reservation status")
			return
		}
		params.Status = &status
	}
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		if clientID, err := uuid.Parse(clientIDStr); err == nil {
			params.ClientID = &clientID
		}
	}
	if roomIDStr := c.Query("room_id"); roomIDStr != "" {
		if roomID, err := uuid.Parse(roomIDStr); err == nil {
			params.RoomID = &roomID
		}
	}
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse(dateLayout, fromStr); err == nil {
			params.StartDate = &from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse(dateLayout, toStr); err == nil {
			params.EndDate = &to
		}
	}

	result, err := h.reservationService.ListReservations(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Reservations retrieved successfully", result)
}

// Update patches a reservation (dates, room, headcount)
func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	var req struct {
		RoomID        *uuid.UUID `json:"room_id"`
		ArrivalDate   *string    `json:"arrival_date"`
		DepartureDate *string    `json:"departure_date"`
		Adults        *int       `json:"adults"`
		Children      *int       `json:"children"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateReservationInput{
		RoomID:   req.RoomID,
		Adults:   req.Adults,
		Children: req.Children,
	}
	if req.ArrivalDate != nil {
		arrival, err := time.Parse(dateLayout, *req.ArrivalDate)
		if err != nil {
			response.BadRequest(c, "arrival_date must be YYYY-MM-DD")
			return
		}
		input.ArrivalDate = &arrival
	}
	if req.DepartureDate != nil {
		departure, err := time.Parse(dateLayout, *req.DepartureDate)
		if err != nil {
			response.BadRequest(c, "departure_date must be YYYY-MM-DD")
			return
		}
		input.DepartureDate = &departure
	}

	reservation, err := h.reservationService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reservation updated successfully", reservation)
}

// CheckIn marks the guest as arrived
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	reservation, err := h.reservationService.CheckIn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest checked in successfully", reservation)
}

// Cancel cancels a reservation that has not started
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reservation cancelled successfully", nil)
}

// Checkout settles the stay: the invoice must be paid in full
func (h *ReservationHandler) Checkout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	statement, err := h.reservationService.Checkout(c.Request.Context(), id, GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest checked out successfully", statement)
}

// Billing recomputes and returns the reservation's invoice breakdown
func (h *ReservationHandler) Billing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	statement, err := h.billingService.Refresh(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing statement retrieved successfully", statement)
}

// Availability lists rooms free over a window
func (h *ReservationHandler) Availability(c *gin.Context) {
	arrival, err := time.Parse(dateLayout, c.Query("arrival"))
	if err != nil {
		response.BadRequest(c, "arrival must be YYYY-MM-DD")
		return
	}
	departure, err := time.Parse(dateLayout, c.Query("departure"))
	if err != nil {
		response.BadRequest(c, "departure must be YYYY-MM-DD")
		return
	}

	rooms, err := h.reservationService.AvailableRooms(c.Request.Context(), arrival, departure)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Available rooms retrieved successfully", rooms)
}

// Conflict checks whether a room is taken over a window, excluding the
// reservation itself so date edits can be validated before saving.
func (h *ReservationHandler) Conflict(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}
	roomID, err := uuid.Parse(c.Query("room_id"))
	if err != nil {
		response.BadRequest(c, "room_id is required")
		return
	}
	arrival, err := time.Parse(dateLayout, c.Query("arrival"))
	if err != nil {
		response.BadRequest(c, "arrival must be YYYY-MM-DD")
		return
	}
	departure, err := time.Parse(dateLayout, c.Query("departure"))
	if err != nil {
		response.BadRequest(c, "departure must be YYYY-MM-DD")
		return
	}

	conflict, err := h.reservationService.CheckConflict(c.Request.Context(), roomID, arrival, departure, &id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Conflict check completed", gin.H{"conflict": conflict})
}
