package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/application/service"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/presentation/http/dto/response"
)

// ServiceRequestHandler handles ancillary service request HTTP requests
type ServiceRequestHandler struct {
	requestService *service.ServiceRequestService
}

// NewServiceRequestHandler creates a new service request handler
func NewServiceRequestHandler(requestService *service.ServiceRequestService) *ServiceRequestHandler {
	return &ServiceRequestHandler{requestService: requestService}
}

// Create books a catalog service for a checked-in guest
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	var req struct {
		ServiceID uuid.UUID `json:"service_id" binding:"required"`
		Quantity  int       `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	request, err := h.requestService.Create(c.Request.Context(), reservationID, req.ServiceID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service request created successfully", request)
}

// UpdateStatus moves a service request through its workflow
func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service request ID")
		return
	}

	var req struct {
		Status enum.ServiceRequestStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.requestService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service request status updated successfully", nil)
}

// Delete removes a service request and its charge
func (h *ServiceRequestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service request ID")
		return
	}

	if err := h.requestService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListByReservation lists all service requests of a reservation
func (h *ServiceRequestHandler) ListByReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	requests, err := h.requestService.ListByReservation(c.Request.Context(), reservationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service requests retrieved successfully", requests)
}
