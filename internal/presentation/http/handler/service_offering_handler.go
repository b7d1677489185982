package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/application/service"
	"github.com/kabore/hotelier-api/internal/presentation/http/dto/response"
)

// ServiceOfferingHandler handles service catalog HTTP requests
type ServiceOfferingHandler struct {
	offeringService *service.ServiceOfferingService
}

// NewServiceOfferingHandler creates a new service offering handler
func NewServiceOfferingHandler(offeringService *service.ServiceOfferingService) *ServiceOfferingHandler {
	return &ServiceOfferingHandler{offeringService: offeringService}
}

type offeringRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}

func (r *offeringRequest) toInput() *service.ServiceOfferingInput {
	return &service.ServiceOfferingInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Active:      r.Active,
	}
}

// Create adds a service to the catalog
func (h *ServiceOfferingHandler) Create(c *gin.Context) {
	var req offeringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	offering, err := h.offeringService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", offering)
}

// Get retrieves a catalog entry
func (h *ServiceOfferingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	offering, err := h.offeringService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", offering)
}

// Update changes a catalog entry
func (h *ServiceOfferingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var req offeringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	offering, err := h.offeringService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", offering)
}

// Delete removes a catalog entry
func (h *ServiceOfferingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.offeringService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List returns the catalog
func (h *ServiceOfferingHandler) List(c *gin.Context) {
	offerings, err := h.offeringService.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved successfully", offerings)
}
