package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kabore/hotelier-api/internal/application/service"
	"github.com/kabore/hotelier-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles property configuration HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get retrieves the property configuration
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update saves the property configuration
func (h *SettingsHandler) Update(c *gin.Context) {
	var req struct {
		Name                string  `json:"name" binding:"required"`
		Address             string  `json:"address"`
		Phone               string  `json:"phone"`
		Email               string  `json:"email"`
		TaxID               string  `json:"tax_id"`
		AccommodationVAT    float64 `json:"accommodation_vat"`
		RestaurantVAT       float64 `json:"restaurant_vat"`
		TourismTaxPerPerson float64 `json:"tourism_tax_per_person"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Save(c.Request.Context(), &service.SettingsInput{
		Name:                req.Name,
		Address:             req.Address,
		Phone:               req.Phone,
		Email:               req.Email,
		TaxID:               req.TaxID,
		AccommodationVAT:    req.AccommodationVAT,
		RestaurantVAT:       req.RestaurantVAT,
		TourismTaxPerPerson: req.TourismTaxPerPerson,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
