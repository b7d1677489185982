package service

import (
	"context"

	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
)

// SettingsService handles the property configuration singleton
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the property configuration
func (s *SettingsService) Get(ctx context.Context) (*entity.HotelSetting, error) {
	return s.settingsRepo.Get(ctx)
}

// SettingsInput represents the update settings input
type SettingsInput struct {
	Name                string
	Address             string
	Phone               string
	Email               string
	TaxID               string
	AccommodationVAT    float64
	RestaurantVAT       float64
	TourismTaxPerPerson float64
}

// Save validates and persists the configuration. Rate changes apply to the
// next invoice recompute, never retroactively to settled invoices.
func (s *SettingsService) Save(ctx context.Context, input *SettingsInput) (*entity.HotelSetting, error) {
	var fieldErrs []apperror.FieldError
	if input.Name == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "hotel name is required"})
	}
	if input.AccommodationVAT < 0 || input.AccommodationVAT > 1 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "accommodation_vat", Message: "VAT rate must be between 0 and 1"})
	}
	if input.RestaurantVAT < 0 || input.RestaurantVAT > 1 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "restaurant_vat", Message: "VAT rate must be between 0 and 1"})
	}
	if input.TourismTaxPerPerson < 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "tourism_tax_per_person", Message: "tourism tax cannot be negative"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewFieldValidationError(fieldErrs)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.Name = input.Name
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.Email = input.Email
	settings.TaxID = input.TaxID
	settings.AccommodationVAT = input.AccommodationVAT
	settings.RestaurantVAT = input.RestaurantVAT
	settings.TourismTaxPerPerson = input.TourismTaxPerPerson

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
