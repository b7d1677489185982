package repository

import (
	"context"

	"github.com/kabore/hotelier-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the property configuration singleton
type SettingsRepository interface {
	// Get returns the single settings row, creating it with defaults when absent.
	Get(ctx context.Context) (*entity.HotelSetting, error)
	Update(ctx context.Context, settings *entity.HotelSetting) error
}
