package database

import (
	"log"

	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultData seeds the property configuration, default staff accounts
// and a starter room-type catalog. Every block is idempotent.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Property configuration singleton with the standard VAT rates.
	var settings entity.HotelSetting
	if err := db.First(&settings).Error; err != nil {
		settings = entity.HotelSetting{
			Name:                "Hotel",
			AccommodationVAT:    0.10,
			RestaurantVAT:       0.18,
			TourismTaxPerPerson: 0,
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create hotel settings: %v", err)
		}
	}

	// Default staff accounts, one per role.
	defaultUsers := []struct {
		username string
		fullName string
		role     enum.UserRole
		password string
	}{
		{"admin", "Administrator", enum.UserRoleAdmin, viper.GetString("ADMIN_PASSWORD")},
		{"reception", "Front Desk", enum.UserRoleReception, viper.GetString("RECEPTION_PASSWORD")},
		{"manager", "Manager", enum.UserRoleManager, viper.GetString("MANAGER_PASSWORD")},
	}

	for _, u := range defaultUsers {
		if u.password == "" {
			continue
		}
		var existing entity.User
		if err := db.Where("username = ?", u.username).First(&existing).Error; err == nil {
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Warning: failed to hash password for %s: %v", u.username, err)
			continue
		}
		user := entity.User{
			Username:     u.username,
			FullName:     u.fullName,
			Role:         u.role,
			PasswordHash: string(hashed),
			Active:       true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warning: failed to create user %s: %v", u.username, err)
		} else {
			log.Printf("Default user created: %s", u.username)
		}
	}

	// Starter room types so a fresh install can register rooms immediately.
	roomTypes := []entity.RoomType{
		{Name: "Standard", NightlyRate: 20000},
		{Name: "Double", NightlyRate: 30000},
		{Name: "Suite", NightlyRate: 50000},
	}
	for i := range roomTypes {
		var existing entity.RoomType
		if err := db.Where("name = ?", roomTypes[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&roomTypes[i]).Error; err != nil {
				log.Printf("Warning: failed to create room type %s: %v", roomTypes[i].Name, err)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
