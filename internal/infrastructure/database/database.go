package database

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/kabore/hotelier-api/internal/config"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a connection for the configured dialect. SQLite is the
// default so a property can run fully offline; Postgres is available for
// multi-desk installs.
func NewDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		})
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Type == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// SQLite serializes writes; a single connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}

	log.Printf("Successfully connected to %s database", cfg.Type)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Registry entities
		&entity.RoomType{},
		&entity.Room{},
		&entity.Client{},
		&entity.Product{},
		&entity.ServiceOffering{},

		// Stay entities
		&entity.Reservation{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.ServiceRequest{},

		// Billing entities
		&entity.Invoice{},
		&entity.InvoiceLine{},
		&entity.Payment{},

		// System entities
		&entity.User{},
		&entity.HotelSetting{},
		&entity.AuditLog{},
		&entity.Issue{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
