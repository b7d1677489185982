package repository

import (
	"context"
	"time"
)

// OccupancySnapshot summarizes room availability at a point in time
type OccupancySnapshot struct {
	TotalRooms       int64
	OccupiedRooms    int64
	FreeRooms        int64
	MaintenanceRooms int64
	OccupancyRate    float64
}

// RevenuePoint represents collected payments for a single day
type RevenuePoint struct {
	Date    time.Time
	Revenue float64
}

// DashboardRepository defines interface for front-desk aggregation queries
type DashboardRepository interface {
	// GetOccupancy returns the current room status breakdown
	GetOccupancy(ctx context.Context) (*OccupancySnapshot, error)

	// GetDailyRevenue returns collected payments per day for the last N days
	GetDailyRevenue(ctx context.Context, days int) ([]RevenuePoint, error)

	// GetOutstandingBalance sums total_ttc - amount_paid over draft invoices
	GetOutstandingBalance(ctx context.Context) (float64, error)
}
