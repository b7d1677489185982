package repository

import (
	"context"
	"sort"
	"time"

	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	domainRepo "github.com/kabore/hotelier-api/internal/domain/repository"
	"gorm.io/gorm"
)

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) domainRepo.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetOccupancy(ctx context.Context) (*domainRepo.OccupancySnapshot, error) {
	type row struct {
		Status enum.RoomStatus
		Count  int64
	}
	var rows []row

	err := r.db.WithContext(ctx).Model(&entity.Room{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	snapshot := &domainRepo.OccupancySnapshot{}
	for _, rr := range rows {
		snapshot.TotalRooms += rr.Count
		switch rr.Status {
		case enum.RoomStatusOccupied:
			snapshot.OccupiedRooms = rr.Count
		case enum.RoomStatusFree:
			snapshot.FreeRooms = rr.Count
		case enum.RoomStatusMaintenance:
			snapshot.MaintenanceRooms = rr.Count
		}
	}
	if snapshot.TotalRooms > 0 {
		snapshot.OccupancyRate = float64(snapshot.OccupiedRooms) / float64(snapshot.TotalRooms)
	}
	return snapshot, nil
}

func (r *dashboardRepository) GetDailyRevenue(ctx context.Context, days int) ([]domainRepo.RevenuePoint, error) {
	since := time.Now().AddDate(0, 0, -days)

	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("paid_at >= ?", since).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	// Bucket in Go rather than SQL so the query works identically on both
	// dialects.
	byDay := make(map[time.Time]float64)
	for _, p := range payments {
		day := time.Date(p.PaidAt.Year(), p.PaidAt.Month(), p.PaidAt.Day(), 0, 0, 0, 0, p.PaidAt.Location())
		byDay[day] += p.Amount
	}

	points := make([]domainRepo.RevenuePoint, 0, len(byDay))
	for day, revenue := range byDay {
		points = append(points, domainRepo.RevenuePoint{Date: day, Revenue: revenue})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

func (r *dashboardRepository) GetOutstandingBalance(ctx context.Context) (float64, error) {
	var balance float64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("status = ?", enum.InvoiceStatusDraft).
		Select("COALESCE(SUM(total_ttc - amount_paid), 0)").
		Scan(&balance).Error
	return balance, err
}
