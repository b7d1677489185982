package service

import (
	"context"
	"time"

	"github.com/kabore/hotelier-api/internal/domain/repository"
)

// DashboardService aggregates the front-desk home screen numbers
type DashboardService struct {
	dashboardRepo   repository.DashboardRepository
	reservationRepo repository.ReservationRepository
	paymentRepo     repository.PaymentRepository
	issueRepo       repository.IssueRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	dashboardRepo repository.DashboardRepository,
	reservationRepo repository.ReservationRepository,
	paymentRepo repository.PaymentRepository,
	issueRepo repository.IssueRepository,
) *DashboardService {
	return &DashboardService{
		dashboardRepo:   dashboardRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		issueRepo:       issueRepo,
	}
}

// Stats is the dashboard snapshot
type Stats struct {
	Occupancy       *repository.OccupancySnapshot `json:"occupancy"`
	ArrivalsToday   int64                         `json:"arrivals_today"`
	DeparturesToday int64                         `json:"departures_today"`
	RevenueToday    float64                       `json:"revenue_today"`
	RevenueMonth    float64                       `json:"revenue_month"`
	Outstanding     float64                       `json:"outstanding"`
	OpenIssues      int64                         `json:"open_issues"`
}

// GetStats assembles the dashboard snapshot
func (s *DashboardService) GetStats(ctx context.Context) (*Stats, error) {
	occupancy, err := s.dashboardRepo.GetOccupancy(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	arrivals, err := s.reservationRepo.CountArrivals(ctx, now)
	if err != nil {
		return nil, err
	}
	departures, err := s.reservationRepo.CountDepartures(ctx, now)
	if err != nil {
		return nil, err
	}
	revenueToday, err := s.paymentRepo.SumSince(ctx, today)
	if err != nil {
		return nil, err
	}
	revenueMonth, err := s.paymentRepo.SumSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.dashboardRepo.GetOutstandingBalance(ctx)
	if err != nil {
		return nil, err
	}
	openIssues, err := s.issueRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Occupancy:       occupancy,
		ArrivalsToday:   arrivals,
		DeparturesToday: departures,
		RevenueToday:    revenueToday,
		RevenueMonth:    revenueMonth,
		Outstanding:     outstanding,
		OpenIssues:      openIssues,
	}, nil
}

// DailyRevenue returns collected payments per day for the chart
func (s *DashboardService) DailyRevenue(ctx context.Context, days int) ([]repository.RevenuePoint, error) {
	if days < 1 || days > 365 {
		days = 30
	}
	return s.dashboardRepo.GetDailyRevenue(ctx, days)
}
