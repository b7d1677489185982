package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"gorm.io/gorm"
)

// SettlementEpsilon absorbs float accumulation noise in every paid-vs-total
// comparison. A guest owing less than a cent owes nothing.
const SettlementEpsilon = 0.01

// Canonical invoice line descriptions. The frozen-statement path matches on
// them to rebuild a breakdown from stored lines.
const (
	lineAccommodation = "Accommodation"
	lineConsumption   = "Restaurant and bar"
	lineTourismTax    = "Tourism tax"
)

// Statement is the full breakdown returned by a refresh: every sum and the
// rates that produced it.
type Statement struct {
	Invoice *entity.Invoice `json:"invoice"`

	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightly_rate"`

	AccommodationHT  float64 `json:"accommodation_ht"`
	ConsumptionHT    float64 `json:"consumption_ht"`
	ServicesHT       float64 `json:"services_ht"`
	AccommodationTax float64 `json:"accommodation_tax"`
	ConsumptionTax   float64 `json:"consumption_tax"`
	ServicesTax      float64 `json:"services_tax"`
	TourismTax       float64 `json:"tourism_tax"`

	TotalHT    float64 `json:"total_ht"`
	TotalTax   float64 `json:"total_tax"`
	TotalTTC   float64 `json:"total_ttc"`
	AmountPaid float64 `json:"amount_paid"`
	Balance    float64 `json:"balance"`

	AccommodationVAT float64 `json:"accommodation_vat"`
	RestaurantVAT    float64 `json:"restaurant_vat"`
}

// BillingService recomputes invoices from their charge sources. The invoice is
// never edited by hand: every read path that needs fresh totals calls Refresh.
type BillingService struct {
	db              *gorm.DB
	reservationRepo repository.ReservationRepository
	orderRepo       repository.OrderRepository
	requestRepo     repository.ServiceRequestRepository
	invoiceRepo     repository.InvoiceRepository
	settingsRepo    repository.SettingsRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	db *gorm.DB,
	reservationRepo repository.ReservationRepository,
	orderRepo repository.OrderRepository,
	requestRepo repository.ServiceRequestRepository,
	invoiceRepo repository.InvoiceRepository,
	settingsRepo repository.SettingsRepository,
) *BillingService {
	return &BillingService{
		db:              db,
		reservationRepo: reservationRepo,
		orderRepo:       orderRepo,
		requestRepo:     requestRepo,
		invoiceRepo:     invoiceRepo,
		settingsRepo:    settingsRepo,
	}
}

// Refresh recomputes the reservation's invoice from scratch and returns the
// full breakdown. It is idempotent: running it twice without a data change
// produces identical totals. AmountPaid is never touched; a paid invoice is
// frozen and returned as stored.
func (s *BillingService) Refresh(ctx context.Context, reservationID uuid.UUID) (*Statement, error) {
	reservation, err := s.reservationRepo.GetWithDetails(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}
	if reservation.Status == enum.ReservationStatusCancelled {
		return nil, apperror.NewStateConflictError("refresh invoice", string(reservation.Status))
	}
	if reservation.Room.ID == uuid.Nil {
		// The room can vanish under an active stay when a remote deletion
		// arrives through sync. Billing at a zero rate would be worse.
		return nil, apperror.NewNotFoundError("Room")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	// A checked-in guest is billed up to today; otherwise the recorded
	// departure (planned, or actual after checkout) bounds the stay.
	departure := reservation.DepartureDate
	if reservation.Status == enum.ReservationStatusCheckedIn {
		departure = time.Now()
	}
	nights := reservation.Nights(departure)
	rate := reservation.Room.RoomType.NightlyRate
	accommodationHT := float64(nights) * rate

	orders, err := s.orderRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	var consumptionHT float64
	for _, order := range orders {
		if !order.Status.Billable() {
			continue
		}
		for _, item := range order.Items {
			consumptionHT += item.Total()
		}
	}

	requests, err := s.requestRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	var servicesHT float64
	for _, request := range requests {
		servicesHT += request.Total()
	}

	// Services are taxed at the accommodation rate by convention.
	accommodationTax := accommodationHT * settings.AccommodationVAT
	consumptionTax := consumptionHT * settings.RestaurantVAT
	servicesTax := servicesHT * settings.AccommodationVAT
	tourismTax := float64(reservation.Adults) * float64(nights) * settings.TourismTaxPerPerson

	totalHT := accommodationHT + consumptionHT + servicesHT
	totalTax := accommodationTax + consumptionTax + servicesTax
	totalTTC := totalHT + totalTax + tourismTax

	var invoice *entity.Invoice
	var frozen bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Invoice
		txErr := tx.Where("reservation_id = ?", reservationID).First(&existing).Error
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			existing = entity.Invoice{
				ReservationID: reservationID,
				Status:        enum.InvoiceStatusDraft,
			}
			if err := tx.Create(&existing).Error; err != nil {
				return err
			}
		case txErr != nil:
			return txErr
		}

		if existing.Status == enum.InvoiceStatusPaid {
			invoice = &existing
			frozen = true
			return nil
		}

		if err := tx.Where("invoice_id = ?", existing.ID).Delete(&entity.InvoiceLine{}).Error; err != nil {
			return err
		}

		lines := []entity.InvoiceLine{
			{
				InvoiceID:   existing.ID,
				Description: lineAccommodation,
				Quantity:    nights,
				UnitPriceHT: rate,
				AmountHT:    accommodationHT,
				AmountTax:   accommodationTax,
				AmountTTC:   accommodationHT + accommodationTax,
			},
		}
		if consumptionHT > 0 {
			lines = append(lines, entity.InvoiceLine{
				InvoiceID:   existing.ID,
				Description: lineConsumption,
				Quantity:    1,
				UnitPriceHT: consumptionHT,
				AmountHT:    consumptionHT,
				AmountTax:   consumptionTax,
				AmountTTC:   consumptionHT + consumptionTax,
			})
		}
		for i := range requests {
			request := requests[i]
			amount := request.Total()
			requestID := request.ID
			lines = append(lines, entity.InvoiceLine{
				InvoiceID:        existing.ID,
				Description:      request.Service.Name,
				Quantity:         request.Quantity,
				UnitPriceHT:      request.UnitPrice,
				AmountHT:         amount,
				AmountTax:        amount * settings.AccommodationVAT,
				AmountTTC:        amount + amount*settings.AccommodationVAT,
				ServiceRequestID: &requestID,
			})
		}
		if tourismTax > 0 {
			lines = append(lines, entity.InvoiceLine{
				InvoiceID:   existing.ID,
				Description: lineTourismTax,
				Quantity:    reservation.Adults * nights,
				UnitPriceHT: settings.TourismTaxPerPerson,
				AmountTTC:   tourismTax,
			})
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}

		existing.TotalHT = totalHT
		existing.TotalTax = totalTax
		existing.TotalTTC = totalTTC
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		invoice = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	if frozen {
		return s.frozenStatement(ctx, invoice.ID, settings)
	}

	return &Statement{
		Invoice:          invoice,
		Nights:           nights,
		NightlyRate:      rate,
		AccommodationHT:  accommodationHT,
		ConsumptionHT:    consumptionHT,
		ServicesHT:       servicesHT,
		AccommodationTax: accommodationTax,
		ConsumptionTax:   consumptionTax,
		ServicesTax:      servicesTax,
		TourismTax:       tourismTax,
		TotalHT:          invoice.TotalHT,
		TotalTax:         invoice.TotalTax,
		TotalTTC:         invoice.TotalTTC,
		AmountPaid:       invoice.AmountPaid,
		Balance:          invoice.TotalTTC - invoice.AmountPaid,
		AccommodationVAT: settings.AccommodationVAT,
		RestaurantVAT:    settings.RestaurantVAT,
	}, nil
}

// frozenStatement rebuilds a breakdown from the stored lines of a settled
// invoice. Recomputed components would drift from the frozen totals as soon
// as a late charge lands, so the lines are the only source of truth here.
func (s *BillingService) frozenStatement(ctx context.Context, invoiceID uuid.UUID, settings *entity.HotelSetting) (*Statement, error) {
	stored, err := s.invoiceRepo.GetWithLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	statement := &Statement{
		Invoice:          stored,
		TotalHT:          stored.TotalHT,
		TotalTax:         stored.TotalTax,
		TotalTTC:         stored.TotalTTC,
		AmountPaid:       stored.AmountPaid,
		Balance:          stored.TotalTTC - stored.AmountPaid,
		AccommodationVAT: settings.AccommodationVAT,
		RestaurantVAT:    settings.RestaurantVAT,
	}
	for _, line := range stored.Lines {
		switch {
		case line.ServiceRequestID != nil:
			statement.ServicesHT += line.AmountHT
			statement.ServicesTax += line.AmountTax
		case line.Description == lineAccommodation:
			statement.Nights = line.Quantity
			statement.NightlyRate = line.UnitPriceHT
			statement.AccommodationHT = line.AmountHT
			statement.AccommodationTax = line.AmountTax
		case line.Description == lineConsumption:
			statement.ConsumptionHT = line.AmountHT
			statement.ConsumptionTax = line.AmountTax
		case line.Description == lineTourismTax:
			statement.TourismTax = line.AmountTTC
		}
	}
	return statement, nil
}

// GetStatement returns the stored invoice with its lines without recomputing,
// for read-only screens that must not shift totals under the user.
func (s *BillingService) GetStatement(ctx context.Context, invoiceID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering
func (s *BillingService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return s.invoiceRepo.List(ctx, params)
}
