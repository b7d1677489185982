package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"github.com/kabore/hotelier-api/pkg/pagination"
	"github.com/kabore/hotelier-api/pkg/pdf"
	"github.com/kabore/hotelier-api/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InvoiceExporter renders a final invoice document to disk
type InvoiceExporter interface {
	Render(doc *pdf.Document) (string, error)
}

// ReservationService drives the stay lifecycle. Room status and reservation
// status always move together inside one transaction.
type ReservationService struct {
	db              *gorm.DB
	reservationRepo repository.ReservationRepository
	roomRepo        repository.RoomRepository
	clientRepo      repository.ClientRepository
	paymentRepo     repository.PaymentRepository
	settingsRepo    repository.SettingsRepository
	billing         *BillingService
	audit           *AuditService
	exporter        InvoiceExporter
	logger          *zap.Logger
}

// NewReservationService creates a new reservation service
func NewReservationService(
	db *gorm.DB,
	reservationRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	clientRepo repository.ClientRepository,
	paymentRepo repository.PaymentRepository,
	settingsRepo repository.SettingsRepository,
	billing *BillingService,
	audit *AuditService,
	exporter InvoiceExporter,
	logger *zap.Logger,
) *ReservationService {
	return &ReservationService{
		db:              db,
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		clientRepo:      clientRepo,
		paymentRepo:     paymentRepo,
		settingsRepo:    settingsRepo,
		billing:         billing,
		audit:           audit,
		exporter:        exporter,
		logger:          logger,
	}
}

// CreateReservationInput represents the create reservation input
type CreateReservationInput struct {
	ClientID      uuid.UUID
	RoomID        uuid.UUID
	ArrivalDate   time.Time
	DepartureDate time.Time
	Adults        int
	Children      int
}

// Create books a room. The room is taken out of the free pool immediately so
// two desks cannot sell it twice.
func (s *ReservationService) Create(ctx context.Context, input *CreateReservationInput) (*entity.Reservation, error) {
	if !input.ArrivalDate.Before(input.DepartureDate) {
		return nil, apperror.NewValidationError("departure must be after arrival")
	}
	if input.Adults < 1 {
		input.Adults = 1
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}
	if room.Status != enum.RoomStatusFree {
		return nil, apperror.NewStateConflictError("create reservation", string(room.Status))
	}

	conflict, err := s.reservationRepo.HasConflict(ctx, input.RoomID, input.ArrivalDate, input.DepartureDate, nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperror.NewConflictError("Room is already reserved for this period")
	}

	reservation := &entity.Reservation{
		ClientID:      input.ClientID,
		RoomID:        input.RoomID,
		ArrivalDate:   input.ArrivalDate,
		DepartureDate: input.DepartureDate,
		Adults:        input.Adults,
		Children:      input.Children,
		Status:        enum.ReservationStatusReserved,
	}
	reservation.EstimatedStay = float64(reservation.Nights(input.DepartureDate)) * room.RoomType.NightlyRate

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reservation).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Room{}).
			Where("id = ?", room.ID).
			Update("status", enum.RoomStatusOccupied).Error
	})
	if err != nil {
		return nil, err
	}

	return s.reservationRepo.GetWithDetails(ctx, reservation.ID)
}

// GetReservation retrieves a reservation with its client and room
func (s *ReservationService) GetReservation(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	reservation, err := s.reservationRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}
	return reservation, nil
}

// ListReservations lists reservations with filtering
func (s *ReservationService) ListReservations(ctx context.Context, params *repository.ReservationFilterParams) (*pagination.PaginatedResult[entity.Reservation], error) {
	reservations, total, err := s.reservationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(reservations, pag), nil
}

// CheckIn moves a reserved stay to checked_in. The room was already taken at
// booking time, so only the reservation flips.
func (s *ReservationService) CheckIn(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}
	if reservation.Status != enum.ReservationStatusReserved {
		return nil, apperror.NewStateConflictError("check in", string(reservation.Status))
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, enum.ReservationStatusCheckedIn); err != nil {
		return nil, err
	}
	return s.reservationRepo.GetWithDetails(ctx, id)
}

// Cancel releases a reserved stay and frees its room
func (s *ReservationService) Cancel(ctx context.Context, id uuid.UUID) error {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reservation == nil {
		return apperror.NewNotFoundError("Reservation")
	}
	if reservation.Status != enum.ReservationStatusReserved {
		return apperror.NewStateConflictError("cancel reservation", string(reservation.Status))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Reservation{}).
			Where("id = ?", id).
			Update("status", enum.ReservationStatusCancelled).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Room{}).
			Where("id = ?", reservation.RoomID).
			Update("status", enum.RoomStatusFree).Error
	})
}

// UpdateReservationInput is a patch: nil fields are left untouched
type UpdateReservationInput struct {
	RoomID        *uuid.UUID
	ArrivalDate   *time.Time
	DepartureDate *time.Time
	Adults        *int
	Children      *int
}

// Update patches an active reservation. A room swap frees the old room and
// occupies the new one atomically with the field update.
func (s *ReservationService) Update(ctx context.Context, id uuid.UUID, input *UpdateReservationInput) (*entity.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}
	if reservation.Status.IsTerminal() {
		return nil, apperror.NewStateConflictError("update reservation", string(reservation.Status))
	}

	oldRoomID := reservation.RoomID

	if input.ArrivalDate != nil {
		reservation.ArrivalDate = *input.ArrivalDate
	}
	if input.DepartureDate != nil {
		reservation.DepartureDate = *input.DepartureDate
	}
	if !reservation.ArrivalDate.Before(reservation.DepartureDate) {
		return nil, apperror.NewValidationError("departure must be after arrival")
	}
	if input.Adults != nil {
		if *input.Adults < 1 {
			return nil, apperror.NewValidationError("at least one adult required")
		}
		reservation.Adults = *input.Adults
	}
	if input.Children != nil {
		reservation.Children = *input.Children
	}

	var newRoom *entity.Room
	if input.RoomID != nil && *input.RoomID != oldRoomID {
		newRoom, err = s.roomRepo.GetByID(ctx, *input.RoomID)
		if err != nil {
			return nil, err
		}
		if newRoom == nil {
			return nil, apperror.NewNotFoundError("Room")
		}
		if newRoom.Status != enum.RoomStatusFree {
			return nil, apperror.NewStateConflictError("move reservation", string(newRoom.Status))
		}
		reservation.RoomID = newRoom.ID
	}

	conflict, err := s.reservationRepo.HasConflict(ctx, reservation.RoomID, reservation.ArrivalDate, reservation.DepartureDate, &id)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperror.NewConflictError("Room is already reserved for this period")
	}

	// Re-estimate against the room that will actually host the stay.
	room := newRoom
	if room == nil {
		if room, err = s.roomRepo.GetByID(ctx, reservation.RoomID); err != nil {
			return nil, err
		}
	}
	reservation.EstimatedStay = float64(reservation.Nights(reservation.DepartureDate)) * room.RoomType.NightlyRate

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(reservation).Error; err != nil {
			return err
		}
		if newRoom != nil {
			if err := tx.Model(&entity.Room{}).
				Where("id = ?", oldRoomID).
				Update("status", enum.RoomStatusFree).Error; err != nil {
				return err
			}
			if err := tx.Model(&entity.Room{}).
				Where("id = ?", newRoom.ID).
				Update("status", enum.RoomStatusOccupied).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.reservationRepo.GetWithDetails(ctx, id)
}

// Checkout settles and closes a checked-in stay. The invoice is refreshed
// first so the gate always runs against current charges; an unpaid balance
// beyond the settlement epsilon aborts with the exact shortfall. The PDF and
// audit trail are side effects of an already committed checkout: their
// failures are logged, never surfaced.
func (s *ReservationService) Checkout(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*Statement, error) {
	reservation, err := s.reservationRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}
	if reservation.Status != enum.ReservationStatusCheckedIn {
		return nil, apperror.NewStateConflictError("checkout", string(reservation.Status))
	}

	statement, err := s.billing.Refresh(ctx, id)
	if err != nil {
		return nil, err
	}

	if statement.AmountPaid < statement.TotalTTC-SettlementEpsilon {
		return nil, apperror.NewPaymentIncompleteError(statement.TotalTTC - statement.AmountPaid)
	}

	now := time.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Reservation{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":         enum.ReservationStatusCheckedOut,
				"departure_date": now,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.Room{}).
			Where("id = ?", reservation.RoomID).
			Update("status", enum.RoomStatusFree).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Invoice{}).
			Where("id = ?", statement.Invoice.ID).
			Update("status", enum.InvoiceStatusPaid).Error
	})
	if err != nil {
		return nil, err
	}
	statement.Invoice.Status = enum.InvoiceStatusPaid

	s.audit.Log(ctx, actorID, "reservation.checkout",
		fmt.Sprintf("room %s, invoice %s, total %.2f", reservation.Room.Number, statement.Invoice.ID, statement.TotalTTC))

	if s.exporter != nil {
		if path, err := s.exporter.Render(s.buildInvoiceDocument(ctx, reservation, statement)); err != nil {
			s.logger.Warn("invoice PDF export failed",
				zap.String("invoice_id", statement.Invoice.ID.String()),
				zap.Error(err))
		} else {
			s.logger.Info("invoice PDF exported", zap.String("path", path))
		}
	}

	return statement, nil
}

func (s *ReservationService) buildInvoiceDocument(ctx context.Context, reservation *entity.Reservation, statement *Statement) *pdf.Document {
	doc := &pdf.Document{
		InvoiceNumber: utils.ShortRef(statement.Invoice.ID),
		IssuedAt:      time.Now(),
		ClientName:    reservation.Client.FullName(),
		RoomNumber:    reservation.Room.Number,
		ArrivalDate:   reservation.ArrivalDate,
		DepartureDate: reservation.DepartureDate,
		TotalHT:       statement.TotalHT,
		TotalTax:      statement.TotalTax,
		TourismTax:    statement.TourismTax,
		TotalTTC:      statement.TotalTTC,
		AmountPaid:    statement.AmountPaid,
		Balance:       statement.TotalTTC - statement.AmountPaid,
	}

	if settings, err := s.settingsRepo.Get(ctx); err == nil {
		doc.HotelName = settings.Name
		doc.HotelAddress = settings.Address
		doc.HotelPhone = settings.Phone
		doc.HotelEmail = settings.Email
		doc.HotelTaxID = settings.TaxID
	}

	if invoice, err := s.billing.GetStatement(ctx, statement.Invoice.ID); err == nil {
		for _, line := range invoice.Lines {
			doc.Lines = append(doc.Lines, pdf.Line{
				Description: line.Description,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPriceHT,
				Amount:      line.AmountTTC,
			})
		}
	}

	if payments, err := s.paymentRepo.ListByInvoice(ctx, statement.Invoice.ID); err == nil {
		for _, p := range payments {
			doc.Payments = append(doc.Payments, pdf.PaymentLine{
				PaidAt: p.PaidAt,
				Method: p.Method,
				Amount: p.Amount,
			})
		}
	}

	return doc
}

// AvailableRooms returns rooms bookable over the window
func (s *ReservationService) AvailableRooms(ctx context.Context, arrival, departure time.Time) ([]entity.Room, error) {
	if !arrival.Before(departure) {
		return nil, apperror.NewValidationError("departure must be after arrival")
	}
	return s.roomRepo.ListAvailable(ctx, arrival, departure)
}

// CheckConflict reports whether a room is taken over the window by another
// active reservation. Windows are half-open, so back-to-back stays pass.
func (s *ReservationService) CheckConflict(ctx context.Context, roomID uuid.UUID, arrival, departure time.Time, excludeID *uuid.UUID) (bool, error) {
	if !arrival.Before(departure) {
		return false, apperror.NewValidationError("departure must be after arrival")
	}
	return s.reservationRepo.HasConflict(ctx, roomID, arrival, departure, excludeID)
}

// ExportInvoice renders the invoice PDF on demand and returns the file path.
func (s *ReservationService) ExportInvoice(ctx context.Context, invoiceID uuid.UUID) (string, error) {
	if s.exporter == nil {
		return "", apperror.NewBadRequestError("PDF export is not configured")
	}

	invoice, err := s.billing.GetStatement(ctx, invoiceID)
	if err != nil {
		return "", err
	}

	reservation, err := s.reservationRepo.GetByID(ctx, invoice.ReservationID)
	if err != nil {
		return "", err
	}
	if reservation == nil {
		return "", apperror.NewNotFoundError("Reservation")
	}

	statement, err := s.billing.Refresh(ctx, invoice.ReservationID)
	if err != nil {
		return "", err
	}

	return s.exporter.Render(s.buildInvoiceDocument(ctx, reservation, statement))
}
