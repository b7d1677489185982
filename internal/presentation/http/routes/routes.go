package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kabore/hotelier-api/internal/config"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	domainRepo "github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/internal/presentation/http/handler"
	"github.com/kabore/hotelier-api/internal/presentation/http/middleware"
	"github.com/kabore/hotelier-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth           *handler.AuthHandler
	Reservation    *handler.ReservationHandler
	Order          *handler.OrderHandler
	ServiceRequest *handler.ServiceRequestHandler
	Invoice        *handler.InvoiceHandler
	Payment        *handler.PaymentHandler
	Room           *handler.RoomHandler
	Client         *handler.ClientHandler
	Product        *handler.ProductHandler
	Offering       *handler.ServiceOfferingHandler
	Settings       *handler.SettingsHandler
	User           *handler.UserHandler
	Audit          *handler.AuditHandler
	Dashboard      *handler.DashboardHandler
	Issue          *handler.IssueHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	adminOnly := middleware.RequireRole(enum.UserRoleAdmin)
	managers := middleware.RequireRole(enum.UserRoleAdmin, enum.UserRoleManager)

	// Profile
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", managers, h.Settings.Update)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)
	protected.GET("/dashboard/revenue", h.Dashboard.Revenue)

	// Rooms and room types
	rooms := protected.Group("/rooms")
	{
		rooms.GET("", h.Room.List)
		rooms.POST("", managers, h.Room.Create)
		rooms.GET("/:id", h.Room.Get)
		rooms.PUT("/:id/status", h.Room.SetStatus)
		rooms.DELETE("/:id", managers, h.Room.Delete)
	}
	roomTypes := protected.Group("/room-types")
	{
		roomTypes.GET("", h.Room.ListRoomTypes)
		roomTypes.POST("", managers, h.Room.CreateRoomType)
		roomTypes.PUT("/:id", managers, h.Room.UpdateRoomType)
		roomTypes.DELETE("/:id", managers, h.Room.DeleteRoomType)
	}

	// Clients
	clients := protected.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}

	// Reservations
	reservations := protected.Group("/reservations")
	{
		reservations.GET("", h.Reservation.List)
		reservations.POST("", h.Reservation.Create)
		reservations.GET("/availability", h.Reservation.Availability)
		reservations.GET("/:id", h.Reservation.Get)
		reservations.PATCH("/:id", h.Reservation.Update)
		reservations.POST("/:id/checkin", h.Reservation.CheckIn)
		reservations.POST("/:id/cancel", h.Reservation.Cancel)
		reservations.POST("/:id/checkout", h.Reservation.Checkout)
		reservations.GET("/:id/billing", h.Reservation.Billing)
		reservations.GET("/:id/conflict", h.Reservation.Conflict)

		// Charges attached to a stay
		reservations.POST("/:id/orders/open", h.Order.Open)
		reservations.GET("/:id/orders", h.Order.ListByReservation)
		reservations.POST("/:id/services", h.ServiceRequest.Create)
		reservations.GET("/:id/services", h.ServiceRequest.ListByReservation)
	}

	// Orders
	orders := protected.Group("/orders")
	{
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/items", h.Order.AddItem)
		orders.DELETE("/:id/items/:itemId", h.Order.RemoveItem)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
	}

	// Service requests
	serviceRequests := protected.Group("/service-requests")
	{
		serviceRequests.PUT("/:id/status", h.ServiceRequest.UpdateStatus)
		serviceRequests.DELETE("/:id", h.ServiceRequest.Delete)
	}

	// Invoices and payments
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/:id/pdf", h.Invoice.PDF)
		invoices.GET("/:id/payments", h.Payment.ListByInvoice)
		invoices.POST("/:id/payments", idempotency, h.Payment.Record)
	}
	payments := protected.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.DELETE("/:id", managers, h.Payment.Delete)
	}

	// Catalogs
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", managers, h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", managers, h.Product.Update)
		products.DELETE("/:id", managers, h.Product.Delete)
	}
	offerings := protected.Group("/services")
	{
		offerings.GET("", h.Offering.List)
		offerings.POST("", managers, h.Offering.Create)
		offerings.GET("/:id", h.Offering.Get)
		offerings.PUT("/:id", managers, h.Offering.Update)
		offerings.DELETE("/:id", managers, h.Offering.Delete)
	}

	// Issues
	issues := protected.Group("/issues")
	{
		issues.GET("", h.Issue.List)
		issues.POST("", h.Issue.Report)
		issues.PUT("/:id/status", h.Issue.UpdateStatus)
	}

	// Staff accounts
	users := protected.Group("/users", adminOnly)
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	// Audit log
	audit := protected.Group("/audit-logs", managers)
	{
		audit.GET("", h.Audit.List)
		audit.GET("/recent", h.Audit.Recent)
	}
}
