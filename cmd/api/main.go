package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kabore/hotelier-api/internal/application/service"
	"github.com/kabore/hotelier-api/internal/config"
	"github.com/kabore/hotelier-api/internal/infrastructure/database"
	"github.com/kabore/hotelier-api/internal/infrastructure/repository"
	"github.com/kabore/hotelier-api/internal/presentation/http/handler"
	"github.com/kabore/hotelier-api/internal/presentation/http/routes"
	"github.com/kabore/hotelier-api/pkg/cloud"
	"github.com/kabore/hotelier-api/pkg/log"
	"github.com/kabore/hotelier-api/pkg/pdf"
	"github.com/kabore/hotelier-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := log.NewLogger(cfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	if err := database.SeedDefaultData(db); err != nil {
		logger.Warn("failed to seed default data", zap.Error(err))
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	clientRepo := repository.NewClientRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	productRepo := repository.NewProductRepository(db)
	offeringRepo := repository.NewServiceOfferingRepository(db)
	requestRepo := repository.NewServiceRequestRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Services
	auditService := service.NewAuditService(auditRepo, logger)
	authService := service.NewAuthService(userRepo, jwtManager, auditService)
	userService := service.NewUserService(userRepo)
	roomService := service.NewRoomService(roomRepo, roomTypeRepo)
	clientService := service.NewClientService(clientRepo)
	billingService := service.NewBillingService(db, reservationRepo, orderRepo, requestRepo, invoiceRepo, settingsRepo)
	exporter := pdf.NewInvoiceRenderer(cfg.Storage.PDFPath)
	reservationService := service.NewReservationService(
		db, reservationRepo, roomRepo, clientRepo, paymentRepo, settingsRepo,
		billingService, auditService, exporter, logger,
	)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, productRepo, reservationRepo)
	requestService := service.NewServiceRequestService(requestRepo, offeringRepo, reservationRepo)
	paymentService := service.NewPaymentService(db, paymentRepo, invoiceRepo)
	productService := service.NewProductService(productRepo)
	offeringService := service.NewServiceOfferingService(offeringRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	issueService := service.NewIssueService(issueRepo, roomRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, reservationRepo, paymentRepo, issueRepo)

	// Handlers
	h := &routes.Handlers{
		Auth:           handler.NewAuthHandler(authService, userService),
		Reservation:    handler.NewReservationHandler(reservationService, billingService),
		Order:          handler.NewOrderHandler(orderService),
		ServiceRequest: handler.NewServiceRequestHandler(requestService),
		Invoice:        handler.NewInvoiceHandler(billingService, reservationService),
		Payment:        handler.NewPaymentHandler(paymentService),
		Room:           handler.NewRoomHandler(roomService),
		Client:         handler.NewClientHandler(clientService),
		Product:        handler.NewProductHandler(productService),
		Offering:       handler.NewServiceOfferingHandler(offeringService),
		Settings:       handler.NewSettingsHandler(settingsService),
		User:           handler.NewUserHandler(userService),
		Audit:          handler.NewAuditHandler(auditService),
		Dashboard:      handler.NewDashboardHandler(dashboardService),
		Issue:          handler.NewIssueHandler(issueService),
	}

	router := routes.Setup(h, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          logger,
		IdempotencyRepo: idempotencyRepo,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background sync worker
	if cfg.Sync.Enabled {
		syncClient, err := cloud.NewClient(cloud.Config{
			BaseURL:        cfg.Sync.BaseURL,
			TokenURL:       cfg.Sync.TokenURL,
			ClientID:       cfg.Sync.ClientID,
			ClientSecret:   cfg.Sync.ClientSecret,
			RequestTimeout: cfg.Sync.RequestTimeout,
		})
		if err != nil {
			logger.Warn("sync disabled", zap.Error(err))
		} else {
			syncService := service.NewSyncService(db, syncClient, cfg.Sync.CheckpointPath, cfg.Sync.Interval, logger)
			go syncService.Run(ctx)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
