package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/api/routes"
	"github.com/firstlovecenter/fl-admin-backend/internal/config"
	"github.com/firstlovecenter/fl-admin-backend/internal/handlers"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	mongorepo "github.com/firstlovecenter/fl-admin-backend/internal/repositories/mongodb"
	"github.com/firstlovecenter/fl-admin-backend/internal/services"
	"github.com/firstlovecenter/fl-admin-backend/pkg/mongodb"
	"github.com/firstlovecenter/fl-admin-backend/pkg/paystack"
	"github.com/firstlovecenter/fl-admin-backend/pkg/sheets"
	"github.com/firstlovecenter/fl-admin-backend/pkg/smsgateway"
	"github.com/firstlovecenter/fl-admin-backend/pkg/storage"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogger(cfg.LogLevel)

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var recordRepo repositories.BussingRecordRepository = mongorepo.NewBussingRecordRepository(db)
	var bacentaRepo repositories.BacentaRepository = mongorepo.NewBacentaRepository(db)
	var serviceDayRepo repositories.ServiceDayRepository = mongorepo.NewServiceDayRepository(db)
	var serviceLogRepo repositories.ServiceLogRepository = mongorepo.NewServiceLogRepository(db)
	var memberRepo repositories.MemberRepository = mongorepo.NewMemberRepository(db)
	var counterRepo repositories.CounterRepository = mongorepo.NewCounterRepository(db)
	var notificationRepo repositories.NotificationRepository = mongorepo.NewNotificationRepository(db)
	var adminUserRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Merging service days by date relies on the unique date index
	if err := serviceDayRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to ensure service day indexes: %v", err)
	}

	// External gateways
	var smsGateway smsgateway.Gateway
	gatewayName := "mnotify"
	if cfg.SMS.MockSMSGateway {
		gatewayName = "mock"
		smsGateway = smsgateway.NewMockGateway(gatewayName)
	} else {
		smsGateway = smsgateway.NewMNotifyGateway(
			cfg.SMS.MNotify.BaseURL, cfg.SMS.MNotify.APIKey, cfg.SMS.MNotify.SenderID)
	}
	paystackClient := paystack.NewClient(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey, cfg.Paystack.MockAPI)

	var uploader services.ImageUploader
	if cloudinaryUploader, err := storage.NewUploader(
		cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret, cfg.Cloudinary.Folder,
	); err != nil {
		slog.Warn("Picture upload disabled, records need pre-hosted picture URLs", "error", err)
	} else {
		uploader = cloudinaryUploader
	}

	// Services
	notificationService := services.NewNotificationService(notificationRepo, smsGateway, gatewayName)
	bussingService := services.NewBussingService(
		recordRepo, bacentaRepo, serviceDayRepo, serviceLogRepo, memberRepo, notificationService, uploader)
	transactionService := services.NewTransactionService(counterRepo, recordRepo, bacentaRepo)
	paymentService := services.NewPaymentService(recordRepo, paystackClient)
	authService := services.NewAuthService(adminUserRepo, cfg)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService),
		BussingHandler:      handlers.NewBussingHandler(bussingService),
		TransactionHandler:  handlers.NewTransactionHandler(transactionService),
		PaymentHandler:      handlers.NewPaymentHandler(paymentService),
		NotificationHandler: handlers.NewNotificationHandler(notificationService, notificationRepo),
		ReportHandler:       nil,
	}
	if exporter, err := newSheetsExporter(cfg); err != nil {
		slog.Warn("Report export disabled", "error", err)
	} else {
		reportService := services.NewReportService(recordRepo, bacentaRepo, exporter)
		handlerDeps.ReportHandler = handlers.NewReportHandler(reportService)
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("Server exiting")
}

func newSheetsExporter(cfg *config.Config) (*sheets.Exporter, error) {
	return sheets.NewExporter(context.Background(),
		cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName)
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
