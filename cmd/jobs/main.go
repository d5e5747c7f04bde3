package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/firstlovecenter/fl-admin-backend/internal/config"
	"github.com/firstlovecenter/fl-admin-backend/internal/jobs"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	mongorepo "github.com/firstlovecenter/fl-admin-backend/internal/repositories/mongodb"
	"github.com/firstlovecenter/fl-admin-backend/internal/services"
	"github.com/firstlovecenter/fl-admin-backend/pkg/mongodb"
	"github.com/firstlovecenter/fl-admin-backend/pkg/paystack"
	"github.com/firstlovecenter/fl-admin-backend/pkg/sheets"
	"github.com/firstlovecenter/fl-admin-backend/pkg/smsgateway"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

// Runs the recurring background jobs as a standalone process, so the API
// instances can scale without the jobs firing once per instance.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

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
	var recordRepo repositories.BussingRecordRepository = mongorepo.NewBussingRecordRepository(db)
	var bacentaRepo repositories.BacentaRepository = mongorepo.NewBacentaRepository(db)
	var memberRepo repositories.MemberRepository = mongorepo.NewMemberRepository(db)
	var notificationRepo repositories.NotificationRepository = mongorepo.NewNotificationRepository(db)

	paystackClient := paystack.NewClient(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey, cfg.Paystack.MockAPI)
	paymentService := services.NewPaymentService(recordRepo, paystackClient)

	var smsGateway smsgateway.Gateway
	gatewayName := "mnotify"
	if cfg.SMS.MockSMSGateway {
		gatewayName = "mock"
		smsGateway = smsgateway.NewMockGateway(gatewayName)
	} else {
		smsGateway = smsgateway.NewMNotifyGateway(
			cfg.SMS.MNotify.BaseURL, cfg.SMS.MNotify.APIKey, cfg.SMS.MNotify.SenderID)
	}
	notificationService := services.NewNotificationService(notificationRepo, smsGateway, gatewayName)

	exporter, err := sheets.NewExporter(context.Background(),
		cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName)
	if err != nil {
		log.Fatalf("Failed to create sheets exporter: %v", err)
	}
	reportService := services.NewReportService(recordRepo, bacentaRepo, exporter)

	scheduler := jobs.NewScheduler(
		paymentService, reportService, notificationService, bacentaRepo, memberRepo, cfg)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()
}
