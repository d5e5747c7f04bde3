package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/config"
	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"github.com/firstlovecenter/fl-admin-backend/internal/services"
	"github.com/robfig/cron/v3"
	"golang.org/x/exp/slog"
)

// jobTimeout bounds a single scheduled run
const jobTimeout = 5 * time.Minute

// reminderPageSize bounds each bacenta page during the reminder sweep
const reminderPageSize = 100

// Scheduler runs the recurring background jobs: the payment poll that
// re-checks pending payouts against the gateway, the weekly summary export
// to the overseers' spreadsheet, and the bussing reminder SMS to leaders.
type Scheduler struct {
	cron           *cron.Cron
	paymentService services.PaymentService
	reportService  services.ReportService
	notifier       services.NotificationService
	bacentaRepo    repositories.BacentaRepository
	memberRepo     repositories.MemberRepository
	cfg            *config.Config
}

// NewScheduler creates a new Scheduler
func NewScheduler(
	paymentService services.PaymentService,
	reportService services.ReportService,
	notifier services.NotificationService,
	bacentaRepo repositories.BacentaRepository,
	memberRepo repositories.MemberRepository,
	cfg *config.Config,
) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		paymentService: paymentService,
		reportService:  reportService,
		notifier:       notifier,
		bacentaRepo:    bacentaRepo,
		memberRepo:     memberRepo,
		cfg:            cfg,
	}
}

// Start registers the jobs and starts the cron loop in the background
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Jobs.PaymentPollCron, s.runPaymentPoll); err != nil {
		return fmt.Errorf("failed to schedule payment poll: %w", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.Jobs.ReportCron, s.runWeeklyReport); err != nil {
		return fmt.Errorf("failed to schedule weekly report: %w", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.Jobs.ReminderCron, s.runBussingReminders); err != nil {
		return fmt.Errorf("failed to schedule bussing reminders: %w", err)
	}

	s.cron.Start()
	slog.Info("Job scheduler started",
		"paymentPollCron", s.cfg.Jobs.PaymentPollCron,
		"reportCron", s.cfg.Jobs.ReportCron,
		"reminderCron", s.cfg.Jobs.ReminderCron)
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Job scheduler stopped")
}

func (s *Scheduler) runPaymentPoll() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	reconciled, err := s.paymentService.PollPendingPayments(ctx)
	if err != nil {
		slog.Error("Payment poll failed", "error", err)
		return
	}
	slog.Info("Payment poll finished", "reconciled", reconciled)
}

func (s *Scheduler) runWeeklyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	// The job fires early in the week; report on the week that just ended
	weekStart := previousMonday(time.Now().UTC())
	rows, err := s.reportService.ExportWeeklySummary(ctx, weekStart)
	if err != nil {
		slog.Error("Weekly report export failed", "error", err, "weekStart", weekStart)
		return
	}
	slog.Info("Weekly report exported", "weekStart", weekStart, "rows", rows)
}

// runBussingReminders texts every bacenta leader ahead of the service day
func (s *Scheduler) runBussingReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	sent := 0
	for page := 1; ; page++ {
		bacentas, err := s.bacentaRepo.FindAll(ctx, page, reminderPageSize)
		if err != nil {
			slog.Error("Reminder sweep failed to list bacentas", "error", err, "page", page)
			return
		}
		for _, bacenta := range bacentas {
			leader, err := s.memberRepo.FindByID(ctx, bacenta.LeaderID)
			if err != nil {
				slog.Error("Failed to resolve bacenta leader for reminder",
					"error", err, "bacentaId", bacenta.ID, "leaderId", bacenta.LeaderID)
				continue
			}
			if leader.PhoneNumber == "" {
				continue
			}

			content := fmt.Sprintf(
				"Hi %s, remember to mobilise %s for bussing this service day and upload your mobilisation picture.",
				leader.FirstName, bacenta.Name,
			)
			if _, err := s.notifier.SendSMS(ctx, leader.PhoneNumber, content, models.NotificationTypeReminder, ""); err != nil {
				slog.Error("Failed to send bussing reminder",
					"error", err, "bacentaId", bacenta.ID, "leaderId", leader.ID)
				continue
			}
			sent++
		}
		if len(bacentas) < reminderPageSize {
			break
		}
	}

	slog.Info("Bussing reminders sent", "sent", sent)
}

// previousMonday returns the Monday strictly before t's week day,
// i.e. the start of the most recently completed week.
func previousMonday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysSinceMonday-7)
}
