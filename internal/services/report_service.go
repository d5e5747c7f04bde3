package services

import (
	"context"
	"fmt"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure ReportServiceImpl implements ReportService
var _ ReportService = (*ReportServiceImpl)(nil)

// SheetsExporter is the slice of the spreadsheet client the service needs
type SheetsExporter interface {
	AppendRows(ctx context.Context, rows [][]interface{}) error
}

// reportPageSize bounds each repository page while sweeping a week
const reportPageSize = 200

// ReportServiceImpl builds the weekly bussing summary and pushes it to the
// configured spreadsheet for the overseers.
type ReportServiceImpl struct {
	recordRepo  repositories.BussingRecordRepository
	bacentaRepo repositories.BacentaRepository
	exporter    SheetsExporter
}

// NewReportService creates a new ReportServiceImpl
func NewReportService(
	recordRepo repositories.BussingRecordRepository,
	bacentaRepo repositories.BacentaRepository,
	exporter SheetsExporter,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		recordRepo:  recordRepo,
		bacentaRepo: bacentaRepo,
		exporter:    exporter,
	}
}

type bacentaSummary struct {
	records    int
	attendance int
	topUp      float64
	paid       int
}

// ExportWeeklySummary aggregates the week starting at weekStart per bacenta
// and appends one row per bacenta to the spreadsheet.
func (s *ReportServiceImpl) ExportWeeklySummary(ctx context.Context, weekStart time.Time) (int, error) {
	start := models.NormalizeServiceDate(weekStart)
	end := start.AddDate(0, 0, 7)

	summaries := make(map[string]*bacentaSummary)
	for page := 1; ; page++ {
		records, err := s.recordRepo.FindByDateRange(ctx, start, end, page, reportPageSize)
		if err != nil {
			return 0, fmt.Errorf("failed to list bussing records: %w", err)
		}
		for _, record := range records {
			sum := summaries[record.BacentaID]
			if sum == nil {
				sum = &bacentaSummary{}
				summaries[record.BacentaID] = sum
			}
			sum.records++
			sum.attendance += record.Attendance
			sum.topUp += record.BussingTopUp
			if record.TransactionStatus == models.TransactionSuccess {
				sum.paid++
			}
		}
		if len(records) < reportPageSize {
			break
		}
	}

	if len(summaries) == 0 {
		slog.Info("No bussing records for week, skipping export", "weekStart", start)
		return 0, nil
	}

	rows := make([][]interface{}, 0, len(summaries))
	for bacentaID, sum := range summaries {
		name := bacentaID
		if bacenta, err := s.bacentaRepo.FindByID(ctx, bacentaID); err == nil {
			name = bacenta.Name
		} else {
			slog.Error("Failed to resolve bacenta for report",
				"error", err, "bacentaId", bacentaID, "weekStart", start)
		}
		rows = append(rows, []interface{}{
			start.Format("2006-01-02"),
			name,
			sum.records,
			sum.attendance,
			sum.topUp,
			sum.paid,
		})
	}

	if err := s.exporter.AppendRows(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to append report rows: %w", err)
	}

	slog.Info("Weekly bussing summary exported", "weekStart", start, "rows", len(rows))
	return len(rows), nil
}
