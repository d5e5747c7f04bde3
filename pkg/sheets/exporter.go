package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Exporter appends report rows to a Google Sheets spreadsheet
type Exporter struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewExporter creates a sheets Exporter from a service-account credentials file
func NewExporter(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*Exporter, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Exporter{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// AppendRows appends rows to the bottom of the configured sheet
func (e *Exporter) AppendRows(ctx context.Context, rows [][]interface{}) error {
	valueRange := &sheets.ValueRange{Values: rows}
	_, err := e.service.Spreadsheets.Values.
		Append(e.spreadsheetID, e.sheetName, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append rows: %w", err)
	}
	return nil
}
