package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/cyclehub/inventoryman/internal/config"
	"github.com/cyclehub/inventoryman/internal/domain/models"
)

const salesExportRange = "Sales!A:C"

// Exporter appends daily sales snapshots to the shop's bookkeeping spreadsheet.
type Exporter interface {
	AppendDailySummary(ctx context.Context, snapshot models.DailySnapshot) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendDailySummary appends one [date, count, amount] row to the sales sheet.
func (e *GoogleSheetExporter) AppendDailySummary(ctx context.Context, snapshot models.DailySnapshot) error {
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{{snapshot.Date, snapshot.Count, snapshot.Amount}}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, salesExportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into range %s: %w", salesExportRange, err)
	}

	e.logger.Debug("daily summary appended to sheet", zap.String("date", snapshot.Date))
	return nil
}
