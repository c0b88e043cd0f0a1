package backend

import (
	"context"
	"fmt"

	applog "fintrack/internal/log"
	"fintrack/internal/sheets"
	gsheet "fintrack/internal/sheets/google"
	"fintrack/internal/sheets/memory"
	"fintrack/internal/sheets/xlsx"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.Default(applog.ComponentSheets)
	}
	return &DefaultFactory{logger: logger}
}

// CreateWriter implements Factory.CreateWriter
func (f *DefaultFactory) CreateWriter(ctx context.Context, config Config) (sheets.WorkbookWriter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case XLSXBackend:
		f.logger.DebugContext(ctx, "Using xlsx export backend", applog.FieldPath, config.ExportDir)
		return xlsx.New(config.ExportDir), nil
	case SheetsBackend:
		client, err := gsheet.New(ctx, config.GoogleSpreadsheetID)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
		}
		f.logger.InfoContext(ctx, "Using Google Sheets export backend", "spreadsheet_id", config.GoogleSpreadsheetID)
		return client, nil
	case MemoryBackend:
		f.logger.WarnContext(ctx, "Using memory export backend, exports are not persisted")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
