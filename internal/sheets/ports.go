package sheets

import (
	"context"

	"fintrack/internal/report"
)

// Ports for outbound adapters.
type (
	// WorkbookWriter stores a workbook and returns a reference to where it
	// went (a file path, a spreadsheet range, ...).
	WorkbookWriter interface {
		WriteWorkbook(ctx context.Context, wb report.Workbook) (ref string, err error)
	}
)
