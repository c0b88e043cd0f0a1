package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fintrack/internal/report"
	ports "fintrack/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client mirrors workbooks into one Google spreadsheet, one tab per sheet.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
}

// Ensure interface conformance
var _ ports.WorkbookWriter = (*Client)(nil)

// New creates a Sheets client for spreadsheetID using service account
// credentials from the environment.
func New(ctx context.Context, spreadsheetID string) (*Client, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
// Uses GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		b, err := os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = b
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.DebugContext(ctx, "Google Sheets service created", "credentials_size", len(credentialsJSON))
	return service, nil
}

// WriteWorkbook replaces the content of each workbook sheet's tab, creating
// missing tabs first. Tabs not named by the workbook are left alone.
func (c *Client) WriteWorkbook(ctx context.Context, wb report.Workbook) (string, error) {
	if c.svc == nil {
		return "", errors.New("sheets service not initialized")
	}
	if len(wb.Sheets) == 0 {
		return "", fmt.Errorf("workbook %s has no sheets", wb.Name)
	}

	if err := c.ensureTabs(ctx, wb); err != nil {
		return "", err
	}

	for _, sheet := range wb.Sheets {
		title := quoteSheetName(sheet.Name)
		if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, title, &gsheet.ClearValuesRequest{}).
			Context(ctx).Do(); err != nil {
			return "", fmt.Errorf("clear %s: %w", sheet.Name, err)
		}

		vr := &gsheet.ValueRange{Values: toValues(sheet)}
		if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, title+"!A1", vr).
			ValueInputOption("RAW").Context(ctx).Do(); err != nil {
			return "", fmt.Errorf("update %s: %w", sheet.Name, err)
		}
	}

	slog.InfoContext(ctx, "Workbook mirrored to Google Sheets",
		"spreadsheet_id", c.spreadsheetID, "workbook", wb.Name, "sheets", len(wb.Sheets))
	return "spreadsheet:" + c.spreadsheetID, nil
}

func (c *Client) ensureTabs(ctx context.Context, wb report.Workbook) error {
	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}

	existing := make([]string, 0, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties != nil {
			existing = append(existing, s.Properties.Title)
		}
	}

	missing := missingTabs(existing, wb)
	if len(missing) == 0 {
		return nil
	}

	reqs := make([]*gsheet.Request, 0, len(missing))
	for _, name := range missing {
		reqs = append(reqs, &gsheet.Request{
			AddSheet: &gsheet.AddSheetRequest{Properties: &gsheet.SheetProperties{Title: name}},
		})
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID,
		&gsheet.BatchUpdateSpreadsheetRequest{Requests: reqs}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("add sheets %v: %w", missing, err)
	}
	return nil
}

// missingTabs returns the workbook sheet names not present in existing.
func missingTabs(existing []string, wb report.Workbook) []string {
	have := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		have[t] = struct{}{}
	}
	var out []string
	for _, s := range wb.Sheets {
		if _, ok := have[s.Name]; !ok {
			out = append(out, s.Name)
			have[s.Name] = struct{}{}
		}
	}
	return out
}

// toValues renders a sheet as the row-major values the Sheets API takes.
// Blank rows become empty rows so sections stay apart.
func toValues(sheet report.Sheet) [][]interface{} {
	grid := sheet.Grid()
	out := make([][]interface{}, 0, len(grid))
	for _, row := range grid {
		cells := make([]interface{}, len(row.Cells))
		for i, c := range row.Cells {
			if p, ok := c.(report.Percent); ok {
				cells[i] = float64(p)
				continue
			}
			cells[i] = c
		}
		out = append(out, cells)
	}
	return out
}

// quoteSheetName quotes a tab title for A1 notation.
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
