// Package xlsx writes report workbooks as Excel files.
package xlsx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"fintrack/internal/report"
	ports "fintrack/internal/sheets"
)

// Built-in number format 10 is "0.00%".
const percentNumFmt = 10

var _ ports.WorkbookWriter = (*Writer)(nil)

// Writer saves each workbook as <dir>/<name>.xlsx.
type Writer struct {
	dir string
}

func New(dir string) *Writer {
	return &Writer{dir: dir}
}

// Path returns the file a workbook with the given name is written to.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name+".xlsx")
}

func (w *Writer) WriteWorkbook(ctx context.Context, wb report.Workbook) (string, error) {
	if len(wb.Sheets) == 0 {
		return "", fmt.Errorf("workbook %s has no sheets", wb.Name)
	}
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return "", err
	}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return "", fmt.Errorf("rename sheet %s: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return "", fmt.Errorf("create sheet %s: %w", sheet.Name, err)
		}
		if err := writeSheet(f, sheet, styles); err != nil {
			return "", fmt.Errorf("write sheet %s: %w", sheet.Name, err)
		}
	}

	path := w.Path(wb.Name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	slog.InfoContext(ctx, "Workbook exported", "path", path, "sheets", len(wb.Sheets))
	return path, nil
}

type styles struct {
	bold    int
	percent int
}

func newStyles(f *excelize.File) (styles, error) {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return styles{}, fmt.Errorf("create header style: %w", err)
	}
	percent, err := f.NewStyle(&excelize.Style{NumFmt: percentNumFmt})
	if err != nil {
		return styles{}, fmt.Errorf("create percent style: %w", err)
	}
	return styles{bold: bold, percent: percent}, nil
}

func writeSheet(f *excelize.File, sheet report.Sheet, st styles) error {
	for i, row := range sheet.Grid() {
		rowNum := i + 1
		if row.Kind == report.RowBlank {
			continue
		}

		values := make([]any, len(row.Cells))
		for j, c := range row.Cells {
			if p, ok := c.(report.Percent); ok {
				values[j] = float64(p)
				continue
			}
			values[j] = c
		}

		start, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, start, &values); err != nil {
			return err
		}

		if row.Kind == report.RowTitle || row.Kind == report.RowHeader {
			end, _ := excelize.CoordinatesToCellName(len(values), rowNum)
			if err := f.SetCellStyle(sheet.Name, start, end, st.bold); err != nil {
				return err
			}
			continue
		}
		for j, c := range row.Cells {
			if _, ok := c.(report.Percent); !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			if err := f.SetCellStyle(sheet.Name, cell, cell, st.percent); err != nil {
				return err
			}
		}
	}
	return nil
}
