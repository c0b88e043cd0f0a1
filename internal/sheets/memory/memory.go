// Package memory keeps written workbooks in memory. Used when no
// spreadsheet backend is configured and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"fintrack/internal/report"
	ports "fintrack/internal/sheets"
)

var _ ports.WorkbookWriter = (*Store)(nil)

type Store struct {
	mu    sync.Mutex
	items []report.Workbook
}

func New() *Store {
	return &Store{}
}

// WriteWorkbook stores the workbook and returns a synthetic reference.
func (s *Store) WriteWorkbook(_ context.Context, wb report.Workbook) (string, error) {
	if len(wb.Sheets) == 0 {
		return "", fmt.Errorf("workbook %s has no sheets", wb.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, wb)
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// Workbooks returns every workbook written so far, oldest first.
func (s *Store) Workbooks() []report.Workbook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]report.Workbook(nil), s.items...)
}

// Last returns the most recently written workbook.
func (s *Store) Last() (report.Workbook, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return report.Workbook{}, false
	}
	return s.items[len(s.items)-1], true
}
