package backend

import (
	"context"

	"fintrack/internal/sheets"
)

// BackendType names where exported workbooks go.
type BackendType string

const (
	XLSXBackend   BackendType = "xlsx"
	SheetsBackend BackendType = "google"
	MemoryBackend BackendType = "memory"
)

func (t BackendType) IsValid() bool {
	switch t {
	case XLSXBackend, SheetsBackend, MemoryBackend:
		return true
	}
	return false
}

func (t BackendType) String() string {
	return string(t)
}

// Factory creates workbook writers based on configuration
type Factory interface {
	CreateWriter(ctx context.Context, config Config) (sheets.WorkbookWriter, error)
}
