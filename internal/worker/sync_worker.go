package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/report"
	"fintrack/internal/services"
	"fintrack/internal/sheets"
)

// SyncWorker mirrors the whole ledger into a spreadsheet. Every event
// triggers a full rewrite, so lost or duplicated events only delay the
// mirror until the next one.
type SyncWorker struct {
	ledger  *services.LedgerService
	summary *services.SummaryService
	writer  sheets.WorkbookWriter

	// serializes rewrites coming from the consumer and the ticker
	mu       sync.Mutex
	lastSync time.Time
}

func NewSyncWorker(ledger *services.LedgerService, summary *services.SummaryService, writer sheets.WorkbookWriter) *SyncWorker {
	return &SyncWorker{
		ledger:  ledger,
		summary: summary,
		writer:  writer,
	}
}

// HandleLedgerEvent processes a single ledger event from AMQP.
func (w *SyncWorker) HandleLedgerEvent(ctx context.Context, event *amqp.LedgerEvent) error {
	slog.InfoContext(ctx, "Processing ledger event",
		"operation", event.Operation,
		"id", event.ID,
		"rows", event.Affected)

	if err := w.Resync(ctx); err != nil {
		return fmt.Errorf("mirror after %s: %w", event.Operation, err)
	}
	return nil
}

// Resync rebuilds the mirror workbook from the store and writes it.
func (w *SyncWorker) Resync(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	summary, err := w.summary.Summary(ctx)
	if err != nil {
		return fmt.Errorf("build summary: %w", err)
	}
	txs, err := w.ledger.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	ref, err := w.writer.WriteWorkbook(ctx, report.Mirror(summary, txs))
	if err != nil {
		return fmt.Errorf("write mirror: %w", err)
	}

	w.lastSync = time.Now()
	slog.InfoContext(ctx, "Ledger mirrored", "ref", ref, "rows", len(txs))
	return nil
}

// RunPeriodic resyncs every interval until ctx is done. Failures are logged
// and retried on the next tick.
func (w *SyncWorker) RunPeriodic(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.Resync(ctx); err != nil {
				slog.ErrorContext(ctx, "Periodic sync failed", "error", err)
			}
		}
	}
}

// LastSync returns when the mirror was last written successfully.
func (w *SyncWorker) LastSync() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSync
}
