package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/storage"
)

// LedgerService validates user input before it reaches the store and
// announces every successful change.
type LedgerService struct {
	storage *storage.SQLiteRepository
	events  eventSink
	logger  *applog.Logger
}

// NewLedgerService wires the store and an optional publisher (nil disables events).
func NewLedgerService(storage *storage.SQLiteRepository, publisher EventPublisher) *LedgerService {
	logger := applog.Default(applog.ComponentLedger)
	return &LedgerService{
		storage: storage,
		events:  eventSink{publisher: publisher, logger: logger},
		logger:  logger,
	}
}

// AddTransaction validates the DD-MM-YYYY date and the positive amount, then
// stores the transaction. Nothing is written when validation fails.
func (s *LedgerService) AddTransaction(ctx context.Context, amount decimal.Decimal, category, date string, t core.TxType) (core.Transaction, error) {
	tx, err := core.NewTransaction(amount, category, date, t)
	if err != nil {
		return core.Transaction{}, err
	}

	stored, err := s.storage.AddTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	s.logger.DebugContext(ctx, "Transaction added",
		applog.FieldID, stored.ID,
		applog.FieldAmount, core.FormatAmount(stored.Amount),
		applog.FieldCategory, stored.Category,
		applog.FieldDate, stored.Date.Canonical(),
		applog.FieldType, stored.Type.String())

	s.events.publish(ctx, amqp.OpAdd, stored.ID, 1)
	return stored, nil
}

func (s *LedgerService) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	return s.storage.GetTransaction(ctx, id)
}

// DeleteByID returns core.ErrNotFound when no transaction has that ID.
func (s *LedgerService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.storage.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.events.publish(ctx, amqp.OpDelete, id, 1)
	return nil
}

// DeleteByDateRange parses both DD-MM-YYYY bounds and deletes inclusively.
func (s *LedgerService) DeleteByDateRange(ctx context.Context, start, end string) (int64, error) {
	from, err := core.ParseInputDate(start)
	if err != nil {
		return 0, err
	}
	to, err := core.ParseInputDate(end)
	if err != nil {
		return 0, err
	}

	n, err := s.storage.DeleteByDateRange(ctx, from, to)
	if err != nil {
		return 0, err
	}
	s.events.publish(ctx, amqp.OpDeleteRange, 0, n)
	return n, nil
}

func (s *LedgerService) DeleteByCategory(ctx context.Context, category string) (int64, error) {
	n, err := s.storage.DeleteByCategory(ctx, category)
	if err != nil {
		return 0, err
	}
	s.events.publish(ctx, amqp.OpDeleteCategory, 0, n)
	return n, nil
}

// DeleteAll wipes the ledger. Callers are expected to confirm first.
func (s *LedgerService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.storage.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.events.publish(ctx, amqp.OpDeleteAll, 0, n)
	return n, nil
}

func (s *LedgerService) ListAll(ctx context.Context) ([]core.Transaction, error) {
	return s.storage.ListAll(ctx)
}

func (s *LedgerService) ListDistinctCategories(ctx context.Context) ([]string, error) {
	return s.storage.ListDistinctCategories(ctx)
}

// Close closes the store.
func (s *LedgerService) Close() error {
	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			return fmt.Errorf("close ledger service: %w", err)
		}
	}
	return nil
}
