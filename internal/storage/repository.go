package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One process, one writer: a single connection keeps every statement
	// on the same handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	repo := &SQLiteRepository{
		db:      db,
		queries: New(db),
	}

	if err := ensureTypeColumn(context.Background(), repo.queries); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AddTransaction persists tx and returns it with the assigned ID.
func (r *SQLiteRepository) AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	id, err := r.queries.CreateTransaction(ctx, CreateTransactionParams{
		Amount:   tx.Amount.InexactFloat64(),
		Category: tx.Category,
		Date:     tx.Date.Canonical(),
		Type:     tx.Type.String(),
	})
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	tx.ID = id

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", tx.ID,
		"amount", tx.Amount.String(),
		"category", tx.Category,
		"date", tx.Date.Canonical(),
		"type", tx.Type)

	return tx, nil
}

// GetTransaction retrieves a single transaction by ID
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row, err := r.queries.GetTransaction(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}
	return toCore(row)
}

// ListAll returns every transaction in storage order.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := toCore(row)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

// DeleteByID removes one transaction, or returns core.ErrNotFound.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteTransaction(ctx, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete transaction %d: %w", id, core.ErrNotFound)
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

// DeleteByDateRange removes transactions dated within [start, end].
func (r *SQLiteRepository) DeleteByDateRange(ctx context.Context, start, end core.Date) (int64, error) {
	n, err := r.queries.DeleteTransactionsBetween(ctx, start.Canonical(), end.Canonical())
	if err != nil {
		return 0, fmt.Errorf("delete transactions between %s and %s: %w", start, end, err)
	}

	slog.InfoContext(ctx, "Transactions deleted by date range",
		"start", start.Canonical(),
		"end", end.Canonical(),
		"rows", n)
	return n, nil
}

func (r *SQLiteRepository) DeleteByCategory(ctx context.Context, category string) (int64, error) {
	n, err := r.queries.DeleteTransactionsByCategory(ctx, category)
	if err != nil {
		return 0, fmt.Errorf("delete transactions in category %s: %w", category, err)
	}

	slog.InfoContext(ctx, "Transactions deleted by category", "category", category, "rows", n)
	return n, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) (int64, error) {
	n, err := r.queries.DeleteAllTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all transactions: %w", err)
	}

	slog.WarnContext(ctx, "All transactions deleted", "rows", n)
	return n, nil
}

// ListDistinctCategories returns the categories currently in use, sorted.
func (r *SQLiteRepository) ListDistinctCategories(ctx context.Context) ([]string, error) {
	cats, err := r.queries.ListDistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// SumByType returns the signed sum of amounts of one type.
func (r *SQLiteRepository) SumByType(ctx context.Context, t core.TxType) (decimal.Decimal, error) {
	total, err := r.queries.SumByType(ctx, t.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum %s: %w", t, err)
	}
	return core.AmountFromFloat(total), nil
}

// SumsByCategory returns the signed per category sums of one type.
func (r *SQLiteRepository) SumsByCategory(ctx context.Context, t core.TxType) ([]core.CategoryAmount, error) {
	sums, err := r.queries.SumsByCategory(ctx, t.String())
	if err != nil {
		return nil, fmt.Errorf("get category sums for %s: %w", t, err)
	}

	out := make([]core.CategoryAmount, 0, len(sums))
	for _, cs := range sums {
		out = append(out, core.CategoryAmount{
			Name:   cs.Category,
			Amount: core.AmountFromFloat(cs.Total),
		})
	}
	return out, nil
}

// SumByCategory returns the signed sum of one category across both types.
func (r *SQLiteRepository) SumByCategory(ctx context.Context, category string) (decimal.Decimal, error) {
	total, err := r.queries.SumByCategory(ctx, category)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum category %s: %w", category, err)
	}
	return core.AmountFromFloat(total), nil
}

// RenameCategories sets category to to on every row matching one of from.
func (r *SQLiteRepository) RenameCategories(ctx context.Context, from []string, to string) (int64, error) {
	n, err := r.queries.RenameCategories(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("rename categories: %w", err)
	}

	slog.InfoContext(ctx, "Categories renamed", "from", from, "to", to, "rows", n)
	return n, nil
}

func toCore(row Transaction) (core.Transaction, error) {
	date, err := core.ParseCanonicalDate(row.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction %d: %w", row.ID, err)
	}

	amount := core.AmountFromFloat(row.Amount)
	txType := core.TypeForAmount(amount)
	if row.Type.Valid {
		if t, err := core.ParseTxType(row.Type.String); err == nil {
			txType = t
		}
	}

	return core.Transaction{
		ID:       row.ID,
		Amount:   amount,
		Category: row.Category,
		Date:     date,
		Type:     txType,
	}, nil
}
