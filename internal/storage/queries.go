package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries holds the SQL for the transactions table.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Transaction is a raw row of the transactions table. Category and type are
// nullable in stores that predate the current schema.
type Transaction struct {
	ID       int64
	Amount   float64
	Category string
	Date     string
	Type     sql.NullString
}

type CreateTransactionParams struct {
	Amount   float64
	Category string
	Date     string
	Type     string
}

type CategorySum struct {
	Category string
	Total    float64
}

const selectTransaction = `SELECT id, COALESCE(amount, 0), COALESCE(category, ''), COALESCE(date, ''), type FROM transactions`

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO transactions (amount, category, date, type) VALUES (?, ?, ?, ?)`,
		arg.Amount, arg.Category, arg.Date, arg.Type)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (q *Queries) GetTransaction(ctx context.Context, id int64) (Transaction, error) {
	row := q.db.QueryRowContext(ctx, selectTransaction+` WHERE id = ?`, id)
	var t Transaction
	err := row.Scan(&t.ID, &t.Amount, &t.Category, &t.Date, &t.Type)
	return t, err
}

func (q *Queries) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := q.db.QueryContext(ctx, selectTransaction+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Amount, &t.Category, &t.Date, &t.Type); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (q *Queries) CountTransactions(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n)
	return n, err
}

func (q *Queries) DeleteTransaction(ctx context.Context, id int64) (int64, error) {
	return q.exec(ctx, `DELETE FROM transactions WHERE id = ?`, id)
}

func (q *Queries) DeleteTransactionsBetween(ctx context.Context, start, end string) (int64, error) {
	return q.exec(ctx, `DELETE FROM transactions WHERE date BETWEEN ? AND ?`, start, end)
}

func (q *Queries) DeleteTransactionsByCategory(ctx context.Context, category string) (int64, error) {
	return q.exec(ctx, `DELETE FROM transactions WHERE category = ?`, category)
}

func (q *Queries) DeleteAllTransactions(ctx context.Context) (int64, error) {
	return q.exec(ctx, `DELETE FROM transactions`)
}

func (q *Queries) ListDistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM transactions WHERE category IS NOT NULL ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (q *Queries) SumByType(ctx context.Context, txType string) (float64, error) {
	var total float64
	err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0.0) FROM transactions WHERE type = ?`, txType).Scan(&total)
	return total, err
}

func (q *Queries) SumByCategory(ctx context.Context, category string) (float64, error) {
	var total float64
	err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0.0) FROM transactions WHERE category = ?`, category).Scan(&total)
	return total, err
}

func (q *Queries) SumsByCategory(ctx context.Context, txType string) ([]CategorySum, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT COALESCE(category, ''), COALESCE(SUM(amount), 0.0) FROM transactions
		 WHERE type = ? GROUP BY category ORDER BY category`, txType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CategorySum
	for rows.Next() {
		var cs CategorySum
		if err := rows.Scan(&cs.Category, &cs.Total); err != nil {
			return nil, err
		}
		items = append(items, cs)
	}
	return items, rows.Err()
}

// RenameCategories rewrites every row whose category is one of from.
func (q *Queries) RenameCategories(ctx context.Context, from []string, to string) (int64, error) {
	if len(from) == 0 {
		return 0, nil
	}
	args := make([]any, 0, len(from)+1)
	args = append(args, to)
	for _, c := range from {
		args = append(args, c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(from)), ", ")
	query := fmt.Sprintf(`UPDATE transactions SET category = ? WHERE category IN (%s)`, placeholders)
	return q.exec(ctx, query, args...)
}

func (q *Queries) AddTypeColumn(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, `ALTER TABLE transactions ADD COLUMN type TEXT`)
	return err
}

func (q *Queries) BackfillTypes(ctx context.Context) (int64, error) {
	return q.exec(ctx,
		`UPDATE transactions SET type = CASE WHEN amount < 0 THEN 'Expense' ELSE 'Income' END
		 WHERE type IS NULL OR type = ''`)
}

func (q *Queries) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
