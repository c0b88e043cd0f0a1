package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// CategoryBreakdown is one row of a per type breakdown. Share is a fraction
// of the type total (0.25 means 25%).
type CategoryBreakdown struct {
	Category string
	Type     TxType
	Amount   decimal.Decimal
	Share    decimal.Decimal
}

// Percentage returns Share scaled to 0-100.
func (b CategoryBreakdown) Percentage() decimal.Decimal {
	return b.Share.Mul(decimal.NewFromInt(100))
}

// Summary is the complete aggregation over the ledger.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal // absolute value
	Net          decimal.Decimal
	Income       []CategoryBreakdown
	Expense      []CategoryBreakdown
}

// NewSummary derives the net total from the two type totals.
func NewSummary(income, expense decimal.Decimal, incomeRows, expenseRows []CategoryBreakdown) Summary {
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
		Income:       incomeRows,
		Expense:      expenseRows,
	}
}

// Breakdown returns income rows followed by expense rows.
func (s Summary) Breakdown() []CategoryBreakdown {
	out := make([]CategoryBreakdown, 0, len(s.Income)+len(s.Expense))
	out = append(out, s.Income...)
	return append(out, s.Expense...)
}

// NewBreakdown computes per category shares of total. Amounts are reported
// as absolute values. A zero total yields zero shares.
func NewBreakdown(t TxType, sums []CategoryAmount, total decimal.Decimal) []CategoryBreakdown {
	total = total.Abs()
	out := make([]CategoryBreakdown, 0, len(sums))
	for _, s := range sums {
		amount := s.Amount.Abs()
		share := decimal.Zero
		if !total.IsZero() {
			share = amount.Div(total)
		}
		out = append(out, CategoryBreakdown{
			Category: s.Name,
			Type:     t,
			Amount:   amount,
			Share:    share,
		})
	}
	return out
}
