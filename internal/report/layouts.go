package report

import (
	"fintrack/internal/core"
)

const (
	SheetSummary      = "Summary"
	SheetCategories   = "Category Summary"
	SheetTransactions = "Transactions"
)

var (
	breakdownHeader    = []string{"Category", "Amount", "Percentage"}
	categoryHeader     = []string{"Category", "Type", "Amount", "Percentage"}
	transactionsHeader = []string{"ID", "Amount", "Category", "Date", "Type"}
)

// GeneralSummary has the totals followed by the income and expense
// breakdown tables.
func GeneralSummary(s core.Summary) Workbook {
	return Workbook{
		Name:   "general_summary",
		Sheets: []Sheet{generalSheet(s)},
	}
}

// CategorySummary is a single Category/Type/Amount/Percentage table.
func CategorySummary(s core.Summary) Workbook {
	return Workbook{
		Name:   "category_summary",
		Sheets: []Sheet{categorySheet(s)},
	}
}

// TransactionsExport lists every transaction, one row each.
func TransactionsExport(txs []core.Transaction, f core.DateFormat) Workbook {
	return Workbook{
		Name:   "transactions",
		Sheets: []Sheet{transactionsSheet(txs, f)},
	}
}

// Mirror combines the three layouts as tabs of one workbook.
func Mirror(s core.Summary, txs []core.Transaction) Workbook {
	return Workbook{
		Name: "ledger",
		Sheets: []Sheet{
			generalSheet(s),
			categorySheet(s),
			transactionsSheet(txs, core.DateFormatRaw),
		},
	}
}

func generalSheet(s core.Summary) Sheet {
	totals := Section{
		Title: "Totals",
		Rows: [][]any{
			{"Total Income", s.TotalIncome.InexactFloat64()},
			{"Total Expense", s.TotalExpense.InexactFloat64()},
			{"Net Total", s.Net.InexactFloat64()},
		},
	}
	return Sheet{
		Name: SheetSummary,
		Sections: []Section{
			totals,
			breakdownSection("Income by Category", s.Income),
			breakdownSection("Expense by Category", s.Expense),
		},
	}
}

func breakdownSection(title string, rows []core.CategoryBreakdown) Section {
	sec := Section{Title: title, Header: breakdownHeader}
	for _, r := range rows {
		sec.Rows = append(sec.Rows, []any{r.Category, r.Amount.InexactFloat64(), Percent(r.Share.InexactFloat64())})
	}
	return sec
}

func categorySheet(s core.Summary) Sheet {
	sec := Section{Header: categoryHeader}
	for _, r := range s.Breakdown() {
		sec.Rows = append(sec.Rows, []any{r.Category, r.Type.String(), r.Amount.InexactFloat64(), Percent(r.Share.InexactFloat64())})
	}
	return Sheet{Name: SheetCategories, Sections: []Section{sec}}
}

func transactionsSheet(txs []core.Transaction, f core.DateFormat) Sheet {
	sec := Section{Header: transactionsHeader}
	for _, tx := range txs {
		sec.Rows = append(sec.Rows, []any{tx.ID, tx.Amount.InexactFloat64(), tx.Category, tx.Date.Format(f), tx.Type.String()})
	}
	return Sheet{Name: SheetTransactions, Sections: []Section{sec}}
}
