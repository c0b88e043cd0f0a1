package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

func seedExample(t *testing.T, svc *LedgerService) {
	t.Helper()
	ctx := context.Background()
	rows := []struct {
		amount string
		cat    string
		date   string
		typ    core.TxType
	}{
		{"1000", "salary", "01-01-2024", core.Income},
		{"200", "food", "02-01-2024", core.Expense},
		{"50", "food", "03-01-2024", core.Expense},
		{"150", "rent", "04-01-2024", core.Expense},
		{"250", "side gig", "05-01-2024", core.Income},
	}
	for _, r := range rows {
		if _, err := svc.AddTransaction(ctx, decimal.RequireFromString(r.amount), r.cat, r.date, r.typ); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestSummaryService_WorkedExample(t *testing.T) {
	repo := newTestStorage(t)
	ledger := NewLedgerService(repo, nil)
	summary := NewSummaryService(repo)
	ctx := context.Background()

	if _, err := ledger.AddTransaction(ctx, decimal.NewFromInt(1000), "salary", "01-01-2024", core.Income); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.AddTransaction(ctx, decimal.NewFromInt(200), "food", "02-01-2024", core.Expense); err != nil {
		t.Fatal(err)
	}

	income, _ := summary.TotalByType(ctx, core.Income)
	expense, _ := summary.TotalByType(ctx, core.Expense)
	net, _ := summary.NetTotal(ctx)
	if !income.Equal(decimal.NewFromInt(1000)) || !expense.Equal(decimal.NewFromInt(200)) || !net.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("income=%s expense=%s net=%s", income, expense, net)
	}
}

func TestSummaryService_EmptyLedger(t *testing.T) {
	summary := NewSummaryService(newTestStorage(t))
	s, err := summary.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.Net.IsZero() {
		t.Fatalf("expected zero totals, got %+v", s)
	}
	if len(s.Income) != 0 || len(s.Expense) != 0 {
		t.Fatalf("expected empty breakdowns, got %+v", s)
	}
}

func TestSummaryService_Breakdown(t *testing.T) {
	repo := newTestStorage(t)
	seedExample(t, NewLedgerService(repo, nil))
	summary := NewSummaryService(repo)
	ctx := context.Background()

	rows, err := summary.BreakdownByCategory(ctx, core.Expense)
	if err != nil {
		t.Fatalf("BreakdownByCategory: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	food, rent := rows[0], rows[1]
	if food.Category != "Food" || !food.Amount.Equal(decimal.NewFromInt(250)) || !food.Percentage().Equal(decimal.RequireFromString("62.5")) {
		t.Fatalf("food row = %+v (%s%%)", food, food.Percentage())
	}
	if rent.Category != "Rent" || !rent.Share.Equal(decimal.RequireFromString("0.375")) {
		t.Fatalf("rent row = %+v", rent)
	}

	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Share)
	}
	if !sum.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("shares sum to %s", sum)
	}
}

func TestSummaryService_NetMatchesSummary(t *testing.T) {
	repo := newTestStorage(t)
	seedExample(t, NewLedgerService(repo, nil))
	summary := NewSummaryService(repo)
	ctx := context.Background()

	s, err := summary.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	net, _ := summary.NetTotal(ctx)
	if !s.Net.Equal(net) {
		t.Fatalf("summary net %s != NetTotal %s", s.Net, net)
	}
	if !s.Net.Equal(decimal.NewFromInt(850)) {
		t.Fatalf("net = %s, want 850", s.Net)
	}
}

func TestSummaryService_TotalByCategorySigned(t *testing.T) {
	repo := newTestStorage(t)
	ledger := NewLedgerService(repo, nil)
	summary := NewSummaryService(repo)
	ctx := context.Background()

	ledger.AddTransaction(ctx, decimal.NewFromInt(100), "gifts", "01-01-2024", core.Income)
	ledger.AddTransaction(ctx, decimal.NewFromInt(30), "gifts", "02-01-2024", core.Expense)

	total, err := summary.TotalByCategory(ctx, "Gifts")
	if err != nil {
		t.Fatalf("TotalByCategory: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("total = %s, want 70", total)
	}
	if missing, _ := summary.TotalByCategory(ctx, "Nope"); !missing.IsZero() {
		t.Fatalf("missing category total = %s", missing)
	}
}
