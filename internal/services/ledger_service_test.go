package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
)

func TestLedgerService_AddTransaction(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewLedgerService(newTestStorage(t), pub)
	ctx := context.Background()

	income, err := svc.AddTransaction(ctx, decimal.NewFromInt(1000), "salary", "01-01-2024", core.Income)
	if err != nil {
		t.Fatalf("add income: %v", err)
	}
	if !income.Amount.Equal(decimal.NewFromInt(1000)) || income.Category != "Salary" || income.Date.Canonical() != "2024-01-01" {
		t.Fatalf("unexpected income: %+v", income)
	}

	expense, err := svc.AddTransaction(ctx, decimal.NewFromInt(200), "food", "02-01-2024", core.Expense)
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if !expense.Amount.Equal(decimal.NewFromInt(-200)) {
		t.Fatalf("expense amount = %s, want -200", expense.Amount)
	}

	if got := pub.ops(); !reflect.DeepEqual(got, []string{amqp.OpAdd, amqp.OpAdd}) {
		t.Fatalf("events = %v", got)
	}
	if pub.events[1].ID != expense.ID {
		t.Fatalf("event id = %d, want %d", pub.events[1].ID, expense.ID)
	}
}

func TestLedgerService_AddTransactionKeepsInputAmount(t *testing.T) {
	svc := NewLedgerService(newTestStorage(t), nil)
	ctx := context.Background()

	for _, in := range []string{"0.004", "10.005", "1.239", "12.345"} {
		added, err := svc.AddTransaction(ctx, decimal.RequireFromString(in), "misc", "01-01-2024", core.Income)
		if err != nil {
			t.Fatalf("add %s: %v", in, err)
		}
		stored, err := svc.GetTransaction(ctx, added.ID)
		if err != nil {
			t.Fatalf("get %s: %v", in, err)
		}
		if !stored.Amount.Equal(decimal.RequireFromString(in)) {
			t.Errorf("stored amount = %s, want %s", stored.Amount, in)
		}
	}
}

func TestLedgerService_AddTransactionValidation(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewLedgerService(newTestStorage(t), pub)
	ctx := context.Background()

	if _, err := svc.AddTransaction(ctx, decimal.NewFromInt(10), "x", "2024-01-01", core.Income); !errors.Is(err, core.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := svc.AddTransaction(ctx, decimal.NewFromInt(-10), "x", "01-01-2024", core.Expense); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	txs, _ := svc.ListAll(ctx)
	if len(txs) != 0 {
		t.Fatalf("rejected input was stored: %+v", txs)
	}
	if len(pub.events) != 0 {
		t.Fatalf("events published for rejected input: %v", pub.ops())
	}
}

func TestLedgerService_PublishFailureDoesNotFail(t *testing.T) {
	pub := &recordingPublisher{err: errBrokerDown}
	svc := NewLedgerService(newTestStorage(t), pub)

	if _, err := svc.AddTransaction(context.Background(), decimal.NewFromInt(5), "x", "01-01-2024", core.Income); err != nil {
		t.Fatalf("publish failure leaked: %v", err)
	}
}

func TestLedgerService_Deletes(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewLedgerService(newTestStorage(t), nil)
	ctx := context.Background()

	add := func(amount int64, cat, date string, typ core.TxType) core.Transaction {
		t.Helper()
		tx, err := svc.AddTransaction(ctx, decimal.NewFromInt(amount), cat, date, typ)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		return tx
	}
	first := add(10, "food", "01-01-2024", core.Expense)
	add(20, "food", "10-01-2024", core.Expense)
	add(30, "rent", "20-01-2024", core.Expense)
	add(40, "salary", "01-02-2024", core.Income)

	svc.events.publisher = pub

	if err := svc.DeleteByID(ctx, first.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if err := svc.DeleteByID(ctx, first.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.DeleteByDateRange(ctx, "bad", "31-01-2024"); !errors.Is(err, core.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	n, err := svc.DeleteByDateRange(ctx, "10-01-2024", "10-01-2024")
	if err != nil || n != 1 {
		t.Fatalf("DeleteByDateRange: n=%d err=%v", n, err)
	}

	n, err = svc.DeleteByCategory(ctx, "Nothing")
	if err != nil || n != 0 {
		t.Fatalf("DeleteByCategory missing: n=%d err=%v", n, err)
	}
	n, err = svc.DeleteByCategory(ctx, "Rent")
	if err != nil || n != 1 {
		t.Fatalf("DeleteByCategory: n=%d err=%v", n, err)
	}

	n, err = svc.DeleteAll(ctx)
	if err != nil || n != 1 {
		t.Fatalf("DeleteAll: n=%d err=%v", n, err)
	}

	want := []string{amqp.OpDelete, amqp.OpDeleteRange, amqp.OpDeleteCategory, amqp.OpDeleteAll}
	if got := pub.ops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v (no-op deletes publish nothing)", got, want)
	}
}

func TestLedgerService_ListDistinctCategories(t *testing.T) {
	svc := NewLedgerService(newTestStorage(t), nil)
	ctx := context.Background()
	for _, c := range []string{"food", "FOOD", "eating out"} {
		if _, err := svc.AddTransaction(ctx, decimal.NewFromInt(1), c, "01-01-2024", core.Expense); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	cats, err := svc.ListDistinctCategories(ctx)
	if err != nil {
		t.Fatalf("ListDistinctCategories: %v", err)
	}
	if want := []string{"Eating Out", "Food"}; !reflect.DeepEqual(cats, want) {
		t.Fatalf("got %v, want %v", cats, want)
	}
}
