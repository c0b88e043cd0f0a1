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

func TestCategoryService_MergeConservesTotal(t *testing.T) {
	repo := newTestStorage(t)
	ledger := NewLedgerService(repo, nil)
	pub := &recordingPublisher{}
	cats := NewCategoryService(repo, pub)
	summary := NewSummaryService(repo)
	ctx := context.Background()

	for _, in := range []struct {
		amount int64
		cat    string
	}{{10, "groceries"}, {20, "supermarket"}, {5, "groceries"}, {40, "rent"}} {
		if _, err := ledger.AddTransaction(ctx, decimal.NewFromInt(in.amount), in.cat, "01-01-2024", core.Expense); err != nil {
			t.Fatal(err)
		}
	}
	before, _ := summary.TotalByType(ctx, core.Expense)

	n, err := cats.MergeCategories(ctx, []string{"Groceries", "Supermarket", "Groceries"}, "  food ")
	if err != nil {
		t.Fatalf("MergeCategories: %v", err)
	}
	if n != 3 {
		t.Fatalf("rewrote %d rows, want 3", n)
	}

	list, _ := cats.ListCategories(ctx)
	if want := []string{"Food", "Rent"}; !reflect.DeepEqual(list, want) {
		t.Fatalf("categories = %v, want %v", list, want)
	}
	food, _ := summary.TotalByCategory(ctx, "Food")
	if !food.Equal(decimal.NewFromInt(-35)) {
		t.Fatalf("food total = %s, want -35", food)
	}
	after, _ := summary.TotalByType(ctx, core.Expense)
	if !after.Equal(before) {
		t.Fatalf("total changed: %s -> %s", before, after)
	}
	if got := pub.ops(); !reflect.DeepEqual(got, []string{amqp.OpMerge}) {
		t.Fatalf("events = %v", got)
	}
}

func TestCategoryService_MergeIdempotent(t *testing.T) {
	repo := newTestStorage(t)
	ledger := NewLedgerService(repo, nil)
	cats := NewCategoryService(repo, nil)
	ctx := context.Background()
	ledger.AddTransaction(ctx, decimal.NewFromInt(1), "food", "01-01-2024", core.Expense)

	for i := 0; i < 2; i++ {
		if _, err := cats.MergeCategories(ctx, []string{"Food"}, "food"); err != nil {
			t.Fatalf("merge %d: %v", i, err)
		}
	}
	list, _ := cats.ListCategories(ctx)
	if !reflect.DeepEqual(list, []string{"Food"}) {
		t.Fatalf("categories = %v", list)
	}
}

func TestCategoryService_MergeValidation(t *testing.T) {
	cats := NewCategoryService(newTestStorage(t), nil)
	ctx := context.Background()

	if _, err := cats.MergeCategories(ctx, nil, "Food"); !errors.Is(err, core.ErrNoCategories) {
		t.Fatalf("expected ErrNoCategories, got %v", err)
	}
	if _, err := cats.MergeCategories(ctx, []string{"A"}, "   "); !errors.Is(err, core.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
}

func TestNormalizeCategoryName(t *testing.T) {
	if got := NormalizeCategoryName("eating out"); got != "Eating Out" {
		t.Fatalf("got %q", got)
	}
}
