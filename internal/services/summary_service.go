package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/storage"
)

// SummaryService computes totals and per category breakdowns.
type SummaryService struct {
	storage *storage.SQLiteRepository
	logger  *applog.Logger
}

func NewSummaryService(storage *storage.SQLiteRepository) *SummaryService {
	return &SummaryService{storage: storage, logger: applog.Default(applog.ComponentSummary)}
}

// TotalByType returns the income total, or the expense total as a positive
// number. An empty ledger totals zero.
func (s *SummaryService) TotalByType(ctx context.Context, t core.TxType) (decimal.Decimal, error) {
	total, err := s.storage.SumByType(ctx, t)
	if err != nil {
		return decimal.Zero, err
	}
	if t == core.Expense {
		return total.Abs(), nil
	}
	return total, nil
}

// BreakdownByCategory returns each category's amount and share of the type total.
func (s *SummaryService) BreakdownByCategory(ctx context.Context, t core.TxType) ([]core.CategoryBreakdown, error) {
	total, err := s.TotalByType(ctx, t)
	if err != nil {
		return nil, err
	}
	sums, err := s.storage.SumsByCategory(ctx, t)
	if err != nil {
		return nil, err
	}
	return core.NewBreakdown(t, sums, total), nil
}

// TotalByCategory returns the signed sum of a category across both types.
func (s *SummaryService) TotalByCategory(ctx context.Context, category string) (decimal.Decimal, error) {
	return s.storage.SumByCategory(ctx, category)
}

// NetTotal is income minus the absolute expense total.
func (s *SummaryService) NetTotal(ctx context.Context) (decimal.Decimal, error) {
	income, err := s.TotalByType(ctx, core.Income)
	if err != nil {
		return decimal.Zero, err
	}
	expense, err := s.TotalByType(ctx, core.Expense)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Sub(expense), nil
}

// Summary gathers the totals and both breakdowns.
func (s *SummaryService) Summary(ctx context.Context) (core.Summary, error) {
	income, err := s.TotalByType(ctx, core.Income)
	if err != nil {
		return core.Summary{}, fmt.Errorf("income total: %w", err)
	}
	expense, err := s.TotalByType(ctx, core.Expense)
	if err != nil {
		return core.Summary{}, fmt.Errorf("expense total: %w", err)
	}
	incomeRows, err := s.BreakdownByCategory(ctx, core.Income)
	if err != nil {
		return core.Summary{}, fmt.Errorf("income breakdown: %w", err)
	}
	expenseRows, err := s.BreakdownByCategory(ctx, core.Expense)
	if err != nil {
		return core.Summary{}, fmt.Errorf("expense breakdown: %w", err)
	}

	summary := core.NewSummary(income, expense, incomeRows, expenseRows)
	s.logger.DebugContext(ctx, "Summary computed",
		"income", core.FormatAmount(summary.TotalIncome),
		"expense", core.FormatAmount(summary.TotalExpense),
		applog.FieldRows, len(incomeRows)+len(expenseRows))
	return summary, nil
}
