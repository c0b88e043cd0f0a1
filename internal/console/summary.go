package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

func (a *App) summaryMenu(ctx context.Context) {
	switch a.menu(ctx, "Choose Summary Type", []string{"Complete Summary", "Summary by Category"}, "Return to Main Menu") {
	case 1:
		a.PrintSummary(ctx)
	case 2:
		category, ok := a.chooseCategory(ctx)
		if !ok {
			return
		}
		total, err := a.summary.TotalByCategory(ctx, category)
		if err != nil {
			a.report(ctx, err)
			return
		}
		a.p.Printf("\nTotal Amount Spent in %s: %s\n", category, core.FormatAmount(total))
	}
}

// PrintSummary writes the totals and both per category breakdowns.
func (a *App) PrintSummary(ctx context.Context) {
	s, err := a.summary.Summary(ctx)
	if err != nil {
		a.report(ctx, err)
		return
	}

	a.p.Printf("\nTotal Income: %s\n", core.FormatAmount(s.TotalIncome))
	a.p.Printf("Total Expense: %s\n", core.FormatAmount(s.TotalExpense))
	a.p.Printf("Net Total: %s\n\n", core.FormatAmount(s.Net))

	a.printBreakdown("Income Breakdown", s.Income)
	a.printBreakdown("Expense Breakdown", s.Expense)
}

func (a *App) printBreakdown(title string, rows []core.CategoryBreakdown) {
	a.p.Printf("%s:\n\n", title)
	for _, r := range rows {
		a.p.Printf("Category: %s\nAmount: %s\nPercentage: %s%%\n\n",
			r.Category, core.FormatAmount(r.Amount), r.Percentage().StringFixed(2))
	}
}

func (a *App) mergeCategories(ctx context.Context) {
	cats, err := a.categories.ListCategories(ctx)
	if err != nil {
		a.report(ctx, err)
		return
	}
	if len(cats) == 0 {
		a.p.Println("No categories to merge.")
		return
	}

	selected, ok := a.chooseCategories(ctx, cats)
	if !ok {
		return
	}
	name, ok := a.ask(ctx, "Enter new category name: ")
	if !ok {
		return
	}

	n, err := a.categories.MergeCategories(ctx, selected, name)
	if err != nil {
		a.report(ctx, err)
		return
	}
	a.p.Printf("Merged %d transaction(s) into %s.\n", n, services.NormalizeCategoryName(name))
}

// chooseCategories collects an ordered set of distinct categories. A blank
// answer finishes the selection once at least one category is picked.
func (a *App) chooseCategories(ctx context.Context, cats []string) ([]string, bool) {
	a.p.Println("\nCategories:")
	for i, c := range cats {
		a.p.Printf("%d. %s\n", i+1, c)
	}

	var selected []string
	picked := make(map[int]bool, len(cats))
	for {
		answer, ok := a.ask(ctx, "Enter a category number to merge (blank when done): ")
		if !ok {
			return nil, false
		}
		if answer == "" {
			if len(selected) == 0 {
				a.p.Println("Select at least one category.")
				continue
			}
			return selected, true
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(cats) {
			a.p.Println(invalidChoice)
			continue
		}
		if picked[n] {
			a.p.Printf("%s is already selected.\n", cats[n-1])
			continue
		}
		picked[n] = true
		selected = append(selected, cats[n-1])
		a.p.Printf("Selected: %s\n", strings.Join(selected, ", "))
	}
}

func (a *App) exportMenu(ctx context.Context) {
	var (
		layout report.Layout
		f      = core.DateFormatEuropean
	)
	switch a.menu(ctx, "Export to Spreadsheet", []string{"General Summary", "Category Summary", "Transactions"}, "Return to Main Menu") {
	case 1:
		layout = report.LayoutGeneral
	case 2:
		layout = report.LayoutCategory
	case 3:
		layout = report.LayoutTransactions
		chosen, ok := a.chooseDateFormat(ctx)
		if !ok {
			return
		}
		f = chosen
	default:
		return
	}

	ref, err := a.Export(ctx, layout, f)
	if err != nil {
		a.report(ctx, err)
		return
	}
	a.p.Printf("Exported to %s\n", ref)
}

// Export builds the workbook for layout and hands it to the writer. f only
// applies to the transactions layout.
func (a *App) Export(ctx context.Context, layout report.Layout, f core.DateFormat) (string, error) {
	var wb report.Workbook
	switch layout {
	case report.LayoutGeneral, report.LayoutCategory:
		s, err := a.summary.Summary(ctx)
		if err != nil {
			return "", err
		}
		if layout == report.LayoutGeneral {
			wb = report.GeneralSummary(s)
		} else {
			wb = report.CategorySummary(s)
		}
	case report.LayoutTransactions:
		txs, err := a.ledger.ListAll(ctx)
		if err != nil {
			return "", err
		}
		wb = report.TransactionsExport(txs, f)
	default:
		return "", fmt.Errorf("unknown layout %q", layout)
	}

	ref, err := a.writer.WriteWorkbook(ctx, wb)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", layout, err)
	}
	a.logger.InfoContext(ctx, "Export written", applog.FieldLayout, string(layout), applog.FieldRef, ref)
	return ref, nil
}
