package console

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/sheets"
)

var mainOptions = []string{
	"Transactions",
	"View Transactions",
	"Generate Summary",
	"Merge Categories",
	"Export to Spreadsheet",
}

// App drives the menus. Every failure is reported to the user and the menu
// loop carries on; only Exit or the end of input stops it.
type App struct {
	ledger     *services.LedgerService
	summary    *services.SummaryService
	categories *services.CategoryService
	writer     sheets.WorkbookWriter
	p          *Prompter
	logger     *applog.Logger

	income  *color.Color
	expense *color.Color
}

func NewApp(ledger *services.LedgerService, summary *services.SummaryService, categories *services.CategoryService, writer sheets.WorkbookWriter, p *Prompter) *App {
	return &App{
		ledger:     ledger,
		summary:    summary,
		categories: categories,
		writer:     writer,
		p:          p,
		logger:     applog.Default(applog.ComponentConsole),
		income:     color.New(color.FgHiGreen),
		expense:    color.New(color.FgHiRed),
	}
}

// Run shows the main menu until the user exits, the input ends or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) {
	for {
		switch a.menu(ctx, "Financial Tracker Menu", mainOptions, "Exit") {
		case 1:
			a.transactionMenu(ctx)
		case 2:
			if f, ok := a.chooseDateFormat(ctx); ok {
				a.PrintTransactions(ctx, f)
			}
		case 3:
			a.summaryMenu(ctx)
		case 4:
			a.mergeCategories(ctx)
		case 5:
			a.exportMenu(ctx)
		case Back:
			return
		}
	}
}

// menu is Prompter.Menu that gives up once ctx is done, so every nested
// loop unwinds back to Run.
func (a *App) menu(ctx context.Context, title string, options []string, back string) int {
	if ctx.Err() != nil {
		return Back
	}
	n := a.p.Menu(title, options, back)
	if ctx.Err() != nil {
		return Back
	}
	return n
}

func (a *App) ask(ctx context.Context, prompt string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	answer, ok := a.p.Ask(prompt)
	if !ok || ctx.Err() != nil {
		return "", false
	}
	return answer, true
}

func (a *App) pick(ctx context.Context, title string, items []string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	item, ok := a.p.Pick(title, items)
	if !ok || ctx.Err() != nil {
		return "", false
	}
	return item, true
}

func (a *App) chooseDateFormat(ctx context.Context) (core.DateFormat, bool) {
	switch a.menu(ctx, "Choose Date Format", []string{
		"American (MM-DD-YYYY)",
		"European (DD-MM-YYYY)",
		"Raw (YYYY-MM-DD)",
	}, "Return to Main Menu") {
	case 1:
		return core.DateFormatAmerican, true
	case 2:
		return core.DateFormatEuropean, true
	case 3:
		return core.DateFormatRaw, true
	}
	return "", false
}

// chooseCategory offers the stored categories. ok is false when there are
// none or the user cancels.
func (a *App) chooseCategory(ctx context.Context) (string, bool) {
	cats, err := a.categories.ListCategories(ctx)
	if err != nil {
		a.report(ctx, err)
		return "", false
	}
	if len(cats) == 0 {
		a.p.Println("No categories found.")
		return "", false
	}
	return a.pick(ctx, "Choose a Category", cats)
}

// report turns an error into a message for the user.
func (a *App) report(ctx context.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		a.p.Println("Invalid date format. Please enter the date in DD-MM-YYYY format.")
	case errors.Is(err, core.ErrInvalidAmount):
		a.p.Println("Invalid amount. Please enter a positive number.")
	case errors.Is(err, core.ErrEmptyCategory):
		a.p.Println("Category name cannot be empty.")
	case errors.Is(err, core.ErrNoCategories):
		a.p.Println("Select at least one category.")
	default:
		a.logger.ErrorContext(ctx, "Operation failed", applog.FieldError, err)
		a.p.Printf("Error: %v\n", err)
	}
}

func (a *App) colorAmount(tx core.Transaction) string {
	c := a.income
	if tx.Type == core.Expense {
		c = a.expense
	}
	return c.Sprint(core.FormatAmount(tx.Amount))
}
