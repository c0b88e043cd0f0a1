package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"fintrack/internal/core"
)

func (a *App) transactionMenu(ctx context.Context) {
	for {
		switch a.menu(ctx, "Transaction Menu", []string{"Add a Transaction", "Delete a Transaction"}, "Return to Main Menu") {
		case 1:
			a.addMenu(ctx)
		case 2:
			a.deleteMenu(ctx)
		case Back:
			return
		}
	}
}

func (a *App) addMenu(ctx context.Context) {
	types := core.TxTypes()
	options := make([]string, len(types))
	for i, t := range types {
		options[i] = "Add " + t.String()
	}
	for {
		n := a.menu(ctx, "Add Transaction Menu", options, "Return to Transaction Menu")
		if n == Back {
			return
		}
		a.addTransaction(ctx, types[n-1])
	}
}

func (a *App) addTransaction(ctx context.Context, t core.TxType) {
	raw, ok := a.ask(ctx, "Enter amount: ")
	if !ok {
		return
	}
	amount, err := core.ParseAmount(raw)
	if err != nil {
		a.report(ctx, err)
		return
	}
	category, ok := a.ask(ctx, "Enter category: ")
	if !ok {
		return
	}
	date, ok := a.ask(ctx, "Enter date (DD-MM-YYYY): ")
	if !ok {
		return
	}

	tx, err := a.ledger.AddTransaction(ctx, amount, category, date, t)
	if err != nil {
		a.report(ctx, err)
		return
	}
	a.p.Printf("Transaction added successfully! (ID %d)\n", tx.ID)
}

func (a *App) deleteMenu(ctx context.Context) {
	for {
		switch a.menu(ctx, "Delete Transaction Menu", []string{
			"Delete by ID",
			"Delete by Date Range",
			"Delete by Category",
			"Delete All Transactions",
		}, "Return to Transaction Menu") {
		case 1:
			a.deleteByID(ctx)
		case 2:
			a.deleteByDateRange(ctx)
		case 3:
			a.deleteByCategory(ctx)
		case 4:
			a.deleteAll(ctx)
		case Back:
			return
		}
	}
}

func (a *App) deleteByID(ctx context.Context) {
	raw, ok := a.ask(ctx, "Enter transaction ID to delete: ")
	if !ok {
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		a.p.Println("Invalid ID. Please enter a number.")
		return
	}

	tx, err := a.ledger.GetTransaction(ctx, id)
	if err == nil {
		err = a.ledger.DeleteByID(ctx, id)
	}
	switch {
	case errors.Is(err, core.ErrNotFound):
		a.p.Printf("No transaction found with ID %d.\n", id)
	case err != nil:
		a.report(ctx, err)
	default:
		a.p.Printf("Transaction deleted successfully! (%s %s in %s on %s)\n",
			tx.Type, core.FormatAmount(tx.Amount), tx.Category, tx.Date.Format(core.DateFormatEuropean))
	}
}

func (a *App) deleteByDateRange(ctx context.Context) {
	start, ok := a.ask(ctx, "Enter start date (DD-MM-YYYY): ")
	if !ok {
		return
	}
	end, ok := a.ask(ctx, "Enter end date (DD-MM-YYYY): ")
	if !ok {
		return
	}

	n, err := a.ledger.DeleteByDateRange(ctx, start, end)
	if err != nil {
		a.report(ctx, err)
		return
	}
	a.p.Printf("Transactions from %s to %s have been deleted (%d removed).\n", start, end, n)
}

func (a *App) deleteByCategory(ctx context.Context) {
	category, ok := a.chooseCategory(ctx)
	if !ok {
		return
	}
	n, err := a.ledger.DeleteByCategory(ctx, category)
	if err != nil {
		a.report(ctx, err)
		return
	}
	a.p.Printf("All transactions in the category '%s' have been deleted (%d removed).\n", category, n)
}

func (a *App) deleteAll(ctx context.Context) {
	answer, ok := a.ask(ctx, "Are you sure you want to delete all transactions? (yes/no): ")
	if !ok {
		return
	}
	if !isYes(answer) {
		a.p.Println("Deletion cancelled.")
		return
	}
	if _, err := a.ledger.DeleteAll(ctx); err != nil {
		a.report(ctx, err)
		return
	}
	a.p.Println("All transactions have been deleted.")
}

func isYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// PrintTransactions lists every transaction with dates shown in f.
func (a *App) PrintTransactions(ctx context.Context, f core.DateFormat) {
	txs, err := a.ledger.ListAll(ctx)
	if err != nil {
		a.report(ctx, err)
		return
	}
	a.p.Println()
	if len(txs) == 0 {
		a.p.Println("No transactions found.")
		return
	}
	for _, tx := range txs {
		a.p.Printf("ID: %d  |  Amount: %s  |  Category: %s  |  Date: %s  |  Type: %s\n",
			tx.ID, a.colorAmount(tx), tx.Category, tx.Date.Format(f), tx.Type)
	}
}
