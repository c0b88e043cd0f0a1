package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Income  TxType = "Income"
	Expense TxType = "Expense"
)

// Amounts are shown with displayScale decimal places. Values read from REAL
// columns are rounded to storedScale places to drop binary float noise.
const (
	displayScale = 2
	storedScale  = 9
)

type (
	TxType string

	Transaction struct {
		ID       int64
		Amount   decimal.Decimal // positive for Income, negative for Expense
		Category string
		Date     Date
		Type     TxType
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date format, expected DD-MM-YYYY")
	ErrInvalidAmount = errors.New("invalid amount, must be a positive number")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNotFound      = errors.New("transaction not found")
	ErrNoCategories  = errors.New("no categories selected")
	ErrEmptyCategory = errors.New("empty category")
)

// TxTypes returns every transaction type in display order.
func TxTypes() []TxType {
	return []TxType{Income, Expense}
}

func (t TxType) String() string {
	return string(t)
}

func (t TxType) IsValid() bool {
	return t == Income || t == Expense
}

// ParseTxType accepts "income" or "expense" in any letter case.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// TypeForAmount derives the type implied by the sign of a stored amount.
func TypeForAmount(amount decimal.Decimal) TxType {
	if amount.IsNegative() {
		return Expense
	}
	return Income
}

// NewTransaction validates user input and builds a transaction ready to be
// stored. The amount must be positive; expenses are stored negated. The date
// is expected in DD-MM-YYYY form.
func NewTransaction(amount decimal.Decimal, category, date string, t TxType) (Transaction, error) {
	d, err := ParseInputDate(date)
	if err != nil {
		return Transaction{}, err
	}
	if !t.IsValid() {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidType, string(t))
	}
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	if t == Expense {
		amount = amount.Neg()
	}
	return Transaction{
		Amount:   amount,
		Category: NormalizeCategory(category),
		Date:     d,
		Type:     t,
	}, nil
}

// Validate checks the sign invariant of an already built transaction.
func (tx Transaction) Validate() error {
	if !tx.Type.IsValid() {
		return ErrInvalidType
	}
	if tx.Date.IsZero() {
		return ErrInvalidDate
	}
	switch {
	case tx.Type == Income && !tx.Amount.IsPositive():
		return ErrInvalidAmount
	case tx.Type == Expense && !tx.Amount.IsNegative():
		return ErrInvalidAmount
	}
	return nil
}
