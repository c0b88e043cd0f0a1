// Package core provides money parsing and handling utilities.
//
// This file contains the parsing of user typed amounts into decimals.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user typed amount to a decimal.
//
// Both dot (12.34) and comma (12,34) decimal separators are accepted. Signs are
// rejected: the transaction type decides the sign, so the input must be a
// plain positive number.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("-5")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatAmount renders an amount with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(displayScale)
}

// AmountFromFloat converts a REAL column value to a decimal, dropping float
// noise beyond storedScale places (0.1+0.2 reads back as 0.3).
func AmountFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(storedScale)
}
