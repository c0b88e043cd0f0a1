package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	good := map[string]string{
		"12.34": "12.34",
		"12,34": "12.34",
		" 7 ":   "7",
		"0.5":   "0.5",
	}
	for in, want := range good {
		got, err := ParseAmount(in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", in, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("ParseAmount(%q) = %s, want %s", in, got, want)
		}
	}
	for _, in := range []string{"", "-5", "+5", "0", "abc", "1.2.3"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q) expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestAmountFromFloat(t *testing.T) {
	got := AmountFromFloat(0.1 + 0.2)
	if !got.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("got %s", got)
	}
	if got := AmountFromFloat(1.239); !got.Equal(decimal.RequireFromString("1.239")) {
		t.Fatalf("AmountFromFloat(1.239) = %s", got)
	}
	if FormatAmount(decimal.NewFromInt(-200)) != "-200.00" {
		t.Fatalf("FormatAmount = %s", FormatAmount(decimal.NewFromInt(-200)))
	}
}
