package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	// CanonicalLayout is the sortable storage form.
	CanonicalLayout = "2006-01-02"
	// InputLayout accepts DD-MM-YYYY with one or two digit day and month.
	InputLayout    = "2-1-2006"
	europeanLayout = "02-01-2006"
	americanLayout = "01-02-2006"
)

const (
	DateFormatAmerican DateFormat = "american"
	DateFormatEuropean DateFormat = "european"
	DateFormatRaw      DateFormat = "raw"
)

type (
	Date struct {
		time.Time
	}

	// DateFormat selects how dates are displayed to the user.
	DateFormat string
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseInputDate parses a user supplied DD-MM-YYYY date.
func ParseInputDate(s string) (Date, error) {
	t, err := time.Parse(InputLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// ParseCanonicalDate parses the YYYY-MM-DD storage form.
func ParseCanonicalDate(s string) (Date, error) {
	t, err := time.Parse(CanonicalLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse stored date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// Canonical returns the YYYY-MM-DD form used for storage and range comparison.
func (d Date) Canonical() string {
	return d.Time.Format(CanonicalLayout)
}

// Format renders the date for display.
func (d Date) Format(f DateFormat) string {
	switch f {
	case DateFormatAmerican:
		return d.Time.Format(americanLayout)
	case DateFormatEuropean:
		return d.Time.Format(europeanLayout)
	default:
		return d.Canonical()
	}
}

func (d Date) String() string {
	return d.Canonical()
}

func ParseDateFormat(s string) (DateFormat, error) {
	switch f := DateFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case DateFormatAmerican, DateFormatEuropean, DateFormatRaw:
		return f, nil
	}
	return "", fmt.Errorf("unknown date format %q", s)
}
