package core

import (
	"errors"
	"testing"
)

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseInputDate("15-03-2024")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cases := map[DateFormat]string{
		DateFormatEuropean: "15-03-2024",
		DateFormatAmerican: "03-15-2024",
		DateFormatRaw:      "2024-03-15",
	}
	for f, want := range cases {
		if got := d.Format(f); got != want {
			t.Errorf("Format(%s) = %q, want %q", f, got, want)
		}
	}
}

func TestParseInputDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"01-01-2024", "2024-01-01", true},
		{"1-1-2024", "2024-01-01", true},
		{" 29-02-2024 ", "2024-02-29", true},
		{"29-02-2023", "", false},
		{"2024-01-01", "", false},
		{"01/01/2024", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		d, err := ParseInputDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseInputDate(%q): %v", tc.in, err)
			}
			if d.Canonical() != tc.want {
				t.Fatalf("ParseInputDate(%q) = %s, want %s", tc.in, d.Canonical(), tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseInputDate(%q) expected ErrInvalidDate, got %v", tc.in, err)
		}
	}
}

func TestParseCanonicalDate(t *testing.T) {
	d, err := ParseCanonicalDate("2024-12-31")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.Equal(NewDate(2024, 12, 31).Time) {
		t.Fatalf("got %v", d)
	}
	if _, err := ParseCanonicalDate("31-12-2024"); err == nil {
		t.Fatal("expected error for non canonical input")
	}
}

func TestParseDateFormat(t *testing.T) {
	if f, err := ParseDateFormat("American"); err != nil || f != DateFormatAmerican {
		t.Fatalf("got %q, %v", f, err)
	}
	if _, err := ParseDateFormat("iso"); err == nil {
		t.Fatal("expected error")
	}
}
