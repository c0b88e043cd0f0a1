package core

import (
	"reflect"
	"testing"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"salary":          "Salary",
		"eating out":      "Eating Out",
		"  eating   out ": "Eating Out",
		"FOOD":            "Food",
		"take-out":        "Take-out",
		"E-COMMERCE":      "E-commerce",
		"o'brien's pub":   "O'brien's Pub",
		"don't  care":     "Don't Care",
		"Food":            "Food",
		"":                "",
		"   ":             "",
	}
	for in, want := range cases {
		if got := NormalizeCategory(in); got != want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeCategoryIdempotent(t *testing.T) {
	for _, in := range []string{"rent and bills", "Side Gig", "x", "take-out", "kid's toys"} {
		once := NormalizeCategory(in)
		if twice := NormalizeCategory(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestUniqueCategories(t *testing.T) {
	got := UniqueCategories([]string{"B", "A", "", "B", "C", "A"})
	want := []string{"B", "A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
