package memory

import (
	"context"
	"testing"

	"fintrack/internal/report"
)

func TestStoreWriteAndLast(t *testing.T) {
	s := New()
	if _, ok := s.Last(); ok {
		t.Fatal("expected empty store")
	}

	for i, name := range []string{"general_summary", "transactions"} {
		ref, err := s.WriteWorkbook(context.Background(), report.Workbook{
			Name:   name,
			Sheets: []report.Sheet{{Name: "Summary"}},
		})
		if err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if want := "mem:" + string(rune('1'+i)); ref != want {
			t.Fatalf("ref = %q, want %q", ref, want)
		}
	}

	last, ok := s.Last()
	if !ok || last.Name != "transactions" {
		t.Fatalf("Last = %+v, %v", last, ok)
	}
	if got := len(s.Workbooks()); got != 2 {
		t.Fatalf("Workbooks len = %d", got)
	}
}

func TestStoreRejectsEmptyWorkbook(t *testing.T) {
	if _, err := New().WriteWorkbook(context.Background(), report.Workbook{Name: "x"}); err == nil {
		t.Fatal("expected error")
	}
}
