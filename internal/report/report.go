// Package report lays out ledger data as spreadsheet-shaped workbooks.
//
// A Workbook holds sheets, a sheet holds sections stacked vertically, each
// with an optional title, a header row and data rows. Writers in
// internal/sheets turn workbooks into .xlsx files or Google Sheets tabs.
package report

import (
	"fmt"
	"strings"
)

const (
	LayoutGeneral      Layout = "general"
	LayoutCategory     Layout = "category"
	LayoutTransactions Layout = "transactions"
)

const (
	RowTitle RowKind = iota
	RowHeader
	RowData
	RowBlank
)

type (
	// Layout names one of the export layouts.
	Layout string

	// Percent is a fraction (0.25) that writers display as a percentage.
	Percent float64

	RowKind int

	Section struct {
		Title  string
		Header []string
		Rows   [][]any
	}

	Sheet struct {
		Name     string
		Sections []Section
	}

	Workbook struct {
		Name   string
		Sheets []Sheet
	}

	// GridRow is one rendered row of a sheet.
	GridRow struct {
		Kind  RowKind
		Cells []any
	}
)

func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutGeneral, LayoutCategory, LayoutTransactions:
		return l, nil
	}
	return "", fmt.Errorf("unknown layout %q (want general, category or transactions)", s)
}

// Grid flattens the sheet's sections into rows, separated by a blank row.
func (s Sheet) Grid() []GridRow {
	var out []GridRow
	for i, sec := range s.Sections {
		if i > 0 {
			out = append(out, GridRow{Kind: RowBlank})
		}
		if sec.Title != "" {
			out = append(out, GridRow{Kind: RowTitle, Cells: []any{sec.Title}})
		}
		if len(sec.Header) > 0 {
			cells := make([]any, len(sec.Header))
			for j, h := range sec.Header {
				cells[j] = h
			}
			out = append(out, GridRow{Kind: RowHeader, Cells: cells})
		}
		for _, r := range sec.Rows {
			out = append(out, GridRow{Kind: RowData, Cells: r})
		}
	}
	return out
}

// Sheet returns the sheet with the given name.
func (w Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}
