// internal/dataset/table.go

// Package dataset loads the four spreadsheet inputs (sales, inventory,
// ignore list, IRC schedule) into domain records, resolving heterogeneous
// column headers onto the canonical schema on the way in.
package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Table is the first worksheet of a workbook: a header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// LoadTable reads the first sheet of an xlsx file. Callers decide how to
// treat a missing file; this only fails on unreadable or empty workbooks.
func LoadTable(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheets[0], err)
	}
	defer rows.Close()

	table := &Table{}
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}
		if table.Header == nil {
			table.Header = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("error iterating rows in %s: %w", path, err)
	}
	if table.Header == nil {
		return nil, fmt.Errorf("workbook %s has no header row", path)
	}

	return table, nil
}

// cell returns the trimmed value at idx, tolerating ragged rows.
func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseFloat parses a numeric cell, stripping thousands separators. Blank or
// unparseable cells report !ok so callers can pick their own default.
func parseFloat(record []string, idx int) (float64, bool) {
	v := cell(record, idx)
	if v == "" {
		return 0, false
	}
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Date layouts excelize produces for date-formatted cells, plus the plain
// forms that appear in hand-edited exports.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/2006",
	"1/2/2006 15:04",
	time.RFC3339,
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", v)
}
