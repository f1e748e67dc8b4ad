// internal/report/excel.go

// Package report serializes the computed tables into the multi-sheet xlsx
// workbook. It owns presentation only: sheet layout, the black separator
// rows between department groups, and column widths. Everything it writes
// comes in as typed tables from the engine.
package report

import (
	"fmt"
	"sort"

	"github.com/andresuchdata/reorder-report/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// InventoryUnknown is how a missing on-hand quantity is marked in the
// report. Degraded inventory data must stay visible, never blank.
const InventoryUnknown = "INVENTORY UNKNOWN"

// WriteFile builds the workbook and saves it at path.
func WriteFile(rep *domain.Report, path string) error {
	f, err := BuildWorkbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook %s: %w", path, err)
	}
	return nil
}

// BuildWorkbook renders the report tables into an xlsx workbook. Sheets with
// zero rows are omitted. Grouped sheets are sorted by department with a
// separator row between groups; the IRC sheet keeps the schedule's own order.
func BuildWorkbook(rep *domain.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	w, err := newSheetWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w.writeGrouped(domain.SheetFullData, fullDataHeader(), fullDataRows(rep.FullData))
	for h := 1; h <= domain.HorizonCount; h++ {
		w.writeGrouped(domain.SupplySheetName(h), supplyHeader(h), supplyRows(rep.Supply[h-1]))
	}
	w.writePlain(domain.SheetRebate, rebateHeader(), rebateRows(rep.RebateEligible))
	w.writeGrouped(domain.SheetRebateNew, newItemHeader(), newItemRows(rep.RebateNewItems))

	if w.err != nil {
		_ = f.Close()
		return nil, w.err
	}

	// Drop the workbook's default sheet once real sheets exist to replace it.
	if w.written > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}
	f.SetActiveSheet(0)

	if err := autoFitColumns(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// groupedRow is a sheet row tagged with its department group.
type groupedRow struct {
	Department string
	Cells      []interface{}
}

type sheetWriter struct {
	f        *excelize.File
	sepStyle int
	err      error
	written  int
}

func newSheetWriter(f *excelize.File) (*sheetWriter, error) {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"000000"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create separator style: %w", err)
	}
	return &sheetWriter{f: f, sepStyle: style}, nil
}

// writeGrouped writes a department-grouped sheet: rows sorted by department
// name, one black separator row wherever the department changes.
func (w *sheetWriter) writeGrouped(name string, header []interface{}, rows []groupedRow) {
	if w.err != nil || len(rows) == 0 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Department < rows[j].Department })

	if _, err := w.f.NewSheet(name); err != nil {
		w.err = fmt.Errorf("failed to create sheet %s: %w", name, err)
		return
	}
	if err := w.f.SetSheetRow(name, "A1", &header); err != nil {
		w.err = fmt.Errorf("failed to write header of %s: %w", name, err)
		return
	}

	rowNum := 1
	lastDept := ""
	for i, row := range rows {
		if i > 0 && row.Department != lastDept {
			rowNum++
			if err := w.writeSeparator(name, rowNum, len(header)); err != nil {
				w.err = err
				return
			}
		}
		lastDept = row.Department

		rowNum++
		addr, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := w.f.SetSheetRow(name, addr, &row.Cells); err != nil {
			w.err = fmt.Errorf("failed to write row %d of %s: %w", rowNum, name, err)
			return
		}
	}
	w.written++
}

// writePlain writes a sheet in the rows' given order with no separators.
func (w *sheetWriter) writePlain(name string, header []interface{}, rows [][]interface{}) {
	if w.err != nil || len(rows) == 0 {
		return
	}
	if _, err := w.f.NewSheet(name); err != nil {
		w.err = fmt.Errorf("failed to create sheet %s: %w", name, err)
		return
	}
	if err := w.f.SetSheetRow(name, "A1", &header); err != nil {
		w.err = fmt.Errorf("failed to write header of %s: %w", name, err)
		return
	}
	for i, row := range rows {
		addr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := w.f.SetSheetRow(name, addr, &row); err != nil {
			w.err = fmt.Errorf("failed to write row %d of %s: %w", i+2, name, err)
			return
		}
	}
	w.written++
}

func (w *sheetWriter) writeSeparator(sheet string, rowNum, width int) error {
	blanks := make([]interface{}, width)
	for i := range blanks {
		blanks[i] = ""
	}
	start, _ := excelize.CoordinatesToCellName(1, rowNum)
	end, _ := excelize.CoordinatesToCellName(width, rowNum)
	if err := w.f.SetSheetRow(sheet, start, &blanks); err != nil {
		return fmt.Errorf("failed to write separator row in %s: %w", sheet, err)
	}
	if err := w.f.SetCellStyle(sheet, start, end, w.sepStyle); err != nil {
		return fmt.Errorf("failed to style separator row in %s: %w", sheet, err)
	}
	return nil
}

// autoFitColumns widens every column to its longest cell text plus padding.
func autoFitColumns(f *excelize.File) error {
	for _, sheet := range f.GetSheetList() {
		cols, err := f.GetCols(sheet)
		if err != nil {
			return fmt.Errorf("failed to scan columns of %s: %w", sheet, err)
		}
		for i, col := range cols {
			maxLen := 0
			for _, v := range col {
				if len(v) > maxLen {
					maxLen = len(v)
				}
			}
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := f.SetColWidth(sheet, name, name, float64(maxLen+2)); err != nil {
				return fmt.Errorf("failed to set column width on %s: %w", sheet, err)
			}
		}
	}
	return nil
}

func fullDataHeader() []interface{} {
	return []interface{}{
		"Department", "Stock Code", "Product", "On Hand", "IRC AMT", "END DATE",
		"1 Week Sales", "2 Week Sales", "3 Week Sales", "4 Week Sales",
	}
}

func fullDataRows(rows []domain.FullDataRow) []groupedRow {
	out := make([]groupedRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, groupedRow{
			Department: r.Department,
			Cells: []interface{}{
				r.Department, r.StockCode, r.Product, onHandCell(r.OnHand),
				amountCell(r.RebateAmount), r.RebateEndDate,
				r.WeekSales[0], r.WeekSales[1], r.WeekSales[2], r.WeekSales[3],
			},
		})
	}
	return out
}

func supplyHeader(h int) []interface{} {
	return []interface{}{
		"Department", "Stock Code", "Product", "On Hand", "IRC AMT", "END DATE",
		fmt.Sprintf("%d Week Sales", h), "Quantity to Order",
	}
}

func supplyRows(rows []domain.SupplyRow) []groupedRow {
	out := make([]groupedRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, groupedRow{
			Department: r.Department,
			Cells: []interface{}{
				r.Department, r.StockCode, r.Product, onHandCell(r.OnHand),
				amountCell(r.RebateAmount), r.RebateEndDate,
				r.WeekSales, r.QuantityToOrder,
			},
		})
	}
	return out
}

func rebateHeader() []interface{} {
	return []interface{}{
		"Stock Code", "Description", "On Hand",
		"1 Week Sales", "2 Week Sales", "3 Week Sales", "4 Week Sales",
		"IRC AMT", "END DATE", "Department",
	}
}

func rebateRows(rows []domain.RebateEligibleRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.StockCode, r.Description, onHandCell(r.OnHand),
			r.WeekSales[0], r.WeekSales[1], r.WeekSales[2], r.WeekSales[3],
			amountCell(r.RebateAmount), r.EndDate, r.Department,
		})
	}
	return out
}

func newItemHeader() []interface{} {
	return []interface{}{"Stock Code", "Description", "IRC AMT", "START DATE", "END DATE", "Department"}
}

func newItemRows(rows []domain.RebateNewItemRow) []groupedRow {
	out := make([]groupedRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, groupedRow{
			Department: r.Department,
			Cells: []interface{}{
				r.StockCode, r.Description, amountCell(r.RebateAmount),
				r.StartDate, r.EndDate, r.Department,
			},
		})
	}
	return out
}

func onHandCell(o domain.OnHand) interface{} {
	if !o.Known {
		return InventoryUnknown
	}
	return o.Qty
}

func amountCell(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return ""
	}
	v, _ := d.Decimal.Float64()
	return v
}
