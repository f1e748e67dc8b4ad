// internal/dataset/sales.go
package dataset

import (
	"fmt"
	"os"

	"github.com/andresuchdata/reorder-report/internal/domain"
)

// LoadSales reads the required sales workbook. The date column is accepted
// under either of its two export names; the department comes from the
// column named "Description" in these exports. A missing file is fatal.
func LoadSales(path string) ([]domain.SalesRecord, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &domain.MissingFileError{Name: "sales", Path: path}
	}

	table, err := LoadTable(path)
	if err != nil {
		return nil, err
	}

	codeIdx, err := resolveColumn("sales", table.Header, "Stock Code")
	if err != nil {
		return nil, err
	}
	productIdx, err := resolveColumn("sales", table.Header, "Stock Description")
	if err != nil {
		return nil, err
	}
	deptIdx, err := resolveColumn("sales", table.Header, "Description")
	if err != nil {
		return nil, err
	}
	qtyIdx, err := resolveColumn("sales", table.Header, "Quantity")
	if err != nil {
		return nil, err
	}
	dateIdx, err := resolveColumn("sales", table.Header, "Stock Date", "Document Date")
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		code := cell(row, codeIdx)
		if code == "" {
			continue
		}
		date, err := parseDate(cell(row, dateIdx))
		if err != nil {
			return nil, fmt.Errorf("sales row %d: %w", i+2, err)
		}
		qty, _ := parseFloat(row, qtyIdx)
		records = append(records, domain.SalesRecord{
			StockCode:        code,
			StockDescription: cell(row, productIdx),
			Department:       cell(row, deptIdx),
			Quantity:         qty,
			Date:             date,
		})
	}

	return records, nil
}
