// internal/dataset/inventory.go
package dataset

import (
	"os"

	"github.com/andresuchdata/reorder-report/internal/domain"
)

// InventoryLayout pins down where the rebate-matching description and
// department live in the inventory export. Name-based lookup is tried first;
// the 1-indexed positional columns are the documented fallback for exports
// whose headers are merged or renamed. The stock-analysis export keeps the
// description in column 3 and the department in column 15.
type InventoryLayout struct {
	DescriptionColumn int
	DepartmentColumn  int
}

// DefaultInventoryLayout matches the stock-analysis export.
func DefaultInventoryLayout() InventoryLayout {
	return InventoryLayout{DescriptionColumn: 3, DepartmentColumn: 15}
}

// LoadInventory reads the optional inventory workbook into a map keyed by
// stock code. A missing file is not an error: it returns loaded=false and
// every on-hand quantity downstream stays unknown. The quantity column is
// accepted as "Quantity" or "Qty. Closing" and clamped to zero; a cell that
// does not parse as a number leaves that code's on-hand unknown.
func LoadInventory(path string, layout InventoryLayout) (map[string]domain.InventoryRecord, bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, false, nil
	}

	table, err := LoadTable(path)
	if err != nil {
		return nil, false, err
	}

	codeIdx, err := resolveColumn("inventory", table.Header, "Stock Code")
	if err != nil {
		return nil, false, err
	}
	qtyIdx, err := resolveColumn("inventory", table.Header, "Quantity", "Qty. Closing")
	if err != nil {
		return nil, false, err
	}

	descIdx := findColumn(table.Header, "Stock Description")
	if descIdx < 0 {
		descIdx = layout.DescriptionColumn - 1
	}
	deptIdx := findColumn(table.Header, "Department")
	if deptIdx < 0 {
		deptIdx = layout.DepartmentColumn - 1
	}

	records := make(map[string]domain.InventoryRecord, len(table.Rows))
	for _, row := range table.Rows {
		code := cell(row, codeIdx)
		if code == "" {
			continue
		}
		onHand := domain.UnknownOnHand()
		if qty, ok := parseFloat(row, qtyIdx); ok {
			onHand = domain.KnownOnHand(qty)
		}
		records[code] = domain.InventoryRecord{
			StockCode:   code,
			OnHand:      onHand,
			Description: cell(row, descIdx),
			Department:  cell(row, deptIdx),
		}
	}

	return records, true, nil
}
