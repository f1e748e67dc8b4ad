// internal/engine/filter.go
package engine

import (
	"strings"

	"github.com/andresuchdata/reorder-report/internal/domain"
)

// Departments whose sales rows never participate in the computation. These
// are till artifacts and pass-through categories, not stocked products.
var excludedDepartments = []string{
	"#OPENITEM",
	"LOOSE ITEM",
	"ECO FEE ADS",
	"DEPOSIT",
	"Dempsters Bread",
}

// Product-description fragments that mark rows as non-reorderable.
var excludedDescriptionFragments = []string{
	"MONDOUX",
	"GREAT CANADIAN MEAT",
	"LOOSE",
}

var excludedDepartmentSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(excludedDepartments))
	for _, d := range excludedDepartments {
		set[strings.ToLower(d)] = struct{}{}
	}
	return set
}()

// FilterSales removes ignored stock codes, excluded departments, excluded
// description fragments and loose-item codes from the sales rows. All four
// rules are independent set subtractions; the ignore set runs first so
// ignored codes never reach aggregation.
func FilterSales(records []domain.SalesRecord, ignore map[string]struct{}) []domain.SalesRecord {
	kept := make([]domain.SalesRecord, 0, len(records))
	for _, r := range records {
		if _, ok := ignore[r.StockCode]; ok {
			continue
		}
		if _, ok := excludedDepartmentSet[strings.ToLower(r.Department)]; ok {
			continue
		}
		if containsAnyFold(r.StockDescription, excludedDescriptionFragments) {
			continue
		}
		if containsFold(r.StockCode, "LOOSE") {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func containsAnyFold(s string, fragments []string) bool {
	for _, f := range fragments {
		if containsFold(s, f) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
