// internal/engine/rebate.go
package engine

import (
	"github.com/andresuchdata/reorder-report/internal/domain"
)

// RebateSets is the output of reconciling the IRC schedule against the
// sales/inventory masters and the order lists.
type RebateSets struct {
	Eligible []domain.RebateEligibleRow
	NewItems []domain.RebateNewItemRow
}

// ReconcileRebates splits the rebate schedule into two sets:
//
//   - eligible-existing: codes with an active rebate that exist in sales or
//     inventory but were not placed on any horizon's order list;
//   - new-items: codes that exist only in the rebate schedule.
//
// Rows keep the schedule's order. Field precedence for eligible rows is
// sales summary, then inventory, then the schedule's own description; the
// department has no schedule fallback and may be empty.
func ReconcileRebates(
	rebates []domain.RebateRecord,
	products []domain.ProductSalesSummary,
	inventory map[string]domain.InventoryRecord,
	ordered map[string]struct{},
) RebateSets {
	summaryByCode := make(map[string]domain.ProductSalesSummary, len(products))
	for _, p := range products {
		if _, ok := summaryByCode[p.StockCode]; !ok {
			summaryByCode[p.StockCode] = p
		}
	}

	var sets RebateSets
	for _, r := range rebates {
		_, sold := summaryByCode[r.StockCode]
		inv, stocked := inventory[r.StockCode]

		if !sold && !stocked {
			sets.NewItems = append(sets.NewItems, domain.RebateNewItemRow{
				StockCode:    r.StockCode,
				Description:  r.Description,
				RebateAmount: r.Amount,
				StartDate:    r.StartDate,
				EndDate:      r.EndDate,
				Department:   domain.RebateNewItemsDept,
			})
			continue
		}

		if _, onOrderList := ordered[r.StockCode]; onOrderList {
			continue
		}

		row := domain.RebateEligibleRow{
			StockCode:    r.StockCode,
			Description:  r.Description,
			RebateAmount: r.Amount,
			EndDate:      r.EndDate,
		}
		if p, ok := summaryByCode[r.StockCode]; ok {
			row.Description = p.StockDescription
			row.Department = p.Department
			row.OnHand = p.OnHand
			row.WeekSales = p.WeekSales
		} else {
			// Never sold: on-hand and identity come from inventory, the
			// projections stay at zero.
			row.OnHand = inv.OnHand
			if inv.Description != "" {
				row.Description = inv.Description
			}
			row.Department = inv.Department
		}
		sets.Eligible = append(sets.Eligible, row)
	}
	return sets
}
