// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HorizonCount is the number of fixed look-ahead windows (1..4 weeks) used to
// project demand and decide reorder quantities.
const HorizonCount = 4

// HorizonDays returns the number of days covered by horizon h (1-based).
func HorizonDays(h int) int {
	return 7 * h
}

// SalesRecord is a single row from the sales workbook. In the source exports
// the department lives in a column literally named "Description", while the
// product name is "Stock Description".
type SalesRecord struct {
	StockCode        string
	StockDescription string
	Department       string
	Quantity         float64
	Date             time.Time
}

// OnHand is the quantity on hand for a stock code. Inventory is an optional
// input and individual cells can be non-numeric, so "unknown" is an explicit
// state instead of a sentinel value mixed into the quantity.
type OnHand struct {
	Known bool
	Qty   float64
}

// KnownOnHand returns an on-hand value clamped to zero, matching how the
// inventory quantity column is loaded.
func KnownOnHand(qty float64) OnHand {
	if qty < 0 {
		qty = 0
	}
	return OnHand{Known: true, Qty: qty}
}

// UnknownOnHand returns the "inventory unknown" state.
func UnknownOnHand() OnHand {
	return OnHand{}
}

// InventoryRecord is one distinct stock code from the inventory workbook.
// Description and Department feed the rebate reconciliation fallbacks.
type InventoryRecord struct {
	StockCode   string
	OnHand      OnHand
	Description string
	Department  string
}

// RebateRecord is one row of the IRC (rebate/promotion) schedule. The start
// and end dates are carried through to the report verbatim; nothing in the
// computation depends on their value.
type RebateRecord struct {
	StockCode   string
	Description string
	Amount      decimal.NullDecimal
	StartDate   string
	EndDate     string
}

// ProductSalesSummary is the aggregate for one distinct
// (stock code, product, department) triple observed in the filtered sales.
// WeekSales[i] is the (i+1)-week projection; any projection below one unit is
// clamped to zero because sub-unit weekly demand is not actionable.
type ProductSalesSummary struct {
	StockCode        string
	StockDescription string
	Department       string
	TotalQuantity    float64
	AvgDailySales    float64
	WeekSales        [HorizonCount]float64
	OnHand           OnHand
}

// WeekSalesFor returns the projection for horizon h (1-based).
func (p ProductSalesSummary) WeekSalesFor(h int) float64 {
	return p.WeekSales[h-1]
}

// ReorderLine is one kept candidate on a horizon's order list. It is only
// materialized when QuantityToOrder is positive.
type ReorderLine struct {
	Product         ProductSalesSummary
	Horizon         int
	QuantityToOrder int
}

// SalesWindow is the observed date range of the filtered sales records.
// Days is never below one so averaging stays defined for single-day exports.
type SalesWindow struct {
	Start time.Time
	End   time.Time
	Days  int
}
