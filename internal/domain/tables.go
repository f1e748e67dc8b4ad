// internal/domain/tables.go
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Sheet names are part of the contract between the computation and the
// report serializer.
const (
	SheetFullData      = "FULL DATA"
	SheetRebate        = "IRC"
	SheetRebateNew     = "IRC NEW ITEMS"
	RebateNewItemsDept = "IRC NEW ITEMS"
)

// SupplySheetName returns the sheet name for horizon h's order list.
func SupplySheetName(h int) string {
	return fmt.Sprintf("%d WEEKS SUPPLY", h)
}

// FullDataRow is one product on the FULL DATA sheet.
type FullDataRow struct {
	Department    string
	StockCode     string
	Product       string
	OnHand        OnHand
	RebateAmount  decimal.NullDecimal
	RebateEndDate string
	WeekSales     [HorizonCount]float64
}

// SupplyRow is one product on a horizon's WEEKS SUPPLY sheet. WeekSales holds
// that horizon's projection only.
type SupplyRow struct {
	Department      string
	StockCode       string
	Product         string
	OnHand          OnHand
	RebateAmount    decimal.NullDecimal
	RebateEndDate   string
	WeekSales       float64
	QuantityToOrder int
}

// RebateEligibleRow is a product with an active rebate that already exists in
// sales or inventory but was not placed on any order list.
type RebateEligibleRow struct {
	StockCode    string
	Description  string
	OnHand       OnHand
	WeekSales    [HorizonCount]float64
	RebateAmount decimal.NullDecimal
	EndDate      string
	Department   string
}

// RebateNewItemRow is a product that exists only in the rebate schedule.
// Department is always RebateNewItemsDept.
type RebateNewItemRow struct {
	StockCode    string
	Description  string
	RebateAmount decimal.NullDecimal
	StartDate    string
	EndDate      string
	Department   string
}

// Report is the full set of typed tables produced by one computation. It is
// what the serializer consumes; sheets with zero rows are omitted from the
// workbook.
type Report struct {
	Window         SalesWindow
	FullData       []FullDataRow
	Supply         [HorizonCount][]SupplyRow
	RebateEligible []RebateEligibleRow
	RebateNewItems []RebateNewItemRow
}
