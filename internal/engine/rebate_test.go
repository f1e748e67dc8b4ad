package engine

import (
	"testing"

	"github.com/andresuchdata/reorder-report/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rebate(code, desc string) domain.RebateRecord {
	return domain.RebateRecord{
		StockCode:   code,
		Description: desc,
		Amount:      decimal.NullDecimal{Decimal: decimal.NewFromInt(2), Valid: true},
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-30",
	}
}

func TestReconcileRebates_NewItemsOnlyInSchedule(t *testing.T) {
	sets := ReconcileRebates(
		[]domain.RebateRecord{rebate("D", "Promo Item")},
		nil, nil, nil,
	)

	assert.Empty(t, sets.Eligible)
	require.Len(t, sets.NewItems, 1)
	assert.Equal(t, "D", sets.NewItems[0].StockCode)
	assert.Equal(t, "Promo Item", sets.NewItems[0].Description)
	assert.Equal(t, "IRC NEW ITEMS", sets.NewItems[0].Department)
	assert.Equal(t, "2025-06-01", sets.NewItems[0].StartDate)
	assert.Equal(t, "2025-06-30", sets.NewItems[0].EndDate)
}

func TestReconcileRebates_OrderedCodesExcluded(t *testing.T) {
	products := []domain.ProductSalesSummary{
		product("X", "CHIPS", 2, domain.UnknownOnHand()),
	}

	sets := ReconcileRebates(
		[]domain.RebateRecord{rebate("X", "Promo Chips")},
		products, nil,
		map[string]struct{}{"X": {}},
	)

	// On an order list: excluded from the eligible sheet, and since it
	// exists in sales it is not a new item either.
	assert.Empty(t, sets.Eligible)
	assert.Empty(t, sets.NewItems)
}

func TestReconcileRebates_EligibleFromSalesSummary(t *testing.T) {
	p := product("Y", "GROCERY", 0.05, domain.KnownOnHand(40)) // projections clamp to 0, never ordered
	sets := ReconcileRebates(
		[]domain.RebateRecord{rebate("Y", "schedule name")},
		[]domain.ProductSalesSummary{p}, nil, nil,
	)

	require.Len(t, sets.Eligible, 1)
	row := sets.Eligible[0]
	assert.Equal(t, "Y product", row.Description) // sales description wins
	assert.Equal(t, "GROCERY", row.Department)
	assert.Equal(t, domain.KnownOnHand(40), row.OnHand)
	assert.Empty(t, sets.NewItems)
}

func TestReconcileRebates_EligibleFallsBackToInventory(t *testing.T) {
	inventory := map[string]domain.InventoryRecord{
		"Z": {
			StockCode:   "Z",
			OnHand:      domain.KnownOnHand(12),
			Description: "Shelf Stable Dip",
			Department:  "GROCERY",
		},
	}

	sets := ReconcileRebates(
		[]domain.RebateRecord{rebate("Z", "schedule name")},
		nil, inventory, nil,
	)

	require.Len(t, sets.Eligible, 1)
	row := sets.Eligible[0]
	assert.Equal(t, "Shelf Stable Dip", row.Description)
	assert.Equal(t, "GROCERY", row.Department)
	assert.Equal(t, domain.KnownOnHand(12), row.OnHand)
	for h := 1; h <= domain.HorizonCount; h++ {
		assert.Zero(t, row.WeekSales[h-1], "never-sold projections default to zero")
	}
}

func TestReconcileRebates_DescriptionFallsBackToSchedule(t *testing.T) {
	inventory := map[string]domain.InventoryRecord{
		"W": {StockCode: "W", OnHand: domain.KnownOnHand(1)},
	}

	sets := ReconcileRebates(
		[]domain.RebateRecord{rebate("W", "Schedule Only Name")},
		nil, inventory, nil,
	)

	require.Len(t, sets.Eligible, 1)
	assert.Equal(t, "Schedule Only Name", sets.Eligible[0].Description)
	assert.Empty(t, sets.Eligible[0].Department) // no schedule fallback for department
}
