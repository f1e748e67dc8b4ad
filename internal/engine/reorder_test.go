package engine

import (
	"math"
	"testing"

	"github.com/andresuchdata/reorder-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(code, dept string, avgDaily float64, onHand domain.OnHand) domain.ProductSalesSummary {
	p := domain.ProductSalesSummary{
		StockCode:        code,
		StockDescription: code + " product",
		Department:       dept,
		AvgDailySales:    avgDaily,
		OnHand:           onHand,
	}
	for h := 1; h <= domain.HorizonCount; h++ {
		proj := avgDaily * float64(domain.HorizonDays(h))
		if proj < 1 {
			proj = 0
		}
		p.WeekSales[h-1] = proj
	}
	return p
}

func TestCandidates_SpecialDepartmentUsesOneWeekRule(t *testing.T) {
	// 70 units over 7 days in a special department: every horizon orders
	// the one-week quantity with on-hand ignored.
	products := []domain.ProductSalesSummary{
		product("A", "COOLER - DESSERT", 10, domain.KnownOnHand(500)),
	}

	for h := 1; h <= domain.HorizonCount; h++ {
		lines := CandidatesForHorizon(products, h)
		require.Len(t, lines, 1, "horizon %d", h)
		assert.Equal(t, 70, lines[0].QuantityToOrder, "horizon %d", h)
	}
}

func TestCandidates_RegularWithSufficientStockExcluded(t *testing.T) {
	// One-week demand of 7 against 10 on hand: not a candidate at horizon
	// 1, but demand overtakes stock at longer horizons.
	products := []domain.ProductSalesSummary{
		product("B", "CHIPS", 1, domain.KnownOnHand(10)),
	}

	assert.Empty(t, CandidatesForHorizon(products, 1))

	lines := CandidatesForHorizon(products, 4)
	require.Len(t, lines, 1)
	assert.Equal(t, 18, lines[0].QuantityToOrder) // ceil(28 - 10)
}

func TestCandidates_UnknownOnHandSkipsSubtraction(t *testing.T) {
	products := []domain.ProductSalesSummary{
		product("C", "CHIPS", 1, domain.UnknownOnHand()),
	}

	lines := CandidatesForHorizon(products, 2)
	require.Len(t, lines, 1)
	assert.Equal(t, 14, lines[0].QuantityToOrder) // full two-week demand
}

func TestCandidates_ClampedProjectionNeverOrders(t *testing.T) {
	// All projections clamped to zero: no candidate at any horizon no
	// matter the on-hand state.
	clamped := product("D", "CHIPS", 0.01, domain.UnknownOnHand())
	for h := 1; h <= domain.HorizonCount; h++ {
		assert.Empty(t, CandidatesForHorizon([]domain.ProductSalesSummary{clamped}, h), "horizon %d", h)
	}
}

func TestCandidates_SpecialWithZeroWeekDemandDropped(t *testing.T) {
	// Special departments are always evaluated but a zero one-week demand
	// computes a zero order, which is not materialized.
	products := []domain.ProductSalesSummary{
		product("E", "MILK", 0.05, domain.KnownOnHand(3)),
	}
	for h := 1; h <= domain.HorizonCount; h++ {
		assert.Empty(t, CandidatesForHorizon(products, h), "horizon %d", h)
	}
}

func TestCandidates_QuantityIsExactCeiling(t *testing.T) {
	products := []domain.ProductSalesSummary{
		product("F", "CHIPS", 0.5, domain.KnownOnHand(1.25)), // 1wk 3.5
		product("G", "CHIPS", 3, domain.UnknownOnHand()),     // 1wk 21
		product("H", "MILK", 1.3, domain.KnownOnHand(2)),     // special, 1wk 9.1
	}

	lines := CandidatesForHorizon(products, 1)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Greater(t, l.QuantityToOrder, 0)
		var needed float64
		switch l.Product.StockCode {
		case "F":
			needed = 3.5 - 1.25
		case "G":
			needed = 21
		case "H":
			needed = 9.1 // on-hand ignored for special departments
		}
		assert.Equal(t, int(math.Ceil(needed)), l.QuantityToOrder, "code %s", l.Product.StockCode)
	}
}

func TestOrderedCodes_UnionsAllHorizons(t *testing.T) {
	regular := product("R", "CHIPS", 1, domain.KnownOnHand(10))  // ordered from h2 onward
	special := product("S", "MILK", 10, domain.KnownOnHand(999)) // ordered everywhere

	products := []domain.ProductSalesSummary{regular, special}
	var lists [domain.HorizonCount][]domain.ReorderLine
	for h := 1; h <= domain.HorizonCount; h++ {
		lists[h-1] = CandidatesForHorizon(products, h)
	}

	codes := OrderedCodes(lists)
	assert.Contains(t, codes, "R")
	assert.Contains(t, codes, "S")
	assert.Len(t, codes, 2)
}
