// internal/engine/engine.go

// Package engine computes the replenishment report: it filters raw sales
// rows, aggregates them into per-product demand projections, decides which
// products need reordering at each of the four horizons, and reconciles the
// rebate (IRC) schedule against the result.
//
// The whole computation is a synchronous pipeline over fully materialized
// inputs. Every derived table is rebuilt from scratch per invocation; there
// is no state shared between invocations.
package engine

import (
	"github.com/andresuchdata/reorder-report/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Inputs carries the loaded input datasets. Only sales is required; the
// other three degrade to empty/unknown when absent.
type Inputs struct {
	Sales []domain.SalesRecord

	// Inventory is keyed by stock code. InventoryLoaded distinguishes "file
	// absent" (all on-hand unknown) from "file present but sparse".
	Inventory       map[string]domain.InventoryRecord
	InventoryLoaded bool

	IgnoreCodes map[string]struct{}

	Rebates      []domain.RebateRecord
	RebateLoaded bool
}

// Compute runs the full pipeline and returns the report tables. The only
// failure modes are an empty post-filter sales set and nothing else: optional
// inputs were already degraded at load time.
func Compute(in Inputs) (*domain.Report, error) {
	filtered := FilterSales(in.Sales, in.IgnoreCodes)

	products, window, err := AggregateSales(filtered)
	if err != nil {
		return nil, err
	}

	// Merge on-hand quantities into the summaries. Codes that never appear
	// in the inventory stay unknown, and so does everything when the
	// inventory file was not supplied.
	if in.InventoryLoaded {
		for i := range products {
			if rec, ok := in.Inventory[products[i].StockCode]; ok {
				products[i].OnHand = rec.OnHand
			}
		}
	}

	log.Info().
		Int("rows", len(filtered)).
		Int("products", len(products)).
		Time("from", window.Start).
		Time("to", window.End).
		Int("days", window.Days).
		Bool("inventory", in.InventoryLoaded).
		Bool("rebates", in.RebateLoaded).
		Msg("sales data aggregated")

	rebateAmounts, rebateEnds := rebateLookups(in.Rebates)

	report := &domain.Report{Window: window}

	for _, p := range products {
		report.FullData = append(report.FullData, domain.FullDataRow{
			Department:    p.Department,
			StockCode:     p.StockCode,
			Product:       p.StockDescription,
			OnHand:        p.OnHand,
			RebateAmount:  rebateAmounts[p.StockCode],
			RebateEndDate: rebateEnds[p.StockCode],
			WeekSales:     p.WeekSales,
		})
	}

	var lists [domain.HorizonCount][]domain.ReorderLine
	for h := 1; h <= domain.HorizonCount; h++ {
		lines := CandidatesForHorizon(products, h)
		lists[h-1] = lines
		for _, l := range lines {
			report.Supply[h-1] = append(report.Supply[h-1], domain.SupplyRow{
				Department:      l.Product.Department,
				StockCode:       l.Product.StockCode,
				Product:         l.Product.StockDescription,
				OnHand:          l.Product.OnHand,
				RebateAmount:    rebateAmounts[l.Product.StockCode],
				RebateEndDate:   rebateEnds[l.Product.StockCode],
				WeekSales:       l.Product.WeekSalesFor(h),
				QuantityToOrder: l.QuantityToOrder,
			})
		}
	}

	if in.RebateLoaded {
		sets := ReconcileRebates(in.Rebates, products, in.Inventory, OrderedCodes(lists))
		report.RebateEligible = sets.Eligible
		report.RebateNewItems = sets.NewItems
	}

	return report, nil
}

// rebateLookups indexes the schedule by stock code for the FULL DATA and
// supply sheets. Later duplicate rows win, matching a last-write index.
func rebateLookups(rebates []domain.RebateRecord) (map[string]decimal.NullDecimal, map[string]string) {
	amounts := make(map[string]decimal.NullDecimal, len(rebates))
	ends := make(map[string]string, len(rebates))
	for _, r := range rebates {
		amounts[r.StockCode] = r.Amount
		ends[r.StockCode] = r.EndDate
	}
	return amounts, ends
}
