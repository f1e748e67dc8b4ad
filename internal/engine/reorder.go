// internal/engine/reorder.go
package engine

import (
	"math"

	"github.com/andresuchdata/reorder-report/internal/domain"
)

// CandidatesForHorizon computes horizon h's order list from the product
// summaries. It is a pure function; the four horizons are evaluated
// independently and a product may appear on several of them.
//
// Regular departments are candidates when their horizon-h projection is at
// least one unit and on-hand is unknown or below that projection. Special
// departments are always candidates and are evaluated under the one-week
// rule with on-hand forced to zero, no matter which horizon list they land
// on. Unknown on-hand disables the subtraction entirely.
func CandidatesForHorizon(products []domain.ProductSalesSummary, h int) []domain.ReorderLine {
	lines := make([]domain.ReorderLine, 0)
	for _, p := range products {
		special := IsSpecialDepartment(p.Department)

		if !special {
			proj := p.WeekSalesFor(h)
			if proj < 1 {
				continue
			}
			if p.OnHand.Known && p.OnHand.Qty >= proj {
				continue
			}
		}

		baseDemand := p.WeekSalesFor(h)
		if special {
			baseDemand = p.WeekSalesFor(1)
		}

		// Special departments subtract nothing: perishables are always
		// topped up to a full week regardless of what is on the shelf.
		needed := baseDemand
		if !special && p.OnHand.Known {
			needed = baseDemand - p.OnHand.Qty
		}

		qty := int(math.Ceil(needed))
		if qty <= 0 {
			continue
		}

		lines = append(lines, domain.ReorderLine{
			Product:         p,
			Horizon:         h,
			QuantityToOrder: qty,
		})
	}
	return lines
}

// OrderedCodes unions the stock codes kept on any horizon's order list. The
// rebate reconciler uses it to keep "needs reorder" and "rebate eligible"
// mutually exclusive.
func OrderedCodes(lists [domain.HorizonCount][]domain.ReorderLine) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, lines := range lists {
		for _, l := range lines {
			codes[l.Product.StockCode] = struct{}{}
		}
	}
	return codes
}
