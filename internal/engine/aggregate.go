// internal/engine/aggregate.go
package engine

import (
	"sort"
	"time"

	"github.com/andresuchdata/reorder-report/internal/domain"
)

type productKey struct {
	Code        string
	Description string
	Department  string
}

// AggregateSales groups filtered sales rows into per-product summaries and
// projects weekly demand over the observed date range. It fails with
// domain.ErrEmptyDataset when no rows survived filtering, since no date
// range exists to average over.
//
// A zero or single-day span is treated as a one-day window so the daily
// average stays defined. Projections below one unit are clamped to zero.
func AggregateSales(records []domain.SalesRecord) ([]domain.ProductSalesSummary, domain.SalesWindow, error) {
	if len(records) == 0 {
		return nil, domain.SalesWindow{}, domain.ErrEmptyDataset
	}

	minDate, maxDate := records[0].Date, records[0].Date
	totals := make(map[productKey]float64)
	for _, r := range records {
		if r.Date.Before(minDate) {
			minDate = r.Date
		}
		if r.Date.After(maxDate) {
			maxDate = r.Date
		}
		key := productKey{Code: r.StockCode, Description: r.StockDescription, Department: r.Department}
		totals[key] += r.Quantity
	}

	window := domain.SalesWindow{
		Start: minDate,
		End:   maxDate,
		Days:  wholeDaySpan(minDate, maxDate),
	}

	summaries := make([]domain.ProductSalesSummary, 0, len(totals))
	for key, total := range totals {
		s := domain.ProductSalesSummary{
			StockCode:        key.Code,
			StockDescription: key.Description,
			Department:       key.Department,
			TotalQuantity:    total,
			AvgDailySales:    total / float64(window.Days),
		}
		for h := 1; h <= domain.HorizonCount; h++ {
			proj := s.AvgDailySales * float64(domain.HorizonDays(h))
			if proj < 1 {
				proj = 0
			}
			s.WeekSales[h-1] = proj
		}
		summaries = append(summaries, s)
	}

	// Deterministic output order: department groups, then stock code. The
	// report sheets are grouped by department, so this is also the final
	// row order.
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Department != summaries[j].Department {
			return summaries[i].Department < summaries[j].Department
		}
		if summaries[i].StockCode != summaries[j].StockCode {
			return summaries[i].StockCode < summaries[j].StockCode
		}
		return summaries[i].StockDescription < summaries[j].StockDescription
	})

	return summaries, window, nil
}

// wholeDaySpan returns the number of whole days between the two dates,
// never below one.
func wholeDaySpan(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
