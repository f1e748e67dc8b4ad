// internal/dataset/rebate.go
package dataset

import (
	"strings"

	"github.com/andresuchdata/reorder-report/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// The IRC schedule has no stable headers, so its fields are read by
// position (0-indexed): code, description, amount, start date, end date.
const (
	rebateCodeCol  = 0
	rebateDescCol  = 1
	rebateAmtCol   = 3
	rebateStartCol = 7
	rebateEndCol   = 8
)

// LoadRebates reads the optional IRC schedule. Rebate data degrades all the
// way: a missing or unreadable file returns loaded=false with no error, and
// rows without a stock code are dropped.
func LoadRebates(path string) ([]domain.RebateRecord, bool) {
	table, err := LoadTable(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("rebate schedule not loaded, IRC sheets will be empty")
		return nil, false
	}

	records := make([]domain.RebateRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		code := cell(row, rebateCodeCol)
		if code == "" {
			continue
		}
		records = append(records, domain.RebateRecord{
			StockCode:   code,
			Description: cell(row, rebateDescCol),
			Amount:      parseAmount(cell(row, rebateAmtCol)),
			StartDate:   cell(row, rebateStartCol),
			EndDate:     cell(row, rebateEndCol),
		})
	}
	return records, true
}

// parseAmount reads a money cell. Blank or non-numeric amounts stay null and
// render as empty cells in the report.
func parseAmount(v string) decimal.NullDecimal {
	v = strings.TrimSpace(strings.TrimPrefix(v, "$"))
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
