// internal/dataset/schema.go
package dataset

import (
	"strings"

	"github.com/andresuchdata/reorder-report/internal/domain"
)

// findColumn returns the index of the first header cell matching any of the
// given names, case-insensitively on trimmed values, or -1.
func findColumn(header []string, names ...string) int {
	for _, name := range names {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
	}
	return -1
}

// resolveColumn is findColumn with a fatal SchemaError when none of the
// accepted alternatives is present. The names are tried in precedence
// order, so "Quantity" beats "Qty. Closing" when a file carries both.
func resolveColumn(file string, header []string, names ...string) (int, error) {
	if idx := findColumn(header, names...); idx >= 0 {
		return idx, nil
	}
	return -1, &domain.SchemaError{File: file, Wanted: names}
}
