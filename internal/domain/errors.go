// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDataset means the sales dataset had zero rows after filtering, so
// no date range can be established and the whole computation aborts.
var ErrEmptyDataset = errors.New("sales data has no rows after filtering, cannot establish a date range")

// MissingFileError is raised when a required input file is absent. Only the
// sales workbook is required; the other inputs degrade gracefully.
type MissingFileError struct {
	Name string // logical input name, e.g. "sales"
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("required %s file was not found: %s", e.Name, e.Path)
}

// SchemaError is raised when none of the accepted column-name alternatives
// is present in an input file's header row.
type SchemaError struct {
	File   string   // logical input name, e.g. "inventory"
	Wanted []string // accepted column names, in precedence order
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("could not find column %s in %s file", strings.Join(quoteAll(e.Wanted), " or "), e.File)
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
