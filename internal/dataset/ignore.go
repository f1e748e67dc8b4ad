// internal/dataset/ignore.go
package dataset

import "os"

// LoadIgnoreCodes reads the optional exclusion workbook into a set of stock
// codes. A missing file yields an empty set; a present file without a
// "Stock Code" column is a schema error.
func LoadIgnoreCodes(path string) (map[string]struct{}, error) {
	codes := make(map[string]struct{})
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return codes, nil
	}

	table, err := LoadTable(path)
	if err != nil {
		return nil, err
	}
	codeIdx, err := resolveColumn("ignore", table.Header, "Stock Code")
	if err != nil {
		return nil, err
	}

	for _, row := range table.Rows {
		if code := cell(row, codeIdx); code != "" {
			codes[code] = struct{}{}
		}
	}
	return codes, nil
}
