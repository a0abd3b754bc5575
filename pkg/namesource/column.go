package namesource

import (
	"strconv"
	"strings"

	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/normalize"
	"github.com/sheetpick/sheetpick/pkg/types"
	"github.com/xuri/excelize/v2"
)

// headerScanLimit bounds how deep the header row may sit. Exported
// sheets often carry title or note rows above the real header.
const headerScanLimit = 50

// extractColumn resolves the column position and header row, then
// collects one TargetName per data row. Row indexes are 1-based and
// count data rows only.
//
// Resolution order: an exact header match wins; an identifier that
// reads as a spreadsheet letter or number is taken positionally;
// containment against header cells is the last resort, reserved for
// identifiers that cannot be positions, so column "A" never latches
// onto a header that merely contains an "a".
func extractColumn(rows [][]string, opts Options) ([]types.TargetName, error) {
	colIdx := -1
	dataStart := 0

	if opts.NoHeader {
		idx, ok := parsePosition(opts.Column)
		if !ok {
			return nil, errors.Newf(errors.ErrInputFormat,
				"column %q needs a header row; use a letter or number with no_header", opts.Column)
		}
		colIdx = idx
	} else if row, col, found := findHeader(rows, opts.Column, false); found {
		colIdx = col
		dataStart = row + 1
	} else if idx, ok := parsePosition(opts.Column); ok {
		colIdx = idx
		dataStart = 1
	} else if row, col, found := findHeader(rows, opts.Column, true); found {
		colIdx = col
		dataStart = row + 1
	} else {
		return nil, errors.Newf(errors.ErrInputFormat,
			"column %q not found in the first %d rows", opts.Column, headerScanLimit)
	}

	if dataStart >= len(rows) {
		return nil, nil
	}

	data := rows[dataStart:]
	targets := make([]types.TargetName, 0, len(data))
	lastKept := 0

	for i, row := range data {
		text := ""
		if colIdx < len(row) {
			text = normalize.CleanCell(row[colIdx])
		}
		targets = append(targets, types.TargetName{Row: i + 1, Text: text})

		// Wholly blank rows at the bottom of a sheet are export noise,
		// not data; blank cells between real rows are kept.
		if text != "" || !rowBlank(row) {
			lastKept = i + 1
		}
	}

	return targets[:lastKept], nil
}

// findHeader scans the top rows for a cell matching the requested
// column header. With loose set, a header cell containing the requested
// text also counts, so "file name" finds an "Attachment File Name" header.
func findHeader(rows [][]string, column string, loose bool) (rowIdx, colIdx int, found bool) {
	want := normalize.HeaderKey(column)
	if want == "" {
		return 0, 0, false
	}

	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for i := 0; i < limit; i++ {
		for j, cell := range rows[i] {
			if normalize.HeaderKey(cell) == want {
				return i, j, true
			}
		}
	}

	if !loose {
		return 0, 0, false
	}

	for i := 0; i < limit; i++ {
		for j, cell := range rows[i] {
			key := normalize.HeaderKey(cell)
			if key != "" && strings.Contains(key, want) {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// parsePosition interprets a column identifier as a spreadsheet letter
// ("A", "AB") or a 1-based number, returning the 0-based index.
func parsePosition(column string) (int, bool) {
	ident := strings.ToUpper(strings.TrimSpace(column))
	if ident == "" {
		return 0, false
	}

	if isDigits(ident) {
		n, err := strconv.Atoi(ident)
		if err != nil || n < 1 {
			return 0, false
		}
		return n - 1, true
	}

	if isLetters(ident) && len(ident) <= 3 {
		n, err := excelize.ColumnNameToNumber(ident)
		if err != nil {
			return 0, false
		}
		return n - 1, true
	}

	return 0, false
}

// rowBlank reports whether every cell of the row cleans to empty.
func rowBlank(row []string) bool {
	for _, cell := range row {
		if normalize.CleanCell(cell) != "" {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
