// Package namesource extracts the ordered sequence of target names
// from a tabular input file. CSV and TSV are read with encoding/csv,
// XLSX with excelize; the format is chosen by file extension.
//
// Blank cells are retained as empty TargetNames so their row index
// reaches the report, where they are logged as not found.
package namesource

import (
	"encoding/csv"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/logging"
	"github.com/sheetpick/sheetpick/pkg/normalize"
	"github.com/sheetpick/sheetpick/pkg/types"
	"github.com/xuri/excelize/v2"
)

// Options selects the column and sheet to read.
type Options struct {
	// Column identifies the column holding file names. A header cell
	// match wins; otherwise a spreadsheet letter ("A") or a 1-based
	// number is taken as a position.
	Column string

	// Sheet names the worksheet for .xlsx input; empty means the first.
	Sheet string

	// NoHeader marks inputs without a header row. Column must then be
	// positional and data starts at the first row.
	NoHeader bool
}

// Source reads target names through an injected filesystem.
type Source struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Source reading through the given filesystem.
func New(fs types.FS) *Source {
	return &Source{
		fs:     fs,
		logger: logging.GetLogger("namesource"),
	}
}

// Read extracts the target names from the file at path.
func (s *Source) Read(path string, opts Options) ([]types.TargetName, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = s.readDelimited(path, ',')
	case ".tsv":
		rows, err = s.readDelimited(path, '\t')
	case ".xlsx":
		rows, err = s.readExcel(path, opts.Sheet)
	default:
		return nil, errors.Newf(errors.ErrInputFormat,
			"unsupported input format %q (want .csv, .tsv, or .xlsx)", filepath.Ext(path)).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("path", path).
		Int("rows", len(rows)).
		Msg("Input rows loaded")

	targets, err := extractColumn(rows, opts)
	if err != nil {
		if pickErr, ok := err.(*errors.PickError); ok {
			return nil, pickErr.WithDetail("path", path)
		}
		return nil, err
	}

	s.logger.Info().
		Str("path", path).
		Int("targets", len(targets)).
		Msg("Target names read")

	return targets, nil
}

// readDelimited loads a CSV or TSV file into rows of cells.
func (s *Source) readDelimited(path string, comma rune) ([][]string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputFormat,
			"cannot open input file %s", path)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.Comma = comma
	// Sheets exported by hand are often ragged
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputFormat,
			"cannot parse input file %s", path)
	}

	return rows, nil
}

// readExcel loads the requested worksheet of an .xlsx file into rows.
func (s *Source) readExcel(path, sheet string) ([][]string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputFormat,
			"cannot open input file %s", path)
	}
	defer func() { _ = f.Close() }()

	book, err := excelize.OpenReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputFormat,
			"cannot parse workbook %s", path)
	}
	defer func() { _ = book.Close() }()

	name, err := pickSheet(book, sheet)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("path", path).
		Str("sheet", name).
		Msg("Reading worksheet")

	rows, err := book.GetRows(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputFormat,
			"cannot read worksheet %q", name)
	}

	return rows, nil
}

// pickSheet resolves the worksheet name: the requested one, or the
// first sheet when none was requested.
func pickSheet(book *excelize.File, requested string) (string, error) {
	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New(errors.ErrInputFormat, "workbook has no worksheets")
	}

	if requested == "" {
		return sheets[0], nil
	}

	for _, name := range sheets {
		if normalize.HeaderEqual(name, requested) {
			return name, nil
		}
	}

	return "", errors.Newf(errors.ErrInputFormat,
		"worksheet %q not found (have: %s)", requested, strings.Join(sheets, ", "))
}
