// Package report writes the per-row CSV report and accumulates the run
// summary.
//
// The report has a fixed header, row,name,status,matched_path,
// copy_outcome,detail, and exactly one data row per target name, in
// input order. Rows are flushed as they are recorded, so an interrupted
// run still leaves a parseable prefix on disk. When a name matched more
// than one file, matched_path, copy_outcome and detail hold the
// per-candidate values joined with ";" in candidate order.
package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/logging"
	"github.com/sheetpick/sheetpick/pkg/types"
)

const writeFlags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC

var header = []string{"row", "name", "status", "matched_path", "copy_outcome", "detail"}

// Writer emits the CSV report for one run.
type Writer struct {
	fs      types.FS
	logger  zerolog.Logger
	path    string
	out     io.WriteCloser
	csv     *csv.Writer
	summary types.Summary
	rows    int
}

// New creates the report file and writes the header row. The file is
// truncated if it already exists; an unwritable report path is a fatal
// setup error.
func New(fs types.FS, path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrReportWrite,
				"cannot create report directory %s", dir)
		}
	}

	out, err := fs.OpenFile(path, writeFlags, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReportWrite,
			"cannot create report file %s", path)
	}

	w := &Writer{
		fs:     fs,
		logger: logging.GetLogger("report"),
		path:   path,
		out:    out,
		csv:    csv.NewWriter(out),
	}
	w.summary.ReportPath = path

	if err := w.writeRow(header); err != nil {
		_ = out.Close()
		return nil, err
	}
	return w, nil
}

// Record appends one CSV row for the given record and folds it into the
// summary. The row is flushed immediately.
func (w *Writer) Record(rec types.RowRecord) error {
	paths := make([]string, 0, len(rec.Match.Candidates))
	for _, c := range rec.Match.Candidates {
		paths = append(paths, c.Path)
	}

	outcomes := make([]string, 0, len(rec.Outcomes))
	details := make([]string, 0, len(rec.Outcomes))
	for _, o := range rec.Outcomes {
		outcomes = append(outcomes, string(o.Status))
		details = append(details, o.Detail)
	}

	detail := rec.Match.Detail
	if len(rec.Outcomes) > 0 {
		detail = joinDetails(details)
	}

	row := []string{
		strconv.Itoa(rec.Match.Target.Row),
		rec.Match.Target.Text,
		string(rec.Match.Status),
		strings.Join(paths, ";"),
		strings.Join(outcomes, ";"),
		detail,
	}

	if err := w.writeRow(row); err != nil {
		return err
	}

	w.rows++
	w.summary.Add(rec)
	return nil
}

// Summary returns the counters accumulated so far. Run metadata beyond
// the counters is the caller's to fill in.
func (w *Writer) Summary() types.Summary {
	return w.summary
}

// Path returns the report file location.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes and closes the report file.
func (w *Writer) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()
	closeErr := w.out.Close()

	if flushErr != nil {
		return errors.Wrapf(flushErr, errors.ErrReportWrite,
			"cannot finish report file %s", w.path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, errors.ErrReportWrite,
			"cannot finish report file %s", w.path)
	}

	w.logger.Info().
		Str("path", w.path).
		Int("rows", w.rows).
		Msg("Report written")
	return nil
}

func (w *Writer) writeRow(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite,
			"cannot write report file %s", w.path)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite,
			"cannot write report file %s", w.path)
	}
	return nil
}

// joinDetails keeps per-candidate detail slots aligned with the
// copy_outcome column; a row whose outcomes carry no detail at all
// collapses to an empty cell instead of bare separators.
func joinDetails(details []string) string {
	for _, d := range details {
		if d != "" {
			return strings.Join(details, ";")
		}
	}
	return ""
}
