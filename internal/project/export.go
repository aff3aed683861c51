package project

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"data-gate/internal/reconcile"
	"data-gate/internal/table"
)

// Quoting selects how exported fields are quoted.
type Quoting int

const (
	QuoteNone   Quoting = iota // never quote; fields that would need it are rejected
	QuoteAll                   // wrap every field in double quotes
	QuoteSingle                // quote with ' only where needed
	QuoteDouble                // quote with " only where needed
)

func (q Quoting) String() string {
	switch q {
	case QuoteAll:
		return "all"
	case QuoteSingle:
		return "single"
	case QuoteDouble:
		return "double"
	default:
		return "none"
	}
}

// ParseQuoting accepts the mode names used on the command line and in
// configuration files.
func ParseQuoting(s string) (Quoting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "no quotes":
		return QuoteNone, nil
	case "all", "all fields":
		return QuoteAll, nil
	case "single", "single quotes", "'":
		return QuoteSingle, nil
	case "double", "double quotes", `"`:
		return QuoteDouble, nil
	}
	return QuoteNone, fmt.Errorf("unknown quoting mode %q (expected none, all, single or double)", s)
}

var (
	ErrReportMismatch  = errors.New("report does not describe this table")
	ErrUnquotableField = errors.New("field needs quoting but quoting is disabled")
)

// ExportOptions control the delimited output.
type ExportOptions struct {
	Separator rune // defaults to ','
	Quoting   Quoting
}

// Export writes the columns of t whose verdict is OK, header first. The
// report must have been produced from t: its first len(t.Columns) verdicts
// describe t's columns in order.
func Export(w io.Writer, r *reconcile.Report, t *table.Table, opts ExportOptions) error {
	if len(r.Verdicts) < len(t.Columns) {
		return ErrReportMismatch
	}
	var cols []*table.Column
	for i, c := range t.Columns {
		v := r.Verdicts[i]
		if v.ActualColumn != c.Name {
			return fmt.Errorf("%w: verdict %d is for %q, column is %q", ErrReportMismatch, i+1, v.ActualColumn, c.Name)
		}
		if v.Status.OK() {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return ErrNoPassingColumns
	}

	sep := opts.Separator
	if sep == 0 {
		sep = ','
	}
	dw := &delimWriter{w: bufio.NewWriter(w), sep: string(sep), quoting: opts.Quoting}

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := dw.write(0, header); err != nil {
		return err
	}

	record := make([]string, len(cols))
	for row := 0; row < t.Rows(); row++ {
		for i, c := range cols {
			record[i] = table.FormatValue(c.Values[row])
		}
		if err := dw.write(table.RowNumber(row), record); err != nil {
			return err
		}
	}
	return dw.w.Flush()
}

// delimWriter writes delimited records. encoding/csv only knows double
// quotes and minimal quoting, so quote-all and single-quote output are done
// here.
type delimWriter struct {
	w       *bufio.Writer
	sep     string
	quoting Quoting
}

func (d *delimWriter) write(row int, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if _, err := d.w.WriteString(d.sep); err != nil {
				return err
			}
		}
		out, err := d.field(f)
		if err != nil {
			return fmt.Errorf("row %d, field %d: %w", row, i+1, err)
		}
		if _, err := d.w.WriteString(out); err != nil {
			return err
		}
	}
	_, err := d.w.WriteString("\n")
	return err
}

func (d *delimWriter) field(f string) (string, error) {
	switch d.quoting {
	case QuoteAll:
		return quote(f, `"`), nil
	case QuoteSingle:
		if d.needsQuotes(f, "'") {
			return quote(f, "'"), nil
		}
		return f, nil
	case QuoteDouble:
		if d.needsQuotes(f, `"`) {
			return quote(f, `"`), nil
		}
		return f, nil
	default:
		if d.needsQuotes(f, `"`) {
			return "", ErrUnquotableField
		}
		return f, nil
	}
}

func (d *delimWriter) needsQuotes(f, q string) bool {
	return strings.Contains(f, d.sep) || strings.Contains(f, q) || strings.ContainsAny(f, "\r\n")
}

func quote(f, q string) string {
	return q + strings.ReplaceAll(f, q, q+q) + q
}
