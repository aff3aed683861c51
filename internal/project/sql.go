// Package project turns a reconciliation report into the two terminal
// outputs: an advisory load statement and a filtered export of the passing
// columns.
package project

import (
	"errors"
	"strings"

	"data-gate/internal/dialect"
	"data-gate/internal/reconcile"
)

// DefaultSource is the relation the generated INSERT selects from.
const DefaultSource = "dataframe"

var ErrNoPassingColumns = errors.New("no column passed the checks")

// SQLOptions tune the generated statement.
type SQLOptions struct {
	Dialect dialect.Dialect // nil selects ansi
	Source  string          // defaults to DefaultSource
	// UseTargetColumns lists the rules' target columns in the INSERT column
	// list instead of the file's attribute names.
	UseTargetColumns bool
	// Truncate empties the table with TRUNCATE instead of DELETE.
	Truncate bool
}

// SQL builds "DELETE FROM t; INSERT INTO t (...) SELECT ... FROM source;"
// over the verdicts with status OK, in report order. The text is advisory
// and never executed.
func SQL(r *reconcile.Report, target string, opts SQLOptions) (string, error) {
	d := opts.Dialect
	if d == nil {
		d = &dialect.AnsiDialect{}
	}
	source := opts.Source
	if source == "" {
		source = DefaultSource
	}

	var insertCols, selectCols []string
	for _, v := range r.Passing() {
		col := v.ExpectedColumn
		if opts.UseTargetColumns && v.TargetColumn != "" {
			col = v.TargetColumn
		}
		insertCols = append(insertCols, col)
		selectCols = append(selectCols, v.ActualColumn)
	}
	if len(insertCols) == 0 {
		return "", ErrNoPassingColumns
	}

	wipe := d.DeleteQuery(target)
	if opts.Truncate {
		wipe = d.TruncateQuery(target)
	}

	var b strings.Builder
	b.WriteString(wipe)
	b.WriteString("\n")
	b.WriteString(d.InsertSelectQuery(target, insertCols, selectCols, source))
	return b.String(), nil
}
