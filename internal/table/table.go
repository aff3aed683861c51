// Package table holds the in-memory representation of an uploaded data file:
// an ordered set of named columns, each carrying a runtime type inferred from
// its values.
package table

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the runtime type of a column, named the way a dataframe reports
// its dtypes.
type Kind int

const (
	KindObject Kind = iota
	KindInt64
	KindFloat64
	KindBool
	KindDatetime
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime64[ns]"
	default:
		return "object"
	}
}

// IsStringLike reports whether values of this kind are compared by length.
func (k Kind) IsStringLike() bool {
	return k == KindObject
}

// Column is one named column. Values are nil (missing), int64, float64,
// bool, time.Time or string.
type Column struct {
	Name   string
	Type   Kind
	Values []any
}

// Clone returns a deep enough copy for coercion tests: the value slice is
// copied, the scalars are immutable.
func (c *Column) Clone() *Column {
	var values []any
	if c.Values != nil {
		values = make([]any, len(c.Values))
		copy(values, c.Values)
	}
	return &Column{Name: c.Name, Type: c.Type, Values: values}
}

// Table is an ordered collection of equally long columns.
type Table struct {
	Columns []*Column
}

// Rows returns the row count (0 for a table without columns).
func (t *Table) Rows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the first column whose name matches case-insensitively.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return nil, false
}

// Clone copies the table so the result can be handed to a caller that may
// modify it.
func (t *Table) Clone() *Table {
	out := &Table{}
	if t.Columns == nil {
		return out
	}
	out.Columns = make([]*Column, len(t.Columns))
	for i, c := range t.Columns {
		out.Columns[i] = c.Clone()
	}
	return out
}

// Validate checks that every column has the same length.
func (t *Table) Validate() error {
	rows := t.Rows()
	for _, c := range t.Columns {
		if len(c.Values) != rows {
			return fmt.Errorf("column %s has %d values, expected %d", c.Name, len(c.Values), rows)
		}
	}
	return nil
}

// RowNumber converts a zero-based value index into the 1-based row number
// shown to users.
func RowNumber(index int) int {
	return index + 1
}

// FormatValue renders a scalar for text output; nil becomes the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04:05")
	case float64:
		return formatFloat(x)
	default:
		return fmt.Sprint(x)
	}
}
