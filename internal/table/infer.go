package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// isoLayouts are the date layouts recognised while inferring column types.
// Anything else stays a string and is left to the type check.
var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// FromRecords builds a Table from a header row and string records, the way a
// dataframe reader would: header names are upper-cased, blank cells become
// missing values and each column gets the narrowest runtime type that fits
// every non-missing value.
//
// Short records are padded with missing values; a record longer than the
// header is an error.
func FromRecords(header []string, records [][]string) (*Table, error) {
	t := &Table{Columns: make([]*Column, len(header))}
	raw := make([][]string, len(header))

	for i, h := range header {
		t.Columns[i] = &Column{Name: strings.ToUpper(strings.TrimSpace(h))}
		raw[i] = make([]string, len(records))
	}

	for r, rec := range records {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("row %d: expected at most %d fields, got %d", RowNumber(r), len(header), len(rec))
		}
		for c := range header {
			if c < len(rec) {
				raw[c][r] = strings.TrimSpace(rec[c])
			}
		}
	}

	for i, col := range t.Columns {
		col.Type, col.Values = inferColumn(raw[i])
	}
	return t, nil
}

// inferColumn picks the runtime type of a column and converts its cells.
// Integers with missing values widen to float64, matching dataframe readers.
func inferColumn(cells []string) (Kind, []any) {
	seen := false
	hasNull := false
	allInt, allFloat, allBool, allDate := true, true, true, true

	for _, v := range cells {
		if isNull(v) {
			hasNull = true
			continue
		}
		seen = true
		if allInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				allFloat = false
			}
		}
		if allBool {
			if _, ok := parseBoolWord(v); !ok {
				allBool = false
			}
		}
		if allDate {
			if _, ok := parseISO(v); !ok {
				allDate = false
			}
		}
	}

	kind := KindObject
	switch {
	case !seen:
		kind = KindObject
	case allInt && !hasNull:
		kind = KindInt64
	case allInt, allFloat:
		kind = KindFloat64
	case allBool:
		kind = KindBool
	case allDate:
		kind = KindDatetime
	}

	values := make([]any, len(cells))
	for i, v := range cells {
		if isNull(v) {
			continue
		}
		switch kind {
		case KindInt64:
			values[i], _ = strconv.ParseInt(v, 10, 64)
		case KindFloat64:
			values[i], _ = strconv.ParseFloat(v, 64)
		case KindBool:
			values[i], _ = parseBoolWord(v)
		case KindDatetime:
			values[i], _ = parseISO(v)
		default:
			values[i] = v
		}
	}
	return kind, values
}

func isNull(v string) bool {
	switch v {
	case "", "NaN", "nan", "NULL", "null", "N/A", "n/a", "NA":
		return true
	}
	return false
}

// parseBoolWord accepts the spellings a dataframe reader turns into booleans.
func parseBoolWord(v string) (bool, bool) {
	switch v {
	case "True", "TRUE", "true":
		return true, true
	case "False", "FALSE", "false":
		return false, true
	}
	return false, false
}

func parseISO(v string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
