package types

// coerce.go decides whether a column converts into a logical kind.
//
// Every non-missing value of a copy of the column is converted into the Go
// representation of the kind; missing values stand in for the kind's zero
// value and always pass. Conversions must be lossless: 1.5 is not an integer,
// 300 is not a byte, "abc" is not a float.

import (
	"math"
	"strconv"
	"strings"
	"time"

	"data-gate/internal/table"
)

// dateTimeLayouts are tried in order when a string is coerced to DateTime.
var dateTimeLayouts = []string{
	"2006-01-02", "2006/01/02", "2006.01.02", "20060102",
	"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04",
	time.RFC3339, time.RFC3339Nano,
	"01/02/2006", "1/2/2006", "02.01.2006", "2.1.2006",
	"01/02/2006 15:04:05", "02.01.2006 15:04:05",
	"Jan 2, 2006", "2 Jan 2006",
}

var timeOfDayLayouts = []string{"15:04", "15:04:05", "15:04:05.000", "15:04:05.000000"}

type coercer func(v any) bool

var coercers = map[LogicalKind]coercer{
	Boolean:   toBool,
	Int8:      func(v any) bool { return toInt(v, 8) },
	Integer:   func(v any) bool { return toInt(v, 64) },
	Float:     toFloat,
	DateTime:  toDateTime,
	TimeOfDay: toTimeOfDay,
	Unicode:   func(any) bool { return true },
	Object:    func(any) bool { return true },
}

// Compatible reports whether every non-missing value of col can be coerced
// into kind. Unsupported kinds are never compatible. col is not modified.
func Compatible(kind LogicalKind, col *table.Column) bool {
	conv, ok := coercers[kind]
	if !ok {
		return false
	}
	work := col.Clone()
	for _, v := range work.Values {
		if v == nil {
			continue
		}
		if !conv(v) {
			return false
		}
	}
	return true
}

func toBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return true
	case int64:
		return x == 0 || x == 1
	case float64:
		return x == 0 || x == 1
	case string:
		s := strings.TrimSpace(x)
		if _, err := strconv.ParseBool(s); err == nil {
			return true
		}
		switch strings.ToLower(s) {
		case "yes", "no", "y", "n":
			return true
		}
	}
	return false
}

func toInt(v any, bits int) bool {
	lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
	if bits == 8 {
		lo, hi = math.MinInt8, math.MaxInt8
	}
	switch x := v.(type) {
	case bool:
		return true
	case int64:
		return x >= lo && x <= hi
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return false
		}
		// float64(hi)+1 is 2^63 for int64, the first value that does not fit.
		return x >= float64(lo) && x < float64(hi)+1
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(x), 10, bits)
		return err == nil
	}
	return false
}

func toFloat(v any) bool {
	switch x := v.(type) {
	case bool, int64, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return err == nil
	}
	return false
}

func toDateTime(v any) bool {
	switch x := v.(type) {
	case time.Time, int64:
		return true
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateTimeLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
	}
	return false
}

func toTimeOfDay(v any) bool {
	switch x := v.(type) {
	case int64:
		return true
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range timeOfDayLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		_, err := time.ParseDuration(s)
		return err == nil
	}
	return false
}
