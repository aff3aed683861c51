package reconcile

import "fmt"

// Absent-side markers, as shown in the report.
const (
	NotExpected = "..." // expected side of an unexpected column
	NotPresent  = ""    // actual side of a missing column
)

// StatusCode classifies the outcome for one column.
type StatusCode int

const (
	StatusOK StatusCode = iota
	StatusIncompatibleTypes
	StatusColumnTooLong
	StatusUnexpectedColumn
	StatusMissingColumn
)

func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "OK"
	case StatusIncompatibleTypes:
		return "Incompatible Types"
	case StatusColumnTooLong:
		return "Column too long"
	case StatusUnexpectedColumn:
		return "Unexpected column"
	case StatusMissingColumn:
		return "Expected column missing"
	default:
		return fmt.Sprintf("StatusCode(%d)", int(c))
	}
}

// Status is a StatusCode plus the details of a length violation.
type Status struct {
	Code        StatusCode
	ExpectedLen int // ColumnTooLong only
	ActualLen   int // ColumnTooLong only
	Row         int // ColumnTooLong only: 1-based row of the first offending value
}

func (s Status) OK() bool {
	return s.Code == StatusOK
}

// String renders the status message shown in reports.
func (s Status) String() string {
	if s.Code == StatusColumnTooLong {
		return fmt.Sprintf("Column too long, expected:%d, but found: %d in row %d", s.ExpectedLen, s.ActualLen, s.Row)
	}
	return s.Code.String()
}

// Verdict is the outcome for one actual or one missing expected column.
type Verdict struct {
	ExpectedColumn string
	ActualColumn   string
	ExpectedType   string
	ActualType     string
	// TargetColumn is the database column from the matching rule, empty for
	// unexpected columns.
	TargetColumn string
	Status       Status
}
