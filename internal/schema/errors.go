package schema

import (
	"errors"
	"fmt"
)

var (
	ErrSheetNotFound      = errors.New("rule sheet not found")
	ErrMissingRuleColumn  = errors.New("missing expected column")
	ErrDuplicateAttribute = errors.New("duplicate attribute name in rule sheet")
	ErrInvalidColumnSize  = errors.New("invalid column size")
)

// ConstructionError reports why a RuleSet could not be built.
type ConstructionError struct {
	Sheet  string
	Column string // offending rule column or attribute, if any
	Row    int    // 1-based data row, 0 when not row specific
	Err    error
}

func (e *ConstructionError) Error() string {
	switch {
	case e.Row > 0:
		return fmt.Sprintf("sheet %s, row %d: %v: %s", e.Sheet, e.Row, e.Err, e.Column)
	case e.Column != "":
		return fmt.Sprintf("%v %s in configuration sheet %s", e.Err, e.Column, e.Sheet)
	default:
		return fmt.Sprintf("%v: %s", e.Err, e.Sheet)
	}
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
