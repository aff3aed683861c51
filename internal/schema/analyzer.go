package schema

import (
	"math"
	"strconv"
	"strings"
)

// Rule sheet headers, matched case-insensitively.
const (
	ColTargetColumn  = "Target Column"
	ColAttributeName = "Attribute Name"
	ColDataType      = "Data Type"
	ColColumnSize    = "Column Size"
)

var requiredColumns = []string{ColTargetColumn, ColAttributeName, ColDataType, ColColumnSize}

// PickSheet chooses the rule sheet to use. An empty name selects the first
// sheet.
func PickSheet(sheets []string, name string) (string, error) {
	if len(sheets) == 0 {
		return "", &ConstructionError{Sheet: name, Err: ErrSheetNotFound}
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	for _, s := range sheets {
		if strings.EqualFold(s, name) {
			return s, nil
		}
	}
	return "", &ConstructionError{Sheet: name, Err: ErrSheetNotFound}
}

// Build turns a raw rule sheet into a RuleSet. The header must contain all
// four rule columns; rows with a blank attribute name are skipped. Nothing is
// returned on error.
func Build(sheet string, header []string, rows [][]string) (*RuleSet, error) {
	// Use map for O(1) lookups of the rule columns, keyed upper-case.
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := Canonical(h)
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := pos[Canonical(c)]; !ok {
			return nil, &ConstructionError{Sheet: sheet, Column: c, Err: ErrMissingRuleColumn}
		}
	}

	cell := func(row []string, col string) string {
		i := pos[Canonical(col)]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rs := &RuleSet{Sheet: sheet, index: make(map[string]int)}
	for r, row := range rows {
		attr := cell(row, ColAttributeName)
		if attr == "" {
			continue
		}
		key := Canonical(attr)
		if _, dup := rs.index[key]; dup {
			return nil, &ConstructionError{Sheet: sheet, Column: attr, Row: r + 1, Err: ErrDuplicateAttribute}
		}

		size, err := parseColumnSize(cell(row, ColColumnSize))
		if err != nil {
			return nil, &ConstructionError{Sheet: sheet, Column: attr, Row: r + 1, Err: ErrInvalidColumnSize}
		}

		rs.index[key] = len(rs.entries)
		rs.entries = append(rs.entries, RuleEntry{
			TargetColumn:    cell(row, ColTargetColumn),
			SourceAttribute: attr,
			LogicalType:     strings.ToLower(cell(row, ColDataType)),
			MaxLength:       size,
		})
	}
	return rs, nil
}

// New builds a RuleSet from entries directly.
func New(sheet string, entries ...RuleEntry) (*RuleSet, error) {
	rs := &RuleSet{Sheet: sheet, index: make(map[string]int, len(entries))}
	for i, e := range entries {
		key := e.Canonical()
		if _, dup := rs.index[key]; dup {
			return nil, &ConstructionError{Sheet: sheet, Column: e.SourceAttribute, Row: i + 1, Err: ErrDuplicateAttribute}
		}
		e.LogicalType = strings.ToLower(strings.TrimSpace(e.LogicalType))
		rs.index[key] = len(rs.entries)
		rs.entries = append(rs.entries, e)
	}
	return rs, nil
}

// parseColumnSize reads the "Column Size" cell. Spreadsheets often render
// integers as floats ("10.0"); blanks and placeholders mean no limit.
func parseColumnSize(s string) (*int, error) {
	switch strings.ToLower(s) {
	case "", "-", "nan", "none", "0":
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil, strconv.ErrRange
	}
	if f == 0 {
		return nil, nil
	}
	n := int(f)
	return &n, nil
}

// IntPtr is a small helper for building entries with a length limit.
func IntPtr(n int) *int {
	return &n
}
