package schema

import "strings"

// RuleEntry describes one expected column of an uploaded file.
type RuleEntry struct {
	TargetColumn    string // column name in the database table
	SourceAttribute string // column name in the uploaded file, case insensitive
	LogicalType     string // type name from the rule vocabulary
	MaxLength       *int   // only meaningful for string-like types
}

// Canonical is the upper-cased attribute name used for matching.
func (e RuleEntry) Canonical() string {
	return Canonical(e.SourceAttribute)
}

// HasMaxLength reports whether a length limit was declared.
func (e RuleEntry) HasMaxLength() bool {
	return e.MaxLength != nil
}

// RuleSet is the ordered, read-only collection of rules taken from one sheet.
type RuleSet struct {
	Sheet   string
	entries []RuleEntry
	index   map[string]int // canonical attribute -> position in entries
}

// Entries returns a copy of the rules in sheet order.
func (rs *RuleSet) Entries() []RuleEntry {
	out := make([]RuleEntry, len(rs.entries))
	copy(out, rs.entries)
	return out
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.entries)
}

// Lookup finds the rule for a column name, ignoring case.
func (rs *RuleSet) Lookup(name string) (RuleEntry, bool) {
	i, ok := rs.index[Canonical(name)]
	if !ok {
		return RuleEntry{}, false
	}
	return rs.entries[i], true
}

// Canonical folds a column or attribute name for comparison.
func Canonical(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
