// Package reconcile compares an uploaded table with a rule set and produces a
// per-column report.
package reconcile

import (
	"unicode/utf8"

	"data-gate/internal/schema"
	"data-gate/internal/table"
	"data-gate/internal/types"
)

// Engine reconciles tables against rule sets. It holds no per-run state and
// may be shared between goroutines.
type Engine struct {
	vocab      *types.Vocabulary
	legacyGate bool
	observer   func(Verdict)
}

type Option func(*Engine)

// WithLegacyLengthGate skips length checks once any earlier column of the
// file has failed.
func WithLegacyLengthGate(enabled bool) Option {
	return func(e *Engine) { e.legacyGate = enabled }
}

// WithObserver registers a callback invoked after each verdict is produced.
func WithObserver(fn func(Verdict)) Option {
	return func(e *Engine) { e.observer = fn }
}

// NewEngine returns an engine resolving logical types through vocab; a nil
// vocab selects the default vocabulary.
func NewEngine(vocab *types.Vocabulary, opts ...Option) *Engine {
	if vocab == nil {
		vocab = types.DefaultVocabulary()
	}
	e := &Engine{vocab: vocab}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile checks every column of t against rules. It never fails: every
// problem is recorded as a verdict. Neither input is modified.
func (e *Engine) Reconcile(rules *schema.RuleSet, t *table.Table) *Report {
	report := &Report{Sheet: rules.Sheet}
	matched := make(map[string]bool, rules.Len())
	fileOK := true

	for _, col := range t.Columns {
		var v Verdict
		rule, ok := rules.Lookup(col.Name)
		if ok {
			matched[rule.Canonical()] = true
			v = e.checkColumn(rule, col, fileOK)
		} else {
			v = Verdict{
				ExpectedColumn: NotExpected,
				ActualColumn:   col.Name,
				ExpectedType:   NotExpected,
				ActualType:     col.Type.String(),
				Status:         Status{Code: StatusUnexpectedColumn},
			}
		}
		fileOK = fileOK && v.Status.OK()
		e.emit(report, v)
	}

	for _, rule := range rules.Entries() {
		if matched[rule.Canonical()] {
			continue
		}
		e.emit(report, Verdict{
			ExpectedColumn: rule.Canonical(),
			ActualColumn:   NotPresent,
			ExpectedType:   rule.LogicalType,
			ActualType:     NotPresent,
			TargetColumn:   rule.TargetColumn,
			Status:         Status{Code: StatusMissingColumn},
		})
	}
	return report
}

func (e *Engine) emit(r *Report, v Verdict) {
	r.Verdicts = append(r.Verdicts, v)
	if e.observer != nil {
		e.observer(v)
	}
}

// checkColumn runs the type check and, when it passes on a string column,
// the length check. fileOK is only consulted with the legacy gate.
func (e *Engine) checkColumn(rule schema.RuleEntry, col *table.Column, fileOK bool) Verdict {
	v := Verdict{
		ExpectedColumn: col.Name,
		ActualColumn:   col.Name,
		ExpectedType:   rule.LogicalType,
		ActualType:     col.Type.String(),
		TargetColumn:   rule.TargetColumn,
		Status:         Status{Code: StatusOK},
	}

	if !types.Compatible(e.vocab.Kind(rule.LogicalType), col) {
		v.Status = Status{Code: StatusIncompatibleTypes}
		return v
	}

	if !col.Type.IsStringLike() || !rule.HasMaxLength() {
		return v
	}
	if e.legacyGate && !fileOK {
		return v
	}
	if maxLen, row, over := longestValue(col, *rule.MaxLength); over {
		v.Status = Status{
			Code:        StatusColumnTooLong,
			ExpectedLen: *rule.MaxLength,
			ActualLen:   maxLen,
			Row:         row,
		}
	}
	return v
}

// longestValue returns the longest string length in col, the 1-based row of
// the first value longer than limit, and whether such a value exists.
// Lengths are counted in characters, not bytes.
func longestValue(col *table.Column, limit int) (maxLen, firstRow int, over bool) {
	for i, v := range col.Values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n := utf8.RuneCountInString(s)
		if n > maxLen {
			maxLen = n
		}
		if n > limit && !over {
			over = true
			firstRow = table.RowNumber(i)
		}
	}
	return maxLen, firstRow, over
}
