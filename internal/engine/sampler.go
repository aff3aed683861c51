package engine

import (
	"errors"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"data-gate/internal/schema"
	"data-gate/internal/table"
	"data-gate/internal/types"
)

var ErrUnsupportedType = errors.New("no sample generator for data type")

// Options tune sample generation.
type Options struct {
	// Seed makes the output reproducible; 0 picks a random seed.
	Seed int64
	// NullEvery blanks every n-th value of columns that are not identifiers;
	// 0 disables it.
	NullEvery int
	// OnRow is called after each generated row.
	OnRow func()
}

// Sample is generated data in both raw and parsed form.
type Sample struct {
	Header  []string
	Records [][]string
	Table   *table.Table
}

// Generate synthesizes rows of data that pass reconciliation against rules:
// one column per rule, named after its source attribute, in rule order.
func Generate(rules *schema.RuleSet, vocab *types.Vocabulary, rows int, opts Options) (*Sample, error) {
	if vocab == nil {
		vocab = types.DefaultVocabulary()
	}
	g := &valueGenerator{faker: gofakeit.New(opts.Seed), now: time.Now().Truncate(time.Second)}

	entries := rules.Entries()
	kinds := make([]types.LogicalKind, len(entries))
	header := make([]string, len(entries))
	for i, e := range entries {
		kinds[i] = vocab.Kind(e.LogicalType)
		if kinds[i] == types.Unsupported {
			return nil, &GenerateError{Attribute: e.SourceAttribute, LogicalType: e.LogicalType}
		}
		header[i] = e.SourceAttribute
	}

	records := make([][]string, 0, rows)
	for r := 0; r < rows; r++ {
		rec := make([]string, len(entries))
		for i, e := range entries {
			if opts.NullEvery > 0 && (r+1)%opts.NullEvery == 0 && !isIdentifier(strings.ToLower(e.SourceAttribute)) {
				continue
			}
			v, err := g.generateValue(e, kinds[i], r)
			if err != nil {
				return nil, err
			}
			rec[i] = v
		}
		records = append(records, rec)
		if opts.OnRow != nil {
			opts.OnRow()
		}
	}

	t, err := table.FromRecords(header, records)
	if err != nil {
		return nil, err
	}
	return &Sample{Header: header, Records: records, Table: t}, nil
}

// GenerateError reports a rule whose logical type has no generator.
type GenerateError struct {
	Attribute   string
	LogicalType string
}

func (e *GenerateError) Error() string {
	return ErrUnsupportedType.Error() + ` "` + e.LogicalType + `" (attribute ` + e.Attribute + ")"
}

func (e *GenerateError) Unwrap() error { return ErrUnsupportedType }
