package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"data-gate/internal/schema"
	"data-gate/internal/table"
)

// File formats recognised by extension.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var ErrLegacyWorkbook = errors.New("legacy .xls workbooks are not supported, save the file as .xlsx")

// FormatOf maps a file name onto one of the supported formats. Plain text
// extensions are read as delimited data.
func FormatOf(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt", ".tsv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return "", ErrLegacyWorkbook
	}
	return "", fmt.Errorf("unsupported file type %q (expected csv or xlsx)", filepath.Ext(name))
}

// Loader reads data files and rule workbooks.
type Loader struct {
	opts   Options
	cache  *Cache
	logger zerolog.Logger
}

// NewLoader validates opts and returns a Loader. cache may be nil.
func NewLoader(opts Options, cache *Cache, logger zerolog.Logger) (*Loader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Loader{opts: opts, cache: cache, logger: logger}, nil
}

func (l *Loader) Options() Options { return l.opts }

// LoadTable reads the data file at path.
func (l *Loader) LoadTable(path string) (*table.Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	return l.ReadTable(filepath.Base(path), content)
}

// ReadTable parses an uploaded data file. name only selects the format.
func (l *Loader) ReadTable(name string, content []byte) (*table.Table, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}

	key := Fingerprint(content, format, l.opts)
	if t, ok := l.cache.Get(key); ok {
		l.logger.Debug().Str("file", name).Msg("using cached table")
		return t, nil
	}

	var header []string
	var rows [][]string
	switch format {
	case FormatXLSX:
		wb, err := readWorkbook(bytes.NewReader(content))
		if err != nil {
			return nil, err
		}
		header, rows, err = wb.first()
		if err != nil {
			return nil, err
		}
	default:
		header, rows, err = readDelimited(bytes.NewReader(content), l.opts)
		if err != nil {
			return nil, err
		}
	}

	t, err := table.FromRecords(header, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	l.logger.Info().
		Str("file", name).
		Int("columns", len(t.Columns)).
		Int("rows", t.Rows()).
		Msg("data file loaded")

	l.cache.Put(key, t)
	return t, nil
}

// RuleSheets lists the sheets of a rules file that could hold rules. A CSV
// rules file has one implicit sheet named after the file.
func (l *Loader) RuleSheets(path string) ([]string, error) {
	sheets, _, err := l.readRuleSheets(path)
	return sheets, err
}

// LoadRules builds the RuleSet from the named sheet of a rules file; an
// empty sheet selects the first one. The sheet list is returned as well.
func (l *Loader) LoadRules(path, sheet string) (*schema.RuleSet, []string, error) {
	sheets, rows, err := l.readRuleSheets(path)
	if err != nil {
		return nil, nil, err
	}
	name, err := schema.PickSheet(sheets, sheet)
	if err != nil {
		return nil, sheets, err
	}
	header, data, err := splitHeader(rows[name])
	if err != nil {
		return nil, sheets, fmt.Errorf("rule sheet %s: %w", name, err)
	}
	rs, err := schema.Build(name, header, data)
	if err != nil {
		return nil, sheets, err
	}
	l.logger.Info().Str("sheet", name).Int("rules", rs.Len()).Msg("rules loaded")
	return rs, sheets, nil
}

func (l *Loader) readRuleSheets(path string) ([]string, map[string][][]string, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read rules file: %w", err)
	}

	if format == FormatXLSX {
		wb, err := readWorkbook(bytes.NewReader(content))
		if err != nil {
			return nil, nil, err
		}
		return wb.sheets, wb.rows, nil
	}

	header, rows, err := readDelimited(bytes.NewReader(content), l.opts)
	if err != nil {
		return nil, nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return []string{name}, map[string][][]string{name: append([][]string{header}, rows...)}, nil
}
