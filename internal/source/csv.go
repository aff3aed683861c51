package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrEmptyFile = errors.New("file has no header row")

// readDelimited parses a delimited file into its header and records. Double
// quoted files go through encoding/csv; single quoted files use
// splitQuoted, since encoding/csv cannot change its quote character.
func readDelimited(r io.Reader, o Options) ([]string, [][]string, error) {
	sep, err := o.separator()
	if err != nil {
		return nil, nil, err
	}
	q, err := o.quoteChar()
	if err != nil {
		return nil, nil, err
	}
	dr, err := o.decode(r)
	if err != nil {
		return nil, nil, err
	}

	var records [][]string
	if q == quoteDefault {
		cr := csv.NewReader(dr)
		cr.Comma = sep
		cr.LazyQuotes = true
		cr.FieldsPerRecord = -1 // ragged rows are handled by the table builder
		records, err = cr.ReadAll()
	} else {
		records, err = splitQuoted(bufio.NewReader(dr), sep, q)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parse delimited data: %w", err)
	}

	records = dropBlankRecords(records)
	if len(records) == 0 {
		return nil, nil, ErrEmptyFile
	}
	return records[0], records[1:], nil
}

// splitQuoted is a small RFC 4180 style reader with a configurable quote
// character. A quote opens quoted mode only at the start of a field; anywhere
// else it is data (O'Brien). Inside quotes a doubled quote is a literal quote,
// and separators and newlines are data.
func splitQuoted(r *bufio.Reader, sep, q rune) ([][]string, error) {
	var (
		records [][]string
		record  []string
		field   strings.Builder
		quoted  bool
		started bool // current field has consumed input
		line    = 1
	)
	endField := func() {
		record = append(record, field.String())
		field.Reset()
		started = false
	}
	endRecord := func() {
		endField()
		records = append(records, record)
		record = nil
	}

	for {
		c, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if quoted {
			if c != q {
				if c == '\n' {
					line++
				}
				field.WriteRune(c)
				continue
			}
			next, _, err := r.ReadRune()
			if err == nil && next == q {
				field.WriteRune(q)
				continue
			}
			if err == nil {
				_ = r.UnreadRune()
			}
			quoted = false
			continue
		}

		switch {
		case c == q && !started:
			quoted = true
			started = true
		case c == sep:
			endField()
		case c == '\r':
			// swallowed; \r\n ends the record on the \n
		case c == '\n':
			endRecord()
			line++
		default:
			field.WriteRune(c)
			started = true
		}
	}

	if quoted {
		return nil, fmt.Errorf("line %d: unterminated quoted field", line)
	}
	if field.Len() > 0 || len(record) > 0 {
		endRecord()
	}
	return records, nil
}

func dropBlankRecords(records [][]string) [][]string {
	out := make([][]string, 0, len(records))
	for _, rec := range records {
		if isBlankRecord(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func isBlankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
