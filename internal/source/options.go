// Package source reads uploaded data files and rule workbooks into the
// in-memory shapes the reconciliation engine works on.
package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Options describe how a delimited data file is parsed.
type Options struct {
	Encoding  string `mapstructure:"encoding"`
	Separator string `mapstructure:"separator"`
	Quoting   string `mapstructure:"quoting"`
}

// DefaultOptions are the upload defaults: Latin-1, semicolons, no quoting.
func DefaultOptions() Options {
	return Options{Encoding: "iso-8859-1", Separator: ";", Quoting: "none"}
}

// Quote kinds accepted when reading.
const (
	quoteDefault = '"'
	quoteSingle  = '\''
)

// quoteChar maps the quoting option onto the quote character. "none" keeps
// the reader's default double quote.
func (o Options) quoteChar() (rune, error) {
	switch strings.ToLower(strings.TrimSpace(o.Quoting)) {
	case "", "none", "no quotes", "double", "double quotes":
		return quoteDefault, nil
	case "single", "single quotes":
		return quoteSingle, nil
	}
	return 0, fmt.Errorf("unknown quoting %q (expected none, single or double)", o.Quoting)
}

func (o Options) separator() (rune, error) {
	switch o.Separator {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r := []rune(o.Separator)
	if len(r) != 1 || r[0] == '\n' || r[0] == '\r' || r[0] == '"' || r[0] == '\'' {
		return 0, fmt.Errorf("invalid separator %q", o.Separator)
	}
	return r[0], nil
}

func (o Options) encoding() (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(o.Encoding)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", o.Encoding)
}

// decode wraps r so that it yields UTF-8.
func (o Options) decode(r io.Reader) (io.Reader, error) {
	enc, err := o.encoding()
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(r), nil
}

// Validate checks every option without reading any data.
func (o Options) Validate() error {
	if _, err := o.encoding(); err != nil {
		return err
	}
	if _, err := o.separator(); err != nil {
		return err
	}
	_, err := o.quoteChar()
	return err
}

func (o Options) String() string {
	return fmt.Sprintf("encoding=%s separator=%q quoting=%s", o.Encoding, o.Separator, o.Quoting)
}
