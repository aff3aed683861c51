package dialect

import (
	"fmt"
	"strings"
)

// columnSeparator joins column lists one per line with a leading comma.
const columnSeparator = "\n, "

// RenderInsertSelect builds the INSERT ... SELECT statement shared by all
// dialects; quote is applied to every identifier.
func RenderInsertSelect(quote func(string) string, table string, insertCols, selectCols []string, source string) string {
	return fmt.Sprintf("INSERT INTO %s \n(\n  %s\n) \n SELECT \n  %s \nFROM %s;",
		quote(table),
		strings.Join(quoteAll(quote, insertCols), columnSeparator),
		strings.Join(quoteAll(quote, selectCols), columnSeparator),
		quote(source))
}

// QuoteQualified quotes each dot-separated part of name with quotePart.
func QuoteQualified(name string, quotePart func(string) string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = quotePart(p)
	}
	return strings.Join(parts, ".")
}

// quoteWith wraps s in open/close, doubling any embedded close character.
func quoteWith(s, open, close string) string {
	return open + strings.ReplaceAll(s, close, close+close) + close
}

func quoteAll(quote func(string) string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = quote(n)
	}
	return out
}
