package dialect

import "fmt"

// AnsiDialect writes identifiers verbatim.
type AnsiDialect struct{}

func (d *AnsiDialect) Name() string { return "ansi" }

func (d *AnsiDialect) QuoteIdent(name string) string {
	return name
}

func (d *AnsiDialect) DeleteQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s;", d.QuoteIdent(table))
}

func (d *AnsiDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s;", d.QuoteIdent(table))
}

func (d *AnsiDialect) InsertSelectQuery(table string, insertCols, selectCols []string, source string) string {
	return RenderInsertSelect(d.QuoteIdent, table, insertCols, selectCols, source)
}
