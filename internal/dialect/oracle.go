package dialect

import "fmt"

type OracleDialect struct{}

func (d *OracleDialect) Name() string { return "oracle" }

// QuoteIdent uses double quotes; Oracle stores unquoted names upper-case, so
// the upper-cased column names of an upload match either way.
func (d *OracleDialect) QuoteIdent(name string) string {
	return QuoteQualified(name, func(p string) string { return quoteWith(p, `"`, `"`) })
}

func (d *OracleDialect) DeleteQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s;", d.QuoteIdent(table))
}

func (d *OracleDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s;", d.QuoteIdent(table))
}

func (d *OracleDialect) InsertSelectQuery(table string, insertCols, selectCols []string, source string) string {
	return RenderInsertSelect(d.QuoteIdent, table, insertCols, selectCols, source)
}
