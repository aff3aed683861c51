package dialect

import "fmt"

type MSSQLDialect struct{}

func (d *MSSQLDialect) Name() string { return "mssql" }

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return QuoteQualified(name, func(p string) string { return quoteWith(p, "[", "]") })
}

func (d *MSSQLDialect) DeleteQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s;", d.QuoteIdent(table))
}

// TruncateQuery falls back to DELETE: SQL Server refuses TRUNCATE on tables
// referenced by foreign keys.
func (d *MSSQLDialect) TruncateQuery(table string) string {
	return d.DeleteQuery(table)
}

func (d *MSSQLDialect) InsertSelectQuery(table string, insertCols, selectCols []string, source string) string {
	return RenderInsertSelect(d.QuoteIdent, table, insertCols, selectCols, source)
}
