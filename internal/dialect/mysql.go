package dialect

import "fmt"

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string { return "mysql" }

func (d *MysqlDialect) QuoteIdent(name string) string {
	return QuoteQualified(name, func(p string) string { return quoteWith(p, "`", "`") })
}

func (d *MysqlDialect) DeleteQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s;", d.QuoteIdent(table))
}

func (d *MysqlDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s;", d.QuoteIdent(table))
}

func (d *MysqlDialect) InsertSelectQuery(table string, insertCols, selectCols []string, source string) string {
	return RenderInsertSelect(d.QuoteIdent, table, insertCols, selectCols, source)
}
