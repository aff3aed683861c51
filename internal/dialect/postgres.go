package dialect

import (
	"fmt"

	"github.com/lib/pq"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string { return "postgres" }

func (d *PostgresDialect) QuoteIdent(name string) string {
	return QuoteQualified(name, pq.QuoteIdentifier)
}

func (d *PostgresDialect) DeleteQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s;", d.QuoteIdent(table))
}

func (d *PostgresDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s CASCADE;", d.QuoteIdent(table))
}

func (d *PostgresDialect) InsertSelectQuery(table string, insertCols, selectCols []string, source string) string {
	return RenderInsertSelect(d.QuoteIdent, table, insertCols, selectCols, source)
}
