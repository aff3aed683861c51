package dialect

// Dialect renders the advisory load statements for one database flavour.
// Nothing here is ever executed.
type Dialect interface {
	Name() string

	// Identifier quoting. Qualified names ("dbo.orders") are quoted per part.
	QuoteIdent(name string) string

	// Query Generation
	DeleteQuery(table string) string
	TruncateQuery(table string) string
	InsertSelectQuery(table string, insertCols, selectCols []string, source string) string
}
