package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-gate/internal/dialect"
)

func TestGetDialect(t *testing.T) {
	for _, name := range append(dialect.Names, "", "PostgreSQL", "sqlserver", "mariadb") {
		d, err := dialect.GetDialect(name)
		require.NoError(t, err, name)
		assert.NotNil(t, d)
	}

	_, err := dialect.GetDialect("db2")
	assert.ErrorContains(t, err, `unknown SQL dialect "db2"`)
}

func TestQuoteIdent(t *testing.T) {
	tests := []struct {
		dialect string
		in      string
		want    string
	}{
		{"ansi", "dbo.Orders", "dbo.Orders"},
		{"postgres", "public.orders", `"public"."orders"`},
		{"postgres", `we"ird`, `"we""ird"`},
		{"mysql", "shop.orders", "`shop`.`orders`"},
		{"mysql", "a`b", "`a``b`"},
		{"mssql", "dbo.Orders", "[dbo].[Orders]"},
		{"mssql", "a]b", "[a]]b]"},
		{"oracle", "HR.EMP", `"HR"."EMP"`},
	}
	for _, tc := range tests {
		d, err := dialect.GetDialect(tc.dialect)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.QuoteIdent(tc.in), "%s %s", tc.dialect, tc.in)
	}
}

func TestInsertSelectQuery_Ansi(t *testing.T) {
	d, _ := dialect.GetDialect("ansi")
	got := d.InsertSelectQuery("T", []string{"A", "B"}, []string{"A", "B"}, "dataframe")
	assert.Equal(t, "INSERT INTO T \n(\n  A\n, B\n) \n SELECT \n  A\n, B \nFROM dataframe;", got)
}

func TestInsertSelectQuery_Mssql(t *testing.T) {
	d, _ := dialect.GetDialect("mssql")
	got := d.InsertSelectQuery("dbo.T", []string{"X"}, []string{"A"}, "staging")
	assert.Equal(t, "INSERT INTO [dbo].[T] \n(\n  [X]\n) \n SELECT \n  [A] \nFROM [staging];", got)
}

func TestClearQueries(t *testing.T) {
	pg, _ := dialect.GetDialect("postgres")
	assert.Equal(t, `DELETE FROM "t";`, pg.DeleteQuery("t"))
	assert.Equal(t, `TRUNCATE TABLE "t" CASCADE;`, pg.TruncateQuery("t"))

	ms, _ := dialect.GetDialect("mssql")
	assert.Equal(t, "DELETE FROM [t];", ms.TruncateQuery("t"))

	ansi, _ := dialect.GetDialect("")
	assert.Equal(t, "TRUNCATE TABLE t;", ansi.TruncateQuery("t"))
}
