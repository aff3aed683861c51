package table_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-gate/internal/table"
)

func TestFromRecords_InfersRuntimeTypes(t *testing.T) {
	header := []string{"id", "Price", "active", "born", "name", "score", "empty"}
	rows := [][]string{
		{"1", "1.5", "True", "2020-01-02", "ab", "3", ""},
		{"2", "2", "false", "2021-03-04", "abcd", "", ""},
		{"3", "-7", "TRUE", "2022-05-06 10:11:12", "x", "4", ""},
	}

	tbl, err := table.FromRecords(header, rows)
	require.NoError(t, err)
	require.NoError(t, tbl.Validate())

	assert.Equal(t, []string{"ID", "PRICE", "ACTIVE", "BORN", "NAME", "SCORE", "EMPTY"}, tbl.Names())
	assert.Equal(t, 3, tbl.Rows())

	kinds := map[string]table.Kind{}
	for _, c := range tbl.Columns {
		kinds[c.Name] = c.Type
	}
	assert.Equal(t, table.KindInt64, kinds["ID"])
	assert.Equal(t, table.KindFloat64, kinds["PRICE"])
	assert.Equal(t, table.KindBool, kinds["ACTIVE"])
	assert.Equal(t, table.KindDatetime, kinds["BORN"])
	assert.Equal(t, table.KindObject, kinds["NAME"])
	// integers with a missing value widen to float64
	assert.Equal(t, table.KindFloat64, kinds["SCORE"])
	assert.Equal(t, table.KindObject, kinds["EMPTY"])

	id, ok := tbl.Column("id")
	require.True(t, ok)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, id.Values)

	score, _ := tbl.Column("score")
	assert.Equal(t, []any{float64(3), nil, float64(4)}, score.Values)

	born, _ := tbl.Column("born")
	assert.Equal(t, time.Date(2022, 5, 6, 10, 11, 12, 0, time.UTC), born.Values[2])
}

func TestFromRecords_PadsShortRowsAndRejectsLongOnes(t *testing.T) {
	tbl, err := table.FromRecords([]string{"a", "b"}, [][]string{{"x"}, {"y", "z"}})
	require.NoError(t, err)
	b, _ := tbl.Column("B")
	assert.Equal(t, []any{nil, "z"}, b.Values)

	_, err = table.FromRecords([]string{"a"}, [][]string{{"x", "y"}})
	assert.ErrorContains(t, err, "row 1")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int64", table.KindInt64.String())
	assert.Equal(t, "float64", table.KindFloat64.String())
	assert.Equal(t, "bool", table.KindBool.String())
	assert.Equal(t, "datetime64[ns]", table.KindDatetime.String())
	assert.Equal(t, "object", table.KindObject.String())
	assert.True(t, table.KindObject.IsStringLike())
	assert.False(t, table.KindInt64.IsStringLike())
}

func TestClone_IsIndependent(t *testing.T) {
	tbl := &table.Table{Columns: []*table.Column{{Name: "A", Type: table.KindObject, Values: []any{"x", nil}}}}
	cp := tbl.Clone()
	cp.Columns[0].Values[0] = "changed"
	assert.Equal(t, "x", tbl.Columns[0].Values[0])
}

func TestClone_KeepsNilSlices(t *testing.T) {
	empty := &table.Table{}
	assert.Equal(t, empty, empty.Clone())

	noValues := &table.Table{Columns: []*table.Column{{Name: "A"}}}
	cp := noValues.Clone()
	assert.Equal(t, noValues, cp)
	assert.Nil(t, cp.Columns[0].Values)

	zero := &table.Table{Columns: []*table.Column{}}
	assert.Equal(t, zero, zero.Clone())
}

func TestFromRecords_TrimsCellsAndParsesISODates(t *testing.T) {
	tbl, err := table.FromRecords([]string{"code", "day"}, [][]string{
		{"ab  ", "2020-01-02"},
		{"  cd", "2021-12-31"},
	})
	require.NoError(t, err)

	code, _ := tbl.Column("CODE")
	assert.Equal(t, []any{"ab", "cd"}, code.Values)
	day, _ := tbl.Column("DAY")
	assert.Equal(t, table.KindDatetime, day.Type)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", table.FormatValue(nil))
	assert.Equal(t, "1.5", table.FormatValue(1.5))
	assert.Equal(t, "3", table.FormatValue(float64(3)))
	assert.Equal(t, "42", table.FormatValue(int64(42)))
	assert.Equal(t, "true", table.FormatValue(true))
	assert.Equal(t, "2020-01-02", table.FormatValue(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2020-01-02 03:04:05", table.FormatValue(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)))
}
