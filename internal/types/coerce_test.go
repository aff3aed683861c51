package types_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-gate/internal/table"
	"data-gate/internal/types"
)

func col(kind table.Kind, values ...any) *table.Column {
	return &table.Column{Name: "C", Type: kind, Values: values}
}

func TestCompatible(t *testing.T) {
	day := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		kind types.LogicalKind
		col  *table.Column
		want bool
	}{
		{"int to integer", types.Integer, col(table.KindInt64, int64(1), int64(2)), true},
		{"integral floats to integer", types.Integer, col(table.KindFloat64, 1.0, nil, 3.0), true},
		{"fractional float to integer", types.Integer, col(table.KindFloat64, 1.5), false},
		{"NaN to integer", types.Integer, col(table.KindFloat64, math.NaN()), false},
		{"2^63 to integer", types.Integer, col(table.KindFloat64, math.Pow(2, 63)), false},
		{"numeric strings to integer", types.Integer, col(table.KindObject, "12", " -4 "), true},
		{"word to integer", types.Integer, col(table.KindObject, "12", "x"), false},
		{"datetime to integer", types.Integer, col(table.KindDatetime, day), false},
		{"small ints to byte", types.Int8, col(table.KindInt64, int64(-128), int64(127)), true},
		{"large int to byte", types.Int8, col(table.KindInt64, int64(128)), false},
		{"string to byte", types.Int8, col(table.KindObject, "300"), false},
		{"ints to float", types.Float, col(table.KindInt64, int64(3)), true},
		{"strings to float", types.Float, col(table.KindObject, "3.25", "1e3"), true},
		{"word to float", types.Float, col(table.KindObject, "abc"), false},
		{"bools to boolean", types.Boolean, col(table.KindBool, true, false), true},
		{"zero-one to boolean", types.Boolean, col(table.KindInt64, int64(0), int64(1)), true},
		{"two to boolean", types.Boolean, col(table.KindInt64, int64(2)), false},
		{"yes-no to boolean", types.Boolean, col(table.KindObject, "yes", "N", "true"), true},
		{"dates to datetime", types.DateTime, col(table.KindDatetime, day), true},
		{"date strings to datetime", types.DateTime, col(table.KindObject, "2024-01-02", "01/31/2024"), true},
		{"garbage to datetime", types.DateTime, col(table.KindObject, "soon"), false},
		{"float to datetime", types.DateTime, col(table.KindFloat64, 1.5), false},
		{"clock to time", types.TimeOfDay, col(table.KindObject, "10:15", "23:59:59"), true},
		{"duration to time", types.TimeOfDay, col(table.KindObject, "1h30m"), true},
		{"word to time", types.TimeOfDay, col(table.KindObject, "noon"), false},
		{"anything to object", types.Object, col(table.KindInt64, int64(1)), true},
		{"anything to unicode", types.Unicode, col(table.KindDatetime, day), true},
		{"unsupported fails closed", types.Unsupported, col(table.KindObject, "x"), false},
		{"all missing passes", types.Integer, col(table.KindObject, nil, nil), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, types.Compatible(tc.kind, tc.col))
		})
	}
}

func TestCompatible_DoesNotMutateColumn(t *testing.T) {
	c := col(table.KindFloat64, 1.0, nil, 2.0)
	before := append([]any(nil), c.Values...)
	types.Compatible(types.Integer, c)
	assert.Equal(t, before, c.Values)
}

func TestVocabularies(t *testing.T) {
	def := types.DefaultVocabulary()
	assert.Equal(t, types.Boolean, def.Kind("Boolean"))
	assert.Equal(t, types.Int8, def.Kind("byte"))
	assert.Equal(t, types.Integer, def.Kind("SMALLINT"))
	assert.Equal(t, types.Float, def.Kind(" floating point "))
	assert.Equal(t, types.DateTime, def.Kind("date time"))
	assert.Equal(t, types.TimeOfDay, def.Kind("time"))
	assert.Equal(t, types.Unicode, def.Kind("unicode string"))
	assert.Equal(t, types.Object, def.Kind("string"))
	assert.Equal(t, types.Unsupported, def.Kind("float"))
	assert.Len(t, def.Types(), 10)

	red := types.ReducedVocabulary()
	assert.Equal(t, types.Float, red.Kind("float"))
	assert.Equal(t, types.Unsupported, red.Kind("boolean"))
	assert.Equal(t, []string{"float", "integer", "string"}, red.Types())
}

func TestNewVocabulary(t *testing.T) {
	v, err := types.NewVocabulary("custom", map[string]string{"Number": "float", "text": "object"})
	require.NoError(t, err)
	assert.Equal(t, "custom", v.Name())
	assert.Equal(t, types.Float, v.Kind("number"))
	assert.Equal(t, types.Object, v.Kind("TEXT"))

	_, err = types.NewVocabulary("broken", map[string]string{"number": "decimal"})
	assert.ErrorContains(t, err, `unknown logical kind "decimal"`)
}

func TestParseKind(t *testing.T) {
	k, err := types.ParseKind(" DateTime ")
	require.NoError(t, err)
	assert.Equal(t, types.DateTime, k)
	assert.Equal(t, "datetime", k.String())

	_, err = types.ParseKind("unsupported")
	assert.Error(t, err)
}
