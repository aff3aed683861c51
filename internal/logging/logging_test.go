package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		l := newLogger(&Config{LogLevel: tc.in}, &buf)
		assert.Equal(t, tc.want, l.GetLevel(), tc.in)
	}
}

func TestNewLogger_WritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&Config{LogLevel: "info"}, &buf)

	l.Debug().Msg("hidden")
	l.Info().Str("sheet", "Orders").Msg("rules loaded")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "rules loaded")
	assert.Contains(t, out, "sheet=Orders")
}
