package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Ngone6325/gofac-validation/internal/config"
)

func TestNewWithWriter_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		log := NewWithWriter(config.LogConfig{Level: tt.level}, &bytes.Buffer{})
		assert.Equal(t, tt.want, log.GetLevel(), "level %q", tt.level)
	}
}

func TestNewWithWriter_Output(t *testing.T) {
	t.Parallel()

	var jsonBuf bytes.Buffer
	jsonLog := NewWithWriter(config.LogConfig{}, &jsonBuf)
	jsonLog.Info().Str("lifetime", "scoped").Msg("validators registered")
	assert.Contains(t, jsonBuf.String(), `"lifetime":"scoped"`)
	assert.Contains(t, jsonBuf.String(), `"message":"validators registered"`)

	var prettyBuf bytes.Buffer
	prettyLog := NewWithWriter(config.LogConfig{Pretty: true}, &prettyBuf)
	prettyLog.Info().Msg("validators registered")
	assert.Contains(t, prettyBuf.String(), "validators registered")
	assert.NotContains(t, prettyBuf.String(), `"message"`)

	var quiet bytes.Buffer
	quietLog := NewWithWriter(config.LogConfig{Level: "warn"}, &quiet)
	quietLog.Info().Msg("dropped")
	assert.Empty(t, quiet.String())
}
