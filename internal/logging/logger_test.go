package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("DUMBTILE_LOG_LEVEL", "error")
	t.Setenv("DUMBTILE_LOG_FORMAT", "json")

	logger := NewFromEnv()

	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel
	cfg.Output = &buf

	ctx := WithContext(context.Background(), New(cfg))
	ctx = WithComponent(ctx, "apply")
	ctx = WithWindowID(ctx, "w1")
	ctx = WithEngine(ctx, "Tree", "abc")
	ctx = WithWorkspace(ctx, "main")

	FromContext(ctx).Debug().Msg("positioned")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "apply", entry["component"])
	assert.Equal(t, "w1", entry["window"])
	assert.Equal(t, "Tree", entry["engine"])
	assert.Equal(t, "abc", entry["engine_id"])
	assert.Equal(t, "main", entry["workspace"])
	assert.Equal(t, "positioned", entry["message"])
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
