package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestRedactsSecretKeys(t *testing.T) {
	l, logs := observed()
	l.Info("provider configured", "provider", "anthropic", "api_key", "sk-123", "auth_token", "abc")

	entries := logs.All()
	assert.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "anthropic", ctx["provider"])
	assert.Equal(t, "[REDACTED]", ctx["api_key"])
	assert.Equal(t, "[REDACTED]", ctx["auth_token"])
}

func TestRedactsNestedMaps(t *testing.T) {
	l, logs := observed()
	l.Debug("config", "llm", map[string]any{"model": "m", "apikey": "x"})

	ctx := logs.All()[0].ContextMap()
	nested, ok := ctx["llm"].(map[string]any)
	if assert.True(t, ok) {
		assert.Equal(t, "m", nested["model"])
		assert.Equal(t, "[REDACTED]", nested["apikey"])
	}
}

func TestWithCarriesFields(t *testing.T) {
	l, logs := observed()
	l.With("list_id", "L1").Warn("locked configuration dropped", "symbol", "/s/")

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "L1", ctx["list_id"])
	assert.Equal(t, "/s/", ctx["symbol"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Info("ignored", "k", "v")
		l.With("a", 1).Error("ignored")
		l.Sync()
	})
}

func TestOddKeyValues(t *testing.T) {
	got := sanitizeKVs([]any{"a", 1, "dangling"})
	assert.Equal(t, []any{"a", 1, "dangling"}, got)
}
