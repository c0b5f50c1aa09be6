package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	log, err := New(false, false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))

	debugLog, err := New(true, true)
	require.NoError(t, err)
	assert.True(t, debugLog.Core().Enabled(zapcore.DebugLevel))
}

func TestWithLLM(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithLLM(zap.New(core), " cerebras ", "").Info("call")

	entries := observed.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "cerebras", ctx[FieldProvider])
	_, hasModel := ctx[FieldModel]
	assert.False(t, hasModel)

	assert.NotPanics(t, func() {
		WithLLM(nil, "", "").Info("no-op")
	})
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "hello", TruncateForLog("  hello  ", 10))
	assert.Equal(t, "hel...", TruncateForLog("hello", 3))
	assert.Equal(t, "", TruncateForLog("hello", 0))
	assert.Equal(t, "hél...", TruncateForLog("héllo", 3))
}
