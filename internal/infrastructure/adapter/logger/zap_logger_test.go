package logger

import (
	"testing"

	"github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Run("Level gating", func(t *testing.T) {
		obsCore, logs := observer.New(zap.DebugLevel)
		log := NewZapLoggerFromCore(obsCore, core.LogLevelWarn)

		log.Debug("dropped", nil)
		log.Info("dropped", nil)
		log.Warn("kept", map[string]any{"sink": "zap"})
		log.Error("kept", nil)

		require.Equal(t, 2, logs.Len())
		assert.Equal(t, "zap", logs.All()[0].ContextMap()["sink"])
		assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	})

	t.Run("SetLevel", func(t *testing.T) {
		obsCore, logs := observer.New(zap.DebugLevel)
		log := NewZapLoggerFromCore(obsCore, core.LogLevelError)

		log.Info("dropped", nil)
		log.SetLevel(core.LogLevelDebug)
		log.Debug("kept", nil)

		assert.Equal(t, 1, logs.Len())
		assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	})

	t.Run("With shares level and adds fields", func(t *testing.T) {
		obsCore, logs := observer.New(zap.DebugLevel)
		log := NewZapLoggerFromCore(obsCore, core.LogLevelInfo)
		child := log.With(map[string]any{"component": "relay"})

		log.SetLevel(core.LogLevelError)
		child.Info("dropped", nil)
		child.Error("kept", map[string]any{"context": "billing"})

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "relay", fields["component"])
		assert.Equal(t, "billing", fields["context"])
	})
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)

	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}
