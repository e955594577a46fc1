package sink

import (
	"testing"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapSink(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	s := NewZapSink(zap.New(obsCore))

	testCases := []struct {
		severity entity.Severity
		expected zapcore.Level
	}{
		{entity.SeverityDebug, zapcore.DebugLevel},
		{entity.SeverityInfo, zapcore.InfoLevel},
		{entity.SeverityWarn, zapcore.WarnLevel},
		{entity.SeverityError, zapcore.ErrorLevel},
		{entity.SeverityFatal, zapcore.ErrorLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.severity.String(), func(t *testing.T) {
			before := logs.Len()
			require.NoError(t, s.Write(tc.severity, "line"))

			entries := logs.All()
			require.Equal(t, before+1, len(entries))
			last := entries[len(entries)-1]
			assert.Equal(t, tc.expected, last.Level)
			assert.Equal(t, "line", last.Message)
			assert.Equal(t, tc.severity.String(), last.ContextMap()["severity"])
		})
	}
}

func TestZapSinkRespectsCoreLevel(t *testing.T) {
	obsCore, logs := observer.New(zap.WarnLevel)
	s := NewZapSink(zap.New(obsCore))

	require.NoError(t, s.Write(entity.SeverityInfo, "dropped"))
	require.NoError(t, s.Write(entity.SeverityFatal, "kept"))

	assert.Equal(t, 1, logs.Len())
}
