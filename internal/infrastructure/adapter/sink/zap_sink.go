package sink

import (
	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink writes debug lines to a zap logger. The line is already formatted,
// so only the message is set; FATAL is written at error level and never exits.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a debug sink on top of logger
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger.WithOptions(zap.AddCallerSkip(2))}
}

// Write implements sink.DebugSink
func (s *ZapSink) Write(level entity.Severity, message string) error {
	if ce := s.logger.Check(zapLevel(level), message); ce != nil {
		ce.Write(zap.String("severity", level.String()))
	}
	return nil
}

func zapLevel(level entity.Severity) zapcore.Level {
	switch level {
	case entity.SeverityDebug:
		return zapcore.DebugLevel
	case entity.SeverityWarn:
		return zapcore.WarnLevel
	case entity.SeverityError, entity.SeverityFatal:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
