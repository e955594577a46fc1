package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/model"
	coremocks "github.com/amirhossein-jamali/logrelay/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestEventModelConversion(t *testing.T) {
	event := entity.NewLogEvent("billing", "a\nb", entity.SeverityWarn, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	row := eventToModel(event)
	assert.Equal(t, "WARN", row.Level)
	assert.Equal(t, event.ID, row.ID)

	back := modelToEvent(&row)
	assert.Equal(t, event, back)

	row.Level = "garbage"
	assert.Equal(t, entity.SeverityFatal, modelToEvent(&row).Level)
}

func TestMergeSettings(t *testing.T) {
	ptr := func(s string) *string { return &s }
	size := func(n int) *int { return &n }

	testCases := []struct {
		name      string
		own       *model.LoggerSetting
		fallback  *model.LoggerSetting
		cacheSize *int
		debug     string
		reporting string
	}{
		{"No rows", nil, nil, nil, "", ""},
		{
			"Fallback only",
			nil,
			&model.LoggerSetting{CacheSize: size(100), DebugThreshold: ptr("INFO"), ReportingThreshold: ptr("FATAL")},
			size(100), "INFO", "FATAL",
		},
		{
			"Own row overrides column by column",
			&model.LoggerSetting{CacheSize: size(10), ReportingThreshold: ptr("ERROR")},
			&model.LoggerSetting{CacheSize: size(100), DebugThreshold: ptr("WARN"), ReportingThreshold: ptr("FATAL")},
			size(10), "WARN", "ERROR",
		},
		{
			"Empty strings do not override",
			&model.LoggerSetting{DebugThreshold: ptr("")},
			&model.LoggerSetting{DebugThreshold: ptr("DEBUG")},
			nil, "DEBUG", "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := mergeSettings(tc.own, tc.fallback)
			assert.Equal(t, tc.cacheSize, settings.CacheSize)
			assert.Equal(t, tc.debug, settings.DebugThreshold)
			assert.Equal(t, tc.reporting, settings.ReportingThreshold)
		})
	}
}

func TestHandleDatabaseError(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("Not found maps to the sentinel without logging", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		err := handleDatabaseError(logger, classifier, "getting log event", gorm.ErrRecordNotFound, errs.ErrEventNotFound, nil)
		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})

	t.Run("Other errors are logged and wrapped", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Error("Database error when storing log event", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error_type"] == string(TransientError) && fields["context"] == "billing"
		})).Once()

		err := handleDatabaseError(logger, classifier, "storing log event", errors.New("connection reset by peer"), nil,
			map[string]any{"context": "billing"})
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	assert.Equal(t, DuplicateKeyError, c.Classify(errors.New(`duplicate key value violates unique constraint "log_events_pkey"`)))
	assert.Equal(t, TransientError, c.Classify(errors.New("read: connection reset by peer")))
	assert.Equal(t, ConnectionError, c.Classify(errors.New("dial tcp 127.0.0.1:5432")))
	assert.Equal(t, ErrorType(""), c.Classify(errors.New("syntax error")))
	assert.Equal(t, ErrorType(""), c.Classify(nil))
}
