package relay

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/config"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/logrelay/internal/domain/usecase/logbuffer"
	configmocks "github.com/amirhossein-jamali/logrelay/mocks/port/config"
	coremocks "github.com/amirhossein-jamali/logrelay/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/logrelay/mocks/port/persistence"
	sinkmocks "github.com/amirhossein-jamali/logrelay/mocks/port/sink"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func scopedContext(t *testing.T, capacity int) (context.Context, *logbuffer.Scope) {
	t.Helper()
	scope, err := logbuffer.NewScopeWithCapacity(context.Background(), capacity)
	require.NoError(t, err)
	return logbuffer.WithScope(context.Background(), scope), scope
}

func TestIngest(t *testing.T) {
	t.Run("Buffers entries without reporting", func(t *testing.T) {
		ctx, scope := scopedContext(t, 3)
		publisher := sinkmocks.NewMockEventPublisher(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		factory := logbuffer.NewFactory(3, nil, logbuffer.WithEventPublisher(publisher))
		service := NewService(factory, persistencemocks.NewMockLogEventRepository(t), mockLogger)

		result, err := service.Ingest(ctx, usecase.IngestCommand{
			Context: "orders",
			Entries: []usecase.IngestEntry{
				{Level: "INFO", Message: "m1"},
				{Level: "info", Message: "m2"},
				{Level: "INFO", Message: "m3"},
				{Level: "INFO", Message: "m{0}", Args: []any{4}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, scope.ID(), result.ScopeID)
		assert.Equal(t, 4, result.Accepted)
		assert.Equal(t, 0, result.Reports)
		require.Len(t, result.Lines, 3)
		assert.Contains(t, result.Lines[0], "|INFO|orders|m2")
		assert.Contains(t, result.Lines[2], "|INFO|orders|m4")
	})

	t.Run("Reporting threshold override publishes", func(t *testing.T) {
		ctx, _ := scopedContext(t, 100)
		publisher := sinkmocks.NewMockEventPublisher(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(event *entity.LogEvent) bool {
			return event.Context == "checkout" && event.Level == entity.SeverityError
		})).Return(nil).Once()

		factory := logbuffer.NewFactory(100, nil, logbuffer.WithEventPublisher(publisher))
		service := NewService(factory, persistencemocks.NewMockLogEventRepository(t), mockLogger)

		result, err := service.Ingest(ctx, usecase.IngestCommand{
			Context:            "checkout",
			ReportingThreshold: "ERROR",
			Entries: []usecase.IngestEntry{
				{Level: "WARN", Message: "retrying"},
				{Level: "ERROR", Message: "boom"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Reports)
		assert.Equal(t, entity.SeverityError, result.ReportingThreshold)
	})

	t.Run("Publish failure aborts the batch", func(t *testing.T) {
		ctx, scope := scopedContext(t, 100)
		publisher := sinkmocks.NewMockEventPublisher(t)
		mockLogger := coremocks.NewMockLogger(t)

		publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
		mockLogger.EXPECT().Error("Report failed during ingest", mock.Anything).Once()

		factory := logbuffer.NewFactory(100, nil, logbuffer.WithEventPublisher(publisher))
		service := NewService(factory, persistencemocks.NewMockLogEventRepository(t), mockLogger)

		result, err := service.Ingest(ctx, usecase.IngestCommand{
			Context: "checkout",
			Entries: []usecase.IngestEntry{
				{Level: "FATAL", Message: "down"},
				{Level: "INFO", Message: "never logged"},
			},
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrPublishFailed)
		assert.Equal(t, 1, scope.Buffer().Len())
	})

	t.Run("Flush publishes even below threshold", func(t *testing.T) {
		ctx, _ := scopedContext(t, 100)
		publisher := sinkmocks.NewMockEventPublisher(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		factory := logbuffer.NewFactory(100, nil, logbuffer.WithEventPublisher(publisher))
		service := NewService(factory, persistencemocks.NewMockLogEventRepository(t), mockLogger)

		result, err := service.Ingest(ctx, usecase.IngestCommand{
			Context: "batch",
			Flush:   true,
			Entries: []usecase.IngestEntry{{Level: "DEBUG", Message: "quiet"}},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Reports)
	})

	t.Run("Settings come from the source", func(t *testing.T) {
		ctx, scope := scopedContext(t, 100)
		source := configmocks.NewMockSettingsSource(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		size := 2
		source.EXPECT().LoggerSettings(mock.Anything, "inventory").Return(config.LoggerSettings{
			CacheSize: &size,
		}, nil).Once()

		service := NewService(logbuffer.NewFactory(100, source), persistencemocks.NewMockLogEventRepository(t), mockLogger)

		result, err := service.Ingest(ctx, usecase.IngestCommand{
			Context: "inventory",
			Entries: []usecase.IngestEntry{
				{Level: "INFO", Message: "a"},
				{Level: "INFO", Message: "b"},
				{Level: "INFO", Message: "c"},
			},
		})

		require.NoError(t, err)
		assert.Len(t, result.Lines, 2)
		assert.Equal(t, 2, scope.Buffer().Capacity())
	})

	t.Run("Validation errors", func(t *testing.T) {
		ctx, scope := scopedContext(t, 100)
		service := NewService(logbuffer.NewFactory(100, nil), persistencemocks.NewMockLogEventRepository(t), coremocks.NewMockLogger(t))

		_, err := service.Ingest(ctx, usecase.IngestCommand{Context: " ", Entries: []usecase.IngestEntry{{Level: "INFO"}}})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = service.Ingest(ctx, usecase.IngestCommand{Context: "x"})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = service.Ingest(ctx, usecase.IngestCommand{
			Context: "x",
			Entries: []usecase.IngestEntry{{Level: "INFO", Message: "ok"}, {Level: "LOUD", Message: "bad"}},
		})
		assert.ErrorIs(t, err, errs.ErrUnknownLevel)
		assert.Equal(t, 0, scope.Buffer().Len())

		_, err = service.Ingest(ctx, usecase.IngestCommand{
			Context:        "x",
			DebugThreshold: "CHATTY",
			Entries:        []usecase.IngestEntry{{Level: "INFO", Message: "ok"}},
		})
		assert.ErrorIs(t, err, errs.ErrUnknownLevel)

		_, err = service.Ingest(context.Background(), usecase.IngestCommand{
			Context: "x",
			Entries: []usecase.IngestEntry{{Level: "INFO", Message: "ok"}},
		})
		assert.ErrorIs(t, err, errs.ErrScopeMissing)
	})
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()
	events := []*entity.LogEvent{{ID: uuid.New(), Context: "billing"}}

	testCases := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{"Default limit", 0, DefaultListLimit},
		{"Custom limit", 10, 10},
		{"Capped limit", 10_000, MaxListLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := persistencemocks.NewMockLogEventRepository(t)
			repo.EXPECT().List(ctx, persistence.EventFilter{Context: "billing", Limit: tc.expectedLimit}).Return(events, nil).Once()

			service := NewService(logbuffer.NewFactory(100, nil), repo, coremocks.NewMockLogger(t))

			result, err := service.ListEvents(ctx, " billing ", tc.limit)

			require.NoError(t, err)
			assert.Equal(t, events, result)
		})
	}
}

func TestGetEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		id := uuid.New()
		repo := persistencemocks.NewMockLogEventRepository(t)
		repo.EXPECT().GetByID(ctx, id).Return(&entity.LogEvent{ID: id}, nil).Once()

		service := NewService(logbuffer.NewFactory(100, nil), repo, coremocks.NewMockLogger(t))
		event, err := service.GetEvent(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, event.ID)
	})

	t.Run("Nil id", func(t *testing.T) {
		service := NewService(logbuffer.NewFactory(100, nil), persistencemocks.NewMockLogEventRepository(t), coremocks.NewMockLogger(t))
		_, err := service.GetEvent(ctx, uuid.Nil)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()
		repo := persistencemocks.NewMockLogEventRepository(t)
		repo.EXPECT().GetByID(ctx, id).Return(nil, errs.ErrEventNotFound).Once()

		service := NewService(logbuffer.NewFactory(100, nil), repo, coremocks.NewMockLogger(t))
		_, err := service.GetEvent(ctx, id)

		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})
}
