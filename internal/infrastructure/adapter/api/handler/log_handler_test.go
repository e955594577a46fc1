package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/amirhossein-jamali/logrelay/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/logrelay/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(h *LogHandler) *gin.Engine {
	router := gin.New()
	router.POST("/api/v1/logs", h.Ingest)
	router.GET("/api/v1/events", h.ListEvents)
	router.GET("/api/v1/events/:id", h.GetEvent)
	return router
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIngest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		relayUseCase := usecasemocks.NewMockRelayUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)
		scopeID := uuid.New()
		size := 10

		relayUseCase.EXPECT().Ingest(mock.Anything, usecase.IngestCommand{
			Context:            "orders",
			Entries:            []usecase.IngestEntry{{Level: "INFO", Message: "placed {0}", Args: []any{"A-1"}}},
			ReportingThreshold: "ERROR",
			CacheSize:          &size,
		}).Return(&usecase.IngestResult{
			ScopeID:            scopeID,
			Context:            "orders",
			Accepted:           1,
			DebugThreshold:     entity.SeverityInfo,
			ReportingThreshold: entity.SeverityError,
			Lines:              []string{"line"},
		}, nil).Once()

		w := doRequest(newRouter(NewLogHandler(relayUseCase, mockLogger)), http.MethodPost, "/api/v1/logs", map[string]any{
			"context":            "orders",
			"reportingThreshold": "ERROR",
			"cacheSize":          10,
			"entries":            []map[string]any{{"level": "INFO", "message": "placed {0}", "args": []any{"A-1"}}},
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.IngestResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, scopeID.String(), resp.ScopeID)
		assert.Equal(t, 1, resp.Accepted)
		assert.Equal(t, "INFO", resp.DebugThreshold)
		assert.Equal(t, "ERROR", resp.ReportingThreshold)
		assert.Equal(t, []string{"line"}, resp.Lines)
	})

	t.Run("Invalid body", func(t *testing.T) {
		relayUseCase := usecasemocks.NewMockRelayUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Invalid ingest request format", mock.Anything).Once()

		w := doRequest(newRouter(NewLogHandler(relayUseCase, mockLogger)), http.MethodPost, "/api/v1/logs", map[string]any{
			"entries": []map[string]any{{"level": "INFO"}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeInvalidRequest, resp.Code)
	})

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Unknown level", domainerr.NewLevelError("LOUD"), http.StatusBadRequest},
		{"Publish failure", domainerr.NewPublishError("orders", "redis", errors.New("down")), http.StatusBadGateway},
		{"Database down", domainerr.ErrDatabaseConnection, http.StatusServiceUnavailable},
		{"Unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			relayUseCase := usecasemocks.NewMockRelayUseCase(t)
			mockLogger := coremocks.NewMockLogger(t)
			mockLogger.EXPECT().Error("Error ingesting log batch", mock.Anything).Once()
			relayUseCase.EXPECT().Ingest(mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := doRequest(newRouter(NewLogHandler(relayUseCase, mockLogger)), http.MethodPost, "/api/v1/logs", map[string]any{
				"context": "orders",
				"entries": []map[string]any{{"level": "INFO", "message": "x"}},
			})

			assert.Equal(t, tc.expectedStatus, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, domainerr.ErrorCode(tc.err), resp.Code)
			if tc.expectedStatus == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", resp.Message)
			}
		})
	}
}

func TestListEvents(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		relayUseCase := usecasemocks.NewMockRelayUseCase(t)
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		events := []*entity.LogEvent{
			{ID: uuid.New(), Context: "billing", Level: entity.SeverityFatal, Message: "m", CreatedAt: created},
		}
		relayUseCase.EXPECT().ListEvents(mock.Anything, "billing", 5).Return(events, nil).Once()

		w := doRequest(newRouter(NewLogHandler(relayUseCase, coremocks.NewMockLogger(t))), http.MethodGet, "/api/v1/events?context=billing&limit=5", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.EventListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, "FATAL", resp.Events[0].Level)
		assert.True(t, created.Equal(resp.Events[0].CreatedAt))
	})

	t.Run("Invalid limit", func(t *testing.T) {
		w := doRequest(newRouter(NewLogHandler(usecasemocks.NewMockRelayUseCase(t), coremocks.NewMockLogger(t))), http.MethodGet, "/api/v1/events?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		relayUseCase := usecasemocks.NewMockRelayUseCase(t)
		id := uuid.New()
		relayUseCase.EXPECT().GetEvent(mock.Anything, id).Return(&entity.LogEvent{ID: id, Level: entity.SeverityError}, nil).Once()

		w := doRequest(newRouter(NewLogHandler(relayUseCase, coremocks.NewMockLogger(t))), http.MethodGet, "/api/v1/events/"+id.String(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.EventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id.String(), resp.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		relayUseCase := usecasemocks.NewMockRelayUseCase(t)
		id := uuid.New()
		relayUseCase.EXPECT().GetEvent(mock.Anything, id).Return(nil, domainerr.ErrEventNotFound).Once()

		w := doRequest(newRouter(NewLogHandler(relayUseCase, coremocks.NewMockLogger(t))), http.MethodGet, "/api/v1/events/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		w := doRequest(newRouter(NewLogHandler(usecasemocks.NewMockRelayUseCase(t), coremocks.NewMockLogger(t))), http.MethodGet, "/api/v1/events/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(_ context.Context) error { return f.err }

func TestHealth(t *testing.T) {
	testCases := []struct {
		name           string
		db             Pinger
		expectedStatus int
		expectedBody   dto.HealthResponse
	}{
		{"No database", nil, http.StatusOK, dto.HealthResponse{Status: "ok"}},
		{"Database up", fakePinger{}, http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"}},
		{"Database down", fakePinger{err: errors.New("refused")}, http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "refused"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthHandler(tc.db).Health)

			w := doRequest(router, http.MethodGet, "/health", nil)

			assert.Equal(t, tc.expectedStatus, w.Code)
			var resp dto.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedBody, resp)
		})
	}
}
