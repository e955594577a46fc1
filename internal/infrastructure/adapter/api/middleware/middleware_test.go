package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/usecase/logbuffer"
	coremocks "github.com/amirhossein-jamali/logrelay/mocks/port/core"
	sinkmocks "github.com/amirhossein-jamali/logrelay/mocks/port/sink"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("Generates an ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Keeps the caller's ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

	router := gin.New()
	router.Use(ErrorHandler(mockLogger))
	router.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

type observation struct {
	path   string
	method string
	status int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveRequest(path, method string, status int, _ coreport.Duration) {
	f.seen = append(f.seen, observation{path, method, status})
}

func TestMetrics(t *testing.T) {
	observer := &fakeObserver{}
	router := gin.New()
	router.Use(Metrics(observer))
	router.GET("/events/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events/42", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Len(t, observer.seen, 2)
	assert.Equal(t, observation{"/events/:id", http.MethodGet, http.StatusNotFound}, observer.seen[0])
	assert.Equal(t, "unmatched", observer.seen[1].path)
}

func TestLogScopeAndLogger(t *testing.T) {
	t.Run("Request lines land in the scope", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info("Request processed", mock.Anything).Once()

		factory := logbuffer.NewFactory(10, nil, logbuffer.WithDebugThreshold(entity.SeverityFatal))

		var lines []string
		router := gin.New()
		router.POST("/logs", LogScope(factory, mockLogger), Logger(mockLogger, factory), func(c *gin.Context) {
			scope, err := logbuffer.ScopeFromContext(c.Request.Context())
			require.NoError(t, err)
			lines = scope.Buffer().Lines()
			c.Status(http.StatusAccepted)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logs", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.NotEmpty(t, w.Header().Get(ScopeHeader))
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "|DEBUG|http|POST /logs from ")
	})

	t.Run("Server errors report the scope", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info("Request processed", mock.Anything).Once()
		publisher := sinkmocks.NewMockEventPublisher(t)
		publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e *entity.LogEvent) bool {
			return e.Context == HTTPContext && strings.Contains(e.Message, "-> 500")
		})).Return(nil).Once()

		factory := logbuffer.NewFactory(10, nil,
			logbuffer.WithEventPublisher(publisher),
			logbuffer.WithDebugThreshold(entity.SeverityFatal),
			logbuffer.WithReportingThreshold(entity.SeverityError),
		)

		router := gin.New()
		router.GET("/fail", LogScope(factory, mockLogger), Logger(mockLogger, factory), func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Publish failures are only warned", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info("Request processed", mock.Anything).Once()
		mockLogger.EXPECT().Warn("Request log report failed", mock.Anything).Once()
		publisher := sinkmocks.NewMockEventPublisher(t)
		publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("down")).Once()

		factory := logbuffer.NewFactory(10, nil,
			logbuffer.WithEventPublisher(publisher),
			logbuffer.WithDebugThreshold(entity.SeverityFatal),
			logbuffer.WithReportingThreshold(entity.SeverityWarn),
		)

		router := gin.New()
		router.GET("/missing", LogScope(factory, mockLogger), Logger(mockLogger, factory), func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Negative cache size fails the request", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Error("Failed to start log scope", mock.Anything).Once()

		router := gin.New()
		router.GET("/", LogScope(logbuffer.NewFactory(-1, nil), mockLogger), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})
}
