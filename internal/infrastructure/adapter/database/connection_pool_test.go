package database

import (
	"database/sql"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/logrelay/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeStats struct {
	stats sql.DBStats
}

func (f fakeStats) Stats() sql.DBStats {
	return f.stats
}

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("Healthy pool stays quiet", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		monitor := NewConnectionPoolMonitor(fakeStats{sql.DBStats{MaxOpenConnections: 10, InUse: 2}}, logger)

		monitor.collectMetrics()

		assert.Equal(t, 2, monitor.GetMetrics().InUse)
	})

	t.Run("Nearly exhausted pool warns", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()
		monitor := NewConnectionPoolMonitor(fakeStats{sql.DBStats{MaxOpenConnections: 10, InUse: 9}}, logger)

		monitor.collectMetrics()
	})

	t.Run("Stop is idempotent", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(fakeStats{}, coremocks.NewMockLogger(t))
		monitor.Start(time.Hour)
		monitor.Stop()
		monitor.Stop()
	})
}
