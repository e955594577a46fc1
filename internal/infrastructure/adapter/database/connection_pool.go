package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
)

// statsSource is the subset of *sql.DB the monitor reads
type statsSource interface {
	Stats() sql.DBStats
}

// ConnectionPoolMonitor periodically inspects the connection pool and warns
// when it is close to exhaustion
type ConnectionPoolMonitor struct {
	db       statsSource
	logger   coreport.Logger
	stats    sql.DBStats
	mutex    sync.RWMutex
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db statsSource, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring the connection pool
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.collectMetrics()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.collectMetrics()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the last collected pool statistics
func (m *ConnectionPoolMonitor) GetMetrics() sql.DBStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.stats
}

// collectMetrics collects current connection pool metrics
func (m *ConnectionPoolMonitor) collectMetrics() {
	stats := m.db.Stats()

	m.mutex.Lock()
	m.stats = stats
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
