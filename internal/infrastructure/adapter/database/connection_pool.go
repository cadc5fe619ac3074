package database

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
)

// nearlyExhaustedRatio is the share of in-use connections that triggers a warning
const nearlyExhaustedRatio = 0.8

// ConnectionPoolMetrics tracks connection pool usage
type ConnectionPoolMetrics struct {
	OpenConnections    int           `json:"openConnections"`
	IdleConnections    int           `json:"idleConnections"`
	MaxOpenConnections int           `json:"maxOpenConnections"`
	InUse              int           `json:"inUse"`
	WaitCount          int64         `json:"waitCount"`
	WaitDuration       time.Duration `json:"waitDuration"`
	Replaced           int64         `json:"replaced"`
}

// PoolMetricsSource reports the current usage of a connection pool
type PoolMetricsSource interface {
	Metrics() ConnectionPoolMetrics
}

// Pinger checks that the store answers
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Metrics returns the database/sql pool usage
func (p *SQLPool) Metrics() ConnectionPoolMetrics {
	stats := p.db.Stats()
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		Replaced:           stats.MaxIdleClosed + stats.MaxLifetimeClosed + stats.MaxIdleTimeClosed,
	}
}

// PingContext pings the database behind the pool
func (p *SQLPool) PingContext(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// ConnectionPoolMonitor samples the connection pool and warns when it runs low
type ConnectionPoolMonitor struct {
	source       PoolMetricsSource
	logger       coreport.Logger
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(source PoolMetricsSource, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		source:   source,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples once right away and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.Collect()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Collect()
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

// GetMetrics returns the last sample
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metricsCache
}

// Collect takes a sample and logs a warning when the pool is nearly exhausted
func (m *ConnectionPoolMonitor) Collect() ConnectionPoolMetrics {
	metrics := m.source.Metrics()

	m.mutex.Lock()
	m.metricsCache = &metrics
	m.mutex.Unlock()

	if metrics.MaxOpenConnections > 0 &&
		float64(metrics.InUse) > float64(metrics.MaxOpenConnections)*nearlyExhaustedRatio {
		m.logger.Warn("Connection pool nearly exhausted", map[string]any{
			"in_use":     metrics.InUse,
			"max_open":   metrics.MaxOpenConnections,
			"idle":       metrics.IdleConnections,
			"wait_count": metrics.WaitCount,
			"wait_time":  metrics.WaitDuration.String(),
		})
	}

	return metrics
}

// HealthStatus is the overall verdict of a health check
type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "UP"
	HealthStatusDown HealthStatus = "DOWN"
)

// HealthReport is the result of one health check
type HealthReport struct {
	Status       HealthStatus          `json:"status"`
	Error        string                `json:"error,omitempty"`
	CheckedAt    time.Time             `json:"checkedAt"`
	Pool         ConnectionPoolMetrics `json:"pool"`
	Broker       BrokerStats           `json:"broker"`
	Transactions TransactionStats      `json:"transactions"`
}

// HealthChecker pings the store and gathers pool, broker and transaction counters
type HealthChecker struct {
	pinger       Pinger
	monitor      *ConnectionPoolMonitor
	broker       *ConnectionBroker
	metrics      *MetricsCollector
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	pingTimeout  time.Duration

	mu   sync.RWMutex
	last *HealthReport
}

// NewHealthChecker creates a new health checker. broker and metrics may be nil.
func NewHealthChecker(
	pinger Pinger,
	monitor *ConnectionPoolMonitor,
	broker *ConnectionBroker,
	metrics *MetricsCollector,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *HealthChecker {
	return &HealthChecker{
		pinger:       pinger,
		monitor:      monitor,
		broker:       broker,
		metrics:      metrics,
		logger:       logger,
		timeProvider: timeProvider,
		pingTimeout:  5 * time.Second,
	}
}

// Check pings the store and returns a fresh report
func (h *HealthChecker) Check(ctx context.Context) HealthReport {
	report := HealthReport{
		Status:    HealthStatusUp,
		CheckedAt: h.timeProvider.Now(),
	}

	pingCtx, cancel := h.timeProvider.WithTimeout(ctx, coreport.Duration(h.pingTimeout))
	defer cancel()

	if err := h.pinger.PingContext(pingCtx); err != nil {
		report.Status = HealthStatusDown
		report.Error = err.Error()
		h.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
	}

	if h.monitor != nil {
		report.Pool = h.monitor.Collect()
	}
	if h.broker != nil {
		report.Broker = h.broker.Stats()
	}
	if h.metrics != nil {
		report.Transactions = h.metrics.Snapshot()
	}

	h.mu.Lock()
	h.last = &report
	h.mu.Unlock()

	return report
}

// Last returns the most recent report, if any check has run
func (h *HealthChecker) Last() (HealthReport, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.last == nil {
		return HealthReport{}, false
	}
	return *h.last, true
}
