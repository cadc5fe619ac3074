package database

import (
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
)

// DefaultSlowTransactionThreshold is used when no threshold is configured
const DefaultSlowTransactionThreshold = 500 * time.Millisecond

// TransactionStats is a snapshot of transaction outcomes
type TransactionStats struct {
	Begun            uint64 `json:"begun"`
	Committed        uint64 `json:"committed"`
	RolledBack       uint64 `json:"rolledBack"`
	Joined           uint64 `json:"joined"`
	CommitFailures   uint64 `json:"commitFailures"`
	RollbackFailures uint64 `json:"rollbackFailures"`
	BeginFailures    uint64 `json:"beginFailures"`
}

// MetricsCollector counts transaction outcomes and reports slow transactions
type MetricsCollector struct {
	logger        coreport.Logger
	slowThreshold time.Duration

	begun            atomic.Uint64
	committed        atomic.Uint64
	rolledBack       atomic.Uint64
	joined           atomic.Uint64
	commitFailures   atomic.Uint64
	rollbackFailures atomic.Uint64
	beginFailures    atomic.Uint64
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, slowThreshold time.Duration) *MetricsCollector {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowTransactionThreshold
	}
	return &MetricsCollector{
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

// RecordBegin counts a started transaction
func (c *MetricsCollector) RecordBegin() {
	c.begun.Add(1)
}

// RecordBeginFailure counts a transaction that could not be started
func (c *MetricsCollector) RecordBeginFailure() {
	c.beginFailures.Add(1)
}

// RecordJoin counts a unit of work that joined an outer transaction
func (c *MetricsCollector) RecordJoin() {
	c.joined.Add(1)
}

// RecordCommit counts a committed transaction
func (c *MetricsCollector) RecordCommit(txID string, elapsed time.Duration) {
	c.committed.Add(1)
	c.observe(txID, "committed", elapsed)
}

// RecordCommitFailure counts a transaction whose commit failed
func (c *MetricsCollector) RecordCommitFailure(txID string, elapsed time.Duration) {
	c.commitFailures.Add(1)
	c.observe(txID, "commit_failed", elapsed)
}

// RecordRollback counts a rolled back transaction. failed means the rollback
// itself returned an error.
func (c *MetricsCollector) RecordRollback(txID string, elapsed time.Duration, failed bool) {
	if failed {
		c.rollbackFailures.Add(1)
		c.observe(txID, "rollback_failed", elapsed)
		return
	}
	c.rolledBack.Add(1)
	c.observe(txID, "rolled_back", elapsed)
}

func (c *MetricsCollector) observe(txID, outcome string, elapsed time.Duration) {
	if elapsed <= c.slowThreshold {
		return
	}
	c.logger.Warn("Slow transaction detected", map[string]any{
		"transaction_id": txID,
		"outcome":        outcome,
		"duration_ms":    elapsed.Milliseconds(),
		"threshold_ms":   c.slowThreshold.Milliseconds(),
	})
}

// Snapshot returns the current counters
func (c *MetricsCollector) Snapshot() TransactionStats {
	return TransactionStats{
		Begun:            c.begun.Load(),
		Committed:        c.committed.Load(),
		RolledBack:       c.rolledBack.Load(),
		Joined:           c.joined.Load(),
		CommitFailures:   c.commitFailures.Load(),
		RollbackFailures: c.rollbackFailures.Load(),
		BeginFailures:    c.beginFailures.Load(),
	}
}
