package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	domainErr "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/database"
)

// Engine codes reported by the store, following SQLSTATE
const (
	codeUniqueViolation   = "23505"
	codeReadOnlyViolation = "25006"
)

// storeError is a failure reported by the store with an engine code
type storeError struct {
	code string
	msg  string
}

func (e *storeError) Error() string { return e.msg }

// SQLState returns the engine code
func (e *storeError) SQLState() string { return e.code }

// PoolStats is a snapshot of the store's connection pool
type PoolStats struct {
	Capacity int `json:"capacity"`
	Idle     int `json:"idle"`
	InUse    int `json:"inUse"`
	Replaced int `json:"replaced"`
}

// Store is an in-process member table with a fixed-size connection pool.
// Connections see committed rows plus their own uncommitted writes.
type Store struct {
	mu      sync.Mutex
	members map[string]int64
	locks   map[string]chan struct{}

	capacity       int
	idle           chan *Conn
	acquireTimeout coreport.Duration
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger

	statsMu  sync.Mutex
	lent     map[string]*Conn
	replaced int
}

// NewStore creates a store lending at most capacity connections at a time
func NewStore(capacity int, acquireTimeout coreport.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *Store {
	if capacity <= 0 {
		capacity = 1
	}

	s := &Store{
		members:        make(map[string]int64),
		locks:          make(map[string]chan struct{}),
		capacity:       capacity,
		idle:           make(chan *Conn, capacity),
		acquireTimeout: acquireTimeout,
		timeProvider:   timeProvider,
		logger:         logger,
		lent:           make(map[string]*Conn),
	}
	for range capacity {
		s.idle <- s.newConn()
	}
	return s
}

func (s *Store) newConn() *Conn {
	return &Conn{
		id:         uuid.NewString(),
		store:      s,
		autoCommit: true,
		held:       make(map[string]struct{}),
	}
}

// Acquire takes an idle connection, waiting at most the acquire timeout
func (s *Store) Acquire(ctx context.Context) (persistence.Conn, error) {
	acquireCtx, cancel := s.timeProvider.WithTimeout(ctx, s.acquireTimeout)
	defer cancel()

	select {
	case conn := <-s.idle:
		s.statsMu.Lock()
		s.lent[conn.id] = conn
		s.statsMu.Unlock()
		return conn, nil
	case <-acquireCtx.Done():
		err := acquireCtx.Err()
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("all %d connections in use: %w: %w", s.capacity, domainErr.ErrResourceExhausted, err)
		}
		return nil, err
	}
}

// Release puts a connection back. A connection still inside a transaction
// is rolled back and replaced by a fresh one.
func (s *Store) Release(conn persistence.Conn) error {
	c, ok := conn.(*Conn)
	if !ok || c.store != s {
		return fmt.Errorf("release: connection %T does not belong to this store", conn)
	}

	s.statsMu.Lock()
	if _, lent := s.lent[c.id]; !lent {
		s.statsMu.Unlock()
		return fmt.Errorf("release: connection %s is not lent out", c.id)
	}
	delete(s.lent, c.id)

	if c.discard() {
		s.replaced++
		s.statsMu.Unlock()
		s.logger.Warn("Connection returned inside a transaction, replacing it", map[string]any{
			"connection_id": c.id,
		})
		s.idle <- s.newConn()
		return nil
	}
	s.statsMu.Unlock()

	s.idle <- c
	return nil
}

// Stats returns a snapshot of pool usage
func (s *Store) Stats() PoolStats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	return PoolStats{
		Capacity: s.capacity,
		Idle:     len(s.idle),
		InUse:    len(s.lent),
		Replaced: s.replaced,
	}
}

// Metrics reports pool usage in the shape the pool monitor samples
func (s *Store) Metrics() database.ConnectionPoolMetrics {
	stats := s.Stats()
	return database.ConnectionPoolMetrics{
		OpenConnections:    stats.Capacity,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.Capacity,
		InUse:              stats.InUse,
		Replaced:           int64(stats.Replaced),
	}
}

// PingContext always succeeds while ctx is live
func (s *Store) PingContext(ctx context.Context) error {
	return ctx.Err()
}

// Seed writes a committed member directly, bypassing connections
func (s *Store) Seed(id string, money int64) {
	s.mu.Lock()
	s.members[id] = money
	s.mu.Unlock()
}

// Balance returns the committed balance of a member
func (s *Store) Balance(id string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	money, ok := s.members[id]
	return money, ok
}

func (s *Store) committed(id string) (int64, bool) {
	return s.Balance(id)
}

// rowLock returns the lock guarding id, creating it on first use
func (s *Store) rowLock(id string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = make(chan struct{}, 1)
		s.locks[id] = lock
	}
	return lock
}

// apply makes a set of staged writes visible to everyone. Inserts of keys
// that were committed meanwhile fail the whole batch.
func (s *Store) apply(writes map[string]write) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range writes {
		if w.kind == writeInsert {
			if _, exists := s.members[id]; exists {
				return &storeError{
					code: codeUniqueViolation,
					msg:  fmt.Sprintf("duplicate key value violates unique constraint: member_id=%s", id),
				}
			}
		}
	}

	for id, w := range writes {
		switch w.kind {
		case writeInsert, writeUpdate:
			s.members[id] = w.money
		case writeDelete:
			delete(s.members, id)
		}
	}
	return nil
}
