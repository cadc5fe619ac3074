package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
)

var errAutoCommitEnabled = errors.New("connection is in auto-commit mode")

type writeKind int

const (
	writeInsert writeKind = iota
	writeUpdate
	writeDelete
)

type write struct {
	kind  writeKind
	money int64
}

// Conn is a session with a Store. With auto-commit off, writes are staged
// and row locks are held until Commit or Rollback.
type Conn struct {
	id    string
	store *Store

	mu         sync.Mutex
	autoCommit bool
	readOnly   bool
	writes     map[string]write
	held       map[string]struct{}
}

// ID returns the handle identifier
func (c *Conn) ID() string {
	return c.id
}

// AutoCommit reports whether every statement commits on its own
func (c *Conn) AutoCommit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoCommit
}

// SetAutoCommit switches the mode. Enabling it discards staged writes.
func (c *Conn) SetAutoCommit(_ context.Context, enabled bool, opts *persistence.TxOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if enabled {
		if !c.autoCommit {
			c.endTx()
		}
		c.autoCommit = true
		c.readOnly = false
		return nil
	}

	if !c.autoCommit {
		return nil
	}
	c.autoCommit = false
	c.readOnly = opts != nil && opts.ReadOnly
	c.writes = make(map[string]write)
	return nil
}

// Commit publishes the staged writes and releases row locks
func (c *Conn) Commit(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.autoCommit {
		return errAutoCommitEnabled
	}

	err := c.store.apply(c.writes)
	c.endTx()
	return err
}

// Rollback discards the staged writes and releases row locks
func (c *Conn) Rollback(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.autoCommit {
		return errAutoCommitEnabled
	}
	c.endTx()
	return nil
}

// endTx clears the transaction state. Callers hold c.mu.
func (c *Conn) endTx() {
	c.writes = make(map[string]write)
	for id := range c.held {
		<-c.store.rowLock(id)
		delete(c.held, id)
	}
}

// discard reports whether the connection must not be reused, rolling back
// whatever it still holds
func (c *Conn) discard() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.autoCommit {
		return false
	}
	c.endTx()
	return true
}

// lock takes the row lock for id until the transaction ends. Auto-commit
// statements do not hold locks.
func (c *Conn) lock(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.autoCommit {
		c.mu.Unlock()
		return nil
	}
	if _, ok := c.held[id]; ok {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	select {
	case c.store.rowLock(id) <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("waiting for lock on member %s: %w", id, ctx.Err())
	}

	c.mu.Lock()
	c.held[id] = struct{}{}
	c.mu.Unlock()
	return nil
}

// get returns the balance visible to this connection
func (c *Conn) get(id string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.autoCommit {
		if w, ok := c.writes[id]; ok {
			return w.money, w.kind != writeDelete
		}
	}
	return c.store.committed(id)
}

func (c *Conn) insert(id string, money int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkWritable(); err != nil {
		return err
	}

	if _, exists := c.visible(id); exists {
		return &storeError{
			code: codeUniqueViolation,
			msg:  fmt.Sprintf("duplicate key value violates unique constraint: member_id=%s", id),
		}
	}

	// the committed row this transaction deleted is replaced, not inserted
	if w, ok := c.writes[id]; ok && !c.autoCommit && w.kind == writeDelete {
		return c.stage(id, write{kind: writeUpdate, money: money})
	}
	return c.stage(id, write{kind: writeInsert, money: money})
}

// update sets the balance and reports whether the row exists
func (c *Conn) update(id string, money int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkWritable(); err != nil {
		return false, err
	}

	if _, exists := c.visible(id); !exists {
		return false, nil
	}

	kind := writeUpdate
	if w, ok := c.writes[id]; ok && w.kind == writeInsert {
		kind = writeInsert
	}
	return true, c.stage(id, write{kind: kind, money: money})
}

func (c *Conn) delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkWritable(); err != nil {
		return err
	}

	if _, exists := c.visible(id); !exists {
		return nil
	}

	if w, ok := c.writes[id]; ok && w.kind == writeInsert {
		if _, committed := c.store.committed(id); !committed {
			delete(c.writes, id)
			return nil
		}
	}
	return c.stage(id, write{kind: writeDelete})
}

// visible is get without locking. Callers hold c.mu.
func (c *Conn) visible(id string) (int64, bool) {
	if !c.autoCommit {
		if w, ok := c.writes[id]; ok {
			return w.money, w.kind != writeDelete
		}
	}
	return c.store.committed(id)
}

// stage records a write, or applies it directly in auto-commit mode
func (c *Conn) stage(id string, w write) error {
	if c.autoCommit {
		return c.store.apply(map[string]write{id: w})
	}
	c.writes[id] = w
	return nil
}

func (c *Conn) checkWritable() error {
	if !c.autoCommit && c.readOnly {
		return &storeError{
			code: codeReadOnlyViolation,
			msg:  "cannot execute write in a read-only transaction",
		}
	}
	return nil
}
