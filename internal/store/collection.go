package store

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/settleview/settleview-api/pkg/metrics"
)

// Record is implemented by every entity kept in a Collection. Clone must
// return a deep copy; the collection never hands out a record it may later
// mutate, so readers can marshal results without holding the lock.
type Record[T any] interface {
	RecordID() string
	SetRecordID(id string)
	Owner() string
	SetOwner(sub string)
	Clone() T
}

// Collection is a mutex-guarded, insertion-ordered, owner-scoped in-memory
// record collection. Ids are assigned from a monotonic per-collection counter
// with a domain prefix and are never reused or reassigned. All operations are
// scoped to the owning subject: records of other users are invisible.
type Collection[T Record[T]] struct {
	mu     sync.RWMutex
	name   string
	prefix string
	seq    int
	items  []T
	ids    map[string]struct{}
}

func NewCollection[T Record[T]](name, prefix string) *Collection[T] {
	return &Collection[T]{name: name, prefix: prefix, ids: make(map[string]struct{})}
}

// nextID returns a fresh unique id. The counter only moves forward, so ids
// freed by Delete are never handed out again.
func (c *Collection[T]) nextID() string {
	for {
		c.seq++
		id := c.prefix + strconv.Itoa(c.seq)
		if _, taken := c.ids[id]; !taken {
			return id
		}
	}
}

// Seed inserts pre-built records (typically demo fixtures) keeping their ids.
// Records without an id get one assigned.
func (c *Collection[T]) Seed(owner string, recs ...T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range recs {
		if r.RecordID() == "" {
			r.SetRecordID(c.nextID())
		}
		r.SetOwner(owner)
		c.ids[r.RecordID()] = struct{}{}
		c.items = append(c.items, r)
	}
}

// List returns the owner's records in insertion order.
func (c *Collection[T]) List(owner string) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, r := range c.items {
		if r.Owner() == owner {
			out = append(out, r)
		}
	}
	metrics.ResourceOps.WithLabelValues(c.name, "list").Inc()
	return out
}

// Get returns the owner's record with the given id.
func (c *Collection[T]) Get(owner, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	i := c.indexOf(owner, id)
	if i < 0 {
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	return c.items[i], nil
}

// Create assigns a fresh id, stamps the owner and appends the record.
func (c *Collection[T]) Create(owner string, rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec.SetRecordID(c.nextID())
	rec.SetOwner(owner)
	c.ids[rec.RecordID()] = struct{}{}
	c.items = append(c.items, rec)
	metrics.ResourceOps.WithLabelValues(c.name, "create").Inc()
	return rec
}

// Update applies fn to a copy of the owner's record and swaps it in. The id
// and owner survive whatever fn does to the copy, so they are immutable at
// the store boundary. The merged record is returned.
func (c *Collection[T]) Update(owner, id string, fn func(T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	i := c.indexOf(owner, id)
	if i < 0 {
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	merged := c.items[i].Clone()
	fn(merged)
	merged.SetRecordID(id)
	merged.SetOwner(owner)
	c.items[i] = merged
	metrics.ResourceOps.WithLabelValues(c.name, "update").Inc()
	return merged, nil
}

// UpdateEach applies fn to a copy of every record of the owner under one
// critical section, so multi-record swaps (e.g. reassigning the default
// payment method) are never observable half-applied.
func (c *Collection[T]) UpdateEach(owner string, fn func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.items {
		if r.Owner() != owner {
			continue
		}
		merged := r.Clone()
		fn(merged)
		merged.SetRecordID(r.RecordID())
		merged.SetOwner(owner)
		c.items[i] = merged
	}
	metrics.ResourceOps.WithLabelValues(c.name, "update").Inc()
}

// Delete removes the owner's record with the given id. When guard is non-nil
// it runs against the record first; a guard error aborts the delete and is
// returned unchanged.
func (c *Collection[T]) Delete(owner, id string, guard func(T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(owner, id)
	if i < 0 {
		return fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	if guard != nil {
		if err := guard(c.items[i]); err != nil {
			return err
		}
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	metrics.ResourceOps.WithLabelValues(c.name, "delete").Inc()
	return nil
}

// Len reports how many records the owner has.
func (c *Collection[T]) Len(owner string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, r := range c.items {
		if r.Owner() == owner {
			n++
		}
	}
	return n
}

// indexOf is called with the lock held.
func (c *Collection[T]) indexOf(owner, id string) int {
	for i, r := range c.items {
		if r.Owner() == owner && r.RecordID() == id {
			return i
		}
	}
	return -1
}
