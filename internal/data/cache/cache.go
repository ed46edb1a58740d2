// Package cache implements the write-through record cache the data
// director builds on: a map of locked entries over a pluggable data
// source, with retrieve and store queues drained on the data-director
// tick.
package cache

import (
	"sync"

	"go.uber.org/zap"
)

// RetrieveFunc loads the datum for key from the data source.
type RetrieveFunc[K comparable, D any] func(key K, datum *D) error

// StoreFunc persists the datum for key to the data source.
type StoreFunc[K comparable, D any] func(key K, datum *D) error

type entry[D any] struct {
	mu        sync.RWMutex
	available bool
	dirty     bool
	value     D
}

// Record gives shared/exclusive locked access to one cached entity. It
// must not outlive the cache entry it wraps.
type Record[D any] struct {
	e *entry[D]
}

// Valid reports whether the record points at an entry.
func (r Record[D]) Valid() bool {
	return r.e != nil
}

// Immutable acquires shared read access for the duration of fn. The view
// must not be mutated. Multiple concurrent immutable holders are allowed.
func (r Record[D]) Immutable(fn func(datum *D)) {
	r.e.mu.RLock()
	defer r.e.mu.RUnlock()
	fn(&r.e.value)
}

// Mutable acquires exclusive write access for the duration of fn and
// marks the record dirty. No concurrent holders.
func (r Record[D]) Mutable(fn func(datum *D)) {
	r.e.mu.Lock()
	defer r.e.mu.Unlock()
	fn(&r.e.value)
	r.e.dirty = true
}

// Cache is a map of UID-keyed records over a data source. Get never
// blocks: a miss schedules a retrieval and returns no record; the caller
// retries on a later tick. Tick and Terminate must only run on the data
// director's goroutine.
type Cache[K comparable, D any] struct {
	name string
	log  *zap.Logger

	retrieveHook RetrieveFunc[K, D]
	storeHook    StoreFunc[K, D]

	mu            sync.Mutex
	entries       map[K]*entry[D]
	retrieveQueue map[K]struct{}
	storeQueue    map[K]struct{}
}

func New[K comparable, D any](
	name string,
	retrieve RetrieveFunc[K, D],
	store StoreFunc[K, D],
	log *zap.Logger,
) *Cache[K, D] {
	return &Cache[K, D]{
		name:          name,
		log:           log,
		retrieveHook:  retrieve,
		storeHook:     store,
		entries:       make(map[K]*entry[D]),
		retrieveQueue: make(map[K]struct{}),
		storeQueue:    make(map[K]struct{}),
	}
}

// IsAvailable reports whether the datum for key is loaded.
func (c *Cache[K, D]) IsAvailable(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && e.available
}

// Get returns the record for key if it is available. On a miss the key
// is placed on the retrieve queue and no record is returned.
func (c *Cache[K, D]) Get(key K) (Record[D], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.entries[key] = &entry[D]{}
		c.retrieveQueue[key] = struct{}{}
		return Record[D]{}, false
	}
	if !e.available {
		return Record[D]{}, false
	}
	return Record[D]{e: e}, true
}

// GetAll returns records for every key only when all are available;
// there are no partial returns.
func (c *Cache[K, D]) GetAll(keys []K) ([]Record[D], bool) {
	records := make([]Record[D], 0, len(keys))
	available := true
	for _, key := range keys {
		record, ok := c.Get(key)
		if !ok {
			available = false
			continue
		}
		records = append(records, record)
	}
	if !available {
		return nil, false
	}
	return records, true
}

// Create inserts an available entry for key and returns its record.
// It fails if the key already exists.
func (c *Cache[K, D]) Create(key K) (Record[D], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return Record[D]{}, false
	}
	e := &entry[D]{available: true}
	c.entries[key] = e
	return Record[D]{e: e}, true
}

// Save enqueues the entry for store on the next tick.
func (c *Cache[K, D]) Save(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists {
		return
	}
	c.storeQueue[key] = struct{}{}
}

// Tick drains the retrieve queue and the store queue. A failed retrieval
// stays queued so the datum is attempted again next tick.
func (c *Cache[K, D]) Tick() {
	c.mu.Lock()
	retrieves := make([]K, 0, len(c.retrieveQueue))
	for key := range c.retrieveQueue {
		retrieves = append(retrieves, key)
	}
	stores := make([]K, 0, len(c.storeQueue))
	for key := range c.storeQueue {
		stores = append(stores, key)
	}
	c.mu.Unlock()

	for _, key := range retrieves {
		c.mu.Lock()
		e := c.entries[key]
		c.mu.Unlock()
		if e == nil {
			continue
		}

		e.mu.Lock()
		err := c.retrieveHook(key, &e.value)
		if err == nil {
			e.available = true
		}
		e.mu.Unlock()

		if err != nil {
			c.log.Error("retrieve failed",
				zap.String("cache", c.name),
				zap.Any("key", key),
				zap.Error(err))
			continue
		}

		c.mu.Lock()
		delete(c.retrieveQueue, key)
		c.mu.Unlock()
	}

	for _, key := range stores {
		c.mu.Lock()
		e := c.entries[key]
		delete(c.storeQueue, key)
		c.mu.Unlock()
		if e == nil {
			continue
		}

		e.mu.Lock()
		err := c.storeHook(key, &e.value)
		if err == nil {
			e.dirty = false
		}
		e.mu.Unlock()

		if err != nil {
			c.log.Error("store failed",
				zap.String("cache", c.name),
				zap.Any("key", key),
				zap.Error(err))
		}
	}
}

// Terminate flushes every available entry to the store hook and clears
// the cache.
func (c *Cache[K, D]) Terminate() {
	c.mu.Lock()
	entries := make(map[K]*entry[D], len(c.entries))
	for key, e := range c.entries {
		entries[key] = e
	}
	c.entries = make(map[K]*entry[D])
	c.retrieveQueue = make(map[K]struct{})
	c.storeQueue = make(map[K]struct{})
	c.mu.Unlock()

	for key, e := range entries {
		if !e.available {
			continue
		}
		if err := c.storeHook(key, &e.value); err != nil {
			c.log.Error("flush failed",
				zap.String("cache", c.name),
				zap.Any("key", key),
				zap.Error(err))
		}
	}
}
