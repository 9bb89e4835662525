// Package lru provides a fixed-capacity least-recently-used cache.
//
// A Cache pairs a hash index with a recency list: the front of the list is the
// most recently used entry and the back is the next one to be evicted.
//
// Cache is not safe for concurrent use. Hosts that share an instance across
// goroutines must serialize access themselves.
package lru

import (
	"container/list"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidCapacity = errors.New("capacity must be at least 1")

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-capacity LRU cache.
// The zero value is not usable, create instances with New or MustNew.
type Cache[K comparable, V any] struct {
	id       string
	capacity int
	items    map[K]*list.Element
	recency  *list.List

	onEvict func(K, V)
	logger  *zap.Logger
}

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithLogger sets the logger used for eviction and clear events.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(c *Cache[K, V]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnEvict registers a callback invoked for every capacity eviction.
// It is not called for entries dropped by Clear or Remove.
func WithOnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("lru: %w: got %d", ErrInvalidCapacity, capacity)
	}
	c := &Cache[K, V]{
		id:       uuid.New().String(),
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		recency:  list.New(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("id", c.id))
	return c, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	c, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value stored under key and marks it most recently used.
// A miss returns the zero value and false and leaves the cache untouched.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.recency.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Put inserts or overwrites key and marks it most recently used.
// It reports whether the least recently used entry was evicted to make room.
func (c *Cache[K, V]) Put(key K, value V) (evicted bool) {
	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		c.recency.MoveToFront(elem)
		return false
	}

	c.items[key] = c.recency.PushFront(&entry[K, V]{key: key, value: value})

	// capacity can only be exceeded by one
	if c.recency.Len() > c.capacity {
		c.evictOldest()
		return true
	}
	return false
}

// Peek returns the value under key without refreshing its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return elem.Value.(*entry[K, V]).value, true
}

// Contains reports whether key is cached, without refreshing its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Remove drops key from the cache and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	elem, ok := c.items[key]
	if !ok {
		return false
	}
	c.recency.Remove(elem)
	delete(c.items, key)
	return true
}

// Oldest returns the entry that the next over-capacity Put would evict.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	elem := c.recency.Back()
	if elem == nil {
		return
	}
	ent := elem.Value.(*entry[K, V])
	return ent.key, ent.value, true
}

// Keys returns the cached keys ordered from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.recency.Len())
	for elem := c.recency.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	return keys
}

// Clear empties the cache. The capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	n := c.recency.Len()
	clear(c.items)
	c.recency.Init()
	c.logger.Debug("lru cleared", zap.Int("dropped", n))
}

func (c *Cache[K, V]) Len() int {
	return c.recency.Len()
}

func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

func (c *Cache[K, V]) evictOldest() {
	elem := c.recency.Back()
	if elem == nil {
		return
	}
	c.recency.Remove(elem)
	ent := elem.Value.(*entry[K, V])
	delete(c.items, ent.key)
	c.logger.Debug("lru evicted", zap.Any("key", ent.key))
	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value)
	}
}
